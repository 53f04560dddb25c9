// Package uml defines the model element types shown in diagrams.
//
// The types carry just enough data to be placed on a diagram and listed in
// the model browser. Icon names are derived from the type names, see
// package iconname.
package uml

// Element holds the fields common to every model element.
type Element struct {
	ID   string
	Name string
}

// Actor is a role played by a user or external system.
type Actor struct{ Element }

// UseCase is a unit of functionality offered by a system.
type UseCase struct{ Element }

// Class describes a set of objects sharing features.
type Class struct {
	Element
	Abstract bool
}

// Package groups related elements.
type Package struct{ Element }

// Diagram is a view on part of the model.
type Diagram struct{ Element }

// Comment is a note attached to other elements.
type Comment struct {
	Element
	Body string
}

// Association relates two classifiers.
type Association struct{ Element }

// State is a situation during the life of an object.
type State struct{ Element }

// FinalState marks the completion of the enclosing region.
type FinalState struct{ State }

// PseudostateKind identifies the kind of a Pseudostate.
type PseudostateKind string

// Pseudostate kinds.
const (
	PseudostateInitial        PseudostateKind = "initial"
	PseudostateDeepHistory    PseudostateKind = "deepHistory"
	PseudostateShallowHistory PseudostateKind = "shallowHistory"
	PseudostateJoin           PseudostateKind = "join"
	PseudostateFork           PseudostateKind = "fork"
	PseudostateJunction       PseudostateKind = "junction"
	PseudostateChoice         PseudostateKind = "choice"
	PseudostateEntryPoint     PseudostateKind = "entryPoint"
	PseudostateExitPoint      PseudostateKind = "exitPoint"
	PseudostateTerminate      PseudostateKind = "terminate"
)

// Pseudostate is a transient vertex in a state machine.
type Pseudostate struct {
	Element
	Kind PseudostateKind
}

// Transition connects a source vertex to a target vertex.
type Transition struct {
	Element
	Source string
	Target string
	Guard  *Constraint
}

// Constraint is a condition expressed as text.
type Constraint struct {
	Element
	Specification string
}

// Interaction describes a unit of behaviour focused on message exchange.
type Interaction struct{ Element }

// Lifeline is an individual participant in an interaction.
type Lifeline struct{ Element }

// ExecutionSpecification is a period of execution on a lifeline.
type ExecutionSpecification struct {
	Element
	Start  string
	Finish string
}
