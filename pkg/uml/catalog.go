package uml

import (
	"reflect"
	"sort"
	"strings"
)

// constructors lists every element type in the catalog.
var constructors = []func() any{
	func() any { return &Actor{} },
	func() any { return &UseCase{} },
	func() any { return &Class{} },
	func() any { return &Package{} },
	func() any { return &Diagram{} },
	func() any { return &Comment{} },
	func() any { return &Association{} },
	func() any { return &State{} },
	func() any { return &FinalState{} },
	func() any { return &Pseudostate{} },
	func() any { return &Transition{} },
	func() any { return &Constraint{} },
	func() any { return &Interaction{} },
	func() any { return &Lifeline{} },
	func() any { return &ExecutionSpecification{} },
}

// Catalog returns a fresh zero instance of every element type, sorted by
// type name.
func Catalog() []any {
	elements := make([]any, 0, len(constructors))
	for _, newElement := range constructors {
		elements = append(elements, newElement())
	}
	sort.Slice(elements, func(i, j int) bool {
		return typeName(elements[i]) < typeName(elements[j])
	})
	return elements
}

// Lookup returns a fresh instance of the element type with the given simple
// name. The match is case-insensitive.
func Lookup(name string) (any, bool) {
	for _, newElement := range constructors {
		element := newElement()
		if strings.EqualFold(typeName(element), name) {
			return element, true
		}
	}
	return nil, false
}

// TypeNames returns the simple names of all element types, sorted.
func TypeNames() []string {
	names := make([]string, 0, len(constructors))
	for _, newElement := range constructors {
		names = append(names, typeName(newElement()))
	}
	sort.Strings(names)
	return names
}

func typeName(element any) string {
	return reflect.TypeOf(element).Elem().Name()
}
