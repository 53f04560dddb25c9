// Package iconname resolves icon-theme names for model elements.
//
// Every element gets a name of the form "gaphor-<kebab-type-name>-symbolic",
// derived from the simple name of its runtime type:
//
//	iconname.IconName(&uml.UseCase{}) // "gaphor-use-case-symbolic"
//
// Specific element types can be given their own rule by registering it
// against the type. Dispatch is on the exact type of the element; a type
// without a registered rule uses the default rule. T and *T share a rule.
//
// The names are meant for an icon lookup layer that maps them to themed
// assets. This package does no file or theme resolution.
package iconname
