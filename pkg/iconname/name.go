package iconname

import (
	"reflect"

	"github.com/gaphor/iconname/pkg/casing"
)

const (
	// Prefix starts every icon name.
	Prefix = "gaphor-"
	// Suffix ends every icon name.
	Suffix = "-symbolic"
)

// Rule computes the icon name for an element.
type Rule func(element any) string

// Format wraps a kebab case name in the icon naming convention.
func Format(kebab string) string {
	return Prefix + kebab + Suffix
}

// TypeName returns the simple name of the element's runtime type, without
// package qualifier. Pointer indirections are stripped. A nil element and
// unnamed types yield "".
func TypeName(element any) string {
	t := elementType(element)
	if t == nil {
		return ""
	}
	return t.Name()
}

// DefaultRule derives the icon name from the element's type name.
func DefaultRule(element any) string {
	return FromTypeName(TypeName(element))
}

// FromTypeName applies the default rule to a bare type name.
func FromTypeName(name string) string {
	return Format(casing.ToKebab(name))
}

// elementType returns the dispatch key for an element.
func elementType(element any) reflect.Type {
	if element == nil {
		return nil
	}
	return baseType(reflect.TypeOf(element))
}

func baseType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
