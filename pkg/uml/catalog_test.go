package uml

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	elements := Catalog()
	require.Len(t, elements, len(constructors))

	seen := make(map[string]struct{})
	for _, e := range elements {
		name := typeName(e)
		_, dup := seen[name]
		assert.False(t, dup, "duplicate element type %s", name)
		seen[name] = struct{}{}
	}
}

func TestCatalog_ReturnsFreshInstances(t *testing.T) {
	first := Catalog()
	second := Catalog()
	for i := range first {
		assert.NotSame(t, first[i], second[i])
	}
}

func TestLookup(t *testing.T) {
	e, ok := Lookup("UseCase")
	require.True(t, ok)
	assert.IsType(t, &UseCase{}, e)

	e, ok = Lookup("finalstate")
	require.True(t, ok)
	assert.IsType(t, &FinalState{}, e)

	_, ok = Lookup("Gadget")
	assert.False(t, ok)
}

func TestTypeNames(t *testing.T) {
	names := TypeNames()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "ExecutionSpecification")
	assert.Contains(t, names, "Pseudostate")
	assert.Len(t, names, len(constructors))
}
