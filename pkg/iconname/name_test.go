package iconname

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type UseCase struct{}

type ABCState struct{}

type plain int

func TestTypeName(t *testing.T) {
	tests := []struct {
		name     string
		element  any
		expected string
	}{
		{"struct value", UseCase{}, "UseCase"},
		{"struct pointer", &UseCase{}, "UseCase"},
		{"pointer to pointer", func() any { u := &UseCase{}; return &u }(), "UseCase"},
		{"named non-struct", plain(3), "plain"},
		{"builtin", 42, "int"},
		{"unnamed type", []string{}, ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TypeName(tt.element))
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "gaphor-use-case-symbolic", Format("use-case"))
	assert.Equal(t, "gaphor--symbolic", Format(""))
}

func TestDefaultRule(t *testing.T) {
	assert.Equal(t, "gaphor-use-case-symbolic", DefaultRule(UseCase{}))
	assert.Equal(t, "gaphor-use-case-symbolic", DefaultRule(&UseCase{}))
	assert.Equal(t, "gaphor-abcstate-symbolic", DefaultRule(ABCState{}))
	assert.Equal(t, "gaphor-plain-symbolic", DefaultRule(plain(0)))
}

func TestFromTypeName(t *testing.T) {
	assert.Equal(t, "gaphor-use-case-symbolic", FromTypeName("UseCase"))
	assert.Equal(t, "gaphor-execution-specification-symbolic", FromTypeName("ExecutionSpecification"))
	assert.Equal(t, "gaphor--symbolic", FromTypeName(""))
}
