package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/gaphor/iconname/internal/cli/config"
	"github.com/gaphor/iconname/internal/testutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs cmd with args and cfg in its context, returning stdout.
func execute(t *testing.T, cmd *cobra.Command, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	ctx := config.WithLogger(context.Background(), testutil.NewTestLogger(t))
	if cfg != nil {
		ctx = config.WithConfig(ctx, cfg)
	}
	cmd.SetContext(ctx)

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestNewNameCommand(t *testing.T) {
	cmd := NewNameCommand()

	assert.Equal(t, "name <type>...", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("strict"), "flag %q should exist", "strict")
}

func TestNameCommand(t *testing.T) {
	t.Run("single type", func(t *testing.T) {
		out, err := execute(t, NewNameCommand(), nil, "UseCase")
		require.NoError(t, err)
		assert.Equal(t, "gaphor-use-case-symbolic\n", out)
	})

	t.Run("several types keep argument order", func(t *testing.T) {
		out, err := execute(t, NewNameCommand(), nil, "Pseudostate", "Actor")
		require.NoError(t, err)
		assert.Equal(t, "gaphor-pseudostate-symbolic\ngaphor-actor-symbolic\n", out)
	})

	t.Run("catalog lookup is case-insensitive", func(t *testing.T) {
		out, err := execute(t, NewNameCommand(), nil, "executionspecification")
		require.NoError(t, err)
		assert.Equal(t, "gaphor-execution-specification-symbolic\n", out)
	})

	t.Run("unknown type uses default rule", func(t *testing.T) {
		out, err := execute(t, NewNameCommand(), nil, "ABCState")
		require.NoError(t, err)
		assert.Equal(t, "gaphor-abcstate-symbolic\n", out)
	})

	t.Run("unknown type with strict fails", func(t *testing.T) {
		_, err := execute(t, NewNameCommand(), nil, "--strict", "Gadget")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownElement))
		assert.Contains(t, err.Error(), `"Gadget"`)
	})

	t.Run("override applies", func(t *testing.T) {
		cfg := config.Default()
		cfg.Overrides = map[string]string{"Pseudostate": "gaphor-initial-pseudostate-symbolic"}

		out, err := execute(t, NewNameCommand(), cfg, "Pseudostate", "State")
		require.NoError(t, err)
		assert.Equal(t, "gaphor-initial-pseudostate-symbolic\ngaphor-state-symbolic\n", out)
	})

	t.Run("json output", func(t *testing.T) {
		cfg := config.Default()
		cfg.OutputFormat = "json"

		out, err := execute(t, NewNameCommand(), cfg, "UseCase", "Gadget")
		require.NoError(t, err)

		var results []IconNameResult
		require.NoError(t, json.Unmarshal([]byte(out), &results))
		assert.Equal(t, []IconNameResult{
			{Type: "UseCase", Icon: "gaphor-use-case-symbolic", Known: true},
			{Type: "Gadget", Icon: "gaphor-gadget-symbolic", Known: false},
		}, results)
	})

	t.Run("requires an argument", func(t *testing.T) {
		_, err := execute(t, NewNameCommand(), nil)
		assert.Error(t, err)
	})
}

func TestKebabCommand(t *testing.T) {
	out, err := execute(t, NewKebabCommand(), nil, "UseCase", "useHTTPS", "ABCState")
	require.NoError(t, err)
	assert.Equal(t, "use-case\nuse-https\nabcstate\n", out)

	cfg := config.Default()
	cfg.OutputFormat = "yaml"
	out, err = execute(t, NewKebabCommand(), cfg, "FinalState")
	require.NoError(t, err)
	assert.YAMLEq(t, "- input: FinalState\n  kebab: final-state\n", out)
}

func TestNewListCommand(t *testing.T) {
	cmd := NewListCommand()

	assert.Equal(t, "list", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestListCommand(t *testing.T) {
	t.Run("markdown", func(t *testing.T) {
		out, err := execute(t, NewListCommand(), nil)
		require.NoError(t, err)

		assert.Contains(t, out, "# Element Icons (15 types)")
		assert.Contains(t, out, "| Type | Icon | Rule |")
		assert.Contains(t, out, "| UseCase | gaphor-use-case-symbolic | default |")
	})

	t.Run("json with override", func(t *testing.T) {
		cfg := config.Default()
		cfg.OutputFormat = "json"
		cfg.Overrides = map[string]string{"Actor": "avatar-default-symbolic"}

		out, err := execute(t, NewListCommand(), cfg)
		require.NoError(t, err)

		var result ListJSONOutput
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, 15, result.Count)
		require.Len(t, result.Elements, 15)

		byType := make(map[string]ElementIcon)
		for _, ei := range result.Elements {
			byType[ei.Type] = ei
		}
		assert.Equal(t, ElementIcon{Type: "Actor", Icon: "avatar-default-symbolic", Rule: "override"}, byType["Actor"])
		assert.Equal(t, ElementIcon{Type: "FinalState", Icon: "gaphor-final-state-symbolic", Rule: "default"}, byType["FinalState"])
	})

	t.Run("rejects arguments", func(t *testing.T) {
		_, err := execute(t, NewListCommand(), nil, "extra")
		assert.Error(t, err)
	})
}

func TestNewRegistry_UnknownOverride(t *testing.T) {
	cfg := config.Default()
	cfg.Overrides = map[string]string{"Gadget": "x"}

	_, err := NewRegistry(cfg, testutil.NewTestLogger(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownElement)
}
