package commands

import (
	"fmt"
	"log/slog"
	"reflect"
	"sort"

	"github.com/gaphor/iconname/internal/cli/config"
	"github.com/gaphor/iconname/internal/cli/output"
	"github.com/gaphor/iconname/pkg/iconname"
	"github.com/gaphor/iconname/pkg/uml"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Registry *iconname.Registry
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's context.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	reg, err := NewRegistry(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Registry: reg,
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat)),
	}, nil
}

// NewRegistry creates an icon registry with the configured overrides
// registered as type specific rules.
func NewRegistry(cfg *config.Config, logger *slog.Logger) (*iconname.Registry, error) {
	reg := iconname.NewRegistry(iconname.WithLogger(logger))

	names := make([]string, 0, len(cfg.Overrides))
	for name := range cfg.Overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		element, ok := uml.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("override for %q: %w", name, ErrUnknownElement)
		}
		reg.RegisterName(reflect.TypeOf(element), cfg.Overrides[name])
	}
	return reg, nil
}

// isOverridden reports whether the registry has a specific rule for element.
func isOverridden(reg *iconname.Registry, element any) bool {
	_, ok := reg.Lookup(reflect.TypeOf(element))
	return ok
}
