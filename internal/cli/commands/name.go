package commands

import (
	"errors"
	"fmt"

	"github.com/gaphor/iconname/pkg/iconname"
	"github.com/gaphor/iconname/pkg/uml"
	"github.com/spf13/cobra"
)

// ErrUnknownElement is returned for type names outside the element catalog.
var ErrUnknownElement = errors.New("unknown element type")

// NameOptions holds options for the name command.
type NameOptions struct {
	Strict bool
}

// IconNameResult is one resolved icon name.
type IconNameResult struct {
	Type  string `json:"type" yaml:"type"`
	Icon  string `json:"icon" yaml:"icon"`
	Known bool   `json:"known" yaml:"known"`
}

// NewNameCommand creates the name command.
func NewNameCommand() *cobra.Command {
	opts := &NameOptions{}
	cmd := &cobra.Command{
		Use:   "name <type>...",
		Short: "Print the icon name for element types",
		Long: `Print the icon-theme name for one or more model element types.

Known element types are resolved through the icon registry, so overrides from
the config file apply. Other names get the default rule unless --strict is set.

In text and markdown output one icon name is printed per line.`,
		Example: `  # Icon for a use case
  iconname name UseCase

  # Several types as JSON
  iconname name Actor UseCase --output json

  # Fail on names that are not model element types
  iconname name --strict Gadget`,
		Args: cobra.MinimumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return uml.TypeNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runName(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Reject names that are not model element types")

	return cmd
}

func runName(cmd *cobra.Command, args []string, opts *NameOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	results, err := resolveNames(cmdCtx, args, opts.Strict)
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	if handled, err := r.Structured(results); handled {
		return err
	}
	for _, res := range results {
		r.Println(res.Icon)
	}
	return nil
}

func resolveNames(cmdCtx *CommandContext, names []string, strict bool) ([]IconNameResult, error) {
	results := make([]IconNameResult, 0, len(names))
	for _, name := range names {
		element, ok := uml.Lookup(name)
		if !ok {
			if strict {
				return nil, fmt.Errorf("%q: %w", name, ErrUnknownElement)
			}
			cmdCtx.Logger.Debug("not a model element type, using default rule", "type", name)
			results = append(results, IconNameResult{Type: name, Icon: iconname.FromTypeName(name)})
			continue
		}
		results = append(results, IconNameResult{
			Type:  iconname.TypeName(element),
			Icon:  cmdCtx.Registry.Resolve(element),
			Known: true,
		})
	}
	return results, nil
}
