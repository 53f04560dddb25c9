package commands

import (
	"fmt"

	"github.com/gaphor/iconname/pkg/iconname"
	"github.com/gaphor/iconname/pkg/uml"
	"github.com/spf13/cobra"
)

// ElementIcon describes the icon of one element type.
type ElementIcon struct {
	Type string `json:"type" yaml:"type"`
	Icon string `json:"icon" yaml:"icon"`
	Rule string `json:"rule" yaml:"rule"` // "default" or "override"
}

// ListJSONOutput is the structured output of the list command.
type ListJSONOutput struct {
	Elements []ElementIcon `json:"elements" yaml:"elements"`
	Count    int           `json:"count" yaml:"count"`
}

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List model element types and their icon names",
		Long: `List every model element type with the icon name it resolves to.

Output adapts to environment:
  - Terminal: table
  - Piped/Scripted: Markdown format

Use --output to override: auto, text, markdown, json, yaml`,
		Example: `  # List all element icons
  iconname list

  # As JSON
  iconname list --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd)
		},
	}
}

func runList(cmd *cobra.Command) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	icons := elementIcons(cmdCtx)

	r := cmdCtx.Renderer
	if handled, err := r.Structured(ListJSONOutput{Elements: icons, Count: len(icons)}); handled {
		return err
	}

	r.Header(1, fmt.Sprintf("Element Icons (%d types)", len(icons)))
	rows := make([][]string, 0, len(icons))
	for _, ei := range icons {
		rows = append(rows, []string{ei.Type, ei.Icon, ei.Rule})
	}
	r.Table([]string{"Type", "Icon", "Rule"}, rows)
	return nil
}

func elementIcons(cmdCtx *CommandContext) []ElementIcon {
	catalog := uml.Catalog()
	icons := make([]ElementIcon, 0, len(catalog))
	for _, element := range catalog {
		rule := "default"
		if isOverridden(cmdCtx.Registry, element) {
			rule = "override"
		}
		icons = append(icons, ElementIcon{
			Type: iconname.TypeName(element),
			Icon: cmdCtx.Registry.Resolve(element),
			Rule: rule,
		})
	}
	return icons
}
