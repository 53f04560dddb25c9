package commands

import (
	"github.com/gaphor/iconname/pkg/casing"
	"github.com/spf13/cobra"
)

// KebabResult is one case conversion.
type KebabResult struct {
	Input string `json:"input" yaml:"input"`
	Kebab string `json:"kebab" yaml:"kebab"`
}

// NewKebabCommand creates the kebab command.
func NewKebabCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kebab <text>...",
		Short: "Convert camel case identifiers to kebab case",
		Long: `Convert camel case identifiers to kebab case.

A hyphen goes between a lowercase letter and the uppercase run that follows
it, then everything is lowercased. Acronym runs stay together.`,
		Example: `  iconname kebab UseCase        # use-case
  iconname kebab useHTTPS       # use-https
  iconname kebab ABCState       # abcstate`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			results := make([]KebabResult, 0, len(args))
			for _, arg := range args {
				results = append(results, KebabResult{Input: arg, Kebab: casing.ToKebab(arg)})
			}

			r := cmdCtx.Renderer
			if handled, err := r.Structured(results); handled {
				return err
			}
			for _, res := range results {
				r.Println(res.Kebab)
			}
			return nil
		},
	}
}
