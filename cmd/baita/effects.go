package main

import (
	"github.com/spf13/cobra"

	"github.com/phanxgames/scrollfx"
	"github.com/phanxgames/scrollfx/site"
)

// effectsCmd prints the effect specs in use.
var effectsCmd = &cobra.Command{
	Use:   "effects",
	Short: "Print the effect specs as a YAML stream",
	Long: `Prints every section's effects, with overrides from effects_dir applied.
The output can be split into per-section files and edited.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		specs, err := site.LoadSpecs(cfg.EffectsDir)
		if err != nil {
			return err
		}
		data, err := scrollfx.MarshalSpecs(specs...)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
