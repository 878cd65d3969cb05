// Command baita shows the Baita Paradiso page with its scroll-driven
// animations, or drives it headless from a scroll script.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phanxgames/scrollfx/internal/config"
	"github.com/phanxgames/scrollfx/internal/logging"
)

var (
	// Global flags
	configPath string
	lang       string
	debug      bool
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd opens the page window when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "baita",
	Short: "Baita Paradiso, a scroll-animated restaurant page",
	Long: `Baita Paradiso lays out the restaurant page and plays its scroll-driven
animations: split-text reveals, parallax photographs and staggered cards.

Run without arguments to open the page in a window. Scroll with the wheel,
arrow keys, Page Up/Down, Home and End.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("lang") {
			cfg.Lang = lang
		}
		if debug {
			cfg.Log.Debug = true
		}
		level := cfg.Log.Level
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level, cfg.Log.Debug)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runWindow,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath(), "config file")
	rootCmd.PersistentFlags().StringVarP(&lang, "lang", "l", "it", "page language (it, en)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log frame stats and panic on disposed nodes")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug log level")

	simulateCmd.Flags().StringVarP(&scriptPath, "script", "s", "", "JSON scroll script (default: tour every section)")
	simulateCmd.Flags().Float64Var(&settleSeconds, "settle", 3, "seconds to keep running after the script ends")
	simulateCmd.Flags().BoolVar(&jsonOutput, "json", false, "print snapshots as JSON")

	rootCmd.AddCommand(runCmd, simulateCmd, effectsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
