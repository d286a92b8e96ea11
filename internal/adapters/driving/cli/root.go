// Package cli provides the cobra command tree for the Vertify CLI.
// Commands talk to the core exclusively through the driving ports;
// the concrete services are injected by the composition root in
// cmd/vertify.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vertify/internal/core/ports/driven"
	"github.com/custodia-labs/vertify/internal/core/ports/driving"
	"github.com/custodia-labs/vertify/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Injected services. Set by Init before Execute runs.
var (
	converter   driving.Converter
	configStore driven.ConfigStore
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "vertify",
	Short: "Convert raw text into NoSketch Engine vertical corpora",
	Long: `Vertify converts raw text files into the one-token-per-line vertical
format consumed by NoSketch Engine, and materializes the corpus layout
and registry descriptor the engine expects.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"enable verbose logging to stderr")
}

// Init injects the services the commands depend on.
func Init(c driving.Converter, cfg driven.ConfigStore) {
	converter = c
	configStore = cfg
}

// Execute runs the root command. Any fatal condition exits non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
