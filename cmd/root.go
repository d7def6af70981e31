package cmd

import (
	"fmt"
	"os"

	"github.com/soccerlab/rater-api/pkg/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rater-api",
	Short: "Clip Rater API server",
	Long: `Clip Rater API - A data collection backend for soccer clip rating studies

The server drives the rating workflow: raters derive a stable pseudonymous
identifier from an identity questionnaire, fill in a demographic profile,
and work through a per-rater queue of video clips, rating each one on the
configured dimensions. Collected records live as flat JSON files and can
be flattened into CSV tables for analysis.

Features:
  • Deterministic rater identifiers derived from questionnaire answers
  • Per-rater clip queues with a configurable rating cap per clip
  • Event metadata lookups from the match analysis database
  • CSV export with a plain-text statistics report`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Set up configuration loading with lazy initialization
	cobra.OnInitialize(loadConfig)

	// Add persistent flags for logging configuration
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
}

// loadConfig loads the configuration when a command needs it
// This is called lazily only when a command that needs config runs
func loadConfig() {
	// Skip config loading for commands that don't need it
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && cmd.Name() == "version" {
		return // Version command doesn't need config
	}

	// Initialize the configuration
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
