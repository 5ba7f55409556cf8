// =============================================================================
// CBI Payment Export - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that the other commands are attached to:
//
//   cbiexport
//   ├── generate   (export input files to CBI payment request XML)
//   ├── validate   (report validation problems without writing output)
//   └── version    (display build information)
//
// The root command owns the global flags (--config, --verbose) and the
// shared setup: loading the configuration file and initializing the
// structured logger.
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/treasuryops/cbi-export/internal/config"
)

// cfgFile holds the path to the configuration file; overridden with
// --config.
var cfgFile string

// verbose forces debug-level logging regardless of the configured level.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "cbiexport",
	Short: "CBI Payment Export - Generate CBI payment request XML from payment data",
	Long: `CBI Payment Export converts payment transaction files (CSV or XLSX) into
CBI payment request XML documents (CBIPaymentRequest 00.04.00) ready for
submission to a bank.

Transactions are validated field by field before rendering: IBAN and
creditor identifier checksums, BIC structure, amount precision, and length
limits. All violations on an input are reported together; no document is
written for an invalid input.

Example Usage:
  cbiexport generate                    # Export all files in the input directory
  cbiexport generate --config ./my.yaml # Use a custom configuration file
  cbiexport validate                    # Report validation problems only`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and runs it. Called
// once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (default is config.yaml)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// loadConfig reads the configuration file named by --config.
func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}

// newLogger initializes the structured logger from the configuration,
// honoring the --verbose flag.
func newLogger(cfg *config.Config) *slog.Logger {
	level := parseLevel(cfg.LogLevel)
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(cfg.LogFormat) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}

// parseLevel converts a configured level name to a slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
