// =============================================================================
// CBI Payment Export - Generate Command
// =============================================================================
//
// This file defines the 'generate' command, the main command for exporting
// payment input files into CBI payment request XML.
//
// COMMAND USAGE:
//   cbiexport generate [flags]
//
// FLAGS:
//   --file : Export a single input file instead of scanning the input
//            directory
//
// PIPELINE (per input file):
//   1. Load the transactions (CSV or XLSX)
//   2. Assemble a message for the configured creditor
//   3. Validate everything; report all violations on failure
//   4. Render against the CBI schema and write <uuid>.xml to the output
//      directory
//   5. Archive the processed input
//
// Errors in one file do not stop the remaining files; the command exits
// non-zero when any file failed.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/treasuryops/cbi-export/internal/export"
	"github.com/treasuryops/cbi-export/pkg/fileutil"
)

// generateFile is the single input file to export; when empty the input
// directory is scanned.
var generateFile string

// generateCmd represents the 'generate' command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Export payment input files to CBI payment request XML",
	Long: `The generate command scans the configured input directory for payment files
(CSV or XLSX), converts each one into a CBI payment request document, writes
the documents to the output directory, and archives the processed inputs.

A file that fails validation produces no output; every violation found in it
is reported. Remaining files are still processed.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		inputs := []string{generateFile}
		if generateFile == "" {
			inputs, err = fileutil.DiscoverInputs(cfg.InputDir)
			if err != nil {
				return err
			}
			if len(inputs) == 0 {
				fmt.Println("No input files found.")
				return nil
			}
		}

		exporter := export.New(cfg, logger)

		failed := 0
		for _, input := range inputs {
			result := exporter.Run(input)

			if result.Success {
				fmt.Printf("OK   %s -> %s (%d transactions, %d groups, control sum %s)\n",
					result.InputPath,
					result.OutputPath,
					result.Stats.Transactions,
					result.Stats.Groups,
					result.Stats.ControlSum,
				)
				continue
			}

			failed++
			fmt.Printf("FAIL %s: %v\n", result.InputPath, result.Err)
			for _, violation := range result.Violations {
				fmt.Printf("     - %s\n", violation.Error())
			}
		}

		if failed > 0 {
			// Exit non-zero without duplicating the per-file output.
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(
		&generateFile,
		"file",
		"",
		"Export a single input file instead of scanning the input directory",
	)

	rootCmd.AddCommand(generateCmd)
}
