// =============================================================================
// CBI Payment Export - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which loads the payment inputs
// and reports every collected violation without writing any output. It lets
// an operator fix a batch completely before generating the file a bank will
// see.
//
// COMMAND USAGE:
//   cbiexport validate [flags]
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

// validateFile is the single input file to check; when empty the input
// directory is scanned.
var validateFile string

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Report validation problems in payment inputs without writing output",
	Long: `The validate command loads each payment input file, assembles the message it
would render, and prints every validation violation found: account and
transaction field constraints, identifier checksums, and amount precision.
Nothing is written or archived.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		inputs := []string{validateFile}
		if validateFile == "" {
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

		invalid := 0
		for _, input := range inputs {
			violations, err := exporter.Check(input)
			if err != nil {
				invalid++
				fmt.Printf("FAIL %s: %v\n", input, err)
				continue
			}

			if len(violations) == 0 {
				fmt.Printf("OK   %s\n", input)
				continue
			}

			invalid++
			fmt.Printf("FAIL %s: %d violation(s)\n", input, len(violations))
			for _, violation := range violations {
				fmt.Printf("     - %s\n", violation.Error())
			}
		}

		if invalid > 0 {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(
		&validateFile,
		"file",
		"",
		"Check a single input file instead of scanning the input directory",
	)

	rootCmd.AddCommand(validateCmd)
}
