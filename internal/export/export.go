// =============================================================================
// CBI Payment Export - Export Pipeline
// =============================================================================
//
// This module orchestrates the export of one input file into one CBI
// payment request document:
//
//   1. Load transactions from the input file (CSV or XLSX)
//   2. Assemble a message for the configured creditor identity
//   3. Validate: collect every account and transaction violation
//   4. Render the message against the CBI schema
//   5. Write the document to the output directory
//   6. Archive the processed input file
//
// Each input file is independent; an Exporter is safe to use for multiple
// files because every Run call builds its own message.
//
// =============================================================================

package export

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/treasuryops/cbi-export/internal/config"
	"github.com/treasuryops/cbi-export/internal/loader"
	"github.com/treasuryops/cbi-export/internal/sepa"
	"github.com/treasuryops/cbi-export/pkg/fileutil"
)

// Result is the outcome of exporting a single input file.
type Result struct {
	// InputPath is the processed input file.
	InputPath string

	// OutputPath is the generated XML file; empty when the export failed.
	OutputPath string

	// Success reports whether the document was written.
	Success bool

	// Err is the failure cause when Success is false.
	Err error

	// Violations holds the collected validation problems when the input
	// loaded but the message was not renderable.
	Violations []sepa.Violation

	// Stats describes the processed message.
	Stats Stats
}

// Stats contains counters for the processed message.
type Stats struct {
	// Transactions is the number of transactions loaded from the input.
	Transactions int

	// Groups is the number of payment information blocks rendered.
	Groups int

	// ControlSum is the rendered control sum, formatted with two
	// decimal places.
	ControlSum string

	// Elapsed is the processing time for the file.
	Elapsed time.Duration
}

// Exporter runs the export pipeline with a fixed configuration.
type Exporter struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New creates an Exporter.
func New(cfg *config.Config, logger *slog.Logger) *Exporter {
	return &Exporter{cfg: cfg, logger: logger}
}

// Run exports a single input file and returns the outcome. Failures are
// reported in the Result, not returned, so a caller looping over many files
// can decide its own error policy.
func (e *Exporter) Run(inputPath string) Result {
	start := time.Now()
	result := Result{InputPath: inputPath}

	e.logger.Info("processing input file", "path", inputPath)

	message, err := e.buildMessage(inputPath)
	if err != nil {
		result.Err = err
		return result
	}

	result.Stats.Transactions = message.TransactionCount()
	result.Stats.ControlSum = message.ControlSum().StringFixed(2)
	result.Stats.Groups = len(sepa.GroupTransactions(message.Transactions()))

	document, err := message.ToXML(sepa.CBIPaymentRequest000400)
	if err != nil {
		var renderErr *sepa.RenderError
		if errors.As(err, &renderErr) {
			result.Violations = renderErr.Violations
		}
		result.Err = fmt.Errorf("failed to render %s: %w", inputPath, err)
		return result
	}

	e.logger.Debug("rendered document",
		"message_id", message.MessageIdentification,
		"transactions", result.Stats.Transactions,
		"groups", result.Stats.Groups,
		"control_sum", result.Stats.ControlSum,
	)

	outputPath, err := fileutil.WriteOutput(e.cfg.OutputDir, document)
	if err != nil {
		result.Err = err
		return result
	}
	result.OutputPath = outputPath

	e.logger.Info("wrote output", "path", outputPath)

	if err := fileutil.ArchiveFile(inputPath, e.cfg.InputArchiveDir); err != nil {
		// The document is already written; archival failure is not fatal.
		e.logger.Warn("failed to archive input", "path", inputPath, "error", err)
	}

	result.Success = true
	result.Stats.Elapsed = time.Since(start)

	return result
}

// Check loads an input file and reports its collected violations without
// rendering or writing anything. A nil violation slice with a nil error
// means the file would export cleanly.
func (e *Exporter) Check(inputPath string) ([]sepa.Violation, error) {
	message, err := e.buildMessage(inputPath)
	if err != nil {
		return nil, err
	}
	return message.Errors(), nil
}

// buildMessage loads the input file and assembles a message for the
// configured creditor.
func (e *Exporter) buildMessage(inputPath string) (*sepa.Message, error) {
	transactions, err := loader.Load(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", inputPath, err)
	}

	e.logger.Debug("loaded transactions", "path", inputPath, "count", len(transactions))

	message := sepa.NewMessage(e.cfg.Creditor.Account())
	for _, transaction := range transactions {
		message.AddTransaction(transaction)
	}

	return message, nil
}
