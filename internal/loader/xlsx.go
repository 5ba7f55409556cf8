// =============================================================================
// CBI Payment Export - XLSX Input
// =============================================================================
//
// Reads transaction rows from the first worksheet of an XLSX workbook using
// excelize. The sheet follows the same column contract as the CSV input:
// a header row followed by one data row per transaction. Cells are read as
// their displayed string values, so amount and date columns should be
// formatted as text or plain values in the workbook.
//
// =============================================================================

package loader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/treasuryops/cbi-export/internal/sepa"
)

// LoadXLSX reads transactions from the first sheet of an XLSX workbook.
func LoadXLSX(path string) ([]sepa.Transaction, error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s contains no worksheets", path)
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%s is empty: missing header row", path)
	}

	return rowsToTransactions(rows[0], rows[1:], 2)
}
