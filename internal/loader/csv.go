// =============================================================================
// CBI Payment Export - CSV Input
// =============================================================================

package loader

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/treasuryops/cbi-export/internal/sepa"
)

// LoadCSV reads transactions from a CSV file. The first record is the
// header row; records may have a variable number of fields, missing
// trailing cells read as empty optional columns.
func LoadCSV(path string) ([]sepa.Transaction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow ragged rows; optional columns may be omitted.
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%s is empty: missing header row", path)
	}

	return rowsToTransactions(records[0], records[1:], 2)
}
