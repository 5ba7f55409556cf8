// =============================================================================
// CBI Payment Export - Input Loading
// =============================================================================
//
// The loader package reads payment transaction rows from the supported
// input formats (CSV and XLSX) and maps them onto domain transactions. It
// is the external-collaborator layer in front of the core model: it only
// fails on rows it cannot parse at all (a malformed amount or date); every
// business constraint is left to the domain model's collected validation so
// the caller sees one aggregated report.
//
// INPUT LAYOUT:
//   Both formats share one column contract, identified by a header row.
//   Header names are matched case-insensitively.
//
//   Required columns:
//     amount, reference, requested_date, creditor_name, creditor_iban
//   Optional columns:
//     currency, instruction, batch_booking, service_level,
//     category_purpose, creditor_bic, creditor_city, remittance_information
//
// =============================================================================

package loader

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/treasuryops/cbi-export/internal/sepa"
)

// requiredColumns must all be present in the header row.
var requiredColumns = []string{
	"amount",
	"reference",
	"requested_date",
	"creditor_name",
	"creditor_iban",
}

// Load reads transactions from the file at path, dispatching on the file
// extension. Supported extensions: .csv, .xlsx.
func Load(path string) ([]sepa.Transaction, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".xlsx":
		return LoadXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported input format: %s", filepath.Ext(path))
	}
}

// =============================================================================
// ROW MAPPING
// =============================================================================

// columnIndex maps normalized header names to their column positions.
type columnIndex map[string]int

// indexHeader builds the column index from a header row and verifies that
// every required column is present.
func indexHeader(header []string) (columnIndex, error) {
	index := make(columnIndex, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("missing required column %q in header row", name)
		}
	}

	return index, nil
}

// cell returns the trimmed value of the named column in a row, or "" when
// the column is absent or the row is short.
func (c columnIndex) cell(row []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// rowToTransaction maps one data row onto a domain transaction. rowNum is
// the 1-based row number in the source file, used in parse error messages.
//
// Only cell-level parse failures are errors here; domain constraints
// (positive amount, IBAN checksum, lengths) are collected later by the
// model's validation.
func rowToTransaction(cols columnIndex, row []string, rowNum int) (sepa.Transaction, error) {
	transaction := sepa.NewTransaction()

	amount, err := decimal.NewFromString(cols.cell(row, "amount"))
	if err != nil {
		return sepa.Transaction{}, fmt.Errorf("row %d: amount %q is not a number", rowNum, cols.cell(row, "amount"))
	}
	transaction.Amount = amount

	if currency := cols.cell(row, "currency"); currency != "" {
		transaction.Currency = strings.ToUpper(currency)
	}

	transaction.Reference = cols.cell(row, "reference")
	transaction.Instruction = cols.cell(row, "instruction")

	requestedDate, err := time.Parse("2006-01-02", cols.cell(row, "requested_date"))
	if err != nil {
		return sepa.Transaction{}, fmt.Errorf("row %d: requested_date %q is not a date (expected YYYY-MM-DD)", rowNum, cols.cell(row, "requested_date"))
	}
	transaction.RequestedDate = requestedDate

	if batch := cols.cell(row, "batch_booking"); batch != "" {
		value, err := parseBool(batch)
		if err != nil {
			return sepa.Transaction{}, fmt.Errorf("row %d: batch_booking %q is not a boolean", rowNum, batch)
		}
		transaction.BatchBooking = value
	}

	if serviceLevel := cols.cell(row, "service_level"); serviceLevel != "" {
		transaction.ServiceLevel = strings.ToUpper(serviceLevel)
	}

	transaction.CategoryPurpose = cols.cell(row, "category_purpose")
	transaction.Name = cols.cell(row, "creditor_name")
	transaction.IBAN = cols.cell(row, "creditor_iban")
	transaction.BIC = cols.cell(row, "creditor_bic")
	transaction.City = cols.cell(row, "creditor_city")
	transaction.RemittanceInformation = cols.cell(row, "remittance_information")

	return transaction, nil
}

// parseBool accepts the boolean spellings seen in treasury exports.
func parseBool(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "true", "yes", "y", "1", "t":
		return true, nil
	case "false", "no", "n", "0", "f":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", value)
}

// rowsToTransactions maps a header row plus data rows onto transactions.
// Blank rows are skipped. firstDataRow is the 1-based row number of the
// first data row in the source file.
func rowsToTransactions(header []string, rows [][]string, firstDataRow int) ([]sepa.Transaction, error) {
	cols, err := indexHeader(header)
	if err != nil {
		return nil, err
	}

	transactions := make([]sepa.Transaction, 0, len(rows))

	for i, row := range rows {
		if isBlankRow(row) {
			continue
		}

		transaction, err := rowToTransaction(cols, row, firstDataRow+i)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}

	return transactions, nil
}

// isBlankRow reports whether every cell in the row is empty.
func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
