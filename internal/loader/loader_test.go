package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sampleHeader = "amount,currency,reference,requested_date,batch_booking,service_level,creditor_name,creditor_iban,creditor_bic,remittance_information"

func writeCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "payments.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeCSV(t, sampleHeader+"\n"+
		"100,EUR,REF1,2024-03-01,false,SEPA,Bob,DE89370400440532013000,DEUTDEFF,Invoice 4711\n"+
		"20.50,,REF2,2024-03-02,yes,,Carla,IT60X0542811101000000123456,,\n")

	transactions, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	first := transactions[0]
	assert.Equal(t, "100", first.Amount.String())
	assert.Equal(t, "EUR", first.Currency)
	assert.Equal(t, "REF1", first.Reference)
	assert.Equal(t, "2024-03-01", first.RequestedDate.Format("2006-01-02"))
	assert.False(t, first.BatchBooking)
	assert.Equal(t, "SEPA", first.ServiceLevel)
	assert.Equal(t, "Bob", first.Name)
	assert.Equal(t, "DE89370400440532013000", first.IBAN)
	assert.Equal(t, "DEUTDEFF", first.BIC)
	assert.Equal(t, "Invoice 4711", first.RemittanceInformation)

	// Empty optional cells fall back to the transaction defaults.
	second := transactions[1]
	assert.Equal(t, "20.5", second.Amount.String())
	assert.Equal(t, "EUR", second.Currency)
	assert.True(t, second.BatchBooking)
	assert.Equal(t, "SEPA", second.ServiceLevel)
	assert.Empty(t, second.BIC)
}

func TestLoadCSVSkipsBlankRows(t *testing.T) {
	path := writeCSV(t, sampleHeader+"\n"+
		"100,EUR,REF1,2024-03-01,false,SEPA,Bob,DE89370400440532013000,,\n"+
		",,,,,,,,,\n")

	transactions, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Len(t, transactions, 1)
}

func TestLoadCSVMissingRequiredColumn(t *testing.T) {
	path := writeCSV(t, "amount,reference\n100,REF1\n")

	_, err := LoadCSV(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requested_date")
}

func TestLoadCSVMalformedCells(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want string
	}{
		{"bad amount", "abc,EUR,REF1,2024-03-01,false,SEPA,Bob,DE89370400440532013000,,", "amount"},
		{"bad date", "100,EUR,REF1,03/01/2024,false,SEPA,Bob,DE89370400440532013000,,", "requested_date"},
		{"bad boolean", "100,EUR,REF1,2024-03-01,maybe,SEPA,Bob,DE89370400440532013000,,", "batch_booking"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, sampleHeader+"\n"+tt.row+"\n")

			_, err := LoadCSV(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), "row 2")
		})
	}
}

func TestLoadCSVEmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	_, err := LoadCSV(path)
	assert.Error(t, err)
}

func TestLoadXLSX(t *testing.T) {
	workbook := excelize.NewFile()
	sheet := workbook.GetSheetName(0)

	header := []interface{}{"amount", "currency", "reference", "requested_date", "creditor_name", "creditor_iban"}
	row := []interface{}{"75.25", "EUR", "REF9", "2024-04-15", "Dora", "DE89370400440532013000"}
	require.NoError(t, workbook.SetSheetRow(sheet, "A1", &header))
	require.NoError(t, workbook.SetSheetRow(sheet, "A2", &row))

	path := filepath.Join(t.TempDir(), "payments.xlsx")
	require.NoError(t, workbook.SaveAs(path))
	require.NoError(t, workbook.Close())

	transactions, err := LoadXLSX(path)
	require.NoError(t, err)
	require.Len(t, transactions, 1)

	assert.Equal(t, "75.25", transactions[0].Amount.String())
	assert.Equal(t, "REF9", transactions[0].Reference)
	assert.Equal(t, "2024-04-15", transactions[0].RequestedDate.Format("2006-01-02"))
	assert.Equal(t, "Dora", transactions[0].Name)
}

func TestLoadDispatchesOnExtension(t *testing.T) {
	path := writeCSV(t, sampleHeader+"\n100,EUR,REF1,2024-03-01,false,SEPA,Bob,DE89370400440532013000,,\n")

	transactions, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, transactions, 1)

	_, err = Load(filepath.Join(t.TempDir(), "payments.json"))
	assert.Error(t, err)
}
