package export

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treasuryops/cbi-export/internal/config"
)

const csvHeader = "amount,reference,requested_date,creditor_name,creditor_iban\n"

// testConfig returns a configuration rooted in temp directories with a
// valid creditor identity.
func testConfig(t *testing.T) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.InputDir = filepath.Join(base, "input")
	cfg.OutputDir = filepath.Join(base, "output")
	cfg.InputArchiveDir = filepath.Join(base, "archive")
	cfg.Creditor = config.CreditorConfig{
		Name:               "ACME",
		IBAN:               "IT60X0542811101000000123456",
		NationalBankCode:   "05428",
		CreditorIdentifier: "IT66ZZZA1B2C3D4E5F6G7H8",
		CreditorIssuer:     "CBI",
	}

	require.NoError(t, os.MkdirAll(cfg.InputDir, 0o755))
	return cfg
}

func writeInput(t *testing.T, cfg *config.Config, name, content string) string {
	t.Helper()

	path := filepath.Join(cfg.InputDir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunExportsValidInput(t *testing.T) {
	cfg := testConfig(t)
	input := writeInput(t, cfg, "payments.csv",
		csvHeader+"100,REF1,2024-03-01,Bob,DE89370400440532013000\n")

	result := New(cfg, discardLogger()).Run(input)

	require.True(t, result.Success, "export failed: %v", result.Err)
	assert.Equal(t, 1, result.Stats.Transactions)
	assert.Equal(t, 1, result.Stats.Groups)
	assert.Equal(t, "100.00", result.Stats.ControlSum)

	// Output document written.
	document, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, string(document), "<CBIPaymentRequest")
	assert.Contains(t, string(document), "<CtrlSum>100.00</CtrlSum>")

	// Input archived.
	_, err = os.Stat(input)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(cfg.InputArchiveDir, "payments.csv"))
	assert.NoError(t, err)
}

func TestRunReportsViolationsWithoutOutput(t *testing.T) {
	cfg := testConfig(t)
	input := writeInput(t, cfg, "payments.csv",
		csvHeader+"-5,REF1,2024-03-01,Bob,DE89370400440532013000\n")

	result := New(cfg, discardLogger()).Run(input)

	require.False(t, result.Success)
	assert.Empty(t, result.OutputPath)
	assert.NotEmpty(t, result.Violations)

	// Nothing written, input not archived.
	entries, err := os.ReadDir(cfg.OutputDir)
	if err == nil {
		assert.Empty(t, entries)
	}
	_, err = os.Stat(input)
	assert.NoError(t, err)
}

func TestRunFailsOnUnparseableInput(t *testing.T) {
	cfg := testConfig(t)
	input := writeInput(t, cfg, "payments.csv",
		csvHeader+"not-a-number,REF1,2024-03-01,Bob,DE89370400440532013000\n")

	result := New(cfg, discardLogger()).Run(input)

	require.False(t, result.Success)
	assert.ErrorContains(t, result.Err, "amount")
}

func TestCheckReportsViolations(t *testing.T) {
	cfg := testConfig(t)
	input := writeInput(t, cfg, "payments.csv",
		csvHeader+"100,REF1,2024-03-01,Bob,DE00000000000000000000\n")

	violations, err := New(cfg, discardLogger()).Check(input)

	require.NoError(t, err)
	require.NotEmpty(t, violations)
	assert.Equal(t, "transactions[0].iban", violations[0].Field)
}

func TestCheckCleanInput(t *testing.T) {
	cfg := testConfig(t)
	input := writeInput(t, cfg, "payments.csv",
		csvHeader+"100,REF1,2024-03-01,Bob,DE89370400440532013000\n")

	violations, err := New(cfg, discardLogger()).Check(input)

	require.NoError(t, err)
	assert.Empty(t, violations)
}
