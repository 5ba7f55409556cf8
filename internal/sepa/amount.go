// =============================================================================
// CBI Payment Export - Monetary Amounts
// =============================================================================
//
// Amounts are carried as shopspring decimals so that control sums are exact.
// The target schema mandates exactly two fractional digits on every rendered
// amount regardless of the currency's natural precision, so amounts with
// more than two decimal places are rejected as invalid input rather than
// silently rounded: rounding here would change the total a bank settles.
//
// =============================================================================

package sepa

import "github.com/shopspring/decimal"

// DefaultCurrency is assumed for transactions that do not set a currency.
const DefaultCurrency = "EUR"

// formatAmount renders an amount with exactly two fractional digits, the
// fixed point form the schema requires ("100" -> "100.00").
func formatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// validAmount checks the schema's amount constraints: strictly positive and
// at most two decimal places.
func validAmount(amount decimal.Decimal) string {
	if !amount.IsPositive() {
		return "amount must be greater than zero"
	}
	if !amount.Equal(amount.Truncate(2)) {
		return "amount must not have more than two decimal places"
	}
	return ""
}
