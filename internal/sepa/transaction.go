// =============================================================================
// CBI Payment Export - Transactions
// =============================================================================
//
// Transaction is one credit transfer instruction: an amount going to a
// counterparty account on a requested execution date, plus the batching
// attributes that decide which payment information block it lands in.
//
// Transactions follow the same fail-soft validation pattern as Account:
// construction never rejects a value, Validate reports every violation, and
// the owning Message escalates the collected violations at render time.
//
// =============================================================================

package sepa

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single payment instruction.
type Transaction struct {
	// Amount is the instructed amount; must be strictly positive with at
	// most two decimal places.
	Amount decimal.Decimal

	// Currency is the ISO 4217 code accompanying the amount. Empty means
	// DefaultCurrency.
	Currency string

	// Reference is the end-to-end identification; required.
	Reference string

	// Instruction is the optional instruction identification.
	Instruction string

	// RequestedDate is the requested execution date. It is a calendar
	// date: any time-of-day component is a validation violation.
	RequestedDate time.Time

	// BatchBooking requests batched booking for the group this
	// transaction belongs to.
	BatchBooking bool

	// ServiceLevel is the service level code for the group, e.g. "SEPA".
	ServiceLevel string

	// CategoryPurpose is the optional category purpose code.
	CategoryPurpose string

	// Counterparty (the creditor of the transfer).

	// Name is the counterparty name; required.
	Name string

	// IBAN is the counterparty account; required, checksum validated.
	IBAN string

	// BIC is the counterparty bank; optional.
	BIC string

	// City is the counterparty town name; optional.
	City string

	// RemittanceInformation is optional unstructured remittance text.
	RemittanceInformation string
}

// NewTransaction returns a transaction with the domestic defaults applied:
// EUR currency and SEPA service level.
func NewTransaction() Transaction {
	return Transaction{
		Currency:     DefaultCurrency,
		ServiceLevel: "SEPA",
	}
}

// Validate returns every constraint violation on the transaction.
func (t Transaction) Validate() []Violation {
	var violations []Violation

	if msg := validAmount(t.Amount); msg != "" {
		violations = append(violations, Violation{Field: "amount", Message: msg})
	}

	if t.Currency != "" {
		violations = append(violations, checkField("currency", t.Currency, validCurrency)...)
	}

	violations = append(violations, checkField("reference", t.Reference, lengthBetween(1, 35))...)

	if t.Instruction != "" {
		violations = append(violations, checkField("instruction", t.Instruction, lengthBetween(1, 35))...)
	}

	if t.RequestedDate.IsZero() {
		violations = append(violations, Violation{Field: "requested_date", Message: "requested date is missing"})
	} else if hour, min, sec := t.RequestedDate.Clock(); hour != 0 || min != 0 || sec != 0 || t.RequestedDate.Nanosecond() != 0 {
		violations = append(violations, Violation{Field: "requested_date", Message: "requested date must not carry a time component"})
	}

	violations = append(violations, checkField("service_level", t.ServiceLevel, lengthBetween(1, 4))...)

	if t.CategoryPurpose != "" {
		violations = append(violations, checkField("category_purpose", t.CategoryPurpose, lengthBetween(1, 4))...)
	}

	violations = append(violations, checkField("name", t.Name, lengthBetween(1, 70))...)
	violations = append(violations, checkField("iban", t.IBAN, validIBAN)...)

	if t.BIC != "" {
		violations = append(violations, checkField("bic", t.BIC, validBIC)...)
	}
	if t.City != "" {
		violations = append(violations, checkField("city", t.City, lengthBetween(1, 35))...)
	}
	if t.RemittanceInformation != "" {
		violations = append(violations, checkField("remittance_information", t.RemittanceInformation, lengthBetween(1, 140))...)
	}

	return violations
}

// IsValid reports whether the transaction passes all of its constraints.
func (t Transaction) IsValid() bool {
	return len(t.Validate()) == 0
}

// currency returns the effective ISO 4217 code for rendering, falling back
// to the domestic default when unset.
func (t Transaction) currency() string {
	if t.Currency == "" {
		return DefaultCurrency
	}
	return t.Currency
}
