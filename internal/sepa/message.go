// =============================================================================
// CBI Payment Export - Payment Request Message
// =============================================================================
//
// Message is the aggregate root: one creditor account plus an ordered
// collection of transactions, rendered into a single CBI payment request
// document. AddTransaction never rejects a transaction; all validation is
// collected and escalated at render time so a caller can load many
// transactions and inspect the aggregate errors once.
//
// RENDER GATING:
//   ToXML re-checks everything regardless of caller discipline:
//     - unsupported schema        -> ErrSchemaMismatch
//     - no transactions           -> ErrEmptyMessage
//     - any collected violation   -> *RenderError with the full list
//   On any failure no partial document is produced.
//
// Header totals (NbOfTxs, CtrlSum) are recomputed from the live transaction
// slice on every render; they are never cached independently of it.
//
// =============================================================================

package sepa

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sentinel errors returned by ToXML before any output is produced.
var (
	// ErrSchemaMismatch reports a schema the message does not support.
	ErrSchemaMismatch = errors.New("schema is not supported by this message")

	// ErrEmptyMessage reports a render attempt with no transactions. A
	// message without transactions has no well-defined header totals, so
	// rendering fails fast instead of emitting a header-only document.
	ErrEmptyMessage = errors.New("message contains no transactions")
)

// RenderError is the aggregate failure returned when ToXML is called on an
// invalid message. It carries the complete violation list.
type RenderError struct {
	Violations []Violation
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	messages := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		messages[i] = v.Error()
	}
	return fmt.Sprintf("message is not valid: %s", strings.Join(messages, "; "))
}

// Message aggregates the creditor account and the payment transactions of
// one CBI payment request.
type Message struct {
	// MessageIdentification is the unique message id placed in the group
	// header. NewMessage generates one; callers may overwrite it before
	// rendering.
	MessageIdentification string

	// Account is the initiating, collecting-side party.
	Account CreditorAccount

	transactions []Transaction
}

// NewMessage creates a message for the given account with a generated
// message identification.
func NewMessage(account CreditorAccount) *Message {
	return &Message{
		MessageIdentification: uuid.NewString(),
		Account:               account,
	}
}

// AddTransaction appends a transaction to the ordered sequence. Content is
// not inspected here; violations surface through Errors and at render time.
func (m *Message) AddTransaction(transaction Transaction) {
	m.transactions = append(m.transactions, transaction)
}

// Transactions returns the transactions in insertion order. The returned
// slice is a copy; transactions are immutable once added.
func (m *Message) Transactions() []Transaction {
	out := make([]Transaction, len(m.transactions))
	copy(out, m.transactions)
	return out
}

// TransactionCount is the number of transactions, as reported in NbOfTxs.
func (m *Message) TransactionCount() int {
	return len(m.transactions)
}

// ControlSum is the sum of all transaction amounts, as reported in CtrlSum.
// It is recomputed from the transaction collection on every call.
func (m *Message) ControlSum() decimal.Decimal {
	sum := decimal.Zero
	for _, transaction := range m.transactions {
		sum = sum.Add(transaction.Amount)
	}
	return sum
}

// SupportedSchemas is the static set of schema descriptors this message
// type can render against.
func (m *Message) SupportedSchemas() []Schema {
	return []Schema{CBIPaymentRequest000400}
}

// SupportsSchema reports whether the given schema is in the supported set.
func (m *Message) SupportsSchema(schema Schema) bool {
	for _, s := range m.SupportedSchemas() {
		if s.Name == schema.Name {
			return true
		}
	}
	return false
}

// =============================================================================
// VALIDATION QUERIES
// =============================================================================

// Errors returns every collected violation on the message: the account's,
// then each transaction's in insertion order. Transaction violations are
// prefixed with their position, e.g. "transactions[2].amount".
func (m *Message) Errors() []Violation {
	var violations []Violation

	for _, v := range m.Account.Validate() {
		violations = append(violations, Violation{
			Field:   "account." + v.Field,
			Message: v.Message,
		})
	}

	for i, transaction := range m.transactions {
		for _, v := range transaction.Validate() {
			violations = append(violations, Violation{
				Field:   fmt.Sprintf("transactions[%d].%s", i, v.Field),
				Message: v.Message,
			})
		}
	}

	return violations
}

// IsValid reports whether the account and every transaction pass all of
// their constraints.
func (m *Message) IsValid() bool {
	return len(m.Errors()) == 0
}

// =============================================================================
// RENDERING ENTRY POINT
// =============================================================================

// ToXML renders the message against the given schema. The output is
// deterministic for the same inputs except for the creation timestamp,
// which is read once per call.
func (m *Message) ToXML(schema Schema) ([]byte, error) {
	return m.toXMLAt(schema, time.Now())
}

// toXMLAt is the clock-injected render used by ToXML and by tests that
// compare documents byte for byte.
func (m *Message) toXMLAt(schema Schema, now time.Time) ([]byte, error) {
	if !m.SupportsSchema(schema) {
		return nil, fmt.Errorf("%w: %s", ErrSchemaMismatch, schema.Name)
	}
	if len(m.transactions) == 0 {
		return nil, ErrEmptyMessage
	}
	if violations := m.Errors(); len(violations) > 0 {
		return nil, &RenderError{Violations: violations}
	}

	return renderDocument(m, schema, now), nil
}
