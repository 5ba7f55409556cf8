// =============================================================================
// CBI Payment Export - Accounts
// =============================================================================
//
// Account models the initiating (creditor side) party of a payment request:
// name, IBAN, and optionally a BIC. CreditorAccount extends it with the
// fields the CBI schema needs for a collecting party: the national bank
// code (ABI) carried in the debtor agent block, and an optional creditor
// scheme identity rendered under the initiating party.
//
// Construction never fails: invalid values are recorded field by field and
// surfaced through Validate, so a caller can populate an account from
// untrusted input and inspect every problem at once. Optional fields are
// validated only when present; absence is not an error.
//
// =============================================================================

package sepa

// Account is a payer or payee identity.
type Account struct {
	// Name is the account holder name.
	Name string

	// IBAN is the account number; required, checksum validated.
	IBAN string

	// BIC identifies the account's bank; optional, structurally validated
	// when present.
	BIC string
}

// Validate returns every constraint violation on the account. An empty
// result means the account is valid.
func (a Account) Validate() []Violation {
	var violations []Violation

	violations = append(violations, checkField("name", a.Name, lengthBetween(1, 70))...)
	violations = append(violations, checkField("iban", a.IBAN, validIBAN)...)

	if a.BIC != "" {
		violations = append(violations, checkField("bic", a.BIC, validBIC)...)
	}

	return violations
}

// IsValid reports whether every populated field passes its validator.
func (a Account) IsValid() bool {
	return len(a.Validate()) == 0
}

// =============================================================================
// CREDITOR ACCOUNT
// =============================================================================

// SchemeIdentity is the creditor scheme identification block rendered under
// the initiating party. It is optional on a CreditorAccount; presence of the
// sub-record decides whether the OrgId block is emitted.
type SchemeIdentity struct {
	// CreditorIdentifier is the SEPA creditor identifier; checksum validated.
	CreditorIdentifier string

	// CreditorIssuer names the issuer of the identifier, e.g. "CBI".
	CreditorIssuer string
}

// Validate returns the violations on the scheme identity fields.
func (s SchemeIdentity) Validate() []Violation {
	var violations []Violation

	violations = append(violations, checkField("creditor_identifier", s.CreditorIdentifier, validCreditorIdentifier)...)
	violations = append(violations, checkField("creditor_issuer", s.CreditorIssuer, lengthBetween(1, 35))...)

	return violations
}

// CreditorAccount is the collecting party of a CBI payment request.
type CreditorAccount struct {
	Account

	// NationalBankCode is the clearing system member id of the debtor
	// agent; for Italian banks this is the ABI code.
	NationalBankCode string

	// Scheme carries the optional creditor scheme identity. When nil, the
	// initiating party is rendered without an identification block.
	Scheme *SchemeIdentity
}

// Validate returns every constraint violation on the account, including the
// scheme identity when one is present.
func (a CreditorAccount) Validate() []Violation {
	violations := a.Account.Validate()

	violations = append(violations, checkField("national_bank_code", a.NationalBankCode, lengthBetween(1, 35))...)

	if a.Scheme != nil {
		violations = append(violations, a.Scheme.Validate()...)
	}

	return violations
}

// IsValid reports whether every populated field passes its validator.
func (a CreditorAccount) IsValid() bool {
	return len(a.Validate()) == 0
}
