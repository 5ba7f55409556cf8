// =============================================================================
// CBI Payment Export - Field Validation
// =============================================================================
//
// This module contains the validators for the typed fields used throughout
// the payment domain model: IBAN, BIC, SEPA creditor identifier, ISO 4217
// currency codes, plus generic length and charset constraints.
//
// VALIDATION STRATEGY:
//   - Validators are pure functions: value in, message out. A validator
//     returns an empty string when the value is valid and a human-readable
//     message when it is not.
//   - Constraints compose: a field checks all of its constraints and every
//     failing one produces its own Violation.
//   - Violations are collected, never thrown. Account and Transaction gather
//     them field by field so a caller can inspect every problem on an object
//     at once instead of fixing them one render attempt at a time.
//
// =============================================================================

package sepa

import (
	"fmt"
	"regexp"
)

// Violation records a single failed constraint on a named field.
type Violation struct {
	// Field is the name of the field that failed validation, e.g. "iban"
	// or "transactions[2].amount".
	Field string

	// Message is a human-readable description of the failure.
	Message string
}

// Error implements the error interface.
func (v Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// Constraint checks a raw string value and returns an error message, or ""
// when the value satisfies the constraint.
type Constraint func(value string) string

// checkField runs every constraint against the value and returns one
// Violation per failing constraint, tagged with the field name.
func checkField(field, value string, constraints ...Constraint) []Violation {
	var violations []Violation

	for _, constraint := range constraints {
		if msg := constraint(value); msg != "" {
			violations = append(violations, Violation{Field: field, Message: msg})
		}
	}

	return violations
}

// =============================================================================
// GENERIC CONSTRAINTS
// =============================================================================

// lengthBetween requires the value length to be within [min, max].
func lengthBetween(min, max int) Constraint {
	return func(value string) string {
		if len(value) < min || len(value) > max {
			return fmt.Sprintf("length must be between %d and %d characters (actual: %d)", min, max, len(value))
		}
		return ""
	}
}

// matches requires the value to match the pattern. The description names
// the expected format in the violation message.
func matches(pattern *regexp.Regexp, description string) Constraint {
	return func(value string) string {
		if !pattern.MatchString(value) {
			return fmt.Sprintf("%q is not a valid %s", value, description)
		}
		return ""
	}
}

// =============================================================================
// BANKING IDENTIFIER VALIDATORS
// =============================================================================

var (
	ibanPattern     = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{1,30}$`)
	bicPattern      = regexp.MustCompile(`^[A-Z]{6}[A-Z0-9]{2}([A-Z0-9]{3})?$`)
	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

	// Creditor identifier: country code, two check digits, a three character
	// creditor business code, then up to 28 characters of national identifier.
	creditorIDPattern = regexp.MustCompile(`^[A-Za-z]{2}[0-9]{2}[A-Za-z0-9+?/\-:().,' ]{3}[A-Za-z0-9+?/\-:().,']{1,28}$`)
)

// validIBAN checks the structural pattern and the ISO 13616 mod-97 checksum.
func validIBAN(value string) string {
	if !ibanPattern.MatchString(value) {
		return fmt.Sprintf("%q is not a structurally valid IBAN", value)
	}
	if mod97(value[4:]+value[:4]) != 1 {
		return fmt.Sprintf("%q has an invalid IBAN checksum", value)
	}
	return ""
}

// validBIC checks the ISO 9362 structure: a BIC is 8 or 11 characters.
func validBIC(value string) string {
	if !bicPattern.MatchString(value) {
		return fmt.Sprintf("%q is not a valid BIC", value)
	}
	return ""
}

// validCurrency checks for a three letter ISO 4217 code.
func validCurrency(value string) string {
	if !currencyPattern.MatchString(value) {
		return fmt.Sprintf("%q is not a valid ISO 4217 currency code", value)
	}
	return ""
}

// validCreditorIdentifier checks the structure of a SEPA creditor identifier
// and its mod-97 checksum. The checksum is computed over the identifier with
// the creditor business code (positions 5-7) removed, rearranged the same
// way as an IBAN.
func validCreditorIdentifier(value string) string {
	if !creditorIDPattern.MatchString(value) {
		return fmt.Sprintf("%q is not a structurally valid creditor identifier", value)
	}

	base := value[:4] + value[7:]
	if mod97(base[4:]+base[:4]) != 1 {
		return fmt.Sprintf("%q has an invalid creditor identifier checksum", value)
	}
	return ""
}

// mod97 computes the ISO 7064 mod 97-10 remainder of a rearranged
// identifier, with letters expanded to their numeric values (A=10 ... Z=35).
// Characters outside [0-9A-Za-z] make the input invalid and return 0.
func mod97(rearranged string) int {
	remainder := 0

	for _, r := range rearranged {
		var digits int
		switch {
		case r >= '0' && r <= '9':
			digits = int(r - '0')
		case r >= 'A' && r <= 'Z':
			digits = int(r-'A') + 10
		case r >= 'a' && r <= 'z':
			digits = int(r-'a') + 10
		default:
			return 0
		}

		if digits < 10 {
			remainder = (remainder*10 + digits) % 97
		} else {
			remainder = (remainder*100 + digits) % 97
		}
	}

	return remainder
}
