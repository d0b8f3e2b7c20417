// Package validation holds the field rules, the per-source record
// validator and the input sanitizer shared by the form and batch
// ingestion paths.
package validation

import (
	"regexp"
	"strings"

	"contacts/domain"

	"github.com/asaskevich/govalidator"
)

const (
	nameMaxLen  = 20
	phoneDigits = 10
	eircodeLen  = 6
	ageMin      = 0
	ageMax      = 120
)

var nonDigitPattern = regexp.MustCompile(`\D`)

// ValidName reports whether the value is a 1-20 character alphanumeric
// name. Whitespace and punctuation are not allowed.
func ValidName(value string) bool {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) < 1 || len(trimmed) > nameMaxLen {
		return false
	}
	// govalidator treats "" as alphanumeric, the length check above
	// rules that out first.
	return govalidator.IsAlphanumeric(trimmed)
}

// ValidEmail reports whether the value is a syntactically valid email
// address.
func ValidEmail(value string) bool {
	return govalidator.IsEmail(value)
}

// NormalizePhone strips every non-digit character from the value.
func NormalizePhone(value string) string {
	return nonDigitPattern.ReplaceAllString(value, "")
}

// ValidPhone reports whether the value normalizes to exactly 10 digits.
func ValidPhone(value string) bool {
	return len(NormalizePhone(value)) == phoneDigits
}

// NormalizeEircode trims surrounding whitespace from the value.
func NormalizeEircode(value string) string {
	return strings.TrimSpace(value)
}

// ValidEircode reports whether the trimmed value is 6 alphanumeric
// characters with a numeric first character.
func ValidEircode(value string) bool {
	trimmed := NormalizeEircode(value)
	if len(trimmed) != eircodeLen {
		return false
	}
	if !govalidator.IsNumeric(trimmed[:1]) {
		return false
	}
	return govalidator.IsAlphanumeric(trimmed[1:])
}

// ValidAge reports whether the age is inside the accepted range. The
// domain.AgeNotANumber sentinel always fails.
func ValidAge(age int) bool {
	return age >= ageMin && age <= ageMax
}

// Validate runs every rule the source requires against the candidate
// and collects one violation message per failing field. Fields are
// evaluated in a fixed order (first name, last name, email, then the
// source-specific fields) so the violation list is deterministic. The
// candidate is never modified.
func Validate(c domain.Candidate, source domain.Source) domain.ValidationResult {
	var violations []string

	if !ValidName(c.FirstName) {
		violations = append(violations, "First name must be 1-20 alphanumeric characters")
	}
	if !ValidName(c.LastName) {
		violations = append(violations, "Last name must be 1-20 alphanumeric characters")
	}
	if !ValidEmail(c.Email) {
		violations = append(violations, "Invalid email format")
	}

	switch source {
	case domain.SourceForm:
		if c.PhoneNumber == nil {
			violations = append(violations, "Phone number is required")
		} else if !ValidPhone(*c.PhoneNumber) {
			violations = append(violations, "Phone number must contain exactly 10 digits")
		}
		if c.Eircode == nil {
			violations = append(violations, "Eircode is required")
		} else if !ValidEircode(*c.Eircode) {
			violations = append(violations, "Eircode must be 6 alphanumeric characters starting with a digit")
		}
	case domain.SourceBatch:
		if c.Age != nil && !ValidAge(*c.Age) {
			violations = append(violations, "Age must be a number between 0 and 120")
		}
	}

	return domain.ValidationResult{
		Valid:      len(violations) == 0,
		Violations: violations,
	}
}

// Normalize returns a copy of the candidate with the phone number
// reduced to digits and the eircode trimmed, the shape the store
// expects. It runs only after validation has passed.
func Normalize(c domain.Candidate) domain.Candidate {
	out := c
	if c.PhoneNumber != nil {
		phone := NormalizePhone(*c.PhoneNumber)
		out.PhoneNumber = &phone
	}
	if c.Eircode != nil {
		eircode := NormalizeEircode(*c.Eircode)
		out.Eircode = &eircode
	}
	if c.Age != nil {
		age := *c.Age
		out.Age = &age
	}
	return out
}
