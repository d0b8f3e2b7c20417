package validation

import (
	"testing"

	"contacts/domain"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestValidName(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"simple name", "Aoife", true},
		{"name with digits", "Aoife2", true},
		{"single character", "A", true},
		{"twenty characters", "Abcdefghijklmnopqrst", true},
		{"twenty one characters", "Abcdefghijklmnopqrstu", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"contains space", "Mary Kate", false},
		{"contains hyphen", "O-Brien", false},
		{"contains apostrophe", "O'Brien", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidName(tt.value))
		})
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("sean@example.com"))
	assert.True(t, ValidEmail("sean.murphy+tag@sub.example.ie"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("missing@tld@double.com"))
	assert.False(t, ValidEmail(""))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("5551234567"))
	assert.True(t, ValidPhone("555-123-4567"))
	assert.True(t, ValidPhone("(555) 123 4567"))
	assert.False(t, ValidPhone("12345"))
	assert.False(t, ValidPhone("555123456789"))
	assert.False(t, ValidPhone(""))
}

func TestNormalizePhoneEquivalence(t *testing.T) {
	assert.Equal(t, NormalizePhone("555-123-4567"), NormalizePhone("5551234567"))
}

func TestValidEircode(t *testing.T) {
	assert.True(t, ValidEircode("1A2B3C"))
	assert.True(t, ValidEircode("  1A2B3C  "))
	assert.False(t, ValidEircode("A12345"))
	assert.False(t, ValidEircode("1A2B3"))
	assert.False(t, ValidEircode("1A2B3C4"))
	assert.False(t, ValidEircode("1A2B3!"))
	assert.False(t, ValidEircode(""))
}

func TestValidAge(t *testing.T) {
	assert.True(t, ValidAge(0))
	assert.True(t, ValidAge(120))
	assert.False(t, ValidAge(-1))
	assert.False(t, ValidAge(121))
	assert.False(t, ValidAge(domain.AgeNotANumber))
}

func TestValidateFormSource(t *testing.T) {
	valid := domain.Candidate{
		FirstName:   "Sean",
		LastName:    "Murphy",
		Email:       "sean@example.com",
		PhoneNumber: strPtr("555-123-4567"),
		Eircode:     strPtr("1A2B3C"),
	}

	result := Validate(valid, domain.SourceForm)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Violations)

	missing := domain.Candidate{
		FirstName: "Sean",
		LastName:  "Murphy",
		Email:     "sean@example.com",
	}

	result = Validate(missing, domain.SourceForm)
	assert.False(t, result.Valid)
	assert.Equal(t, []string{
		"Phone number is required",
		"Eircode is required",
	}, result.Violations)
}

func TestValidateBatchSourceSkipsPhoneAndEircode(t *testing.T) {
	candidate := domain.Candidate{
		FirstName: "Sean",
		LastName:  "Murphy",
		Email:     "sean@example.com",
	}

	result := Validate(candidate, domain.SourceBatch)
	assert.True(t, result.Valid)
}

func TestValidateBatchSourceAge(t *testing.T) {
	candidate := domain.Candidate{
		FirstName: "Sean",
		LastName:  "Murphy",
		Email:     "sean@example.com",
		Age:       intPtr(200),
	}

	result := Validate(candidate, domain.SourceBatch)
	assert.False(t, result.Valid)
	assert.Equal(t, []string{"Age must be a number between 0 and 120"}, result.Violations)
}

func TestValidateViolationOrderIsDeterministic(t *testing.T) {
	candidate := domain.Candidate{
		FirstName:   "Mary Kate",
		LastName:    "",
		Email:       "bad-email",
		PhoneNumber: strPtr("123"),
		Eircode:     strPtr("XXXXXX"),
	}

	first := Validate(candidate, domain.SourceForm)
	second := Validate(candidate, domain.SourceForm)

	assert.Equal(t, first.Violations, second.Violations)
	assert.Equal(t, []string{
		"First name must be 1-20 alphanumeric characters",
		"Last name must be 1-20 alphanumeric characters",
		"Invalid email format",
		"Phone number must contain exactly 10 digits",
		"Eircode must be 6 alphanumeric characters starting with a digit",
	}, first.Violations)
}

func TestValidateDoesNotMutateCandidate(t *testing.T) {
	phone := "555-123-4567"
	candidate := domain.Candidate{
		FirstName:   "Sean",
		LastName:    "Murphy",
		Email:       "sean@example.com",
		PhoneNumber: &phone,
		Eircode:     strPtr(" 1A2B3C "),
	}

	Validate(candidate, domain.SourceForm)

	assert.Equal(t, "555-123-4567", *candidate.PhoneNumber)
	assert.Equal(t, " 1A2B3C ", *candidate.Eircode)
}

func TestNormalize(t *testing.T) {
	candidate := domain.Candidate{
		FirstName:   "Sean",
		LastName:    "Murphy",
		Email:       "sean@example.com",
		PhoneNumber: strPtr("555-123-4567"),
		Eircode:     strPtr(" 1A2B3C "),
	}

	normalized := Normalize(candidate)

	assert.Equal(t, "5551234567", *normalized.PhoneNumber)
	assert.Equal(t, "1A2B3C", *normalized.Eircode)

	// original untouched
	assert.Equal(t, "555-123-4567", *candidate.PhoneNumber)
	assert.Equal(t, " 1A2B3C ", *candidate.Eircode)
}
