package validation

import (
	"regexp"
	"strings"

	"contacts/domain"
)

// tagPattern matches a '<' through the next '>', i.e. anything shaped
// like an HTML tag.
var tagPattern = regexp.MustCompile(`<[^>]*>`)

var unsafeChars = strings.NewReplacer("<", "", ">", "", `"`, "", "'", "", "&", "")

// SanitizeField strips tag-shaped substrings, then any leftover unsafe
// characters, then surrounding whitespace. Applying it twice gives the
// same result as applying it once.
func SanitizeField(value string) string {
	clean := tagPattern.ReplaceAllString(value, "")
	clean = unsafeChars.Replace(clean)
	return strings.TrimSpace(clean)
}

// SanitizeRecord applies SanitizeField to every string field of the
// candidate and returns the cleaned copy. Non-string fields (age) pass
// through untouched and the input is never modified.
func SanitizeRecord(c domain.Candidate) domain.Candidate {
	out := c
	out.FirstName = SanitizeField(c.FirstName)
	out.LastName = SanitizeField(c.LastName)
	out.Email = SanitizeField(c.Email)
	if c.PhoneNumber != nil {
		phone := SanitizeField(*c.PhoneNumber)
		out.PhoneNumber = &phone
	}
	if c.Eircode != nil {
		eircode := SanitizeField(*c.Eircode)
		out.Eircode = &eircode
	}
	if c.Age != nil {
		age := *c.Age
		out.Age = &age
	}
	return out
}
