package domain

import "math"

// AgeNotANumber marks a batch age column that was present but did not
// parse as an integer. It always fails the age range rule.
const AgeNotANumber = math.MinInt32

// Candidate is a record on its way through sanitization and validation.
// It has no identity until it passes validation.
type Candidate struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Eircode     *string `json:"eircode,omitempty"`
	Age         *int    `json:"age,omitempty"`
}

// ValidationResult carries the outcome of validating one candidate.
// Violations keep the field evaluation order, so the same invalid
// candidate always produces the same list.
type ValidationResult struct {
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations,omitempty"`
}

// Contact builds the persistable entity from a validated candidate.
func (c Candidate) Contact() *Contact {
	return &Contact{
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Eircode:     c.Eircode,
		Age:         c.Age,
	}
}
