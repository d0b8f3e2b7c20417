package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"contacts/domain"
	"contacts/validation"
)

// ErrInvalidHeader is returned when an uploaded file does not start
// with the expected batch header row.
var ErrInvalidHeader = errors.New("invalid batch file header, expected first_name,last_name,email,age")

var batchHeader = []string{"first_name", "last_name", "email", "age"}

type contactUseCase struct {
	repo    domain.ContactRepo
	TimeOut time.Duration
}

func NewContactUseCase(repo domain.ContactRepo, to time.Duration) domain.ContactUseCase {
	return &contactUseCase{
		repo:    repo,
		TimeOut: to,
	}
}

// SubmitContact runs the single-record path: sanitize, validate with
// the form rules, then upsert by email. An invalid record is returned
// with its violations and never reaches the store.
func (cu *contactUseCase) SubmitContact(ctx context.Context, candidate domain.Candidate) (*domain.Contact, *domain.ValidationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	clean := validation.SanitizeRecord(candidate)

	result := validation.Validate(clean, domain.SourceForm)
	if !result.Valid {
		return nil, &result, nil
	}

	contact := validation.Normalize(clean).Contact()
	if err := cu.repo.Upsert(ctx, contact); err != nil {
		return nil, nil, err
	}

	return contact, &result, nil
}

// ImportCSV streams data rows from an uploaded batch file, validates
// each one independently and persists every accepted record in a
// single transaction. A bad row never stops the stream; a store
// failure discards the whole batch.
func (cu *contactUseCase) ImportCSV(ctx context.Context, file io.Reader) (*domain.BatchSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, ErrInvalidHeader
	}
	if !matchesBatchHeader(header) {
		return nil, ErrInvalidHeader
	}

	summary := domain.BatchSummary{Errors: []domain.RowError{}}
	var accepted []domain.Contact

	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				summary.TotalRows++
				summary.Errors = append(summary.Errors, domain.RowError{
					Row:   row,
					Error: fmt.Sprintf("could not parse row: %v", parseErr.Err),
				})
				continue
			}
			return nil, fmt.Errorf("could not read batch file: %w", err)
		}

		summary.TotalRows++

		candidate := rowToCandidate(record)

		clean := validation.SanitizeRecord(candidate)

		result := validation.Validate(clean, domain.SourceBatch)
		if !result.Valid {
			summary.Errors = append(summary.Errors, domain.RowError{
				Row:    row,
				Data:   &candidate,
				Errors: result.Violations,
			})
			continue
		}

		accepted = append(accepted, *validation.Normalize(clean).Contact())
	}

	if len(accepted) > 0 {
		if err := cu.repo.BulkUpsert(ctx, dedupeByEmail(accepted)); err != nil {
			return nil, err
		}
	}

	summary.ValidRecords = len(accepted)
	summary.InvalidRecords = len(summary.Errors)

	return &summary, nil
}

func (cu *contactUseCase) GetAllContacts(ctx context.Context) (*[]domain.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	return cu.repo.GetAll(ctx)
}

func (cu *contactUseCase) GetContactByEmail(ctx context.Context, email string) (*domain.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	return cu.repo.GetByEmail(ctx, email)
}

func matchesBatchHeader(header []string) bool {
	if len(header) != len(batchHeader) {
		return false
	}
	for i, column := range header {
		if strings.ToLower(strings.TrimSpace(column)) != batchHeader[i] {
			return false
		}
	}
	return true
}

// dedupeByEmail collapses accepted rows sharing an email down to the
// last one, matching the store's last-write-wins upsert. Postgres
// rejects a single ON CONFLICT DO UPDATE statement that touches the
// same key twice, so the batch must not carry duplicates.
func dedupeByEmail(contacts []domain.Contact) []domain.Contact {
	index := make(map[string]int, len(contacts))
	deduped := make([]domain.Contact, 0, len(contacts))
	for _, contact := range contacts {
		if i, ok := index[contact.Email]; ok {
			deduped[i] = contact
			continue
		}
		index[contact.Email] = len(deduped)
		deduped = append(deduped, contact)
	}
	return deduped
}

// rowToCandidate builds the candidate for one data row. The age column
// is optional; a non-empty value that is not an integer gets the
// not-a-number sentinel so the age rule rejects it later.
func rowToCandidate(record []string) domain.Candidate {
	candidate := domain.Candidate{
		FirstName: record[0],
		LastName:  record[1],
		Email:     record[2],
	}

	rawAge := strings.TrimSpace(record[3])
	if rawAge != "" {
		age, err := strconv.Atoi(rawAge)
		if err != nil {
			age = domain.AgeNotANumber
		}
		candidate.Age = &age
	}

	return candidate
}
