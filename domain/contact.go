package domain

import (
	"context"
	"errors"
	"io"
	"time"
)

// Source tells which ingestion path produced a record. The two paths
// require different field sets.
type Source string

const (
	SourceForm  Source = "form"
	SourceBatch Source = "batch"
)

var (
	ErrDuplicateContact = errors.New("contact with this email already exists")
	ErrContactNotFound  = errors.New("contact not found")
)

type Contact struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName   string    `gorm:"type:varchar(20);not null" json:"first_name"`
	LastName    string    `gorm:"type:varchar(20);not null" json:"last_name"`
	Email       string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PhoneNumber *string   `gorm:"type:varchar(10)" json:"phone_number,omitempty"`
	Eircode     *string   `gorm:"type:varchar(6)" json:"eircode,omitempty"`
	Age         *int      `json:"age,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type ContactRepo interface {
	Upsert(ctx context.Context, contact *Contact) error
	BulkUpsert(ctx context.Context, contacts []Contact) error
	GetAll(ctx context.Context) (*[]Contact, error)
	GetByEmail(ctx context.Context, email string) (*Contact, error)
}

type ContactUseCase interface {
	SubmitContact(ctx context.Context, candidate Candidate) (*Contact, *ValidationResult, error)
	ImportCSV(ctx context.Context, file io.Reader) (*BatchSummary, error)
	GetAllContacts(ctx context.Context) (*[]Contact, error)
	GetContactByEmail(ctx context.Context, email string) (*Contact, error)
}
