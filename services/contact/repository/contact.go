package repository

import (
	"context"
	"errors"
	"fmt"

	"contacts/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const pgUniqueViolation = "23505"

type contactRepository struct {
	db *gorm.DB
	// upsertOnDuplicate selects last-write-wins upserts; when false a
	// duplicate email surfaces domain.ErrDuplicateContact instead.
	upsertOnDuplicate bool
}

func NewContactRepository(database *gorm.DB, upsertOnDuplicate bool) domain.ContactRepo {
	return &contactRepository{
		db:                database,
		upsertOnDuplicate: upsertOnDuplicate,
	}
}

// emailConflict updates every mutable column on an email collision,
// created_at keeps the value from the first insert.
var emailConflict = clause.OnConflict{
	Columns:   []clause.Column{{Name: "email"}},
	DoUpdates: clause.AssignmentColumns([]string{"first_name", "last_name", "phone_number", "eircode", "age", "updated_at"}),
}

// upsertClauses resolves email collisions last-write-wins and scans the
// stored row back into the model, so an update returns the original
// created_at instead of the timestamp gorm generated for the attempt.
func upsertClauses() []clause.Expression {
	return []clause.Expression{emailConflict, clause.Returning{}}
}

func (cr *contactRepository) Upsert(ctx context.Context, contact *domain.Contact) error {
	tx := cr.db.WithContext(ctx)
	if cr.upsertOnDuplicate {
		tx = tx.Clauses(upsertClauses()...)
	}

	if err := tx.Create(contact).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateContact
		}
		return fmt.Errorf("could not upsert contact: %w", err)
	}

	return nil
}

func (cr *contactRepository) BulkUpsert(ctx context.Context, contacts []domain.Contact) error {
	if len(contacts) == 0 {
		return nil
	}

	err := cr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if cr.upsertOnDuplicate {
			tx = tx.Clauses(upsertClauses()...)
		}
		// single multi-row insert, all rows commit or none do
		return tx.Create(&contacts).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateContact
		}
		return fmt.Errorf("could not bulk upsert contacts: %w", err)
	}

	return nil
}

func (cr *contactRepository) GetAll(ctx context.Context) (*[]domain.Contact, error) {
	var contacts []domain.Contact
	if err := cr.db.WithContext(ctx).Order("created_at DESC").Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("could not get all contacts: %w", err)
	}
	return &contacts, nil
}

func (cr *contactRepository) GetByEmail(ctx context.Context, email string) (*domain.Contact, error) {
	var contact domain.Contact
	err := cr.db.WithContext(ctx).Where("email = ?", email).First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrContactNotFound
		}
		return nil, fmt.Errorf("could not get contact: %w", err)
	}
	return &contact, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
