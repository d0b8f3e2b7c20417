package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/clause"
)

func TestEmailConflictTargetsEmailKey(t *testing.T) {
	assert.Equal(t, []clause.Column{{Name: "email"}}, emailConflict.Columns)
}

func TestEmailConflictPreservesCreatedAt(t *testing.T) {
	var updated []string
	for _, assignment := range emailConflict.DoUpdates {
		updated = append(updated, assignment.Column.Name)
	}

	assert.NotContains(t, updated, "created_at")
	assert.NotContains(t, updated, "email")
	assert.ElementsMatch(t,
		[]string{"first_name", "last_name", "phone_number", "eircode", "age", "updated_at"},
		updated)
}

func TestUpsertClausesScanStoredRowBack(t *testing.T) {
	// RETURNING * makes the conflict-update path hand back the stored
	// row, keeping the original created_at on the returned contact.
	clauses := upsertClauses()

	assert.Len(t, clauses, 2)
	assert.Equal(t, emailConflict, clauses[0])
	assert.Equal(t, clause.Returning{}, clauses[1])
}
