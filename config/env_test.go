package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetUploadDirDefault(t *testing.T) {
	t.Setenv("UPLOAD_DIR", "")
	assert.Equal(t, "./uploads", GetUploadDir())

	t.Setenv("UPLOAD_DIR", "/tmp/batch")
	assert.Equal(t, "/tmp/batch", GetUploadDir())
}

func TestGetUseCaseTimeout(t *testing.T) {
	t.Setenv("USECASE_TIMEOUT_SECONDS", "")
	assert.Equal(t, 30*time.Second, GetUseCaseTimeout())

	t.Setenv("USECASE_TIMEOUT_SECONDS", "5")
	assert.Equal(t, 5*time.Second, GetUseCaseTimeout())

	t.Setenv("USECASE_TIMEOUT_SECONDS", "bogus")
	assert.Equal(t, 30*time.Second, GetUseCaseTimeout())
}

func TestGetUpsertOnDuplicate(t *testing.T) {
	t.Setenv("UPSERT_ON_DUPLICATE", "")
	assert.True(t, GetUpsertOnDuplicate())

	t.Setenv("UPSERT_ON_DUPLICATE", "false")
	assert.False(t, GetUpsertOnDuplicate())

	t.Setenv("UPSERT_ON_DUPLICATE", "true")
	assert.True(t, GetUpsertOnDuplicate())
}

func TestGetDatabaseURL(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "contacts")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_DATABASE", "contacts")

	assert.Equal(t,
		"host=localhost port=5432 user=contacts password=secret dbname=contacts sslmode=disable",
		GetDatabaseURL())
}
