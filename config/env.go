package config

import (
	"os"
	"strconv"
	"time"
)

func GetUploadDir() string {
	env := os.Getenv("UPLOAD_DIR")
	if env != "" {
		return env
	}
	return "./uploads"
}

func GetUseCaseTimeout() time.Duration {
	env := os.Getenv("USECASE_TIMEOUT_SECONDS")
	if env != "" {
		if v, err := strconv.Atoi(env); err == nil && v > 0 {
			return time.Duration(v) * time.Second
		}
	}
	return 30 * time.Second
}

// GetUpsertOnDuplicate selects the store's duplicate-email behaviour:
// true means last-write-wins upserts, false rejects duplicates with a
// conflict.
func GetUpsertOnDuplicate() bool {
	env := os.Getenv("UPSERT_ON_DUPLICATE")
	if env != "" {
		if v, err := strconv.ParseBool(env); err == nil {
			return v
		}
	}
	return true
}
