package config

import (
	"fmt"
	"os"

	"contacts/domain"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GetDatabaseURL builds the database connection string.
func GetDatabaseURL() string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_DATABASE"))
	return dsn
}

// BootDB opens the database connection and runs migrations. The handle
// is handed to the repositories explicitly, nothing connects at import
// time.
func BootDB() (*gorm.DB, error) {
	url := GetDatabaseURL()

	db, err := gorm.Open(postgres.Open(url), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := autoMigrate(db); err != nil {
		return db, err
	}

	return db, nil
}

// CloseDB releases the underlying connection pool.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.Close()
}

func autoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Contact{}); err != nil {
		return fmt.Errorf("failed to migrate contacts table: %w", err)
	}
	return nil
}
