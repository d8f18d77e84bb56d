package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jobboard-api/internal/models"
)

// Connect opens the Postgres connection and runs migrations. The returned
// handle is injected into each service; there is no package-level global.
func Connect(dsn string) (*gorm.DB, error) {
	// TranslateError turns driver-specific unique violations into
	// gorm.ErrDuplicatedKey, which the services rely on for conflict
	// reporting.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the three tables and their indexes, including
// the unique indexes on users.email and job_applications(job_id,
// applicant_email).
func Migrate(db *gorm.DB) error {
	log.Println("Running Migrations...")
	if err := db.AutoMigrate(&models.User{}, &models.Job{}, &models.JobApplication{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
