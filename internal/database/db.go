package database

import (
	"github.com/cockroachdb/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jobhub/jobhub-api/internal/models"
)

// Connect opens the postgres connection and runs migrations. The returned
// handle is shared process-wide and lives for the life of the process;
// callers pass it down to the services rather than reaching for a global.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		// Map driver duplicate-key failures to gorm.ErrDuplicatedKey so the
		// apply flow can turn them into a conflict response.
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	// Migration: creates the tables (and the unique application index)
	// in Postgres automatically.
	if err := db.AutoMigrate(&models.Job{}, &models.Application{}, &models.Customer{}); err != nil {
		return nil, errors.Wrap(err, "failed to run migrations")
	}

	return db, nil
}
