package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jobhub/jobhub-api/internal/models"
)

// testDB opens a per-test in-memory sqlite database with the same schema and
// error translation the postgres connection uses. The cache=shared DSN keeps
// every pooled connection on the same in-memory store.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Job{}, &models.Application{}, &models.Customer{}))
	return db
}
