package repository

import (
	"fmt"
	"strings"
	"testing"

	"radioreg/internal/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory database per test. The mode=memory
// DSN keeps the database alive across pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}
