// Package dbtest provides throwaway SQLite databases for tests.
package dbtest

import (
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/mytheresa/storefront/app/config"
	"github.com/mytheresa/storefront/app/database"
)

var nameReplacer = strings.NewReplacer("/", "_", " ", "_", "#", "_")

// New returns a migrated in-memory database private to t. It is closed when
// the test ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	url := "sqlite://file:" + nameReplacer.Replace(t.Name()) + "?mode=memory&cache=shared"
	db, err := database.Open(config.DatabaseConfig{URL: url, MaxOpenConns: 1})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := database.Close(db); err != nil {
			t.Errorf("close test database: %v", err)
		}
	})

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}
