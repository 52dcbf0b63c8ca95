package service

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/carsapi/carsapi-go/internal/repository"
)

const testSecret = "test-secret"

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := repository.NewDB(repository.DriverSQLite, filepath.Join(t.TempDir(), "carsapi.db"))
	if err != nil {
		t.Fatalf("NewDB() unexpected error: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := repository.Migrate(context.Background(), db, repository.DriverSQLite); err != nil {
		t.Fatalf("Migrate() unexpected error: %v", err)
	}
	return db
}

func newTestTokenService() *TokenService {
	return NewTokenService(testSecret, time.Hour, repository.NewMemoryDenylist())
}

func newTestAuthService(t *testing.T) (*AuthService, *sql.DB) {
	t.Helper()

	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), newTestTokenService()), db
}
