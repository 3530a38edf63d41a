package service

import (
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/strideapp/stride/internal/db"
	"github.com/strideapp/stride/internal/model"
	"github.com/strideapp/stride/internal/repository"
	"github.com/strideapp/stride/internal/validation"
	_ "modernc.org/sqlite"
)

func testDB(t *testing.T) *sqlx.DB {
	t.Helper()

	d, err := sqlx.Connect("sqlite", ":memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	d.SetMaxOpenConns(1)

	if err := db.RunMigrations(d.DB, "sqlite"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return d
}

// testUser signs up through the auth service, so every row satisfies
// the foreign keys below it.
func testUser(t *testing.T, d *sqlx.DB) *model.User {
	t.Helper()

	auth := NewAuthService(repository.NewUserRepository(d), "test-secret", time.Hour, false)
	user, err := auth.Signup("user@example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	return user
}

func ptr[T any](v T) *T { return &v }

// assertFieldError fails unless err is a validation error naming every
// one of the given fields.
func assertFieldError(t *testing.T, err error, fields ...string) {
	t.Helper()

	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *validation.Error with fields %v", err, fields)
	}
	for _, f := range fields {
		if _, ok := verr.Fields[f]; !ok {
			t.Errorf("missing field %q in %v", f, verr.Fields)
		}
	}
}
