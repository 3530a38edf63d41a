package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/strideapp/stride/internal/db"
	"github.com/strideapp/stride/internal/model"
	_ "modernc.org/sqlite"
)

// testDB opens an in-memory database with the full migration set
// applied. One connection only, so every query sees the same memory.
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

func seedUser(t *testing.T, d *sqlx.DB) *model.User {
	t.Helper()

	user := &model.User{
		ID:           uuid.New().String(),
		Email:        uuid.New().String() + "@example.com",
		PasswordHash: "x",
		CreatedAt:    time.Now(),
	}
	if err := NewUserRepository(d).Create(user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedGoal(t *testing.T, d *sqlx.DB, userID, title string, updatedAt time.Time) *model.Goal {
	t.Helper()

	goal := &model.Goal{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Category:  model.GoalCategoryHealth,
		Status:    model.GoalStatusNotStarted,
		CreatedAt: updatedAt,
		UpdatedAt: updatedAt,
	}
	if err := NewGoalRepository(d).Create(goal); err != nil {
		t.Fatalf("seed goal: %v", err)
	}
	return goal
}
