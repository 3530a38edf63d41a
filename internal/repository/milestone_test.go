package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/strideapp/stride/internal/model"
)

func seedMilestone(t *testing.T, d *sqlx.DB, userID, goalID, title string, date time.Time) *model.Milestone {
	t.Helper()

	m := &model.Milestone{
		ID:        uuid.New().String(),
		UserID:    userID,
		GoalID:    goalID,
		Title:     title,
		Date:      date,
		CreatedAt: date,
		UpdatedAt: date,
	}
	if err := NewMilestoneRepository(d).Create(m); err != nil {
		t.Fatalf("seed milestone: %v", err)
	}
	return m
}

func TestMilestonesByGoal(t *testing.T) {
	d := testDB(t)
	user := seedUser(t, d)
	repo := NewMilestoneRepository(d)

	now := time.Now()
	goalA := seedGoal(t, d, user.ID, "a", now)
	goalB := seedGoal(t, d, user.ID, "b", now)

	seedMilestone(t, d, user.ID, goalA.ID, "second", now.Add(time.Hour))
	seedMilestone(t, d, user.ID, goalA.ID, "first", now)
	seedMilestone(t, d, user.ID, goalB.ID, "elsewhere", now)

	ms, err := repo.ByGoal(user.ID, goalA.ID)
	if err != nil {
		t.Fatalf("ByGoal: %v", err)
	}
	if len(ms) != 2 {
		t.Fatalf("got %d milestones", len(ms))
	}
	// Date ascending.
	if ms[0].Title != "first" || ms[1].Title != "second" {
		t.Errorf("order = %q, %q", ms[0].Title, ms[1].Title)
	}

	all, err := repo.Milestones(user.ID)
	if err != nil {
		t.Fatalf("Milestones: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d milestones total", len(all))
	}
}

func TestMilestoneCascadeOnGoalDelete(t *testing.T) {
	d := testDB(t)
	user := seedUser(t, d)
	repo := NewMilestoneRepository(d)

	now := time.Now()
	goal := seedGoal(t, d, user.ID, "g", now)
	m := seedMilestone(t, d, user.ID, goal.ID, "m", now)

	if err := NewGoalRepository(d).Delete(user.ID, goal.ID); err != nil {
		t.Fatalf("delete goal: %v", err)
	}
	if _, err := repo.ByID(user.ID, m.ID); !errors.Is(err, ErrMilestoneNotFound) {
		t.Errorf("err = %v, want ErrMilestoneNotFound", err)
	}
}
