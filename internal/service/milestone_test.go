package service

import (
	"testing"
	"time"

	"github.com/strideapp/stride/internal/model"
	"github.com/strideapp/stride/internal/repository"
)

func TestMilestoneCreateRequiresExistingGoal(t *testing.T) {
	d := testDB(t)
	user := testUser(t, d)
	goalRepo := repository.NewGoalRepository(d)
	svc := NewMilestoneService(repository.NewMilestoneRepository(d), goalRepo)

	date := time.Now()
	_, err := svc.Create(user.ID, MilestoneInput{GoalID: "ghost", Title: "m", Date: &date})
	assertFieldError(t, err, "goalId")
}

func TestMilestoneCreateAndListByGoal(t *testing.T) {
	d := testDB(t)
	user := testUser(t, d)
	goalRepo := repository.NewGoalRepository(d)
	goalSvc := NewGoalService(goalRepo)
	svc := NewMilestoneService(repository.NewMilestoneRepository(d), goalRepo)

	goal, err := goalSvc.Create(user.ID, GoalInput{Title: "g", Category: model.GoalCategoryHealth})
	if err != nil {
		t.Fatalf("create goal: %v", err)
	}

	date := time.Now()
	if _, err := svc.Create(user.ID, MilestoneInput{GoalID: goal.ID, Title: "first", Date: &date}); err != nil {
		t.Fatalf("create milestone: %v", err)
	}

	ms, err := svc.Milestones(user.ID, goal.ID)
	if err != nil {
		t.Fatalf("Milestones: %v", err)
	}
	if len(ms) != 1 || ms[0].Title != "first" {
		t.Errorf("got %v", ms)
	}

	// Empty goal filter lists everything.
	all, err := svc.Milestones(user.ID, "")
	if err != nil {
		t.Fatalf("Milestones(all): %v", err)
	}
	if len(all) != 1 {
		t.Errorf("got %d milestones", len(all))
	}
}
