package service

import (
	"testing"
	"time"

	"github.com/strideapp/stride/internal/model"
	"github.com/strideapp/stride/internal/repository"
)

func TestCheckInCreateValidation(t *testing.T) {
	d := testDB(t)
	user := testUser(t, d)
	svc := NewCheckInService(repository.NewCheckInRepository(d))

	_, err := svc.Create(user.ID, CheckInInput{Mood: "fine", Energy: ""})
	assertFieldError(t, err, "date", "mood", "energy")
}

func TestCheckInCreateNormalizesLists(t *testing.T) {
	d := testDB(t)
	user := testUser(t, d)
	svc := NewCheckInService(repository.NewCheckInRepository(d))

	date := time.Now()
	ci, err := svc.Create(user.ID, CheckInInput{
		Date:   &date,
		Mood:   model.MoodGreat,
		Energy: model.EnergyHigh,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if ci.Accomplishments == nil || ci.Challenges == nil || ci.Goals == nil {
		t.Error("nil list fields survived create")
	}
}

func TestCheckInUpdateMood(t *testing.T) {
	d := testDB(t)
	user := testUser(t, d)
	svc := NewCheckInService(repository.NewCheckInRepository(d))

	date := time.Now()
	ci, err := svc.Create(user.ID, CheckInInput{
		Date:            &date,
		Mood:            model.MoodBad,
		Energy:          model.EnergyLow,
		Accomplishments: model.StringList{"kept going"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	mood := model.MoodGood
	updated, err := svc.Update(user.ID, CheckInPatch{ID: ci.ID, Mood: &mood})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Mood != model.MoodGood {
		t.Errorf("mood = %q", updated.Mood)
	}
	if len(updated.Accomplishments) != 1 {
		t.Errorf("accomplishments = %v, want untouched", updated.Accomplishments)
	}

	bad := "meh"
	_, err = svc.Update(user.ID, CheckInPatch{ID: ci.ID, Mood: &bad})
	assertFieldError(t, err, "mood")
}
