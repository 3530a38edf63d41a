package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/strideapp/stride/internal/model"
)

func TestCheckInListRoundTrip(t *testing.T) {
	d := testDB(t)
	user := seedUser(t, d)
	repo := NewCheckInRepository(d)

	now := time.Now()
	ci := &model.CheckIn{
		ID:              uuid.New().String(),
		UserID:          user.ID,
		Date:            now,
		Mood:            model.MoodGood,
		Energy:          model.EnergyHigh,
		Accomplishments: model.StringList{"shipped", "ran 5k"},
		Challenges:      nil,
		Goals:           model.StringList{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := repo.Create(ci); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.ByID(user.ID, ci.ID)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if len(got.Accomplishments) != 2 || got.Accomplishments[0] != "shipped" {
		t.Errorf("accomplishments = %v", got.Accomplishments)
	}
	// nil lists come back as empty, never nil
	if got.Challenges == nil || got.Goals == nil {
		t.Errorf("lists not normalized: challenges=%v goals=%v", got.Challenges, got.Goals)
	}
}

func TestCheckInsAllowSameDate(t *testing.T) {
	d := testDB(t)
	user := seedUser(t, d)
	repo := NewCheckInRepository(d)

	date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 2; i++ {
		ci := &model.CheckIn{
			ID:        uuid.New().String(),
			UserID:    user.ID,
			Date:      date,
			Mood:      model.MoodOkay,
			Energy:    model.EnergyMedium,
			CreatedAt: date,
			UpdatedAt: date.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(ci); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}

	checkins, err := repo.CheckIns(user.ID)
	if err != nil {
		t.Fatalf("CheckIns: %v", err)
	}
	if len(checkins) != 2 {
		t.Errorf("got %d check-ins, want 2 for the same date", len(checkins))
	}
}
