package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/strideapp/stride/internal/model"
	"github.com/strideapp/stride/internal/repository"
	"github.com/strideapp/stride/internal/validation"
)

type CheckInService struct {
	repo repository.CheckInRepository
}

func NewCheckInService(repo repository.CheckInRepository) *CheckInService {
	return &CheckInService{repo: repo}
}

type CheckInInput struct {
	Date            *time.Time       `json:"date"`
	Mood            string           `json:"mood"`
	Energy          string           `json:"energy"`
	Accomplishments model.StringList `json:"accomplishments"`
	Challenges      model.StringList `json:"challenges"`
	Goals           model.StringList `json:"goals"`
	Notes           string           `json:"notes"`
}

type CheckInPatch struct {
	ID              string            `json:"id"`
	Date            *time.Time        `json:"date"`
	Mood            *string           `json:"mood"`
	Energy          *string           `json:"energy"`
	Accomplishments *model.StringList `json:"accomplishments"`
	Challenges      *model.StringList `json:"challenges"`
	Goals           *model.StringList `json:"goals"`
	Notes           *string           `json:"notes"`
}

func (s *CheckInService) Create(userID string, in CheckInInput) (*model.CheckIn, error) {
	var check validation.Check
	if in.Date == nil {
		check.Required("date", "")
	}
	check.OneOf("mood", in.Mood, model.Moods)
	check.OneOf("energy", in.Energy, model.EnergyLevels)
	if err := check.Err(); err != nil {
		return nil, err
	}

	now := time.Now()
	checkIn := &model.CheckIn{
		ID:              uuid.New().String(),
		UserID:          userID,
		Date:            *in.Date,
		Mood:            in.Mood,
		Energy:          in.Energy,
		Accomplishments: in.Accomplishments,
		Challenges:      in.Challenges,
		Goals:           in.Goals,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if checkIn.Accomplishments == nil {
		checkIn.Accomplishments = model.StringList{}
	}
	if checkIn.Challenges == nil {
		checkIn.Challenges = model.StringList{}
	}
	if checkIn.Goals == nil {
		checkIn.Goals = model.StringList{}
	}

	err := s.repo.Create(checkIn)
	if err != nil {
		return nil, fmt.Errorf("failed to create check-in: %w", err)
	}

	return checkIn, nil
}

func (s *CheckInService) ByID(userID, checkInID string) (*model.CheckIn, error) {
	return s.repo.ByID(userID, checkInID)
}

func (s *CheckInService) CheckIns(userID string) ([]*model.CheckIn, error) {
	return s.repo.CheckIns(userID)
}

func (s *CheckInService) Update(userID string, patch CheckInPatch) (*model.CheckIn, error) {
	checkIn, err := s.repo.ByID(userID, patch.ID)
	if err != nil {
		return nil, err
	}

	var check validation.Check
	if patch.Mood != nil {
		check.OneOf("mood", *patch.Mood, model.Moods)
		checkIn.Mood = *patch.Mood
	}
	if patch.Energy != nil {
		check.OneOf("energy", *patch.Energy, model.EnergyLevels)
		checkIn.Energy = *patch.Energy
	}
	if err := check.Err(); err != nil {
		return nil, err
	}

	if patch.Date != nil {
		checkIn.Date = *patch.Date
	}
	if patch.Accomplishments != nil {
		checkIn.Accomplishments = *patch.Accomplishments
	}
	if patch.Challenges != nil {
		checkIn.Challenges = *patch.Challenges
	}
	if patch.Goals != nil {
		checkIn.Goals = *patch.Goals
	}
	if patch.Notes != nil {
		checkIn.Notes = *patch.Notes
	}

	checkIn.UpdatedAt = time.Now()

	err = s.repo.Update(checkIn)
	if err != nil {
		return nil, err
	}

	return checkIn, nil
}

func (s *CheckInService) Delete(userID, checkInID string) error {
	return s.repo.Delete(userID, checkInID)
}
