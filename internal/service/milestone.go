package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/strideapp/stride/internal/model"
	"github.com/strideapp/stride/internal/repository"
	"github.com/strideapp/stride/internal/validation"
)

type MilestoneService struct {
	repo     repository.MilestoneRepository
	goalRepo repository.GoalRepository
}

func NewMilestoneService(repo repository.MilestoneRepository, goalRepo repository.GoalRepository) *MilestoneService {
	return &MilestoneService{repo: repo, goalRepo: goalRepo}
}

type MilestoneInput struct {
	GoalID      string     `json:"goalId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
}

type MilestonePatch struct {
	ID          string     `json:"id"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
}

func (s *MilestoneService) Create(userID string, in MilestoneInput) (*model.Milestone, error) {
	var check validation.Check
	check.Required("goalId", in.GoalID)
	check.Required("title", in.Title)
	if in.Date == nil {
		check.Required("date", "")
	}
	if err := check.Err(); err != nil {
		return nil, err
	}

	// The referenced goal must exist and belong to the caller.
	_, err := s.goalRepo.ByID(userID, in.GoalID)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			return nil, validation.NewError("goalId", "must reference an existing goal")
		}
		return nil, fmt.Errorf("failed to check goal: %w", err)
	}

	now := time.Now()
	milestone := &model.Milestone{
		ID:          uuid.New().String(),
		UserID:      userID,
		GoalID:      in.GoalID,
		Title:       in.Title,
		Description: in.Description,
		Date:        *in.Date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.repo.Create(milestone)
	if err != nil {
		return nil, fmt.Errorf("failed to create milestone: %w", err)
	}

	return milestone, nil
}

func (s *MilestoneService) ByID(userID, milestoneID string) (*model.Milestone, error) {
	return s.repo.ByID(userID, milestoneID)
}

// Milestones lists the user's milestones, optionally scoped to one goal.
func (s *MilestoneService) Milestones(userID, goalID string) ([]*model.Milestone, error) {
	if goalID != "" {
		return s.repo.ByGoal(userID, goalID)
	}
	return s.repo.Milestones(userID)
}

func (s *MilestoneService) Update(userID string, patch MilestonePatch) (*model.Milestone, error) {
	milestone, err := s.repo.ByID(userID, patch.ID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		var check validation.Check
		check.Required("title", *patch.Title)
		if err := check.Err(); err != nil {
			return nil, err
		}
		milestone.Title = *patch.Title
	}
	if patch.Description != nil {
		milestone.Description = *patch.Description
	}
	if patch.Date != nil {
		milestone.Date = *patch.Date
	}

	milestone.UpdatedAt = time.Now()

	err = s.repo.Update(milestone)
	if err != nil {
		return nil, err
	}

	return milestone, nil
}

func (s *MilestoneService) Delete(userID, milestoneID string) error {
	return s.repo.Delete(userID, milestoneID)
}
