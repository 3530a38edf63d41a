package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/strideapp/stride/internal/model"
	"github.com/strideapp/stride/internal/repository"
	"github.com/strideapp/stride/internal/validation"
)

type GoalService struct {
	repo repository.GoalRepository
}

func NewGoalService(repo repository.GoalRepository) *GoalService {
	return &GoalService{repo: repo}
}

// GoalInput carries the caller-supplied fields for a new goal.
type GoalInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	TimeFrame   string     `json:"timeFrame"`
	Status      string     `json:"status"`
	Progress    int        `json:"progress"`
	DueDate     *time.Time `json:"dueDate"`
}

// GoalPatch carries a partial update; nil fields stay unchanged.
type GoalPatch struct {
	ID          string     `json:"id"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	TimeFrame   *string    `json:"timeFrame"`
	Status      *string    `json:"status"`
	Progress    *int       `json:"progress"`
	DueDate     *time.Time `json:"dueDate"`
}

func (s *GoalService) Create(userID string, in GoalInput) (*model.Goal, error) {
	var check validation.Check
	check.Required("title", in.Title)
	check.OneOf("category", in.Category, model.GoalCategories)
	check.OneOfOptional("status", in.Status, model.GoalStatuses)
	if err := check.Err(); err != nil {
		return nil, err
	}

	if in.Status == "" {
		in.Status = model.GoalStatusNotStarted
	}

	now := time.Now()
	goal := &model.Goal{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		TimeFrame:   in.TimeFrame,
		Status:      in.Status,
		Progress:    in.Progress,
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

func (s *GoalService) ByID(userID, goalID string) (*model.Goal, error) {
	return s.repo.ByID(userID, goalID)
}

func (s *GoalService) Goals(userID string) ([]*model.Goal, error) {
	return s.repo.Goals(userID)
}

func (s *GoalService) Update(userID string, patch GoalPatch) (*model.Goal, error) {
	goal, err := s.repo.ByID(userID, patch.ID)
	if err != nil {
		return nil, err
	}

	var check validation.Check
	if patch.Title != nil {
		check.Required("title", *patch.Title)
		goal.Title = *patch.Title
	}
	if patch.Category != nil {
		check.OneOf("category", *patch.Category, model.GoalCategories)
		goal.Category = *patch.Category
	}
	if patch.Status != nil {
		check.OneOf("status", *patch.Status, model.GoalStatuses)
		goal.Status = *patch.Status
	}
	if err := check.Err(); err != nil {
		return nil, err
	}

	if patch.Description != nil {
		goal.Description = *patch.Description
	}
	if patch.TimeFrame != nil {
		goal.TimeFrame = *patch.TimeFrame
	}
	if patch.Progress != nil {
		goal.Progress = *patch.Progress
	}
	if patch.DueDate != nil {
		goal.DueDate = patch.DueDate
	}

	goal.UpdatedAt = time.Now()

	err = s.repo.Update(goal)
	if err != nil {
		return nil, err
	}

	return goal, nil
}

// Delete removes a goal; its milestones go with it via the FK cascade.
func (s *GoalService) Delete(userID, goalID string) error {
	return s.repo.Delete(userID, goalID)
}
