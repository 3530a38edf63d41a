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

type TodoService struct {
	repo repository.TodoRepository
}

func NewTodoService(repo repository.TodoRepository) *TodoService {
	return &TodoService{repo: repo}
}

type TodoInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	Category    string     `json:"category"`
	Completed   bool       `json:"completed"`
}

type TodoPatch struct {
	ID          string     `json:"id"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	Category    *string    `json:"category"`
	Completed   *bool      `json:"completed"`
}

func (s *TodoService) Create(userID string, in TodoInput) (*model.Todo, error) {
	var check validation.Check
	check.Required("title", in.Title)
	check.OneOf("priority", in.Priority, model.TodoPriorities)
	if err := check.Err(); err != nil {
		return nil, err
	}

	now := time.Now()
	todo := &model.Todo{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
		Category:    in.Category,
		Completed:   in.Completed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.repo.Create(todo)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	return todo, nil
}

func (s *TodoService) ByID(userID, todoID string) (*model.Todo, error) {
	return s.repo.ByID(userID, todoID)
}

func (s *TodoService) Todos(userID string, completed *bool) ([]*model.Todo, error) {
	return s.repo.Todos(userID, completed)
}

func (s *TodoService) Update(userID string, patch TodoPatch) (*model.Todo, error) {
	todo, err := s.repo.ByID(userID, patch.ID)
	if err != nil {
		return nil, err
	}

	var check validation.Check
	if patch.Title != nil {
		check.Required("title", *patch.Title)
		todo.Title = *patch.Title
	}
	if patch.Priority != nil {
		check.OneOf("priority", *patch.Priority, model.TodoPriorities)
		todo.Priority = *patch.Priority
	}
	if err := check.Err(); err != nil {
		return nil, err
	}

	if patch.Description != nil {
		todo.Description = *patch.Description
	}
	if patch.DueDate != nil {
		todo.DueDate = patch.DueDate
	}
	if patch.Category != nil {
		todo.Category = *patch.Category
	}
	if patch.Completed != nil {
		todo.Completed = *patch.Completed
	}

	todo.UpdatedAt = time.Now()

	err = s.repo.Update(todo)
	if err != nil {
		return nil, err
	}

	return todo, nil
}

// ToggleComplete flips a todo's completed flag.
func (s *TodoService) ToggleComplete(userID, todoID string) (*model.Todo, error) {
	todo, err := s.repo.ByID(userID, todoID)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return nil, validation.NewError("id", "todo not found")
		}
		return nil, err
	}

	completed := !todo.Completed
	return s.Update(userID, TodoPatch{ID: todoID, Completed: &completed})
}

func (s *TodoService) Delete(userID, todoID string) error {
	return s.repo.Delete(userID, todoID)
}
