package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/strideapp/stride/internal/model"
	"github.com/strideapp/stride/internal/repository"
	"github.com/strideapp/stride/internal/validation"
)

type NoteService struct {
	repo repository.NoteRepository
}

func NewNoteService(repo repository.NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

type NoteInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	IsPinned bool   `json:"isPinned"`
}

type NotePatch struct {
	ID       string  `json:"id"`
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	IsPinned *bool   `json:"isPinned"`
}

func (s *NoteService) Create(userID string, in NoteInput) (*model.Note, error) {
	var check validation.Check
	check.Required("title", in.Title)
	check.Required("content", in.Content)
	if err := check.Err(); err != nil {
		return nil, err
	}

	now := time.Now()
	note := &model.Note{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     in.Title,
		Content:   in.Content,
		Category:  in.Category,
		IsPinned:  in.IsPinned,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.repo.Create(note)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return note, nil
}

func (s *NoteService) ByID(userID, noteID string) (*model.Note, error) {
	return s.repo.ByID(userID, noteID)
}

func (s *NoteService) Notes(userID string) ([]*model.Note, error) {
	return s.repo.Notes(userID)
}

func (s *NoteService) Update(userID string, patch NotePatch) (*model.Note, error) {
	note, err := s.repo.ByID(userID, patch.ID)
	if err != nil {
		return nil, err
	}

	var check validation.Check
	if patch.Title != nil {
		check.Required("title", *patch.Title)
		note.Title = *patch.Title
	}
	if patch.Content != nil {
		check.Required("content", *patch.Content)
		note.Content = *patch.Content
	}
	if err := check.Err(); err != nil {
		return nil, err
	}

	if patch.Category != nil {
		note.Category = *patch.Category
	}
	if patch.IsPinned != nil {
		note.IsPinned = *patch.IsPinned
	}

	note.UpdatedAt = time.Now()

	err = s.repo.Update(note)
	if err != nil {
		return nil, err
	}

	return note, nil
}

func (s *NoteService) Delete(userID, noteID string) error {
	return s.repo.Delete(userID, noteID)
}
