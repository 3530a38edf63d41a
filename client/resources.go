package client

import (
	"context"
	"net/http"
	"net/url"
)

// The five resource endpoints share one shape; these generic helpers
// keep the per-kind methods to a line each.

func listResource[T any](c *Client, ctx context.Context, s *Session, path string, query url.Values) ([]T, error) {
	var out []T
	err := c.do(ctx, s, http.MethodGet, path, query, nil, &out)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func createResource[T, In any](c *Client, ctx context.Context, s *Session, path string, in In) (*T, error) {
	out := new(T)
	err := c.do(ctx, s, http.MethodPost, path, nil, in, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func updateResource[T, P any](c *Client, ctx context.Context, s *Session, path string, patch P) (*T, error) {
	out := new(T)
	err := c.do(ctx, s, http.MethodPut, path, nil, patch, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func deleteResource(c *Client, ctx context.Context, s *Session, path, id string) error {
	query := url.Values{"id": []string{id}}
	return c.do(ctx, s, http.MethodDelete, path, query, nil, nil)
}

// Goals

func (c *Client) ListGoals(ctx context.Context, s *Session) ([]Goal, error) {
	return listResource[Goal](c, ctx, s, "/api/goals", nil)
}

func (c *Client) CreateGoal(ctx context.Context, s *Session, in GoalInput) (*Goal, error) {
	return createResource[Goal](c, ctx, s, "/api/goals", in)
}

func (c *Client) UpdateGoal(ctx context.Context, s *Session, patch GoalPatch) (*Goal, error) {
	return updateResource[Goal](c, ctx, s, "/api/goals", patch)
}

func (c *Client) DeleteGoal(ctx context.Context, s *Session, id string) error {
	return deleteResource(c, ctx, s, "/api/goals", id)
}

// Milestones

func (c *Client) ListMilestones(ctx context.Context, s *Session, goalID string) ([]Milestone, error) {
	var query url.Values
	if goalID != "" {
		query = url.Values{"goalId": []string{goalID}}
	}
	return listResource[Milestone](c, ctx, s, "/api/milestones", query)
}

func (c *Client) CreateMilestone(ctx context.Context, s *Session, in MilestoneInput) (*Milestone, error) {
	return createResource[Milestone](c, ctx, s, "/api/milestones", in)
}

func (c *Client) UpdateMilestone(ctx context.Context, s *Session, patch MilestonePatch) (*Milestone, error) {
	return updateResource[Milestone](c, ctx, s, "/api/milestones", patch)
}

func (c *Client) DeleteMilestone(ctx context.Context, s *Session, id string) error {
	return deleteResource(c, ctx, s, "/api/milestones", id)
}

// Notes

func (c *Client) ListNotes(ctx context.Context, s *Session) ([]Note, error) {
	return listResource[Note](c, ctx, s, "/api/notes", nil)
}

func (c *Client) CreateNote(ctx context.Context, s *Session, in NoteInput) (*Note, error) {
	return createResource[Note](c, ctx, s, "/api/notes", in)
}

func (c *Client) UpdateNote(ctx context.Context, s *Session, patch NotePatch) (*Note, error) {
	return updateResource[Note](c, ctx, s, "/api/notes", patch)
}

func (c *Client) DeleteNote(ctx context.Context, s *Session, id string) error {
	return deleteResource(c, ctx, s, "/api/notes", id)
}

// Todos

func (c *Client) ListTodos(ctx context.Context, s *Session, completed *bool) ([]Todo, error) {
	var query url.Values
	if completed != nil {
		value := "false"
		if *completed {
			value = "true"
		}
		query = url.Values{"completed": []string{value}}
	}
	return listResource[Todo](c, ctx, s, "/api/todos", query)
}

func (c *Client) CreateTodo(ctx context.Context, s *Session, in TodoInput) (*Todo, error) {
	return createResource[Todo](c, ctx, s, "/api/todos", in)
}

func (c *Client) UpdateTodo(ctx context.Context, s *Session, patch TodoPatch) (*Todo, error) {
	return updateResource[Todo](c, ctx, s, "/api/todos", patch)
}

func (c *Client) DeleteTodo(ctx context.Context, s *Session, id string) error {
	return deleteResource(c, ctx, s, "/api/todos", id)
}

// Check-ins

func (c *Client) ListCheckIns(ctx context.Context, s *Session) ([]CheckIn, error) {
	return listResource[CheckIn](c, ctx, s, "/api/checkins", nil)
}

func (c *Client) CreateCheckIn(ctx context.Context, s *Session, in CheckInInput) (*CheckIn, error) {
	return createResource[CheckIn](c, ctx, s, "/api/checkins", in)
}

func (c *Client) UpdateCheckIn(ctx context.Context, s *Session, patch CheckInPatch) (*CheckIn, error) {
	return updateResource[CheckIn](c, ctx, s, "/api/checkins", patch)
}

func (c *Client) DeleteCheckIn(ctx context.Context, s *Session, id string) error {
	return deleteResource(c, ctx, s, "/api/checkins", id)
}
