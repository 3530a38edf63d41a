package mirror

import (
	"context"
	"slices"
	"strings"

	"github.com/strideapp/stride/client"
)

// Priorities are validated client-side too, so obviously bad input
// never costs a round-trip.
var todoPriorities = []string{"low", "medium", "high"}

func sanitizeTodoInput(in *client.TodoInput) {
	in.Title = escape(in.Title)
	in.Description = escape(in.Description)
	in.Category = escape(in.Category)
}

func sanitizeTodoPatch(patch *client.TodoPatch) {
	if patch.Title != nil {
		escaped := escape(*patch.Title)
		patch.Title = &escaped
	}
	if patch.Description != nil {
		escaped := escape(*patch.Description)
		patch.Description = &escaped
	}
	if patch.Category != nil {
		escaped := escape(*patch.Category)
		patch.Category = &escaped
	}
}

func unescapeTodo(t *client.Todo) {
	t.Title = unescape(t.Title)
	t.Description = unescape(t.Description)
	t.Category = unescape(t.Category)
}

func todoID(t *client.Todo) string { return t.ID }

func (m *Mirror) Todos(ctx context.Context, s *client.Session, completed *bool) ([]client.Todo, error) {
	return listKind(m, s, KindTodos,
		func() ([]client.Todo, error) { return m.remote.ListTodos(ctx, s, completed) },
		unescapeTodo)
}

func (m *Mirror) Todo(ctx context.Context, s *client.Session, id string) (*client.Todo, error) {
	return getKind(m, s, KindTodos, id,
		func() ([]client.Todo, error) { return m.Todos(ctx, s, nil) },
		todoID, unescapeTodo)
}

func (m *Mirror) CreateTodo(ctx context.Context, s *client.Session, in client.TodoInput) (*client.Todo, error) {
	sanitizeTodoInput(&in)

	fields := map[string]string{}
	if strings.TrimSpace(in.Title) == "" {
		fields["title"] = "is required"
	}
	if !slices.Contains(todoPriorities, in.Priority) {
		fields["priority"] = "must be one of: low, medium, high"
	}
	if len(fields) > 0 {
		return nil, &client.ValidationError{Fields: fields}
	}

	return createKind(m, s, KindTodos, "create todo",
		func() (*client.Todo, error) { return m.remote.CreateTodo(ctx, s, in) },
		unescapeTodo)
}

func (m *Mirror) UpdateTodo(ctx context.Context, s *client.Session, patch client.TodoPatch) (*client.Todo, error) {
	sanitizeTodoPatch(&patch)

	if patch.Priority != nil && !slices.Contains(todoPriorities, *patch.Priority) {
		return nil, &client.ValidationError{Fields: map[string]string{
			"priority": "must be one of: low, medium, high",
		}}
	}

	return updateKind(m, s, KindTodos, "update todo", patch.ID,
		func() (*client.Todo, error) { return m.remote.UpdateTodo(ctx, s, patch) },
		todoID, unescapeTodo)
}

func (m *Mirror) DeleteTodo(ctx context.Context, s *client.Session, id string) error {
	return deleteKind[client.Todo](m, s, KindTodos, "delete todo", id,
		func() error { return m.remote.DeleteTodo(ctx, s, id) },
		todoID)
}

// ToggleTodo reads the todo through the mirror, then updates with the
// completion flag inverted.
func (m *Mirror) ToggleTodo(ctx context.Context, s *client.Session, id string) (*client.Todo, error) {
	todo, err := m.Todo(ctx, s, id)
	if err != nil {
		return nil, &client.ValidationError{Fields: map[string]string{"id": "todo not found"}}
	}

	completed := !todo.Completed
	return m.UpdateTodo(ctx, s, client.TodoPatch{ID: id, Completed: &completed})
}
