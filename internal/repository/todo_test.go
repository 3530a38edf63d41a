package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/strideapp/stride/internal/model"
)

func seedTodo(t *testing.T, d *sqlx.DB, userID, title string, completed bool) *model.Todo {
	t.Helper()

	now := time.Now()
	todo := &model.Todo{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Priority:  model.TodoPriorityMedium,
		Completed: completed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := NewTodoRepository(d).Create(todo); err != nil {
		t.Fatalf("seed todo: %v", err)
	}
	return todo
}

func TestTodosCompletedFilter(t *testing.T) {
	d := testDB(t)
	user := seedUser(t, d)
	repo := NewTodoRepository(d)

	seedTodo(t, d, user.ID, "open one", false)
	seedTodo(t, d, user.ID, "open two", false)
	seedTodo(t, d, user.ID, "done", true)

	all, err := repo.Todos(user.ID, nil)
	if err != nil {
		t.Fatalf("Todos: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("all: got %d todos", len(all))
	}

	open := false
	todos, err := repo.Todos(user.ID, &open)
	if err != nil {
		t.Fatalf("Todos(open): %v", err)
	}
	if len(todos) != 2 {
		t.Errorf("open: got %d todos", len(todos))
	}
	for _, todo := range todos {
		if todo.Completed {
			t.Errorf("todo %q is completed", todo.Title)
		}
	}

	done := true
	todos, err = repo.Todos(user.ID, &done)
	if err != nil {
		t.Fatalf("Todos(done): %v", err)
	}
	if len(todos) != 1 || todos[0].Title != "done" {
		t.Errorf("done filter returned %d todos", len(todos))
	}
}

func TestTodoUpdateCompletion(t *testing.T) {
	d := testDB(t)
	user := seedUser(t, d)
	repo := NewTodoRepository(d)

	todo := seedTodo(t, d, user.ID, "flip me", false)
	todo.Completed = true
	todo.UpdatedAt = todo.UpdatedAt.Add(time.Second)

	if err := repo.Update(todo); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := repo.ByID(user.ID, todo.ID)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if !got.Completed {
		t.Error("todo still open")
	}
}
