package service

import (
	"testing"

	"github.com/strideapp/stride/internal/model"
	"github.com/strideapp/stride/internal/repository"
)

func TestTodoCreateValidation(t *testing.T) {
	d := testDB(t)
	user := testUser(t, d)
	svc := NewTodoService(repository.NewTodoRepository(d))

	_, err := svc.Create(user.ID, TodoInput{Title: "", Priority: "urgent"})
	assertFieldError(t, err, "title", "priority")
}

func TestTodoToggleComplete(t *testing.T) {
	d := testDB(t)
	user := testUser(t, d)
	svc := NewTodoService(repository.NewTodoRepository(d))

	todo, err := svc.Create(user.ID, TodoInput{Title: "water plants", Priority: model.TodoPriorityLow})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if todo.Completed {
		t.Fatal("new todo starts completed")
	}

	toggled, err := svc.ToggleComplete(user.ID, todo.ID)
	if err != nil {
		t.Fatalf("ToggleComplete: %v", err)
	}
	if !toggled.Completed {
		t.Error("todo not completed after toggle")
	}

	toggled, err = svc.ToggleComplete(user.ID, todo.ID)
	if err != nil {
		t.Fatalf("ToggleComplete: %v", err)
	}
	if toggled.Completed {
		t.Error("todo still completed after second toggle")
	}
}

func TestTodoToggleMissing(t *testing.T) {
	d := testDB(t)
	user := testUser(t, d)
	svc := NewTodoService(repository.NewTodoRepository(d))

	_, err := svc.ToggleComplete(user.ID, "missing")
	assertFieldError(t, err, "id")
}

func TestTodoUpdateRejectsBadPriority(t *testing.T) {
	d := testDB(t)
	user := testUser(t, d)
	svc := NewTodoService(repository.NewTodoRepository(d))

	todo, err := svc.Create(user.ID, TodoInput{Title: "t", Priority: model.TodoPriorityHigh})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err = svc.Update(user.ID, TodoPatch{ID: todo.ID, Priority: ptr("asap")})
	assertFieldError(t, err, "priority")
}
