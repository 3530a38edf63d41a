package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/strideapp/stride/internal/model"
)

var (
	ErrTodoNotFound = errors.New("todo not found")
)

type TodoRepository interface {
	Create(todo *model.Todo) error
	ByID(userID, todoID string) (*model.Todo, error)
	Todos(userID string, completed *bool) ([]*model.Todo, error)
	Update(todo *model.Todo) error
	Delete(userID, todoID string) error
}

type todoRepository struct {
	db *sqlx.DB
}

func NewTodoRepository(db *sqlx.DB) TodoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) Create(todo *model.Todo) error {
	query := `INSERT INTO todos (id, user_id, title, description, priority, due_date, category, completed, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(query,
		todo.ID,
		todo.UserID,
		todo.Title,
		todo.Description,
		todo.Priority,
		todo.DueDate,
		todo.Category,
		todo.Completed,
		todo.CreatedAt,
		todo.UpdatedAt,
	)

	return err
}

func (r *todoRepository) ByID(userID, todoID string) (*model.Todo, error) {
	todo := &model.Todo{}
	query := `SELECT * FROM todos WHERE id = $1 AND user_id = $2`

	err := r.db.Get(todo, query, todoID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrTodoNotFound
	}

	return todo, err
}

// Todos lists a user's todos, optionally filtered by completion state.
func (r *todoRepository) Todos(userID string, completed *bool) ([]*model.Todo, error) {
	todos := []*model.Todo{}

	query := `SELECT * FROM todos WHERE user_id = $1 ORDER BY updated_at DESC`
	args := []any{userID}
	if completed != nil {
		query = `SELECT * FROM todos WHERE user_id = $1 AND completed = $2 ORDER BY updated_at DESC`
		args = append(args, *completed)
	}

	err := r.db.Select(&todos, query, args...)
	if err != nil {
		return nil, err
	}

	return todos, nil
}

func (r *todoRepository) Update(todo *model.Todo) error {
	query := `UPDATE todos
	          SET title = $1, description = $2, priority = $3, due_date = $4, category = $5, completed = $6, updated_at = $7
	          WHERE id = $8 AND user_id = $9`

	result, err := r.db.Exec(query,
		todo.Title,
		todo.Description,
		todo.Priority,
		todo.DueDate,
		todo.Category,
		todo.Completed,
		todo.UpdatedAt,
		todo.ID,
		todo.UserID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrTodoNotFound
	}

	return nil
}

func (r *todoRepository) Delete(userID, todoID string) error {
	query := `DELETE FROM todos WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, todoID, userID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrTodoNotFound
	}

	return nil
}
