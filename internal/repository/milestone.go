package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/strideapp/stride/internal/model"
)

var (
	ErrMilestoneNotFound = errors.New("milestone not found")
)

type MilestoneRepository interface {
	Create(milestone *model.Milestone) error
	ByID(userID, milestoneID string) (*model.Milestone, error)
	Milestones(userID string) ([]*model.Milestone, error)
	ByGoal(userID, goalID string) ([]*model.Milestone, error)
	Update(milestone *model.Milestone) error
	Delete(userID, milestoneID string) error
}

type milestoneRepository struct {
	db *sqlx.DB
}

func NewMilestoneRepository(db *sqlx.DB) MilestoneRepository {
	return &milestoneRepository{db: db}
}

func (r *milestoneRepository) Create(milestone *model.Milestone) error {
	query := `INSERT INTO milestones (id, user_id, goal_id, title, description, date, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(query,
		milestone.ID,
		milestone.UserID,
		milestone.GoalID,
		milestone.Title,
		milestone.Description,
		milestone.Date,
		milestone.CreatedAt,
		milestone.UpdatedAt,
	)

	return err
}

func (r *milestoneRepository) ByID(userID, milestoneID string) (*model.Milestone, error) {
	milestone := &model.Milestone{}
	query := `SELECT * FROM milestones WHERE id = $1 AND user_id = $2`

	err := r.db.Get(milestone, query, milestoneID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrMilestoneNotFound
	}

	return milestone, err
}

func (r *milestoneRepository) Milestones(userID string) ([]*model.Milestone, error) {
	milestones := []*model.Milestone{}
	query := `SELECT * FROM milestones WHERE user_id = $1 ORDER BY date ASC`

	err := r.db.Select(&milestones, query, userID)
	if err != nil {
		return nil, err
	}

	return milestones, nil
}

func (r *milestoneRepository) ByGoal(userID, goalID string) ([]*model.Milestone, error) {
	milestones := []*model.Milestone{}
	query := `SELECT * FROM milestones WHERE user_id = $1 AND goal_id = $2 ORDER BY date ASC`

	err := r.db.Select(&milestones, query, userID, goalID)
	if err != nil {
		return nil, err
	}

	return milestones, nil
}

func (r *milestoneRepository) Update(milestone *model.Milestone) error {
	query := `UPDATE milestones
	          SET title = $1, description = $2, date = $3, updated_at = $4
	          WHERE id = $5 AND user_id = $6`

	result, err := r.db.Exec(query,
		milestone.Title,
		milestone.Description,
		milestone.Date,
		milestone.UpdatedAt,
		milestone.ID,
		milestone.UserID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrMilestoneNotFound
	}

	return nil
}

func (r *milestoneRepository) Delete(userID, milestoneID string) error {
	query := `DELETE FROM milestones WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, milestoneID, userID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrMilestoneNotFound
	}

	return nil
}
