package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/strideapp/stride/internal/model"
)

var (
	ErrCheckInNotFound = errors.New("check-in not found")
)

type CheckInRepository interface {
	Create(checkIn *model.CheckIn) error
	ByID(userID, checkInID string) (*model.CheckIn, error)
	CheckIns(userID string) ([]*model.CheckIn, error)
	Update(checkIn *model.CheckIn) error
	Delete(userID, checkInID string) error
}

type checkInRepository struct {
	db *sqlx.DB
}

func NewCheckInRepository(db *sqlx.DB) CheckInRepository {
	return &checkInRepository{db: db}
}

func (r *checkInRepository) Create(checkIn *model.CheckIn) error {
	query := `INSERT INTO checkins (id, user_id, date, mood, energy, accomplishments, challenges, goals, notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(query,
		checkIn.ID,
		checkIn.UserID,
		checkIn.Date,
		checkIn.Mood,
		checkIn.Energy,
		checkIn.Accomplishments,
		checkIn.Challenges,
		checkIn.Goals,
		checkIn.Notes,
		checkIn.CreatedAt,
		checkIn.UpdatedAt,
	)

	return err
}

func (r *checkInRepository) ByID(userID, checkInID string) (*model.CheckIn, error) {
	checkIn := &model.CheckIn{}
	query := `SELECT * FROM checkins WHERE id = $1 AND user_id = $2`

	err := r.db.Get(checkIn, query, checkInID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrCheckInNotFound
	}

	return checkIn, err
}

func (r *checkInRepository) CheckIns(userID string) ([]*model.CheckIn, error) {
	checkIns := []*model.CheckIn{}
	query := `SELECT * FROM checkins WHERE user_id = $1 ORDER BY date DESC`

	err := r.db.Select(&checkIns, query, userID)
	if err != nil {
		return nil, err
	}

	return checkIns, nil
}

func (r *checkInRepository) Update(checkIn *model.CheckIn) error {
	query := `UPDATE checkins
	          SET date = $1, mood = $2, energy = $3, accomplishments = $4, challenges = $5, goals = $6, notes = $7, updated_at = $8
	          WHERE id = $9 AND user_id = $10`

	result, err := r.db.Exec(query,
		checkIn.Date,
		checkIn.Mood,
		checkIn.Energy,
		checkIn.Accomplishments,
		checkIn.Challenges,
		checkIn.Goals,
		checkIn.Notes,
		checkIn.UpdatedAt,
		checkIn.ID,
		checkIn.UserID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrCheckInNotFound
	}

	return nil
}

func (r *checkInRepository) Delete(userID, checkInID string) error {
	query := `DELETE FROM checkins WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, checkInID, userID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrCheckInNotFound
	}

	return nil
}
