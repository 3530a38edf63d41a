package model

import (
	"time"
)

const (
	MoodGreat    = "great"
	MoodGood     = "good"
	MoodOkay     = "okay"
	MoodBad      = "bad"
	MoodTerrible = "terrible"
)

const (
	EnergyHigh   = "high"
	EnergyMedium = "medium"
	EnergyLow    = "low"
)

// Moods lists the closed set of accepted mood values.
var Moods = []string{MoodGreat, MoodGood, MoodOkay, MoodBad, MoodTerrible}

// EnergyLevels lists the closed set of accepted energy values.
var EnergyLevels = []string{EnergyHigh, EnergyMedium, EnergyLow}

// CheckIn is a daily mood/energy record. There is deliberately no
// uniqueness constraint on (user, date): the UI nudges toward one
// check-in per day but the store stays permissive.
type CheckIn struct {
	ID              string     `db:"id" json:"id"`
	UserID          string     `db:"user_id" json:"userId"`
	Date            time.Time  `db:"date" json:"date"`
	Mood            string     `db:"mood" json:"mood"`
	Energy          string     `db:"energy" json:"energy"`
	Accomplishments StringList `db:"accomplishments" json:"accomplishments"`
	Challenges      StringList `db:"challenges" json:"challenges"`
	Goals           StringList `db:"goals" json:"goals"`
	Notes           string     `db:"notes" json:"notes,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updatedAt"`
}
