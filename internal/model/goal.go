package model

import (
	"time"
)

const (
	GoalStatusNotStarted = "not-started"
	GoalStatusInProgress = "in-progress"
	GoalStatusCompleted  = "completed"
)

const (
	GoalCategoryHealth        = "health"
	GoalCategoryCareer        = "career"
	GoalCategoryLearning      = "learning"
	GoalCategoryRelationships = "relationships"
)

// GoalCategories lists the closed set of accepted categories.
var GoalCategories = []string{
	GoalCategoryHealth,
	GoalCategoryCareer,
	GoalCategoryLearning,
	GoalCategoryRelationships,
}

// GoalStatuses lists the closed set of accepted statuses.
var GoalStatuses = []string{
	GoalStatusNotStarted,
	GoalStatusInProgress,
	GoalStatusCompleted,
}

type Goal struct {
	ID          string     `db:"id" json:"id"`
	UserID      string     `db:"user_id" json:"userId"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	Category    string     `db:"category" json:"category"`
	TimeFrame   string     `db:"time_frame" json:"timeFrame"`
	Status      string     `db:"status" json:"status"`
	Progress    int        `db:"progress" json:"progress"`
	DueDate     *time.Time `db:"due_date" json:"dueDate,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
}
