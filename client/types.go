package client

import (
	"encoding/json"
	"time"
)

// Session identifies the acting user. It is passed explicitly to every
// call rather than read from shared state.
type Session struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

type Goal struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	TimeFrame   string     `json:"timeFrame"`
	Status      string     `json:"status"`
	Progress    int        `json:"progress"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type GoalInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	TimeFrame   string     `json:"timeFrame"`
	Status      string     `json:"status,omitempty"`
	Progress    int        `json:"progress"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

type GoalPatch struct {
	ID          string     `json:"id"`
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Category    *string    `json:"category,omitempty"`
	TimeFrame   *string    `json:"timeFrame,omitempty"`
	Status      *string    `json:"status,omitempty"`
	Progress    *int       `json:"progress,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

type Milestone struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	GoalID      string    `json:"goalId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type MilestoneInput struct {
	GoalID      string     `json:"goalId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

type MilestonePatch struct {
	ID          string     `json:"id"`
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category,omitempty"`
	IsPinned  bool      `json:"isPinned"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type NoteInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category,omitempty"`
	IsPinned bool   `json:"isPinned"`
}

type NotePatch struct {
	ID       string  `json:"id"`
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Category *string `json:"category,omitempty"`
	IsPinned *bool   `json:"isPinned,omitempty"`
}

type Todo struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Category    string     `json:"category,omitempty"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type TodoInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Category    string     `json:"category,omitempty"`
	Completed   bool       `json:"completed"`
}

type TodoPatch struct {
	ID          string     `json:"id"`
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Completed   *bool      `json:"completed,omitempty"`
}

type CheckIn struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	Date            time.Time `json:"date"`
	Mood            string    `json:"mood"`
	Energy          string    `json:"energy"`
	Accomplishments List      `json:"accomplishments"`
	Challenges      List      `json:"challenges"`
	Goals           List      `json:"goals"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type CheckInInput struct {
	Date            *time.Time `json:"date,omitempty"`
	Mood            string     `json:"mood"`
	Energy          string     `json:"energy"`
	Accomplishments List       `json:"accomplishments"`
	Challenges      List       `json:"challenges"`
	Goals           List       `json:"goals"`
	Notes           string     `json:"notes,omitempty"`
}

type CheckInPatch struct {
	ID              string     `json:"id"`
	Date            *time.Time `json:"date,omitempty"`
	Mood            *string    `json:"mood,omitempty"`
	Energy          *string    `json:"energy,omitempty"`
	Accomplishments *List      `json:"accomplishments,omitempty"`
	Challenges      *List      `json:"challenges,omitempty"`
	Goals           *List      `json:"goals,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
}

// List is a sequence of free-text strings. Decoding tolerates both a
// JSON array and a JSON-encoded string of an array, a shape that shows
// up in older exports; anything else coerces to empty.
type List []string

func (l *List) UnmarshalJSON(b []byte) error {
	var direct []string
	if err := json.Unmarshal(b, &direct); err == nil {
		*l = direct
		return nil
	}

	var encoded string
	if err := json.Unmarshal(b, &encoded); err == nil {
		var nested []string
		if err := json.Unmarshal([]byte(encoded), &nested); err == nil && nested != nil {
			*l = nested
			return nil
		}
	}

	*l = List{}
	return nil
}

// AsList coerces a caller-supplied value into a List: a []string is
// taken as-is, a string must decode to a JSON array of strings, and
// everything else becomes an empty list.
func AsList(v any) List {
	switch val := v.(type) {
	case nil:
		return List{}
	case List:
		if val == nil {
			return List{}
		}
		return val
	case []string:
		if val == nil {
			return List{}
		}
		return List(val)
	case string:
		var out []string
		if err := json.Unmarshal([]byte(val), &out); err == nil && out != nil {
			return List(out)
		}
		return List{}
	case []any:
		out := make(List, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return List{}
			}
			out = append(out, s)
		}
		return out
	default:
		return List{}
	}
}
