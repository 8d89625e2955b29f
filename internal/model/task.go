package model

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

const (
	// DateLayout is the wire format for calendar dates (ISO-8601).
	DateLayout = "2006-01-02"

	// TimestampLayout is the wire format for server-assigned timestamps.
	TimestampLayout = time.RFC3339
)

// Task is a scheduled item owned by a user.
//
// DueDate and DueTime are independent fields: there is no combined
// timestamp. Description is optional and serializes as null when absent.
type Task struct {
	ID          int64
	UserID      int64
	Title       string
	Description *string
	Frequency   string
	DueDate     pgtype.Date
	DueTime     pgtype.Time
	CreatedAt   time.Time
}

// TaskJSON is the transport view of a Task. All temporal fields are
// plain text: due_date as "2006-01-02", due_time as "15:04:05",
// created_at as RFC 3339.
type TaskJSON struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Frequency   string  `json:"frequency"`
	DueDate     string  `json:"due_date"`
	DueTime     string  `json:"due_time"`
	CreatedAt   string  `json:"created_at"`
}

// Serialize maps the task into its transport view, converting every
// temporal field to text in one place.
func (t *Task) Serialize() TaskJSON {
	return TaskJSON{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Frequency:   t.Frequency,
		DueDate:     formatDate(t.DueDate),
		DueTime:     formatClockTime(t.DueTime),
		CreatedAt:   t.CreatedAt.Format(TimestampLayout),
	}
}

// SerializeTasks maps a slice of tasks into transport views. It always
// returns a non-nil slice so an empty listing serializes as [] rather
// than null.
func SerializeTasks(tasks []Task) []TaskJSON {
	out := make([]TaskJSON, 0, len(tasks))
	for i := range tasks {
		out = append(out, tasks[i].Serialize())
	}
	return out
}

func formatDate(d pgtype.Date) string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(DateLayout)
}

func formatClockTime(t pgtype.Time) string {
	if !t.Valid {
		return ""
	}
	total := t.Microseconds / 1_000_000
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// NewDate builds a pgtype.Date from a wire date string.
func NewDate(s string) (pgtype.Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return pgtype.Date{}, err
	}
	return pgtype.Date{Time: t, Valid: true}, nil
}

// NewClockTime builds a pgtype.Time from a parsed time of day.
func NewClockTime(t time.Time) pgtype.Time {
	micros := int64(t.Hour())*3600_000_000 +
		int64(t.Minute())*60_000_000 +
		int64(t.Second())*1_000_000
	return pgtype.Time{Microseconds: micros, Valid: true}
}
