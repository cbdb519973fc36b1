package worklog

import "time"

// WorkLog is one user's free-text log for one day, the raw material for
// weekly summaries.
type WorkLog struct {
	ID      string
	UserID  string
	LogDate time.Time
	Content string

	CreatedAt time.Time
	UpdatedAt time.Time
}
