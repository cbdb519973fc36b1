package worklog

import (
	"time"

	"github.com/teamhub-intranet/leave-backend-go/internal/pkg/validator"
)

type UpsertWorkLogRequest struct {
	UserID  string `json:"-"`
	LogDate string `json:"log_date"`
	Content string `json:"content"`
}

func (r *UpsertWorkLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidDate(r.LogDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "log_date",
			Message: "log_date must be in YYYY-MM-DD format",
		})
	}
	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{
			Field:   "content",
			Message: "content is required",
		})
	}
	if len(r.Content) > 4000 {
		errs = append(errs, validator.ValidationError{
			Field:   "content",
			Message: "content must not exceed 4000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WeeklySummaryRequest struct {
	UserID    string `json:"-"`
	WeekStart string `json:"week_start"`
}

func (r *WeeklySummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidDate(r.WeekStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkLogResponse struct {
	ID      string `json:"id"`
	LogDate string `json:"log_date"`
	Content string `json:"content"`
}

func (l WorkLog) ToResponse() WorkLogResponse {
	return WorkLogResponse{
		ID:      l.ID,
		LogDate: l.LogDate.Format("2006-01-02"),
		Content: l.Content,
	}
}

type WeeklySummaryResponse struct {
	WeekStart   string    `json:"week_start"`
	WeekEnd     string    `json:"week_end"`
	Summary     string    `json:"summary"`
	GeneratedAt time.Time `json:"generated_at"`
}
