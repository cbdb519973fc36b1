package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/teamhub-intranet/leave-backend-go/internal/domain/worklog"
	"github.com/teamhub-intranet/leave-backend-go/internal/handler/http/response"
	"github.com/teamhub-intranet/leave-backend-go/internal/pkg/validator"
)

type WorkLogHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListWeek(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	WeeklySummary(w http.ResponseWriter, r *http.Request)
}

type WorkLogHandlerImpl struct {
	workLogService worklog.WorkLogService
	summaryService worklog.SummaryService
}

func NewWorkLogHandler(workLogService worklog.WorkLogService, summaryService worklog.SummaryService) WorkLogHandler {
	return &WorkLogHandlerImpl{
		workLogService: workLogService,
		summaryService: summaryService,
	}
}

// Upsert implements WorkLogHandler.
func (h *WorkLogHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		response.Unauthorized(w, "user_id claim is missing or invalid")
		return
	}

	var req worklog.UpsertWorkLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Upsert decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.UserID = userID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	saved, err := h.workLogService.Upsert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work log saved successfully", saved)
}

// Get implements WorkLogHandler.
func (h *WorkLogHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		response.Unauthorized(w, "user_id claim is missing or invalid")
		return
	}

	logDate := chi.URLParam(r, "date")
	if !validator.IsValidDate(logDate) {
		response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
		return
	}

	log, err := h.workLogService.Get(r.Context(), userID, logDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, log)
}

// ListWeek implements WorkLogHandler.
func (h *WorkLogHandlerImpl) ListWeek(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		response.Unauthorized(w, "user_id claim is missing or invalid")
		return
	}

	weekStart := r.URL.Query().Get("week_start")
	if !validator.IsValidDate(weekStart) {
		response.BadRequest(w, "week_start must be in YYYY-MM-DD format", nil)
		return
	}

	logs, err := h.workLogService.ListWeek(r.Context(), userID, weekStart)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, logs)
}

// Delete implements WorkLogHandler.
func (h *WorkLogHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		response.Unauthorized(w, "user_id claim is missing or invalid")
		return
	}

	logDate := chi.URLParam(r, "date")
	if !validator.IsValidDate(logDate) {
		response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
		return
	}

	if err := h.workLogService.Delete(r.Context(), userID, logDate); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work log deleted successfully", nil)
}

// WeeklySummary implements WorkLogHandler.
func (h *WorkLogHandlerImpl) WeeklySummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		response.Unauthorized(w, "user_id claim is missing or invalid")
		return
	}

	var req worklog.WeeklySummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("WeeklySummary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.UserID = userID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := h.summaryService.WeeklySummary(r.Context(), req)
	if err != nil {
		slog.Error("WeeklySummary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
