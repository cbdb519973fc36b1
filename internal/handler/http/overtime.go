package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/teamhub-intranet/leave-backend-go/internal/domain/overtime"
	"github.com/teamhub-intranet/leave-backend-go/internal/handler/http/response"
)

type OvertimeHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	CancelRequest(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
}

type OvertimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService) OvertimeHandler {
	return &OvertimeHandlerImpl{overtimeService: overtimeService}
}

func overtimeFilterFromQuery(r *http.Request) overtime.OvertimeFilter {
	filter := overtime.OvertimeFilter{}

	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		if y, err := strconv.Atoi(yearStr); err == nil && y > 0 {
			filter.Year = &y
		}
	}
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			filter.Page = p
		}
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			filter.Limit = l
		}
	}

	return filter
}

// CreateRequest implements OvertimeHandler.
func (o *OvertimeHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		response.Unauthorized(w, "user_id claim is missing or invalid")
		return
	}

	var req overtime.CreateOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.UserID = userID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := o.overtimeService.CreateRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime request created successfully", created)
}

// CancelRequest implements OvertimeHandler.
func (o *OvertimeHandlerImpl) CancelRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		response.Unauthorized(w, "user_id claim is missing or invalid")
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	if err := o.overtimeService.CancelRequest(r.Context(), requestID, userID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request cancelled successfully", nil)
}

// ApproveRequest implements OvertimeHandler.
func (o *OvertimeHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	approverID, ok := currentUserID(r)
	if !ok {
		response.Unauthorized(w, "user_id claim is missing or invalid")
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	if err := o.overtimeService.ApproveRequest(r.Context(), requestID, approverID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request approved successfully", nil)
}

// RejectRequest implements OvertimeHandler.
func (o *OvertimeHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	approverID, ok := currentUserID(r)
	if !ok {
		response.Unauthorized(w, "user_id claim is missing or invalid")
		return
	}

	var req overtime.RejectOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RejectRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := o.overtimeService.RejectRequest(r.Context(), req, approverID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request rejected successfully", nil)
}

// GetMyRequests implements OvertimeHandler.
func (o *OvertimeHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		response.Unauthorized(w, "user_id claim is missing or invalid")
		return
	}

	list, err := o.overtimeService.ListMyRequests(r.Context(), userID, overtimeFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}

// ListRequests implements OvertimeHandler.
func (o *OvertimeHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	list, err := o.overtimeService.ListAllRequests(r.Context(), overtimeFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}
