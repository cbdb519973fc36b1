package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/teamhub-intranet/leave-backend-go/internal/domain/document"
	"github.com/teamhub-intranet/leave-backend-go/internal/handler/http/response"
)

type DocumentHandler interface {
	CreateDocument(w http.ResponseWriter, r *http.Request)
	CancelDocument(w http.ResponseWriter, r *http.Request)
	ApproveDocument(w http.ResponseWriter, r *http.Request)
	RejectDocument(w http.ResponseWriter, r *http.Request)
	GetMyDocuments(w http.ResponseWriter, r *http.Request)
	ListDocuments(w http.ResponseWriter, r *http.Request)

	CreateLabel(w http.ResponseWriter, r *http.Request)
	ListLabels(w http.ResponseWriter, r *http.Request)
}

type DocumentHandlerImpl struct {
	documentService document.DocumentService
}

func NewDocumentHandler(documentService document.DocumentService) DocumentHandler {
	return &DocumentHandlerImpl{documentService: documentService}
}

func documentFilterFromQuery(r *http.Request) document.DocumentFilter {
	filter := document.DocumentFilter{}

	if labelID := r.URL.Query().Get("label_id"); labelID != "" {
		filter.LabelID = &labelID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	if attendanceType := r.URL.Query().Get("attendance_type"); attendanceType != "" {
		filter.AttendanceType = &attendanceType
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

// CreateDocument implements DocumentHandler.
func (d *DocumentHandlerImpl) CreateDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		response.Unauthorized(w, "user_id claim is missing or invalid")
		return
	}

	var req document.CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateDocument decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req.UserID = userID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := d.documentService.CreateDocument(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Document created successfully", created)
}

// CancelDocument implements DocumentHandler.
func (d *DocumentHandlerImpl) CancelDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		response.Unauthorized(w, "user_id claim is missing or invalid")
		return
	}

	documentID := chi.URLParam(r, "id")
	if documentID == "" {
		response.BadRequest(w, "Document ID is required", nil)
		return
	}

	if err := d.documentService.CancelDocument(r.Context(), documentID, userID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Document cancelled successfully", nil)
}

// ApproveDocument implements DocumentHandler.
func (d *DocumentHandlerImpl) ApproveDocument(w http.ResponseWriter, r *http.Request) {
	approverID, ok := currentUserID(r)
	if !ok {
		response.Unauthorized(w, "user_id claim is missing or invalid")
		return
	}

	documentID := chi.URLParam(r, "id")
	if documentID == "" {
		response.BadRequest(w, "Document ID is required", nil)
		return
	}

	if err := d.documentService.ApproveDocument(r.Context(), documentID, approverID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Document approved successfully", nil)
}

// RejectDocument implements DocumentHandler.
func (d *DocumentHandlerImpl) RejectDocument(w http.ResponseWriter, r *http.Request) {
	approverID, ok := currentUserID(r)
	if !ok {
		response.Unauthorized(w, "user_id claim is missing or invalid")
		return
	}

	var req document.RejectDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RejectDocument decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := d.documentService.RejectDocument(r.Context(), req, approverID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Document rejected successfully", nil)
}

// GetMyDocuments implements DocumentHandler.
func (d *DocumentHandlerImpl) GetMyDocuments(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		response.Unauthorized(w, "user_id claim is missing or invalid")
		return
	}

	list, err := d.documentService.ListMyDocuments(r.Context(), userID, documentFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}

// ListDocuments implements DocumentHandler.
func (d *DocumentHandlerImpl) ListDocuments(w http.ResponseWriter, r *http.Request) {
	list, err := d.documentService.ListAllDocuments(r.Context(), documentFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}

// CreateLabel implements DocumentHandler.
func (d *DocumentHandlerImpl) CreateLabel(w http.ResponseWriter, r *http.Request) {
	var req document.CreateLabelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateLabel decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	label, err := d.documentService.CreateLabel(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Label created successfully", label)
}

// ListLabels implements DocumentHandler.
func (d *DocumentHandlerImpl) ListLabels(w http.ResponseWriter, r *http.Request) {
	labels, err := d.documentService.ListLabels(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, labels)
}
