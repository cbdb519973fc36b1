package document

import (
	"context"
	"fmt"
	"time"

	"github.com/teamhub-intranet/leave-backend-go/internal/domain/document"
	"github.com/teamhub-intranet/leave-backend-go/internal/domain/leave"
)

// Transactor runs fn atomically; repository calls made with the context it
// passes join the same transaction.
type Transactor interface {
	InTx(ctx context.Context, fn func(txCtx context.Context) error) error
}

type Service struct {
	tx        Transactor
	documents document.DocumentRepository
	labels    document.DocumentLabelRepository
	balances  leave.AnnualBalanceRepository
}

func NewDocumentService(
	tx Transactor,
	documents document.DocumentRepository,
	labels document.DocumentLabelRepository,
	balances leave.AnnualBalanceRepository,
) *Service {
	return &Service{
		tx:        tx,
		documents: documents,
		labels:    labels,
		balances:  balances,
	}
}

func (s *Service) CreateDocument(ctx context.Context, req document.CreateDocumentRequest) (document.DocumentResponse, error) {
	if _, err := s.labels.GetByID(ctx, req.LabelID); err != nil {
		return document.DocumentResponse{}, err
	}

	doc := document.Document{
		UserID:         req.UserID,
		LabelID:        req.LabelID,
		Title:          req.Title,
		Body:           req.Body,
		AttendanceType: req.AttendanceType,
		Status:         document.DocumentStatusPending,
	}

	// Leave-attendance documents carry the same day accounting as direct
	// leave requests, computed once at filing time.
	if doc.IsLeaveAttendance() {
		if req.LeaveType == nil || req.StartDate == nil || req.EndDate == nil {
			return document.DocumentResponse{}, document.ErrMissingLeaveField
		}

		startDate, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return document.DocumentResponse{}, fmt.Errorf("failed to parse start date: %w", err)
		}
		endDate, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return document.DocumentResponse{}, fmt.Errorf("failed to parse end date: %w", err)
		}

		days, err := leave.CalculateDays(leave.LeaveType(*req.LeaveType), startDate, endDate)
		if err != nil {
			return document.DocumentResponse{}, err
		}

		doc.LeaveType = req.LeaveType
		doc.LeaveDays = &days
		doc.StartDate = &startDate
		doc.EndDate = &endDate
	}

	created, err := s.documents.Create(ctx, doc)
	if err != nil {
		return document.DocumentResponse{}, fmt.Errorf("failed to create document: %w", err)
	}

	return created.ToResponse(), nil
}

func (s *Service) CancelDocument(ctx context.Context, documentID string, callerID string) error {
	doc, err := s.documents.GetByID(ctx, documentID)
	if err != nil {
		return err
	}

	if doc.UserID != callerID {
		return document.ErrNotDocumentOwner
	}
	if doc.Status != document.DocumentStatusPending {
		return document.ErrAlreadyProcessed
	}

	return s.documents.Delete(ctx, documentID)
}

// ApproveDocument transitions the document, and for leave-attendance
// documents charges the annual balance in the same transaction.
func (s *Service) ApproveDocument(ctx context.Context, documentID string, approverID string) error {
	return s.tx.InTx(ctx, func(txCtx context.Context) error {
		doc, err := s.documents.GetByIDForUpdate(txCtx, documentID)
		if err != nil {
			return err
		}
		if doc.Status != document.DocumentStatusPending {
			return document.ErrAlreadyProcessed
		}

		if err := s.documents.UpdateStatus(txCtx, document.UpdateStatusInput{
			ID:         doc.ID,
			Status:     document.DocumentStatusApproved,
			ApproverID: approverID,
			ApprovedAt: time.Now(),
		}); err != nil {
			return err
		}

		if doc.IsLeaveAttendance() {
			if doc.LeaveDays == nil || doc.StartDate == nil {
				return document.ErrMissingLeaveField
			}
			if err := s.balances.AddUsedDays(txCtx, doc.UserID, doc.StartDate.Year(), *doc.LeaveDays); err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *Service) RejectDocument(ctx context.Context, req document.RejectDocumentRequest, approverID string) error {
	return s.tx.InTx(ctx, func(txCtx context.Context) error {
		doc, err := s.documents.GetByIDForUpdate(txCtx, req.DocumentID)
		if err != nil {
			return err
		}
		if doc.Status != document.DocumentStatusPending {
			return document.ErrAlreadyProcessed
		}

		return s.documents.UpdateStatus(txCtx, document.UpdateStatusInput{
			ID:              doc.ID,
			Status:          document.DocumentStatusRejected,
			ApproverID:      approverID,
			ApprovedAt:      time.Now(),
			RejectionReason: &req.Reason,
		})
	})
}

func (s *Service) ListMyDocuments(ctx context.Context, userID string, filter document.DocumentFilter) (document.ListDocumentsResponse, error) {
	docs, total, err := s.documents.ListByUser(ctx, userID, filter)
	if err != nil {
		return document.ListDocumentsResponse{}, err
	}
	return toListResponse(docs, total), nil
}

func (s *Service) ListAllDocuments(ctx context.Context, filter document.DocumentFilter) (document.ListDocumentsResponse, error) {
	docs, total, err := s.documents.ListAll(ctx, filter)
	if err != nil {
		return document.ListDocumentsResponse{}, err
	}
	return toListResponse(docs, total), nil
}

func (s *Service) CreateLabel(ctx context.Context, req document.CreateLabelRequest) (document.DocumentLabel, error) {
	return s.labels.Create(ctx, document.DocumentLabel{
		Name:     req.Name,
		Category: req.Category,
	})
}

func (s *Service) ListLabels(ctx context.Context) ([]document.DocumentLabel, error) {
	return s.labels.List(ctx)
}

func toListResponse(docs []document.Document, total int64) document.ListDocumentsResponse {
	resp := document.ListDocumentsResponse{
		Documents: make([]document.DocumentResponse, 0, len(docs)),
		Total:     total,
	}
	for _, doc := range docs {
		resp.Documents = append(resp.Documents, doc.ToResponse())
	}
	return resp
}
