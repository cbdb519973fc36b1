package overtime

import (
	"context"
	"fmt"
	"time"

	"github.com/teamhub-intranet/leave-backend-go/internal/domain/overtime"
)

type Service struct {
	requests overtime.OvertimeRepository
}

func NewOvertimeService(requests overtime.OvertimeRepository) *Service {
	return &Service{requests: requests}
}

func (s *Service) CreateRequest(ctx context.Context, req overtime.CreateOvertimeRequest) (overtime.OvertimeResponse, error) {
	startAt, err := time.Parse(time.RFC3339, req.StartAt)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to parse start_at: %w", err)
	}
	endAt, err := time.Parse(time.RFC3339, req.EndAt)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to parse end_at: %w", err)
	}
	if !endAt.After(startAt) {
		return overtime.OvertimeResponse{}, overtime.ErrInvalidTimeRange
	}

	created, err := s.requests.Create(ctx, overtime.OvertimeRequest{
		UserID:  req.UserID,
		StartAt: startAt,
		EndAt:   endAt,
		Reason:  req.Reason,
		Status:  overtime.OvertimeStatusPending,
	})
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to create overtime request: %w", err)
	}

	return created.ToResponse(), nil
}

func (s *Service) CancelRequest(ctx context.Context, requestID string, callerID string) error {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	if request.UserID != callerID {
		return overtime.ErrNotRequestOwner
	}
	if request.Status != overtime.OvertimeStatusPending {
		return overtime.ErrAlreadyProcessed
	}

	return s.requests.Delete(ctx, requestID)
}

// ApproveRequest marks the record approved. Overtime carries no balance, so
// no transactional coupling is needed here.
func (s *Service) ApproveRequest(ctx context.Context, requestID string, approverID string) error {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.Status != overtime.OvertimeStatusPending {
		return overtime.ErrAlreadyProcessed
	}

	return s.requests.UpdateStatus(ctx, overtime.UpdateStatusInput{
		ID:         request.ID,
		Status:     overtime.OvertimeStatusApproved,
		ApproverID: approverID,
		ApprovedAt: time.Now(),
	})
}

func (s *Service) RejectRequest(ctx context.Context, req overtime.RejectOvertimeRequest, approverID string) error {
	request, err := s.requests.GetByID(ctx, req.RequestID)
	if err != nil {
		return err
	}
	if request.Status != overtime.OvertimeStatusPending {
		return overtime.ErrAlreadyProcessed
	}

	return s.requests.UpdateStatus(ctx, overtime.UpdateStatusInput{
		ID:              request.ID,
		Status:          overtime.OvertimeStatusRejected,
		ApproverID:      approverID,
		ApprovedAt:      time.Now(),
		RejectionReason: &req.Reason,
	})
}

func (s *Service) ListMyRequests(ctx context.Context, userID string, filter overtime.OvertimeFilter) (overtime.ListOvertimeResponse, error) {
	requests, total, err := s.requests.ListByUser(ctx, userID, filter)
	if err != nil {
		return overtime.ListOvertimeResponse{}, err
	}
	return toListResponse(requests, total), nil
}

func (s *Service) ListAllRequests(ctx context.Context, filter overtime.OvertimeFilter) (overtime.ListOvertimeResponse, error) {
	requests, total, err := s.requests.ListAll(ctx, filter)
	if err != nil {
		return overtime.ListOvertimeResponse{}, err
	}
	return toListResponse(requests, total), nil
}

func toListResponse(requests []overtime.OvertimeRequest, total int64) overtime.ListOvertimeResponse {
	resp := overtime.ListOvertimeResponse{
		Requests: make([]overtime.OvertimeResponse, 0, len(requests)),
		Total:    total,
	}
	for _, req := range requests {
		resp.Requests = append(resp.Requests, req.ToResponse())
	}
	return resp
}
