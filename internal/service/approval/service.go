package approval

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/teamhub-intranet/leave-backend-go/internal/domain/document"
	"github.com/teamhub-intranet/leave-backend-go/internal/domain/leave"
	"github.com/teamhub-intranet/leave-backend-go/internal/domain/overtime"
)

// Kind tags which table a queue item came from.
type Kind string

const (
	KindLeave    Kind = "leave"
	KindOvertime Kind = "overtime"
	KindDocument Kind = "document"
)

// QueueItem is one pending approval, regardless of source table.
type QueueItem struct {
	Kind      Kind      `json:"kind"`
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  *string   `json:"user_name,omitempty"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// QueueResponse is the merged pending queue, newest first.
type QueueResponse struct {
	Items []QueueItem `json:"items"`
	Total int         `json:"total"`
}

// Each source is capped per fetch; the queue is an operational view, not
// an archive.
const fetchLimit = 200

type Service struct {
	leaveRequests    leave.LeaveRequestRepository
	overtimeRequests overtime.OvertimeRepository
	documents        document.DocumentRepository
}

func NewApprovalService(
	leaveRequests leave.LeaveRequestRepository,
	overtimeRequests overtime.OvertimeRepository,
	documents document.DocumentRepository,
) *Service {
	return &Service{
		leaveRequests:    leaveRequests,
		overtimeRequests: overtimeRequests,
		documents:        documents,
	}
}

// PendingQueue merges pending leave, overtime and document requests into
// one list sorted by creation time descending.
func (s *Service) PendingQueue(ctx context.Context) (QueueResponse, error) {
	pending := string(leave.LeaveRequestStatusPending)

	leaveReqs, _, err := s.leaveRequests.ListAll(ctx, leave.LeaveRequestFilter{
		Status: &pending,
		Limit:  fetchLimit,
	})
	if err != nil {
		return QueueResponse{}, fmt.Errorf("failed to list pending leave requests: %w", err)
	}

	overtimeReqs, _, err := s.overtimeRequests.ListAll(ctx, overtime.OvertimeFilter{
		Status: &pending,
		Limit:  fetchLimit,
	})
	if err != nil {
		return QueueResponse{}, fmt.Errorf("failed to list pending overtime requests: %w", err)
	}

	docs, _, err := s.documents.ListAll(ctx, document.DocumentFilter{
		Status: &pending,
		Limit:  fetchLimit,
	})
	if err != nil {
		return QueueResponse{}, fmt.Errorf("failed to list pending documents: %w", err)
	}

	items := make([]QueueItem, 0, len(leaveReqs)+len(overtimeReqs)+len(docs))
	for _, req := range leaveReqs {
		items = append(items, QueueItem{
			Kind:     KindLeave,
			ID:       req.ID,
			UserID:   req.UserID,
			UserName: req.UserName,
			Title: fmt.Sprintf("%s %s - %s", req.LeaveType,
				req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02")),
			CreatedAt: req.CreatedAt,
		})
	}
	for _, req := range overtimeReqs {
		items = append(items, QueueItem{
			Kind:     KindOvertime,
			ID:       req.ID,
			UserID:   req.UserID,
			UserName: req.UserName,
			Title: fmt.Sprintf("overtime %s (%.1fh)",
				req.StartAt.Format("2006-01-02"), req.Hours()),
			CreatedAt: req.CreatedAt,
		})
	}
	for _, doc := range docs {
		items = append(items, QueueItem{
			Kind:      KindDocument,
			ID:        doc.ID,
			UserID:    doc.UserID,
			UserName:  doc.UserName,
			Title:     doc.Title,
			CreatedAt: doc.CreatedAt,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	return QueueResponse{Items: items, Total: len(items)}, nil
}
