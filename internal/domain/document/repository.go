package document

import (
	"context"
	"time"
)

// DocumentFilter narrows list queries.
type DocumentFilter struct {
	LabelID        *string
	Status         *string
	AttendanceType *string
	Page           int
	Limit          int
}

// DocumentRepository - interface for documents table
type DocumentRepository interface {
	Create(ctx context.Context, doc Document) (Document, error)
	GetByID(ctx context.Context, id string) (Document, error)
	// GetByIDForUpdate locks the row for the enclosing transaction.
	GetByIDForUpdate(ctx context.Context, id string) (Document, error)
	ListByUser(ctx context.Context, userID string, filter DocumentFilter) ([]Document, int64, error)
	ListAll(ctx context.Context, filter DocumentFilter) ([]Document, int64, error)
	// ListApprovedLeaveByYear returns approved leave-attendance documents
	// whose start date falls in year.
	ListApprovedLeaveByYear(ctx context.Context, year int) ([]Document, error)
	UpdateStatus(ctx context.Context, update UpdateStatusInput) error
	Delete(ctx context.Context, id string) error
}

// DocumentLabelRepository - interface for document_labels table
type DocumentLabelRepository interface {
	Create(ctx context.Context, label DocumentLabel) (DocumentLabel, error)
	GetByID(ctx context.Context, id string) (DocumentLabel, error)
	List(ctx context.Context) ([]DocumentLabel, error)
}

// UpdateStatusInput carries an approval-state transition.
type UpdateStatusInput struct {
	ID              string
	Status          DocumentStatus
	ApproverID      string
	ApprovedAt      time.Time
	RejectionReason *string
}
