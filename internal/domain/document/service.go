package document

import "context"

type DocumentService interface {
	CreateDocument(ctx context.Context, req CreateDocumentRequest) (DocumentResponse, error)
	CancelDocument(ctx context.Context, documentID string, callerID string) error
	ApproveDocument(ctx context.Context, documentID string, approverID string) error
	RejectDocument(ctx context.Context, req RejectDocumentRequest, approverID string) error
	ListMyDocuments(ctx context.Context, userID string, filter DocumentFilter) (ListDocumentsResponse, error)
	ListAllDocuments(ctx context.Context, filter DocumentFilter) (ListDocumentsResponse, error)
	CreateLabel(ctx context.Context, req CreateLabelRequest) (DocumentLabel, error)
	ListLabels(ctx context.Context) ([]DocumentLabel, error)
}
