package overtime

import "context"

type OvertimeService interface {
	CreateRequest(ctx context.Context, req CreateOvertimeRequest) (OvertimeResponse, error)
	CancelRequest(ctx context.Context, requestID string, callerID string) error
	ApproveRequest(ctx context.Context, requestID string, approverID string) error
	RejectRequest(ctx context.Context, req RejectOvertimeRequest, approverID string) error
	ListMyRequests(ctx context.Context, userID string, filter OvertimeFilter) (ListOvertimeResponse, error)
	ListAllRequests(ctx context.Context, filter OvertimeFilter) (ListOvertimeResponse, error)
}
