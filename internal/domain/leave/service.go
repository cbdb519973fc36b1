package leave

import (
	"context"
	"time"
)

type LeaveService interface {
	// Balances
	GetMyBalance(ctx context.Context, userID string, year int) (BalanceResponse, error)
	ListBalances(ctx context.Context, year int) ([]UserBalanceSummary, error)
	SetUserAllowance(ctx context.Context, req SetAllowanceRequest) error
	// Requests
	CreateRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	CancelRequest(ctx context.Context, requestID string, callerID string) error
	ApproveRequest(ctx context.Context, requestID string, approverID string) (LeaveRequestResponse, error)
	RejectRequest(ctx context.Context, req RejectLeaveRequestRequest, approverID string) error
	ListMyRequests(ctx context.Context, userID string, filter LeaveRequestFilter) (ListLeaveRequestsResponse, error)
	ListAllRequests(ctx context.Context, filter LeaveRequestFilter) (ListLeaveRequestsResponse, error)
	// Calendar
	Calendar(ctx context.Context, year int, month time.Month) (CalendarResponse, error)
}
