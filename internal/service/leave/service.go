package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/teamhub-intranet/leave-backend-go/internal/domain/document"
	"github.com/teamhub-intranet/leave-backend-go/internal/domain/leave"
	"github.com/teamhub-intranet/leave-backend-go/internal/domain/user"
)

// Transactor runs fn atomically; repository calls made with the context it
// passes join the same transaction.
type Transactor interface {
	InTx(ctx context.Context, fn func(txCtx context.Context) error) error
}

type Service struct {
	tx           Transactor
	balances     leave.AnnualBalanceRepository
	compBalances leave.CompBalanceRepository
	requests     leave.LeaveRequestRepository
	documents    document.DocumentRepository
	users        user.UserRepository
}

func NewLeaveService(
	tx Transactor,
	balances leave.AnnualBalanceRepository,
	compBalances leave.CompBalanceRepository,
	requests leave.LeaveRequestRepository,
	documents document.DocumentRepository,
	users user.UserRepository,
) *Service {
	return &Service{
		tx:           tx,
		balances:     balances,
		compBalances: compBalances,
		requests:     requests,
		documents:    documents,
		users:        users,
	}
}

// recomputeUsedDays sums approved non-comp leave request days plus approved
// leave-attendance document days for one user in one year. The stored
// used_days column is the running total; this recomputation is the overlay
// the balance views present.
func (s *Service) recomputeUsedDays(ctx context.Context, userID string, year int) (float64, error) {
	requests, err := s.requests.ListApprovedByYear(ctx, year)
	if err != nil {
		return 0, fmt.Errorf("failed to list approved leave requests: %w", err)
	}

	var used float64
	for _, req := range requests {
		if req.UserID == userID && !req.LeaveType.IsComp() {
			used += req.Days
		}
	}

	docs, err := s.documents.ListApprovedLeaveByYear(ctx, year)
	if err != nil {
		return 0, fmt.Errorf("failed to list approved attendance documents: %w", err)
	}
	for _, doc := range docs {
		if doc.UserID == userID && doc.LeaveDays != nil {
			used += *doc.LeaveDays
		}
	}

	return used, nil
}

// getOrCreateAnnual reads the balance row, seeding it with the default
// allotment when the user has none for the year yet.
func (s *Service) getOrCreateAnnual(ctx context.Context, userID string, year int) (leave.AnnualLeaveBalance, error) {
	balance, err := s.balances.GetByUserYear(ctx, userID, year)
	if errors.Is(err, pgx.ErrNoRows) {
		return s.balances.Create(ctx, leave.AnnualLeaveBalance{
			UserID:    userID,
			Year:      year,
			TotalDays: leave.DefaultAnnualAllowanceDays,
		})
	}
	if err != nil {
		return leave.AnnualLeaveBalance{}, fmt.Errorf("failed to get annual balance: %w", err)
	}
	return balance, nil
}

func (s *Service) getOrCreateComp(ctx context.Context, userID string, year int) (leave.CompLeaveBalance, error) {
	balance, err := s.compBalances.GetByUserYear(ctx, userID, year)
	if errors.Is(err, pgx.ErrNoRows) {
		return s.compBalances.Create(ctx, leave.CompLeaveBalance{
			UserID: userID,
			Year:   year,
		})
	}
	if err != nil {
		return leave.CompLeaveBalance{}, fmt.Errorf("failed to get comp balance: %w", err)
	}
	return balance, nil
}

func (s *Service) GetMyBalance(ctx context.Context, userID string, year int) (leave.BalanceResponse, error) {
	annual, err := s.getOrCreateAnnual(ctx, userID, year)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	comp, err := s.getOrCreateComp(ctx, userID, year)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	used, err := s.recomputeUsedDays(ctx, userID, year)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	return leave.BalanceResponse{
		Year: year,
		Annual: leave.AnnualBalanceDetail{
			TotalDays:        annual.TotalDays,
			UsedDays:         used,
			RecordedUsedDays: annual.UsedDays,
			RemainingDays:    annual.TotalDays - used,
		},
		Comp: leave.CompBalanceDetail{
			TotalHours:     comp.TotalHours,
			UsedHours:      comp.UsedHours,
			RemainingHours: comp.TotalHours - comp.UsedHours,
		},
	}, nil
}

func (s *Service) CreateRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	leaveType := leave.LeaveType(req.LeaveType)

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	days, err := leave.CalculateDays(leaveType, startDate, endDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	// Balance gate applies to annual leave only; comp requests draw from
	// the hour balance at approval time.
	if !leaveType.IsComp() {
		year := startDate.Year()
		annual, err := s.getOrCreateAnnual(ctx, req.UserID, year)
		if err != nil {
			return leave.LeaveRequestResponse{}, err
		}
		used, err := s.recomputeUsedDays(ctx, req.UserID, year)
		if err != nil {
			return leave.LeaveRequestResponse{}, err
		}
		if days > annual.TotalDays-used {
			return leave.LeaveRequestResponse{}, leave.ErrInsufficientBalance
		}
	}

	created, err := s.requests.Create(ctx, leave.LeaveRequest{
		UserID:    req.UserID,
		LeaveType: leaveType,
		StartDate: startDate,
		EndDate:   endDate,
		Days:      days,
		Reason:    req.Reason,
		Status:    leave.LeaveRequestStatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created.ToResponse(), nil
}

func (s *Service) CancelRequest(ctx context.Context, requestID string, callerID string) error {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	if request.UserID != callerID {
		return leave.ErrNotRequestOwner
	}
	if request.Status != leave.LeaveRequestStatusPending {
		return leave.ErrAlreadyProcessed
	}

	return s.requests.Delete(ctx, requestID)
}

// ApproveRequest transitions the request and its balance in one
// transaction, so a failed balance write rolls the approval back.
func (s *Service) ApproveRequest(ctx context.Context, requestID string, approverID string) (leave.LeaveRequestResponse, error) {
	var approved leave.LeaveRequest

	err := s.tx.InTx(ctx, func(txCtx context.Context) error {
		request, err := s.requests.GetByIDForUpdate(txCtx, requestID)
		if err != nil {
			return err
		}
		if request.Status != leave.LeaveRequestStatusPending {
			return leave.ErrAlreadyProcessed
		}

		approvedAt := time.Now()
		if err := s.requests.UpdateStatus(txCtx, leave.UpdateStatusInput{
			ID:         request.ID,
			Status:     leave.LeaveRequestStatusApproved,
			ApproverID: approverID,
			ApprovedAt: approvedAt,
		}); err != nil {
			return err
		}

		year := request.StartDate.Year()
		if request.LeaveType.IsComp() {
			if err := s.compBalances.AddUsedHours(txCtx, request.UserID, year, request.Days*leave.HoursPerDay); err != nil {
				return err
			}
		} else {
			if err := s.balances.AddUsedDays(txCtx, request.UserID, year, request.Days); err != nil {
				return err
			}
		}

		request.Status = leave.LeaveRequestStatusApproved
		request.ApproverID = &approverID
		request.ApprovedAt = &approvedAt
		approved = request
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return approved.ToResponse(), nil
}

func (s *Service) RejectRequest(ctx context.Context, req leave.RejectLeaveRequestRequest, approverID string) error {
	return s.tx.InTx(ctx, func(txCtx context.Context) error {
		request, err := s.requests.GetByIDForUpdate(txCtx, req.RequestID)
		if err != nil {
			return err
		}
		if request.Status != leave.LeaveRequestStatusPending {
			return leave.ErrAlreadyProcessed
		}

		return s.requests.UpdateStatus(txCtx, leave.UpdateStatusInput{
			ID:              request.ID,
			Status:          leave.LeaveRequestStatusRejected,
			ApproverID:      approverID,
			ApprovedAt:      time.Now(),
			RejectionReason: &req.Reason,
		})
	})
}

func (s *Service) ListMyRequests(ctx context.Context, userID string, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestsResponse, error) {
	requests, total, err := s.requests.ListByUser(ctx, userID, filter)
	if err != nil {
		return leave.ListLeaveRequestsResponse{}, err
	}
	return toListResponse(requests, total), nil
}

func (s *Service) ListAllRequests(ctx context.Context, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestsResponse, error) {
	requests, total, err := s.requests.ListAll(ctx, filter)
	if err != nil {
		return leave.ListLeaveRequestsResponse{}, err
	}
	return toListResponse(requests, total), nil
}

func toListResponse(requests []leave.LeaveRequest, total int64) leave.ListLeaveRequestsResponse {
	resp := leave.ListLeaveRequestsResponse{
		Requests: make([]leave.LeaveRequestResponse, 0, len(requests)),
		Total:    total,
	}
	for _, req := range requests {
		resp.Requests = append(resp.Requests, req.ToResponse())
	}
	return resp
}

// ListBalances builds the organization-wide view: recomputed usage per user
// merged over stored balance rows, with rows synthesized for users who have
// approved usage but no stored balance.
func (s *Service) ListBalances(ctx context.Context, year int) ([]leave.UserBalanceSummary, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	stored, err := s.balances.ListByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list balances: %w", err)
	}
	storedByUser := make(map[string]leave.AnnualLeaveBalance, len(stored))
	for _, b := range stored {
		storedByUser[b.UserID] = b
	}

	requests, err := s.requests.ListApprovedByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave requests: %w", err)
	}
	docs, err := s.documents.ListApprovedLeaveByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved attendance documents: %w", err)
	}

	usedByUser := make(map[string]float64)
	for _, req := range requests {
		if !req.LeaveType.IsComp() {
			usedByUser[req.UserID] += req.Days
		}
	}
	for _, doc := range docs {
		if doc.LeaveDays != nil {
			usedByUser[doc.UserID] += *doc.LeaveDays
		}
	}

	summaries := make([]leave.UserBalanceSummary, 0, len(users))
	for _, u := range users {
		summary := leave.UserBalanceSummary{
			UserID:   u.ID,
			UserName: u.FullName,
			Year:     year,
			UsedDays: usedByUser[u.ID],
		}
		if b, ok := storedByUser[u.ID]; ok {
			summary.TotalDays = b.TotalDays
		} else {
			summary.TotalDays = leave.DefaultAnnualAllowanceDays
			summary.Synthesized = true
		}
		summary.RemainingDays = summary.TotalDays - summary.UsedDays
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func (s *Service) SetUserAllowance(ctx context.Context, req leave.SetAllowanceRequest) error {
	if _, err := s.users.GetByID(ctx, req.UserID); err != nil {
		return err
	}
	return s.balances.UpsertTotalDays(ctx, req.UserID, req.Year, req.TotalDays)
}

// Calendar buckets approved leave by day for one month using inclusive
// date-range membership.
func (s *Service) Calendar(ctx context.Context, year int, month time.Month) (leave.CalendarResponse, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	requests, err := s.requests.ListApprovedInRange(ctx, from, to)
	if err != nil {
		return leave.CalendarResponse{}, fmt.Errorf("failed to list approved leave in range: %w", err)
	}

	days := make(map[string][]leave.CalendarEntry)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		for _, req := range requests {
			if !req.CoversDay(day) {
				continue
			}
			key := day.Format("2006-01-02")
			days[key] = append(days[key], leave.CalendarEntry{
				RequestID: req.ID,
				UserID:    req.UserID,
				UserName:  req.UserName,
				LeaveType: string(req.LeaveType),
			})
		}
	}

	return leave.CalendarResponse{
		Year:  year,
		Month: int(month),
		Days:  days,
	}, nil
}
