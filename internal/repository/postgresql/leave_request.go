package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/teamhub-intranet/leave-backend-go/internal/domain/leave"
	"github.com/teamhub-intranet/leave-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.user_id, lr.leave_type, lr.start_date, lr.end_date, lr.days,
	lr.reason, lr.status, lr.approver_id, lr.approved_at, lr.rejection_reason,
	lr.created_at, lr.updated_at,
	u.full_name AS user_name
`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	var userName string
	err := row.Scan(
		&req.ID, &req.UserID, &req.LeaveType, &req.StartDate, &req.EndDate, &req.Days,
		&req.Reason, &req.Status, &req.ApproverID, &req.ApprovedAt, &req.RejectionReason,
		&req.CreatedAt, &req.UpdatedAt,
		&userName,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	req.UserName = &userName
	return req, nil
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, user_id, leave_type, start_date, end_date, days, reason, status, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.UserID, request.LeaveType, request.StartDate, request.EndDate,
		request.Days, request.Reason, request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return r.getByID(ctx, id, false)
}

func (r *leaveRequestRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return r.getByID(ctx, id, true)
}

func (r *leaveRequestRepositoryImpl) getByID(ctx context.Context, id string, forUpdate bool) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN users u ON lr.user_id = u.id
		WHERE lr.id = $1
	`
	if forUpdate {
		query += " FOR UPDATE OF lr"
	}

	req, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, err
}

func buildLeaveRequestWhere(filter leave.LeaveRequestFilter, clauses []string, args []interface{}) ([]string, []interface{}) {
	if filter.Status != nil && *filter.Status != "" {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("lr.status = $%d", len(args)))
	}
	if filter.LeaveType != nil && *filter.LeaveType != "" {
		args = append(args, *filter.LeaveType)
		clauses = append(clauses, fmt.Sprintf("lr.leave_type = $%d", len(args)))
	}
	if filter.Year != nil {
		args = append(args, *filter.Year)
		clauses = append(clauses, fmt.Sprintf("EXTRACT(YEAR FROM lr.start_date) = $%d", len(args)))
	}
	return clauses, args
}

func (r *leaveRequestRepositoryImpl) list(ctx context.Context, clauses []string, args []interface{}, page, limit int) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := ""
	if len(clauses) > 0 {
		whereClause = "WHERE " + strings.Join(clauses, " AND ")
	}

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM leave_requests lr
		JOIN users u ON lr.user_id = u.id
		%s
	`, whereClause)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests lr
		JOIN users u ON lr.user_id = u.id
		%s
		ORDER BY lr.created_at DESC
		LIMIT $%d OFFSET $%d
	`, leaveRequestColumns, whereClause, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, total, nil
}

func (r *leaveRequestRepositoryImpl) ListByUser(ctx context.Context, userID string, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	clauses := []string{"lr.user_id = $1"}
	args := []interface{}{userID}
	clauses, args = buildLeaveRequestWhere(filter, clauses, args)
	return r.list(ctx, clauses, args, filter.Page, filter.Limit)
}

func (r *leaveRequestRepositoryImpl) ListAll(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	clauses, args := buildLeaveRequestWhere(filter, nil, nil)
	return r.list(ctx, clauses, args, filter.Page, filter.Limit)
}

func (r *leaveRequestRepositoryImpl) ListApprovedByYear(ctx context.Context, year int) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN users u ON lr.user_id = u.id
		WHERE lr.status = 'approved' AND EXTRACT(YEAR FROM lr.start_date) = $1
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func (r *leaveRequestRepositoryImpl) ListApprovedInRange(ctx context.Context, from, to time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN users u ON lr.user_id = u.id
		WHERE lr.status = 'approved' AND lr.start_date <= $2 AND lr.end_date >= $1
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, update leave.UpdateStatusInput) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, approver_id = $2, approved_at = $3, rejection_reason = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		update.Status, update.ApproverID, update.ApprovedAt, update.RejectionReason, update.ID,
	).Scan(&updatedID)
	if err == pgx.ErrNoRows {
		return leave.ErrLeaveRequestNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update status for leave request %s: %w", update.ID, err)
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}
