package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/teamhub-intranet/leave-backend-go/internal/domain/overtime"
	"github.com/teamhub-intranet/leave-backend-go/internal/pkg/database"
)

type overtimeRepositoryImpl struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepositoryImpl{db: db}
}

const overtimeColumns = `
	ot.id, ot.user_id, ot.start_at, ot.end_at, ot.reason, ot.status,
	ot.approver_id, ot.approved_at, ot.rejection_reason, ot.created_at, ot.updated_at,
	u.full_name AS user_name
`

func scanOvertime(row pgx.Row) (overtime.OvertimeRequest, error) {
	var req overtime.OvertimeRequest
	var userName string
	err := row.Scan(
		&req.ID, &req.UserID, &req.StartAt, &req.EndAt, &req.Reason, &req.Status,
		&req.ApproverID, &req.ApprovedAt, &req.RejectionReason, &req.CreatedAt, &req.UpdatedAt,
		&userName,
	)
	if err != nil {
		return overtime.OvertimeRequest{}, err
	}
	req.UserName = &userName
	return req, nil
}

func (r *overtimeRepositoryImpl) Create(ctx context.Context, request overtime.OvertimeRequest) (overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtime_requests (id, user_id, start_at, end_at, reason, status, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.UserID, request.StartAt, request.EndAt, request.Reason, request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return overtime.OvertimeRequest{}, err
	}

	return request, nil
}

func (r *overtimeRepositoryImpl) GetByID(ctx context.Context, id string) (overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime_requests ot
		JOIN users u ON ot.user_id = u.id
		WHERE ot.id = $1
	`

	req, err := scanOvertime(q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return overtime.OvertimeRequest{}, overtime.ErrOvertimeNotFound
	}
	return req, err
}

func (r *overtimeRepositoryImpl) list(ctx context.Context, clauses []string, args []interface{}, page, limit int) ([]overtime.OvertimeRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := ""
	if len(clauses) > 0 {
		whereClause = "WHERE " + strings.Join(clauses, " AND ")
	}

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM overtime_requests ot
		JOIN users u ON ot.user_id = u.id
		%s
	`, whereClause)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count overtime requests: %w", err)
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
		FROM overtime_requests ot
		JOIN users u ON ot.user_id = u.id
		%s
		ORDER BY ot.created_at DESC
		LIMIT $%d OFFSET $%d
	`, overtimeColumns, whereClause, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query overtime requests: %w", err)
	}
	defer rows.Close()

	var requests []overtime.OvertimeRequest
	for rows.Next() {
		req, err := scanOvertime(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan overtime request: %w", err)
		}
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, total, nil
}

func buildOvertimeWhere(filter overtime.OvertimeFilter, clauses []string, args []interface{}) ([]string, []interface{}) {
	if filter.Status != nil && *filter.Status != "" {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("ot.status = $%d", len(args)))
	}
	if filter.Year != nil {
		args = append(args, *filter.Year)
		clauses = append(clauses, fmt.Sprintf("EXTRACT(YEAR FROM ot.start_at) = $%d", len(args)))
	}
	return clauses, args
}

func (r *overtimeRepositoryImpl) ListByUser(ctx context.Context, userID string, filter overtime.OvertimeFilter) ([]overtime.OvertimeRequest, int64, error) {
	clauses := []string{"ot.user_id = $1"}
	args := []interface{}{userID}
	clauses, args = buildOvertimeWhere(filter, clauses, args)
	return r.list(ctx, clauses, args, filter.Page, filter.Limit)
}

func (r *overtimeRepositoryImpl) ListAll(ctx context.Context, filter overtime.OvertimeFilter) ([]overtime.OvertimeRequest, int64, error) {
	clauses, args := buildOvertimeWhere(filter, nil, nil)
	return r.list(ctx, clauses, args, filter.Page, filter.Limit)
}

func (r *overtimeRepositoryImpl) UpdateStatus(ctx context.Context, update overtime.UpdateStatusInput) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE overtime_requests
		SET status = $1, approver_id = $2, approved_at = $3, rejection_reason = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		update.Status, update.ApproverID, update.ApprovedAt, update.RejectionReason, update.ID,
	).Scan(&updatedID)
	if err == pgx.ErrNoRows {
		return overtime.ErrOvertimeNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update status for overtime request %s: %w", update.ID, err)
	}
	return nil
}

func (r *overtimeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM overtime_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return overtime.ErrOvertimeNotFound
	}
	return nil
}
