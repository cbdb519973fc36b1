package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/teamhub-intranet/leave-backend-go/internal/domain/document"
	"github.com/teamhub-intranet/leave-backend-go/internal/pkg/database"
)

type documentRepositoryImpl struct {
	db *database.DB
}

func NewDocumentRepository(db *database.DB) document.DocumentRepository {
	return &documentRepositoryImpl{db: db}
}

const documentColumns = `
	d.id, d.user_id, d.label_id, d.title, d.body,
	d.attendance_type, d.leave_type, d.leave_days, d.start_date, d.end_date,
	d.status, d.approver_id, d.approved_at, d.rejection_reason,
	d.created_at, d.updated_at,
	u.full_name AS user_name,
	dl.name AS label_name
`

func scanDocument(row pgx.Row) (document.Document, error) {
	var doc document.Document
	var userName, labelName string
	err := row.Scan(
		&doc.ID, &doc.UserID, &doc.LabelID, &doc.Title, &doc.Body,
		&doc.AttendanceType, &doc.LeaveType, &doc.LeaveDays, &doc.StartDate, &doc.EndDate,
		&doc.Status, &doc.ApproverID, &doc.ApprovedAt, &doc.RejectionReason,
		&doc.CreatedAt, &doc.UpdatedAt,
		&userName,
		&labelName,
	)
	if err != nil {
		return document.Document{}, err
	}
	doc.UserName = &userName
	doc.LabelName = &labelName
	return doc, nil
}

func (r *documentRepositoryImpl) Create(ctx context.Context, doc document.Document) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO documents (
			id, user_id, label_id, title, body,
			attendance_type, leave_type, leave_days, start_date, end_date,
			status, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		doc.UserID, doc.LabelID, doc.Title, doc.Body,
		doc.AttendanceType, doc.LeaveType, doc.LeaveDays, doc.StartDate, doc.EndDate,
		doc.Status,
	).Scan(&doc.ID, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		return document.Document{}, err
	}

	return doc, nil
}

func (r *documentRepositoryImpl) GetByID(ctx context.Context, id string) (document.Document, error) {
	return r.getByID(ctx, id, false)
}

func (r *documentRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (document.Document, error) {
	return r.getByID(ctx, id, true)
}

func (r *documentRepositoryImpl) getByID(ctx context.Context, id string, forUpdate bool) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + documentColumns + `
		FROM documents d
		JOIN users u ON d.user_id = u.id
		JOIN document_labels dl ON d.label_id = dl.id
		WHERE d.id = $1
	`
	if forUpdate {
		query += " FOR UPDATE OF d"
	}

	doc, err := scanDocument(q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return document.Document{}, document.ErrDocumentNotFound
	}
	return doc, err
}

func buildDocumentWhere(filter document.DocumentFilter, clauses []string, args []interface{}) ([]string, []interface{}) {
	if filter.LabelID != nil && *filter.LabelID != "" {
		args = append(args, *filter.LabelID)
		clauses = append(clauses, fmt.Sprintf("d.label_id = $%d", len(args)))
	}
	if filter.Status != nil && *filter.Status != "" {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("d.status = $%d", len(args)))
	}
	if filter.AttendanceType != nil && *filter.AttendanceType != "" {
		args = append(args, *filter.AttendanceType)
		clauses = append(clauses, fmt.Sprintf("d.attendance_type = $%d", len(args)))
	}
	return clauses, args
}

func (r *documentRepositoryImpl) list(ctx context.Context, clauses []string, args []interface{}, page, limit int) ([]document.Document, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := ""
	if len(clauses) > 0 {
		whereClause = "WHERE " + strings.Join(clauses, " AND ")
	}

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM documents d
		JOIN users u ON d.user_id = u.id
		JOIN document_labels dl ON d.label_id = dl.id
		%s
	`, whereClause)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count documents: %w", err)
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
		FROM documents d
		JOIN users u ON d.user_id = u.id
		JOIN document_labels dl ON d.label_id = dl.id
		%s
		ORDER BY d.created_at DESC
		LIMIT $%d OFFSET $%d
	`, documentColumns, whereClause, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []document.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return docs, total, nil
}

func (r *documentRepositoryImpl) ListByUser(ctx context.Context, userID string, filter document.DocumentFilter) ([]document.Document, int64, error) {
	clauses := []string{"d.user_id = $1"}
	args := []interface{}{userID}
	clauses, args = buildDocumentWhere(filter, clauses, args)
	return r.list(ctx, clauses, args, filter.Page, filter.Limit)
}

func (r *documentRepositoryImpl) ListAll(ctx context.Context, filter document.DocumentFilter) ([]document.Document, int64, error) {
	clauses, args := buildDocumentWhere(filter, nil, nil)
	return r.list(ctx, clauses, args, filter.Page, filter.Limit)
}

func (r *documentRepositoryImpl) ListApprovedLeaveByYear(ctx context.Context, year int) ([]document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + documentColumns + `
		FROM documents d
		JOIN users u ON d.user_id = u.id
		JOIN document_labels dl ON d.label_id = dl.id
		WHERE d.status = 'approved'
		  AND d.attendance_type = 'leave'
		  AND EXTRACT(YEAR FROM d.start_date) = $1
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []document.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

func (r *documentRepositoryImpl) UpdateStatus(ctx context.Context, update document.UpdateStatusInput) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE documents
		SET status = $1, approver_id = $2, approved_at = $3, rejection_reason = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		update.Status, update.ApproverID, update.ApprovedAt, update.RejectionReason, update.ID,
	).Scan(&updatedID)
	if err == pgx.ErrNoRows {
		return document.ErrDocumentNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update status for document %s: %w", update.ID, err)
	}
	return nil
}

func (r *documentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return document.ErrDocumentNotFound
	}
	return nil
}
