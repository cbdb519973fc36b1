package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/teamhub-intranet/leave-backend-go/internal/domain/document"
	"github.com/teamhub-intranet/leave-backend-go/internal/pkg/database"
)

type documentLabelRepositoryImpl struct {
	db *database.DB
}

func NewDocumentLabelRepository(db *database.DB) document.DocumentLabelRepository {
	return &documentLabelRepositoryImpl{db: db}
}

func (r *documentLabelRepositoryImpl) Create(ctx context.Context, label document.DocumentLabel) (document.DocumentLabel, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO document_labels (id, name, category, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, label.Name, label.Category).Scan(&label.ID, &label.CreatedAt, &label.UpdatedAt)
	if err != nil {
		return document.DocumentLabel{}, err
	}

	return label, nil
}

func (r *documentLabelRepositoryImpl) GetByID(ctx context.Context, id string) (document.DocumentLabel, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, category, created_at, updated_at
		FROM document_labels
		WHERE id = $1
	`

	var label document.DocumentLabel
	err := q.QueryRow(ctx, query, id).Scan(&label.ID, &label.Name, &label.Category, &label.CreatedAt, &label.UpdatedAt)
	if err == pgx.ErrNoRows {
		return document.DocumentLabel{}, document.ErrLabelNotFound
	}
	return label, err
}

func (r *documentLabelRepositoryImpl) List(ctx context.Context) ([]document.DocumentLabel, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, category, created_at, updated_at FROM document_labels ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var labels []document.DocumentLabel
	for rows.Next() {
		var label document.DocumentLabel
		if err := rows.Scan(&label.ID, &label.Name, &label.Category, &label.CreatedAt, &label.UpdatedAt); err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}

	return labels, rows.Err()
}
