package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lexvault/internal/domain"
	"lexvault/internal/port"
	"lexvault/internal/sortmap"
)

type documentAuditRepo struct {
	db *sqlx.DB
}

// NewDocumentAuditRepo creates a new PostgreSQL-backed DocumentAuditRepository.
func NewDocumentAuditRepo(db *sqlx.DB) port.DocumentAuditRepository {
	return &documentAuditRepo{db: db}
}

func (r *documentAuditRepo) Create(ctx context.Context, a *domain.DocumentActivity) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	_, err := querierFrom(ctx, r.db).ExecContext(ctx,
		`INSERT INTO document_activities (id, document_id, action, user_id, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.DocumentID, a.Action, a.UserID, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("documentAuditRepo.Create: %w", err)
	}
	return nil
}

func (r *documentAuditRepo) ListByDocument(ctx context.Context, documentID uuid.UUID, orderBy []sortmap.Clause, offset, limit int) ([]domain.DocumentActivity, int, error) {
	q := querierFrom(ctx, r.db)
	where := sq.Eq{"document_id": documentID}

	countSQL, countArgs, err := psql.Select("COUNT(*)").From("document_activities").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("documentAuditRepo.ListByDocument count build: %w", err)
	}
	var total int
	if err := q.GetContext(ctx, &total, countSQL, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("documentAuditRepo.ListByDocument count: %w", err)
	}

	selSQL, selArgs, err := psql.Select("*").From("document_activities").Where(where).
		OrderBy(sortmap.OrderBy(orderBy)...).
		Limit(uint64(limit)).Offset(uint64(offset)).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("documentAuditRepo.ListByDocument build: %w", err)
	}
	var entries []domain.DocumentActivity
	if err := q.SelectContext(ctx, &entries, selSQL, selArgs...); err != nil {
		return nil, 0, fmt.Errorf("documentAuditRepo.ListByDocument: %w", err)
	}
	return entries, total, nil
}
