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

type matterDocumentAuditRepo struct {
	db *sqlx.DB
}

// NewMatterDocumentAuditRepo creates a new PostgreSQL-backed
// MatterDocumentAuditRepository for cross-matter transfer records.
func NewMatterDocumentAuditRepo(db *sqlx.DB) port.MatterDocumentAuditRepository {
	return &matterDocumentAuditRepo{db: db}
}

func (r *matterDocumentAuditRepo) Create(ctx context.Context, a *domain.MatterDocumentActivity) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	_, err := querierFrom(ctx, r.db).ExecContext(ctx,
		`INSERT INTO matter_document_activities
			(id, matter_id, counterpart_matter_id, document_id, action, direction, user_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.MatterID, a.CounterpartMatterID, a.DocumentID, a.Action, a.Direction, a.UserID, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("matterDocumentAuditRepo.Create: %w", err)
	}
	return nil
}

func (r *matterDocumentAuditRepo) ListByMatter(ctx context.Context, matterID uuid.UUID, direction *domain.TransferDirection, orderBy []sortmap.Clause, offset, limit int) ([]domain.MatterDocumentActivity, int, error) {
	where := sq.Eq{"matter_id": matterID}
	if direction != nil {
		where["direction"] = *direction
	}
	return r.list(ctx, where, orderBy, offset, limit)
}

func (r *matterDocumentAuditRepo) ListByDocument(ctx context.Context, documentID uuid.UUID, direction *domain.TransferDirection, orderBy []sortmap.Clause, offset, limit int) ([]domain.MatterDocumentActivity, int, error) {
	where := sq.Eq{"document_id": documentID}
	if direction != nil {
		where["direction"] = *direction
	}
	return r.list(ctx, where, orderBy, offset, limit)
}

func (r *matterDocumentAuditRepo) list(ctx context.Context, where sq.Eq, orderBy []sortmap.Clause, offset, limit int) ([]domain.MatterDocumentActivity, int, error) {
	q := querierFrom(ctx, r.db)

	countSQL, countArgs, err := psql.Select("COUNT(*)").From("matter_document_activities").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("matterDocumentAuditRepo.list count build: %w", err)
	}
	var total int
	if err := q.GetContext(ctx, &total, countSQL, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("matterDocumentAuditRepo.list count: %w", err)
	}

	selSQL, selArgs, err := psql.Select("*").From("matter_document_activities").Where(where).
		OrderBy(sortmap.OrderBy(orderBy)...).
		Limit(uint64(limit)).Offset(uint64(offset)).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("matterDocumentAuditRepo.list build: %w", err)
	}
	var entries []domain.MatterDocumentActivity
	if err := q.SelectContext(ctx, &entries, selSQL, selArgs...); err != nil {
		return nil, 0, fmt.Errorf("matterDocumentAuditRepo.list: %w", err)
	}
	return entries, total, nil
}
