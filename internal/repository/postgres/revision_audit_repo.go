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

type revisionAuditRepo struct {
	db *sqlx.DB
}

// NewRevisionAuditRepo creates a new PostgreSQL-backed RevisionAuditRepository.
func NewRevisionAuditRepo(db *sqlx.DB) port.RevisionAuditRepository {
	return &revisionAuditRepo{db: db}
}

func (r *revisionAuditRepo) Create(ctx context.Context, a *domain.RevisionActivity) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	_, err := querierFrom(ctx, r.db).ExecContext(ctx,
		`INSERT INTO revision_activities (id, revision_id, action, user_id, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.RevisionID, a.Action, a.UserID, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("revisionAuditRepo.Create: %w", err)
	}
	return nil
}

func (r *revisionAuditRepo) ListByRevision(ctx context.Context, revisionID uuid.UUID, orderBy []sortmap.Clause, offset, limit int) ([]domain.RevisionActivity, int, error) {
	q := querierFrom(ctx, r.db)
	where := sq.Eq{"revision_id": revisionID}

	countSQL, countArgs, err := psql.Select("COUNT(*)").From("revision_activities").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("revisionAuditRepo.ListByRevision count build: %w", err)
	}
	var total int
	if err := q.GetContext(ctx, &total, countSQL, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("revisionAuditRepo.ListByRevision count: %w", err)
	}

	selSQL, selArgs, err := psql.Select("*").From("revision_activities").Where(where).
		OrderBy(sortmap.OrderBy(orderBy)...).
		Limit(uint64(limit)).Offset(uint64(offset)).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("revisionAuditRepo.ListByRevision build: %w", err)
	}
	var entries []domain.RevisionActivity
	if err := q.SelectContext(ctx, &entries, selSQL, selArgs...); err != nil {
		return nil, 0, fmt.Errorf("revisionAuditRepo.ListByRevision: %w", err)
	}
	return entries, total, nil
}
