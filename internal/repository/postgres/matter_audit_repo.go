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

type matterAuditRepo struct {
	db *sqlx.DB
}

// NewMatterAuditRepo creates a new PostgreSQL-backed MatterAuditRepository.
// The backing table is append-only: no update or delete statement exists
// anywhere in this package for it.
func NewMatterAuditRepo(db *sqlx.DB) port.MatterAuditRepository {
	return &matterAuditRepo{db: db}
}

func (r *matterAuditRepo) Create(ctx context.Context, a *domain.MatterActivity) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	_, err := querierFrom(ctx, r.db).ExecContext(ctx,
		`INSERT INTO matter_activities (id, matter_id, action, user_id, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.MatterID, a.Action, a.UserID, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("matterAuditRepo.Create: %w", err)
	}
	return nil
}

func (r *matterAuditRepo) ListByMatter(ctx context.Context, matterID uuid.UUID, orderBy []sortmap.Clause, offset, limit int) ([]domain.MatterActivity, int, error) {
	q := querierFrom(ctx, r.db)
	where := sq.Eq{"matter_id": matterID}

	countSQL, countArgs, err := psql.Select("COUNT(*)").From("matter_activities").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("matterAuditRepo.ListByMatter count build: %w", err)
	}
	var total int
	if err := q.GetContext(ctx, &total, countSQL, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("matterAuditRepo.ListByMatter count: %w", err)
	}

	selSQL, selArgs, err := psql.Select("*").From("matter_activities").Where(where).
		OrderBy(sortmap.OrderBy(orderBy)...).
		Limit(uint64(limit)).Offset(uint64(offset)).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("matterAuditRepo.ListByMatter build: %w", err)
	}
	var entries []domain.MatterActivity
	if err := q.SelectContext(ctx, &entries, selSQL, selArgs...); err != nil {
		return nil, 0, fmt.Errorf("matterAuditRepo.ListByMatter: %w", err)
	}
	return entries, total, nil
}
