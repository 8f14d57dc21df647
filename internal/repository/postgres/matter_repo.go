package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"lexvault/internal/domain"
	"lexvault/internal/port"
	"lexvault/internal/sortmap"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type matterRepo struct {
	db *sqlx.DB
}

// NewMatterRepo creates a new PostgreSQL-backed MatterRepository.
func NewMatterRepo(db *sqlx.DB) port.MatterRepository {
	return &matterRepo{db: db}
}

func (r *matterRepo) Create(ctx context.Context, m *domain.Matter) error {
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now

	_, err := querierFrom(ctx, r.db).ExecContext(ctx,
		`INSERT INTO matters (id, description, is_archived, is_deleted, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.Description, m.IsArchived, m.IsDeleted, m.CreatedBy, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("matterRepo.Create: %w", err)
	}
	return nil
}

func (r *matterRepo) GetByID(ctx context.Context, matterID uuid.UUID) (*domain.Matter, error) {
	var m domain.Matter
	err := querierFrom(ctx, r.db).GetContext(ctx, &m,
		"SELECT * FROM matters WHERE id = $1", matterID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatterNotFound
		}
		return nil, fmt.Errorf("matterRepo.GetByID: %w", err)
	}
	return &m, nil
}

func (r *matterRepo) List(ctx context.Context, includeDeleted bool, orderBy []sortmap.Clause, offset, limit int) ([]domain.Matter, int, error) {
	q := querierFrom(ctx, r.db)

	where := sq.Eq{}
	if !includeDeleted {
		where["is_deleted"] = false
	}

	countSQL, countArgs, err := psql.Select("COUNT(*)").From("matters").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("matterRepo.List count build: %w", err)
	}
	var total int
	if err := q.GetContext(ctx, &total, countSQL, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("matterRepo.List count: %w", err)
	}

	selSQL, selArgs, err := psql.Select("*").From("matters").Where(where).
		OrderBy(sortmap.OrderBy(orderBy)...).
		Limit(uint64(limit)).Offset(uint64(offset)).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("matterRepo.List build: %w", err)
	}
	var matters []domain.Matter
	if err := q.SelectContext(ctx, &matters, selSQL, selArgs...); err != nil {
		return nil, 0, fmt.Errorf("matterRepo.List: %w", err)
	}
	return matters, total, nil
}

func (r *matterRepo) Update(ctx context.Context, m *domain.Matter) error {
	m.UpdatedAt = time.Now().UTC()
	result, err := querierFrom(ctx, r.db).ExecContext(ctx,
		`UPDATE matters SET description = $1, is_archived = $2, updated_at = $3
		 WHERE id = $4 AND is_deleted = FALSE`,
		m.Description, m.IsArchived, m.UpdatedAt, m.ID)
	if err != nil {
		return fmt.Errorf("matterRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrMatterNotFound
	}
	return nil
}

func (r *matterRepo) SetDeleted(ctx context.Context, matterID uuid.UUID, deleted bool) error {
	// The WHERE clause re-validates the previous flag at write time, so two
	// concurrent deletes cannot both report success.
	result, err := querierFrom(ctx, r.db).ExecContext(ctx,
		`UPDATE matters SET is_deleted = $1, updated_at = $2
		 WHERE id = $3 AND is_deleted = NOT $1`,
		deleted, time.Now().UTC(), matterID)
	if err != nil {
		return fmt.Errorf("matterRepo.SetDeleted: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		if deleted {
			return domain.ErrAlreadyDeleted
		}
		return domain.ErrNotDeleted
	}
	return nil
}
