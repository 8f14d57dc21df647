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

type revisionRepo struct {
	db *sqlx.DB
}

// NewRevisionRepo creates a new PostgreSQL-backed RevisionRepository.
func NewRevisionRepo(db *sqlx.DB) port.RevisionRepository {
	return &revisionRepo{db: db}
}

func (r *revisionRepo) Create(ctx context.Context, rev *domain.Revision) error {
	rev.CreatedAt = time.Now().UTC()

	_, err := querierFrom(ctx, r.db).ExecContext(ctx,
		`INSERT INTO revisions (id, document_id, revision_number, checksum, file_size, is_deleted, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rev.ID, rev.DocumentID, rev.RevisionNumber, rev.Checksum, rev.FileSize,
		rev.IsDeleted, rev.CreatedBy, rev.CreatedAt)
	if err != nil {
		return fmt.Errorf("revisionRepo.Create: %w", err)
	}
	return nil
}

func (r *revisionRepo) GetByID(ctx context.Context, revisionID uuid.UUID) (*domain.Revision, error) {
	var rev domain.Revision
	err := querierFrom(ctx, r.db).GetContext(ctx, &rev,
		"SELECT * FROM revisions WHERE id = $1", revisionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRevisionNotFound
		}
		return nil, fmt.Errorf("revisionRepo.GetByID: %w", err)
	}
	return &rev, nil
}

func (r *revisionRepo) ListByDocument(ctx context.Context, documentID uuid.UUID, includeDeleted bool, orderBy []sortmap.Clause, offset, limit int) ([]domain.Revision, int, error) {
	q := querierFrom(ctx, r.db)

	where := sq.Eq{"document_id": documentID}
	if !includeDeleted {
		where["is_deleted"] = false
	}

	countSQL, countArgs, err := psql.Select("COUNT(*)").From("revisions").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("revisionRepo.ListByDocument count build: %w", err)
	}
	var total int
	if err := q.GetContext(ctx, &total, countSQL, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("revisionRepo.ListByDocument count: %w", err)
	}

	selSQL, selArgs, err := psql.Select("*").From("revisions").Where(where).
		OrderBy(sortmap.OrderBy(orderBy)...).
		Limit(uint64(limit)).Offset(uint64(offset)).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("revisionRepo.ListByDocument build: %w", err)
	}
	var revs []domain.Revision
	if err := q.SelectContext(ctx, &revs, selSQL, selArgs...); err != nil {
		return nil, 0, fmt.Errorf("revisionRepo.ListByDocument: %w", err)
	}
	return revs, total, nil
}

func (r *revisionRepo) NextNumber(ctx context.Context, documentID uuid.UUID) (int, error) {
	// Deleted revisions keep their numbers, so MAX runs over all rows.
	var next int
	err := querierFrom(ctx, r.db).GetContext(ctx, &next,
		"SELECT COALESCE(MAX(revision_number), 0) + 1 FROM revisions WHERE document_id = $1",
		documentID)
	if err != nil {
		return 0, fmt.Errorf("revisionRepo.NextNumber: %w", err)
	}
	return next, nil
}

func (r *revisionRepo) SetDeleted(ctx context.Context, revisionID uuid.UUID, deleted bool) error {
	result, err := querierFrom(ctx, r.db).ExecContext(ctx,
		`UPDATE revisions SET is_deleted = $1 WHERE id = $2 AND is_deleted = NOT $1`,
		deleted, revisionID)
	if err != nil {
		return fmt.Errorf("revisionRepo.SetDeleted: %w", err)
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
