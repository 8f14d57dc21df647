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

type documentRepo struct {
	db *sqlx.DB
}

// NewDocumentRepo creates a new PostgreSQL-backed DocumentRepository.
func NewDocumentRepo(db *sqlx.DB) port.DocumentRepository {
	return &documentRepo{db: db}
}

func (r *documentRepo) Create(ctx context.Context, d *domain.Document) error {
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now

	_, err := querierFrom(ctx, r.db).ExecContext(ctx,
		`INSERT INTO documents (
			id, matter_id, file_name, extension, file_size, mime_type, checksum,
			is_checked_out, checked_out_by, is_deleted, created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		d.ID, d.MatterID, d.FileName, d.Extension, d.FileSize, d.MimeType, d.Checksum,
		d.IsCheckedOut, d.CheckedOutBy, d.IsDeleted, d.CreatedBy, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("documentRepo.Create: %w", err)
	}
	return nil
}

func (r *documentRepo) GetByID(ctx context.Context, documentID uuid.UUID) (*domain.Document, error) {
	var d domain.Document
	err := querierFrom(ctx, r.db).GetContext(ctx, &d,
		"SELECT * FROM documents WHERE id = $1", documentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("documentRepo.GetByID: %w", err)
	}
	return &d, nil
}

func (r *documentRepo) ListByMatter(ctx context.Context, matterID uuid.UUID, includeDeleted bool, orderBy []sortmap.Clause, offset, limit int) ([]domain.Document, int, error) {
	q := querierFrom(ctx, r.db)

	where := sq.Eq{"matter_id": matterID}
	if !includeDeleted {
		where["is_deleted"] = false
	}

	countSQL, countArgs, err := psql.Select("COUNT(*)").From("documents").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("documentRepo.ListByMatter count build: %w", err)
	}
	var total int
	if err := q.GetContext(ctx, &total, countSQL, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("documentRepo.ListByMatter count: %w", err)
	}

	selSQL, selArgs, err := psql.Select("*").From("documents").Where(where).
		OrderBy(sortmap.OrderBy(orderBy)...).
		Limit(uint64(limit)).Offset(uint64(offset)).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("documentRepo.ListByMatter build: %w", err)
	}
	var docs []domain.Document
	if err := q.SelectContext(ctx, &docs, selSQL, selArgs...); err != nil {
		return nil, 0, fmt.Errorf("documentRepo.ListByMatter: %w", err)
	}
	return docs, total, nil
}

func (r *documentRepo) Update(ctx context.Context, d *domain.Document) error {
	d.UpdatedAt = time.Now().UTC()
	result, err := querierFrom(ctx, r.db).ExecContext(ctx,
		`UPDATE documents SET file_name = $1, extension = $2, file_size = $3,
			mime_type = $4, checksum = $5, updated_at = $6
		 WHERE id = $7 AND is_deleted = FALSE`,
		d.FileName, d.Extension, d.FileSize, d.MimeType, d.Checksum, d.UpdatedAt, d.ID)
	if err != nil {
		return fmt.Errorf("documentRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

func (r *documentRepo) SetDeleted(ctx context.Context, documentID uuid.UUID, deleted bool) error {
	// Deleting also requires the document not be checked out; the predicate
	// enforces the deleted/checked-out exclusion at write time.
	var result sql.Result
	var err error
	if deleted {
		result, err = querierFrom(ctx, r.db).ExecContext(ctx,
			`UPDATE documents SET is_deleted = TRUE, updated_at = $1
			 WHERE id = $2 AND is_deleted = FALSE AND is_checked_out = FALSE`,
			time.Now().UTC(), documentID)
	} else {
		result, err = querierFrom(ctx, r.db).ExecContext(ctx,
			`UPDATE documents SET is_deleted = FALSE, updated_at = $1
			 WHERE id = $2 AND is_deleted = TRUE`,
			time.Now().UTC(), documentID)
	}
	if err != nil {
		return fmt.Errorf("documentRepo.SetDeleted: %w", err)
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

func (r *documentRepo) SetCheckState(ctx context.Context, documentID, userID uuid.UUID, checkedOut bool) error {
	q := querierFrom(ctx, r.db)
	now := time.Now().UTC()

	var result sql.Result
	var err error
	if checkedOut {
		result, err = q.ExecContext(ctx,
			`UPDATE documents SET is_checked_out = TRUE, checked_out_by = $1, updated_at = $2
			 WHERE id = $3 AND is_checked_out = FALSE AND is_deleted = FALSE`,
			userID, now, documentID)
	} else {
		result, err = q.ExecContext(ctx,
			`UPDATE documents SET is_checked_out = FALSE, checked_out_by = NULL, updated_at = $1
			 WHERE id = $2 AND is_checked_out = TRUE`,
			now, documentID)
	}
	if err != nil {
		return fmt.Errorf("documentRepo.SetCheckState: %w", err)
	}

	// Zero rows means the state changed under us since validation: the
	// conditional write is what resolves concurrent checkout attempts.
	rows, _ := result.RowsAffected()
	if rows == 0 {
		if checkedOut {
			return domain.ErrDocumentCheckedOut
		}
		return domain.ErrDocumentNotCheckedOut
	}
	return nil
}

func (r *documentRepo) Reassign(ctx context.Context, documentID, targetMatterID uuid.UUID) error {
	result, err := querierFrom(ctx, r.db).ExecContext(ctx,
		`UPDATE documents SET matter_id = $1, updated_at = $2 WHERE id = $3`,
		targetMatterID, time.Now().UTC(), documentID)
	if err != nil {
		return fmt.Errorf("documentRepo.Reassign: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

func (r *documentRepo) FileNameExists(ctx context.Context, matterID uuid.UUID, fileName string) (bool, error) {
	var exists bool
	err := querierFrom(ctx, r.db).GetContext(ctx, &exists,
		`SELECT EXISTS (
			SELECT 1 FROM documents
			WHERE matter_id = $1 AND lower(file_name) = lower($2) AND is_deleted = FALSE
		)`, matterID, fileName)
	if err != nil {
		return false, fmt.Errorf("documentRepo.FileNameExists: %w", err)
	}
	return exists, nil
}
