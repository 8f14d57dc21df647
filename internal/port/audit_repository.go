package port

import (
	"context"

	"github.com/google/uuid"

	"lexvault/internal/domain"
	"lexvault/internal/sortmap"
)

// The audit repositories are append-only ledgers: Create inserts one
// immutable row and nothing ever updates or deletes existing rows. Create is
// callable with an ambient transaction so the append commits together with
// the entity mutation it records.

// MatterAuditRepository persists matter activity records.
type MatterAuditRepository interface {
	Create(ctx context.Context, a *domain.MatterActivity) error
	ListByMatter(ctx context.Context, matterID uuid.UUID, orderBy []sortmap.Clause, offset, limit int) ([]domain.MatterActivity, int, error)
}

// DocumentAuditRepository persists document activity records.
type DocumentAuditRepository interface {
	Create(ctx context.Context, a *domain.DocumentActivity) error
	ListByDocument(ctx context.Context, documentID uuid.UUID, orderBy []sortmap.Clause, offset, limit int) ([]domain.DocumentActivity, int, error)
}

// RevisionAuditRepository persists revision activity records.
type RevisionAuditRepository interface {
	Create(ctx context.Context, a *domain.RevisionActivity) error
	ListByRevision(ctx context.Context, revisionID uuid.UUID, orderBy []sortmap.Clause, offset, limit int) ([]domain.RevisionActivity, int, error)
}

// MatterDocumentAuditRepository persists cross-matter transfer records.
// direction, when non-nil, restricts results to the FROM or TO side.
type MatterDocumentAuditRepository interface {
	Create(ctx context.Context, a *domain.MatterDocumentActivity) error
	ListByMatter(ctx context.Context, matterID uuid.UUID, direction *domain.TransferDirection, orderBy []sortmap.Clause, offset, limit int) ([]domain.MatterDocumentActivity, int, error)
	ListByDocument(ctx context.Context, documentID uuid.UUID, direction *domain.TransferDirection, orderBy []sortmap.Clause, offset, limit int) ([]domain.MatterDocumentActivity, int, error)
}
