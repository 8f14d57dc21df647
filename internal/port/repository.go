package port

import (
	"context"

	"github.com/google/uuid"

	"lexvault/internal/domain"
	"lexvault/internal/sortmap"
)

// MatterRepository defines the contract for matter persistence. Mutations
// participate in an ambient transaction when one is carried by the context.
type MatterRepository interface {
	Create(ctx context.Context, m *domain.Matter) error
	GetByID(ctx context.Context, matterID uuid.UUID) (*domain.Matter, error)
	List(ctx context.Context, includeDeleted bool, orderBy []sortmap.Clause, offset, limit int) ([]domain.Matter, int, error)
	Update(ctx context.Context, m *domain.Matter) error
	SetDeleted(ctx context.Context, matterID uuid.UUID, deleted bool) error
}

// DocumentRepository defines the contract for document persistence.
type DocumentRepository interface {
	Create(ctx context.Context, d *domain.Document) error
	GetByID(ctx context.Context, documentID uuid.UUID) (*domain.Document, error)
	ListByMatter(ctx context.Context, matterID uuid.UUID, includeDeleted bool, orderBy []sortmap.Clause, offset, limit int) ([]domain.Document, int, error)
	Update(ctx context.Context, d *domain.Document) error
	SetDeleted(ctx context.Context, documentID uuid.UUID, deleted bool) error
	// SetCheckState transitions the checkout flag with a conditional write:
	// the previous state is re-validated at commit time so concurrent
	// checkout attempts cannot both win.
	SetCheckState(ctx context.Context, documentID, userID uuid.UUID, checkedOut bool) error
	// Reassign moves the document under a different matter.
	Reassign(ctx context.Context, documentID, targetMatterID uuid.UUID) error
	// FileNameExists reports whether a non-deleted document with the given
	// file name already exists in the matter.
	FileNameExists(ctx context.Context, matterID uuid.UUID, fileName string) (bool, error)
}

// RevisionRepository defines the contract for revision persistence.
type RevisionRepository interface {
	Create(ctx context.Context, r *domain.Revision) error
	GetByID(ctx context.Context, revisionID uuid.UUID) (*domain.Revision, error)
	ListByDocument(ctx context.Context, documentID uuid.UUID, includeDeleted bool, orderBy []sortmap.Clause, offset, limit int) ([]domain.Revision, int, error)
	// NextNumber returns max(existing revision numbers)+1 for the document.
	// Numbers are never reused, even after deletion, so deleted revisions
	// count. Must be called inside the same transaction as the Create that
	// consumes the number.
	NextNumber(ctx context.Context, documentID uuid.UUID) (int, error)
	SetDeleted(ctx context.Context, revisionID uuid.UUID, deleted bool) error
}

// TxManager runs a function inside a single database transaction. Repository
// calls made with the callback's context join that transaction, so an entity
// mutation and its audit append commit atomically or not at all.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
