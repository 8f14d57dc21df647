package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"lexvault/internal/domain"
	"lexvault/internal/pagination"
	"lexvault/internal/port"
	"lexvault/internal/sortmap"
	"lexvault/internal/validation"
)

// AddRevisionInput is the command payload for adding a revision to a
// document. The revision number is assigned inside the transaction and is
// never client-supplied.
type AddRevisionInput struct {
	DocumentID uuid.UUID
	Checksum   string
	FileSize   int64
	CreatedBy  uuid.UUID
}

// RevisionService manages the revision lifecycle of a document.
type RevisionService interface {
	Add(ctx context.Context, input *AddRevisionInput) (*domain.Revision, error)
	Delete(ctx context.Context, revisionID, userID uuid.UUID) error
	Restore(ctx context.Context, revisionID, userID uuid.UUID) error
	Get(ctx context.Context, revisionID uuid.UUID) (*domain.Revision, error)
	ListByDocument(ctx context.Context, documentID uuid.UUID, includeDeleted bool, orderBy string, page pagination.Params) (pagination.Page[domain.Revision], error)
}

type revisionService struct {
	docRepo  port.DocumentRepository
	revRepo  port.RevisionRepository
	revAudit port.RevisionAuditRepository
	tx       port.TxManager
	log      *slog.Logger
}

// NewRevisionService creates a new RevisionService implementation.
func NewRevisionService(docRepo port.DocumentRepository, revRepo port.RevisionRepository, revAudit port.RevisionAuditRepository, tx port.TxManager, log *slog.Logger) RevisionService {
	return &revisionService{docRepo: docRepo, revRepo: revRepo, revAudit: revAudit, tx: tx, log: log}
}

func (s *revisionService) Add(ctx context.Context, input *AddRevisionInput) (*domain.Revision, error) {
	if input == nil {
		o := validation.BadInputf("payload is required")
		s.log.Warn("revision add rejected", "reason", o.Err.Error())
		return nil, o.Err
	}
	if o := validation.First(
		validation.UUIDRequired(input.DocumentID, "document_id"),
		validation.UUIDRequired(input.CreatedBy, "created_by"),
	); !o.Passed() {
		s.log.Warn("revision add rejected", "document_id", input.DocumentID, "reason", o.Err.Error())
		return nil, o.Err
	}

	doc, err := s.docRepo.GetByID(ctx, input.DocumentID)
	if err != nil {
		s.warnOrError("revision add", input.DocumentID, err)
		return nil, err
	}
	if doc.IsDeleted {
		s.log.Warn("revision add rejected", "document_id", input.DocumentID, "reason", "document is deleted")
		return nil, domain.ErrDocumentDeleted
	}

	rev := &domain.Revision{
		ID:         uuid.New(),
		DocumentID: input.DocumentID,
		Checksum:   input.Checksum,
		FileSize:   input.FileSize,
		CreatedBy:  input.CreatedBy,
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		// Number assignment and insert share the transaction so concurrent
		// adds cannot claim the same revision number.
		number, err := s.revRepo.NextNumber(ctx, input.DocumentID)
		if err != nil {
			return err
		}
		rev.RevisionNumber = number

		if err := s.revRepo.Create(ctx, rev); err != nil {
			return err
		}
		return s.revAudit.Create(ctx, &domain.RevisionActivity{
			ID:         uuid.New(),
			RevisionID: rev.ID,
			Action:     domain.ActionCreated,
			UserID:     input.CreatedBy,
		})
	})
	if err != nil {
		s.log.Error("revision add failed", "document_id", input.DocumentID, "error", err)
		return nil, err
	}
	return rev, nil
}

func (s *revisionService) Delete(ctx context.Context, revisionID, userID uuid.UUID) error {
	return s.setDeleted(ctx, revisionID, userID, true)
}

func (s *revisionService) Restore(ctx context.Context, revisionID, userID uuid.UUID) error {
	return s.setDeleted(ctx, revisionID, userID, false)
}

func (s *revisionService) setDeleted(ctx context.Context, revisionID, userID uuid.UUID, deleted bool) error {
	op := "revision delete"
	if !deleted {
		op = "revision restore"
	}

	if o := validation.First(
		validation.UUIDRequired(revisionID, "revision_id"),
		validation.UUIDRequired(userID, "user_id"),
	); !o.Passed() {
		s.log.Warn(op+" rejected", "revision_id", revisionID, "reason", o.Err.Error())
		return o.Err
	}

	rev, err := s.revRepo.GetByID(ctx, revisionID)
	if err != nil {
		s.warnOrError(op, revisionID, err)
		return err
	}
	if rev.IsDeleted == deleted {
		var conflict error
		if deleted {
			conflict = domain.ErrAlreadyDeleted
		} else {
			conflict = domain.ErrNotDeleted
		}
		s.log.Warn(op+" rejected", "revision_id", revisionID, "reason", conflict.Error())
		return conflict
	}

	action := domain.ActionDeleted
	if !deleted {
		action = domain.ActionRestored
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.revRepo.SetDeleted(ctx, revisionID, deleted); err != nil {
			return err
		}
		return s.revAudit.Create(ctx, &domain.RevisionActivity{
			ID:         uuid.New(),
			RevisionID: revisionID,
			Action:     action,
			UserID:     userID,
		})
	})
	if err != nil {
		s.warnOrError(op, revisionID, err)
		return err
	}
	return nil
}

func (s *revisionService) Get(ctx context.Context, revisionID uuid.UUID) (*domain.Revision, error) {
	if o := validation.UUIDRequired(revisionID, "revision_id")(); !o.Passed() {
		return nil, o.Err
	}
	return s.revRepo.GetByID(ctx, revisionID)
}

func (s *revisionService) ListByDocument(ctx context.Context, documentID uuid.UUID, includeDeleted bool, orderBy string, page pagination.Params) (pagination.Page[domain.Revision], error) {
	var empty pagination.Page[domain.Revision]

	if o := validation.First(
		validation.UUIDRequired(documentID, "document_id"),
		validation.PageParams(page),
	); !o.Passed() {
		s.log.Warn("revision list rejected", "document_id", documentID, "reason", o.Err.Error())
		return empty, o.Err
	}
	clauses, err := sortmap.RevisionFields.Parse(orderBy, sortmap.RevisionDefaultOrder...)
	if err != nil {
		s.log.Warn("revision list rejected", "document_id", documentID, "order_by", orderBy, "reason", err.Error())
		return empty, err
	}

	revs, total, err := s.revRepo.ListByDocument(ctx, documentID, includeDeleted, clauses, page.Offset(), page.Limit())
	if err != nil {
		s.log.Error("revision list failed", "document_id", documentID, "error", err)
		return empty, err
	}
	return pagination.NewPage(revs, total, page), nil
}

func (s *revisionService) warnOrError(op string, id uuid.UUID, err error) {
	if isExpected(err) {
		s.log.Warn(op+" rejected", "id", id, "reason", err.Error())
		return
	}
	s.log.Error(op+" failed", "id", id, "error", err)
}
