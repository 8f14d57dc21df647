package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"lexvault/internal/domain"
	"lexvault/internal/pagination"
	"lexvault/internal/port"
	"lexvault/internal/sortmap"
	"lexvault/internal/validation"
)

// AddDocumentInput is the command payload for adding a document to a matter.
// The first revision is created automatically alongside the document.
type AddDocumentInput struct {
	MatterID  uuid.UUID
	FileName  string
	Extension string
	FileSize  int64
	MimeType  string
	Checksum  string
	CreatedBy uuid.UUID
}

// UpdateDocumentInput is the command payload for updating document metadata.
type UpdateDocumentInput struct {
	DocumentID uuid.UUID
	FileName   string
	MimeType   string
	Checksum   string
	FileSize   int64
	UpdatedBy  uuid.UUID
}

// DocumentService manages the document lifecycle, including the
// checkout/checkin state machine. Every successful mutation commits exactly
// one DocumentActivity row together with the state change.
type DocumentService interface {
	Add(ctx context.Context, input *AddDocumentInput) (*domain.Document, error)
	Update(ctx context.Context, input *UpdateDocumentInput) (*domain.Document, error)
	Delete(ctx context.Context, documentID, userID uuid.UUID) error
	Restore(ctx context.Context, documentID, userID uuid.UUID) error
	// SetCheckState drives the Available/CheckedOut state machine. Checking
	// out an already checked-out document fails without a forced takeover;
	// checking in an available document fails likewise. Neither failure
	// writes an audit row.
	SetCheckState(ctx context.Context, documentID, userID uuid.UUID, checkedOut bool) error
	Get(ctx context.Context, documentID uuid.UUID) (*domain.Document, error)
	// View fetches a document and appends a VIEWED activity record; use Get
	// for internal lookups that must not touch the ledger.
	View(ctx context.Context, documentID, userID uuid.UUID) (*domain.Document, error)
	ListByMatter(ctx context.Context, matterID uuid.UUID, includeDeleted bool, orderBy string, page pagination.Params) (pagination.Page[domain.Document], error)
}

type documentService struct {
	matterRepo port.MatterRepository
	docRepo    port.DocumentRepository
	revRepo    port.RevisionRepository
	docAudit   port.DocumentAuditRepository
	revAudit   port.RevisionAuditRepository
	tx         port.TxManager
	log        *slog.Logger
}

// NewDocumentService creates a new DocumentService implementation.
func NewDocumentService(
	matterRepo port.MatterRepository,
	docRepo port.DocumentRepository,
	revRepo port.RevisionRepository,
	docAudit port.DocumentAuditRepository,
	revAudit port.RevisionAuditRepository,
	tx port.TxManager,
	log *slog.Logger,
) DocumentService {
	return &documentService{
		matterRepo: matterRepo,
		docRepo:    docRepo,
		revRepo:    revRepo,
		docAudit:   docAudit,
		revAudit:   revAudit,
		tx:         tx,
		log:        log,
	}
}

func (s *documentService) Add(ctx context.Context, input *AddDocumentInput) (*domain.Document, error) {
	if input == nil {
		o := validation.BadInputf("payload is required")
		s.log.Warn("document add rejected", "reason", o.Err.Error())
		return nil, o.Err
	}
	if o := validation.First(
		validation.UUIDRequired(input.MatterID, "matter_id"),
		validation.StringRequired(input.FileName, "file_name"),
		validation.ExtensionAllowed(input.Extension),
		validation.UUIDRequired(input.CreatedBy, "created_by"),
	); !o.Passed() {
		s.log.Warn("document add rejected", "matter_id", input.MatterID, "reason", o.Err.Error())
		return nil, o.Err
	}

	matter, err := s.matterRepo.GetByID(ctx, input.MatterID)
	if err != nil {
		s.warnOrError("document add", input.MatterID, err)
		return nil, err
	}
	if matter.IsDeleted {
		s.log.Warn("document add rejected", "matter_id", input.MatterID, "reason", "matter is deleted")
		return nil, domain.ErrMatterDeleted
	}
	taken, err := s.docRepo.FileNameExists(ctx, input.MatterID, input.FileName)
	if err != nil {
		s.log.Error("document add failed", "matter_id", input.MatterID, "error", err)
		return nil, err
	}
	if taken {
		s.log.Warn("document add rejected", "matter_id", input.MatterID, "file_name", input.FileName, "reason", "file name taken")
		return nil, domain.ErrFileNameTaken
	}

	mimeType := input.MimeType
	if mimeType == "" {
		mimeType = domain.AllowedExtensions[strings.ToLower(input.Extension)]
	}

	doc := &domain.Document{
		ID:        uuid.New(),
		MatterID:  input.MatterID,
		FileName:  input.FileName,
		Extension: strings.ToLower(input.Extension),
		FileSize:  input.FileSize,
		MimeType:  mimeType,
		Checksum:  input.Checksum,
		CreatedBy: input.CreatedBy,
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.docRepo.Create(ctx, doc); err != nil {
			return err
		}
		if err := s.docAudit.Create(ctx, &domain.DocumentActivity{
			ID:         uuid.New(),
			DocumentID: doc.ID,
			Action:     domain.ActionCreated,
			UserID:     input.CreatedBy,
		}); err != nil {
			return err
		}

		rev := &domain.Revision{
			ID:             uuid.New(),
			DocumentID:     doc.ID,
			RevisionNumber: 1,
			Checksum:       input.Checksum,
			FileSize:       input.FileSize,
			CreatedBy:      input.CreatedBy,
		}
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
		s.log.Error("document add failed", "document_id", doc.ID, "error", err)
		return nil, err
	}
	return doc, nil
}

func (s *documentService) Update(ctx context.Context, input *UpdateDocumentInput) (*domain.Document, error) {
	if input == nil {
		o := validation.BadInputf("payload is required")
		s.log.Warn("document update rejected", "reason", o.Err.Error())
		return nil, o.Err
	}
	if o := validation.First(
		validation.UUIDRequired(input.DocumentID, "document_id"),
		validation.StringRequired(input.FileName, "file_name"),
		validation.UUIDRequired(input.UpdatedBy, "updated_by"),
	); !o.Passed() {
		s.log.Warn("document update rejected", "document_id", input.DocumentID, "reason", o.Err.Error())
		return nil, o.Err
	}

	doc, err := s.docRepo.GetByID(ctx, input.DocumentID)
	if err != nil {
		s.warnOrError("document update", input.DocumentID, err)
		return nil, err
	}
	if doc.IsDeleted {
		s.log.Warn("document update rejected", "document_id", input.DocumentID, "reason", "document is deleted")
		return nil, domain.ErrDocumentDeleted
	}

	doc.FileName = input.FileName
	if input.MimeType != "" {
		doc.MimeType = input.MimeType
	}
	if input.Checksum != "" {
		doc.Checksum = input.Checksum
	}
	if input.FileSize > 0 {
		doc.FileSize = input.FileSize
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.docRepo.Update(ctx, doc); err != nil {
			return err
		}
		return s.docAudit.Create(ctx, &domain.DocumentActivity{
			ID:         uuid.New(),
			DocumentID: doc.ID,
			Action:     domain.ActionUpdated,
			UserID:     input.UpdatedBy,
		})
	})
	if err != nil {
		s.warnOrError("document update", doc.ID, err)
		return nil, err
	}
	return doc, nil
}

func (s *documentService) Delete(ctx context.Context, documentID, userID uuid.UUID) error {
	return s.setDeleted(ctx, documentID, userID, true)
}

func (s *documentService) Restore(ctx context.Context, documentID, userID uuid.UUID) error {
	return s.setDeleted(ctx, documentID, userID, false)
}

func (s *documentService) setDeleted(ctx context.Context, documentID, userID uuid.UUID, deleted bool) error {
	op := "document delete"
	if !deleted {
		op = "document restore"
	}

	if o := validation.First(
		validation.UUIDRequired(documentID, "document_id"),
		validation.UUIDRequired(userID, "user_id"),
	); !o.Passed() {
		s.log.Warn(op+" rejected", "document_id", documentID, "reason", o.Err.Error())
		return o.Err
	}

	doc, err := s.docRepo.GetByID(ctx, documentID)
	if err != nil {
		s.warnOrError(op, documentID, err)
		return err
	}
	if doc.IsDeleted == deleted {
		var conflict error
		if deleted {
			conflict = domain.ErrAlreadyDeleted
		} else {
			conflict = domain.ErrNotDeleted
		}
		s.log.Warn(op+" rejected", "document_id", documentID, "reason", conflict.Error())
		return conflict
	}
	// A checked-out document cannot be deleted; the flags are mutually
	// exclusive.
	if deleted && doc.IsCheckedOut {
		s.log.Warn(op+" rejected", "document_id", documentID, "reason", "document is checked out")
		return domain.ErrDocumentCheckedOut
	}

	action := domain.ActionDeleted
	if !deleted {
		action = domain.ActionRestored
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.docRepo.SetDeleted(ctx, documentID, deleted); err != nil {
			return err
		}
		return s.docAudit.Create(ctx, &domain.DocumentActivity{
			ID:         uuid.New(),
			DocumentID: documentID,
			Action:     action,
			UserID:     userID,
		})
	})
	if err != nil {
		s.warnOrError(op, documentID, err)
		return err
	}
	return nil
}

func (s *documentService) SetCheckState(ctx context.Context, documentID, userID uuid.UUID, checkedOut bool) error {
	op := "document checkout"
	if !checkedOut {
		op = "document checkin"
	}

	if o := validation.First(
		validation.UUIDRequired(documentID, "document_id"),
		validation.UUIDRequired(userID, "user_id"),
	); !o.Passed() {
		s.log.Warn(op+" rejected", "document_id", documentID, "reason", o.Err.Error())
		return o.Err
	}

	doc, err := s.docRepo.GetByID(ctx, documentID)
	if err != nil {
		s.warnOrError(op, documentID, err)
		return err
	}
	if doc.IsDeleted {
		s.log.Warn(op+" rejected", "document_id", documentID, "reason", "document is deleted")
		return domain.ErrDocumentDeleted
	}
	if doc.IsCheckedOut == checkedOut {
		var conflict error
		if checkedOut {
			conflict = domain.ErrDocumentCheckedOut
		} else {
			conflict = domain.ErrDocumentNotCheckedOut
		}
		s.log.Warn(op+" rejected", "document_id", documentID, "reason", conflict.Error())
		return conflict
	}

	action := domain.ActionCheckedOut
	if !checkedOut {
		action = domain.ActionCheckedIn
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.docRepo.SetCheckState(ctx, documentID, userID, checkedOut); err != nil {
			return err
		}
		return s.docAudit.Create(ctx, &domain.DocumentActivity{
			ID:         uuid.New(),
			DocumentID: documentID,
			Action:     action,
			UserID:     userID,
		})
	})
	if err != nil {
		s.warnOrError(op, documentID, err)
		return err
	}
	return nil
}

func (s *documentService) Get(ctx context.Context, documentID uuid.UUID) (*domain.Document, error) {
	if o := validation.UUIDRequired(documentID, "document_id")(); !o.Passed() {
		return nil, o.Err
	}
	return s.docRepo.GetByID(ctx, documentID)
}

func (s *documentService) View(ctx context.Context, documentID, userID uuid.UUID) (*domain.Document, error) {
	if o := validation.First(
		validation.UUIDRequired(documentID, "document_id"),
		validation.UUIDRequired(userID, "user_id"),
	); !o.Passed() {
		s.log.Warn("document view rejected", "document_id", documentID, "reason", o.Err.Error())
		return nil, o.Err
	}

	doc, err := s.docRepo.GetByID(ctx, documentID)
	if err != nil {
		s.warnOrError("document view", documentID, err)
		return nil, err
	}

	if err := s.docAudit.Create(ctx, &domain.DocumentActivity{
		ID:         uuid.New(),
		DocumentID: documentID,
		Action:     domain.ActionViewed,
		UserID:     userID,
	}); err != nil {
		s.log.Error("document view audit failed", "document_id", documentID, "error", err)
		return nil, err
	}
	return doc, nil
}

func (s *documentService) ListByMatter(ctx context.Context, matterID uuid.UUID, includeDeleted bool, orderBy string, page pagination.Params) (pagination.Page[domain.Document], error) {
	var empty pagination.Page[domain.Document]

	if o := validation.First(
		validation.UUIDRequired(matterID, "matter_id"),
		validation.PageParams(page),
	); !o.Passed() {
		s.log.Warn("document list rejected", "matter_id", matterID, "reason", o.Err.Error())
		return empty, o.Err
	}
	clauses, err := sortmap.DocumentFields.Parse(orderBy, sortmap.DocumentDefaultOrder...)
	if err != nil {
		s.log.Warn("document list rejected", "matter_id", matterID, "order_by", orderBy, "reason", err.Error())
		return empty, err
	}

	docs, total, err := s.docRepo.ListByMatter(ctx, matterID, includeDeleted, clauses, page.Offset(), page.Limit())
	if err != nil {
		s.log.Error("document list failed", "matter_id", matterID, "error", err)
		return empty, err
	}
	return pagination.NewPage(docs, total, page), nil
}

func (s *documentService) warnOrError(op string, id uuid.UUID, err error) {
	if isExpected(err) {
		s.log.Warn(op+" rejected", "id", id, "reason", err.Error())
		return
	}
	s.log.Error(op+" failed", "id", id, "error", err)
}
