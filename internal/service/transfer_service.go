package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"lexvault/internal/domain"
	"lexvault/internal/port"
	"lexvault/internal/validation"
)

// TransferInput is the command payload for moving or copying a document
// between two matters.
type TransferInput struct {
	SourceMatterID uuid.UUID
	TargetMatterID uuid.UUID
	DocumentID     uuid.UUID
	Mode           domain.TransferMode
	UserID         uuid.UUID
}

// TransferService coordinates cross-matter document transfers. A successful
// transfer commits exactly two MatterDocumentActivity rows, FROM at the
// source and TO at the target, with identical timestamps; a move also
// reassigns the document's parent matter in the same transaction. If any
// write fails, nothing persists.
type TransferService interface {
	MoveOrCopy(ctx context.Context, input *TransferInput) error
}

type transferService struct {
	matterRepo port.MatterRepository
	docRepo    port.DocumentRepository
	mdAudit    port.MatterDocumentAuditRepository
	tx         port.TxManager
	log        *slog.Logger
}

// NewTransferService creates a new TransferService implementation.
func NewTransferService(matterRepo port.MatterRepository, docRepo port.DocumentRepository, mdAudit port.MatterDocumentAuditRepository, tx port.TxManager, log *slog.Logger) TransferService {
	return &transferService{matterRepo: matterRepo, docRepo: docRepo, mdAudit: mdAudit, tx: tx, log: log}
}

func (s *transferService) MoveOrCopy(ctx context.Context, input *TransferInput) error {
	if input == nil {
		o := validation.BadInputf("payload is required")
		s.log.Warn("document transfer rejected", "reason", o.Err.Error())
		return o.Err
	}
	if o := validation.First(
		validation.UUIDRequired(input.SourceMatterID, "source_matter_id"),
		validation.UUIDRequired(input.TargetMatterID, "target_matter_id"),
		validation.UUIDRequired(input.DocumentID, "document_id"),
		validation.UUIDRequired(input.UserID, "user_id"),
		func() validation.Outcome {
			if !input.Mode.Valid() {
				return validation.BadInputf("mode %q is not a transfer mode", input.Mode)
			}
			return validation.OK()
		},
	); !o.Passed() {
		s.log.Warn("document transfer rejected", "document_id", input.DocumentID, "reason", o.Err.Error())
		return o.Err
	}
	if input.SourceMatterID == input.TargetMatterID {
		s.log.Warn("document transfer rejected", "document_id", input.DocumentID, "reason", "source and target matter are the same")
		return domain.ErrSameMatter
	}

	// All existence and collision checks happen before any write.
	source, err := s.matterRepo.GetByID(ctx, input.SourceMatterID)
	if err != nil {
		s.warnOrError("document transfer", input.DocumentID, err)
		return err
	}
	target, err := s.matterRepo.GetByID(ctx, input.TargetMatterID)
	if err != nil {
		s.warnOrError("document transfer", input.DocumentID, err)
		return err
	}
	if source.IsDeleted || target.IsDeleted {
		s.log.Warn("document transfer rejected", "document_id", input.DocumentID, "reason", "matter is deleted")
		return domain.ErrMatterDeleted
	}

	doc, err := s.docRepo.GetByID(ctx, input.DocumentID)
	if err != nil {
		s.warnOrError("document transfer", input.DocumentID, err)
		return err
	}
	if doc.IsDeleted {
		s.log.Warn("document transfer rejected", "document_id", input.DocumentID, "reason", "document is deleted")
		return domain.ErrDocumentDeleted
	}
	if doc.MatterID != input.SourceMatterID {
		s.log.Warn("document transfer rejected", "document_id", input.DocumentID, "source_matter_id", input.SourceMatterID, "reason", "document not in source matter")
		return domain.ErrDocumentNotInMatter
	}

	taken, err := s.docRepo.FileNameExists(ctx, input.TargetMatterID, doc.FileName)
	if err != nil {
		s.log.Error("document transfer failed", "document_id", input.DocumentID, "error", err)
		return err
	}
	if taken {
		s.log.Warn("document transfer rejected", "document_id", input.DocumentID, "target_matter_id", input.TargetMatterID, "reason", "file name taken")
		return domain.ErrFileNameTaken
	}

	action := input.Mode.Action()
	now := time.Now().UTC()
	from := &domain.MatterDocumentActivity{
		ID:                  uuid.New(),
		MatterID:            input.SourceMatterID,
		CounterpartMatterID: input.TargetMatterID,
		DocumentID:          input.DocumentID,
		Action:              action,
		Direction:           domain.DirectionFrom,
		UserID:              input.UserID,
		CreatedAt:           now,
	}
	to := &domain.MatterDocumentActivity{
		ID:                  uuid.New(),
		MatterID:            input.TargetMatterID,
		CounterpartMatterID: input.SourceMatterID,
		DocumentID:          input.DocumentID,
		Action:              action,
		Direction:           domain.DirectionTo,
		UserID:              input.UserID,
		CreatedAt:           now,
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if input.Mode == domain.TransferMove {
			if err := s.docRepo.Reassign(ctx, input.DocumentID, input.TargetMatterID); err != nil {
				return err
			}
		}
		if err := s.mdAudit.Create(ctx, from); err != nil {
			return err
		}
		return s.mdAudit.Create(ctx, to)
	})
	if err != nil {
		s.warnOrError("document transfer", input.DocumentID, err)
		return err
	}
	return nil
}

func (s *transferService) warnOrError(op string, id uuid.UUID, err error) {
	if isExpected(err) {
		s.log.Warn(op+" rejected", "id", id, "reason", err.Error())
		return
	}
	s.log.Error(op+" failed", "id", id, "error", err)
}
