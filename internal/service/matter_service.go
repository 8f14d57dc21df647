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

// CreateMatterInput is the command payload for creating a matter.
type CreateMatterInput struct {
	Description string
	CreatedBy   uuid.UUID
}

// UpdateMatterInput is the command payload for updating a matter.
type UpdateMatterInput struct {
	MatterID    uuid.UUID
	Description string
	IsArchived  bool
	UpdatedBy   uuid.UUID
}

// MatterService manages the matter lifecycle. Every successful mutation
// commits exactly one MatterActivity row together with the state change.
type MatterService interface {
	Create(ctx context.Context, input *CreateMatterInput) (*domain.Matter, error)
	Update(ctx context.Context, input *UpdateMatterInput) (*domain.Matter, error)
	Delete(ctx context.Context, matterID, userID uuid.UUID) error
	Restore(ctx context.Context, matterID, userID uuid.UUID) error
	Get(ctx context.Context, matterID uuid.UUID) (*domain.Matter, error)
	List(ctx context.Context, includeDeleted bool, orderBy string, page pagination.Params) (pagination.Page[domain.Matter], error)
}

type matterService struct {
	matterRepo port.MatterRepository
	auditRepo  port.MatterAuditRepository
	tx         port.TxManager
	log        *slog.Logger
}

// NewMatterService creates a new MatterService implementation.
func NewMatterService(matterRepo port.MatterRepository, auditRepo port.MatterAuditRepository, tx port.TxManager, log *slog.Logger) MatterService {
	return &matterService{matterRepo: matterRepo, auditRepo: auditRepo, tx: tx, log: log}
}

func (s *matterService) Create(ctx context.Context, input *CreateMatterInput) (*domain.Matter, error) {
	if input == nil {
		o := validation.BadInputf("payload is required")
		s.log.Warn("matter create rejected", "reason", o.Err.Error())
		return nil, o.Err
	}
	if o := validation.First(
		validation.StringRequired(input.Description, "description"),
		validation.UUIDRequired(input.CreatedBy, "created_by"),
	); !o.Passed() {
		s.log.Warn("matter create rejected", "reason", o.Err.Error())
		return nil, o.Err
	}

	matter := &domain.Matter{
		ID:          uuid.New(),
		Description: input.Description,
		CreatedBy:   input.CreatedBy,
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.matterRepo.Create(ctx, matter); err != nil {
			return err
		}
		return s.auditRepo.Create(ctx, &domain.MatterActivity{
			ID:       uuid.New(),
			MatterID: matter.ID,
			Action:   domain.ActionCreated,
			UserID:   input.CreatedBy,
		})
	})
	if err != nil {
		s.log.Error("matter create failed", "matter_id", matter.ID, "error", err)
		return nil, err
	}
	return matter, nil
}

func (s *matterService) Update(ctx context.Context, input *UpdateMatterInput) (*domain.Matter, error) {
	if input == nil {
		o := validation.BadInputf("payload is required")
		s.log.Warn("matter update rejected", "reason", o.Err.Error())
		return nil, o.Err
	}
	if o := validation.First(
		validation.UUIDRequired(input.MatterID, "matter_id"),
		validation.StringRequired(input.Description, "description"),
		validation.UUIDRequired(input.UpdatedBy, "updated_by"),
	); !o.Passed() {
		s.log.Warn("matter update rejected", "matter_id", input.MatterID, "reason", o.Err.Error())
		return nil, o.Err
	}

	matter, err := s.matterRepo.GetByID(ctx, input.MatterID)
	if err != nil {
		s.warnOrError("matter update", input.MatterID, err)
		return nil, err
	}
	if matter.IsDeleted {
		s.log.Warn("matter update rejected", "matter_id", input.MatterID, "reason", "matter is deleted")
		return nil, domain.ErrMatterDeleted
	}

	matter.Description = input.Description
	matter.IsArchived = input.IsArchived

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.matterRepo.Update(ctx, matter); err != nil {
			return err
		}
		return s.auditRepo.Create(ctx, &domain.MatterActivity{
			ID:       uuid.New(),
			MatterID: matter.ID,
			Action:   domain.ActionUpdated,
			UserID:   input.UpdatedBy,
		})
	})
	if err != nil {
		s.warnOrError("matter update", matter.ID, err)
		return nil, err
	}
	return matter, nil
}

func (s *matterService) Delete(ctx context.Context, matterID, userID uuid.UUID) error {
	return s.setDeleted(ctx, matterID, userID, true)
}

func (s *matterService) Restore(ctx context.Context, matterID, userID uuid.UUID) error {
	return s.setDeleted(ctx, matterID, userID, false)
}

func (s *matterService) setDeleted(ctx context.Context, matterID, userID uuid.UUID, deleted bool) error {
	op := "matter delete"
	if !deleted {
		op = "matter restore"
	}

	if o := validation.First(
		validation.UUIDRequired(matterID, "matter_id"),
		validation.UUIDRequired(userID, "user_id"),
	); !o.Passed() {
		s.log.Warn(op+" rejected", "matter_id", matterID, "reason", o.Err.Error())
		return o.Err
	}

	matter, err := s.matterRepo.GetByID(ctx, matterID)
	if err != nil {
		s.warnOrError(op, matterID, err)
		return err
	}
	if matter.IsDeleted == deleted {
		var conflict error
		if deleted {
			conflict = domain.ErrAlreadyDeleted
		} else {
			conflict = domain.ErrNotDeleted
		}
		s.log.Warn(op+" rejected", "matter_id", matterID, "reason", conflict.Error())
		return conflict
	}

	action := domain.ActionDeleted
	if !deleted {
		action = domain.ActionRestored
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.matterRepo.SetDeleted(ctx, matterID, deleted); err != nil {
			return err
		}
		return s.auditRepo.Create(ctx, &domain.MatterActivity{
			ID:       uuid.New(),
			MatterID: matterID,
			Action:   action,
			UserID:   userID,
		})
	})
	if err != nil {
		s.warnOrError(op, matterID, err)
		return err
	}
	return nil
}

func (s *matterService) Get(ctx context.Context, matterID uuid.UUID) (*domain.Matter, error) {
	if o := validation.UUIDRequired(matterID, "matter_id")(); !o.Passed() {
		return nil, o.Err
	}
	return s.matterRepo.GetByID(ctx, matterID)
}

func (s *matterService) List(ctx context.Context, includeDeleted bool, orderBy string, page pagination.Params) (pagination.Page[domain.Matter], error) {
	var empty pagination.Page[domain.Matter]

	if o := validation.PageParams(page)(); !o.Passed() {
		s.log.Warn("matter list rejected", "reason", o.Err.Error())
		return empty, o.Err
	}
	clauses, err := sortmap.MatterFields.Parse(orderBy, sortmap.MatterDefaultOrder...)
	if err != nil {
		s.log.Warn("matter list rejected", "order_by", orderBy, "reason", err.Error())
		return empty, err
	}

	matters, total, err := s.matterRepo.List(ctx, includeDeleted, clauses, page.Offset(), page.Limit())
	if err != nil {
		s.log.Error("matter list failed", "error", err)
		return empty, err
	}
	return pagination.NewPage(matters, total, page), nil
}

func (s *matterService) warnOrError(op string, matterID uuid.UUID, err error) {
	if isExpected(err) {
		s.log.Warn(op+" rejected", "matter_id", matterID, "reason", err.Error())
		return
	}
	s.log.Error(op+" failed", "matter_id", matterID, "error", err)
}
