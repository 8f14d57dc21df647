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

// AuditService is the read side of the activity ledgers: paginated,
// whitelist-sorted queries over the append-only records. Default order is
// most recent first.
type AuditService interface {
	ListMatterActivity(ctx context.Context, matterID uuid.UUID, orderBy string, page pagination.Params) (pagination.Page[domain.MatterActivity], error)
	ListDocumentActivity(ctx context.Context, documentID uuid.UUID, orderBy string, page pagination.Params) (pagination.Page[domain.DocumentActivity], error)
	ListRevisionActivity(ctx context.Context, revisionID uuid.UUID, orderBy string, page pagination.Params) (pagination.Page[domain.RevisionActivity], error)
	// Transfer listings optionally restrict to one side of the FROM/TO pair.
	ListMatterTransfers(ctx context.Context, matterID uuid.UUID, direction *domain.TransferDirection, orderBy string, page pagination.Params) (pagination.Page[domain.MatterDocumentActivity], error)
	ListDocumentTransfers(ctx context.Context, documentID uuid.UUID, direction *domain.TransferDirection, orderBy string, page pagination.Params) (pagination.Page[domain.MatterDocumentActivity], error)
}

type auditService struct {
	matterAudit port.MatterAuditRepository
	docAudit    port.DocumentAuditRepository
	revAudit    port.RevisionAuditRepository
	mdAudit     port.MatterDocumentAuditRepository
	log         *slog.Logger
}

// NewAuditService creates a new AuditService implementation.
func NewAuditService(
	matterAudit port.MatterAuditRepository,
	docAudit port.DocumentAuditRepository,
	revAudit port.RevisionAuditRepository,
	mdAudit port.MatterDocumentAuditRepository,
	log *slog.Logger,
) AuditService {
	return &auditService{
		matterAudit: matterAudit,
		docAudit:    docAudit,
		revAudit:    revAudit,
		mdAudit:     mdAudit,
		log:         log,
	}
}

func (s *auditService) ListMatterActivity(ctx context.Context, matterID uuid.UUID, orderBy string, page pagination.Params) (pagination.Page[domain.MatterActivity], error) {
	var empty pagination.Page[domain.MatterActivity]

	clauses, err := s.prepare("matter activity list", matterID, sortmap.ActivityFields, orderBy, page)
	if err != nil {
		return empty, err
	}
	entries, total, err := s.matterAudit.ListByMatter(ctx, matterID, clauses, page.Offset(), page.Limit())
	if err != nil {
		s.log.Error("matter activity list failed", "matter_id", matterID, "error", err)
		return empty, err
	}
	return pagination.NewPage(entries, total, page), nil
}

func (s *auditService) ListDocumentActivity(ctx context.Context, documentID uuid.UUID, orderBy string, page pagination.Params) (pagination.Page[domain.DocumentActivity], error) {
	var empty pagination.Page[domain.DocumentActivity]

	clauses, err := s.prepare("document activity list", documentID, sortmap.ActivityFields, orderBy, page)
	if err != nil {
		return empty, err
	}
	entries, total, err := s.docAudit.ListByDocument(ctx, documentID, clauses, page.Offset(), page.Limit())
	if err != nil {
		s.log.Error("document activity list failed", "document_id", documentID, "error", err)
		return empty, err
	}
	return pagination.NewPage(entries, total, page), nil
}

func (s *auditService) ListRevisionActivity(ctx context.Context, revisionID uuid.UUID, orderBy string, page pagination.Params) (pagination.Page[domain.RevisionActivity], error) {
	var empty pagination.Page[domain.RevisionActivity]

	clauses, err := s.prepare("revision activity list", revisionID, sortmap.ActivityFields, orderBy, page)
	if err != nil {
		return empty, err
	}
	entries, total, err := s.revAudit.ListByRevision(ctx, revisionID, clauses, page.Offset(), page.Limit())
	if err != nil {
		s.log.Error("revision activity list failed", "revision_id", revisionID, "error", err)
		return empty, err
	}
	return pagination.NewPage(entries, total, page), nil
}

func (s *auditService) ListMatterTransfers(ctx context.Context, matterID uuid.UUID, direction *domain.TransferDirection, orderBy string, page pagination.Params) (pagination.Page[domain.MatterDocumentActivity], error) {
	var empty pagination.Page[domain.MatterDocumentActivity]

	clauses, err := s.prepareTransfers("matter transfer list", matterID, direction, orderBy, page)
	if err != nil {
		return empty, err
	}
	entries, total, err := s.mdAudit.ListByMatter(ctx, matterID, direction, clauses, page.Offset(), page.Limit())
	if err != nil {
		s.log.Error("matter transfer list failed", "matter_id", matterID, "error", err)
		return empty, err
	}
	return pagination.NewPage(entries, total, page), nil
}

func (s *auditService) ListDocumentTransfers(ctx context.Context, documentID uuid.UUID, direction *domain.TransferDirection, orderBy string, page pagination.Params) (pagination.Page[domain.MatterDocumentActivity], error) {
	var empty pagination.Page[domain.MatterDocumentActivity]

	clauses, err := s.prepareTransfers("document transfer list", documentID, direction, orderBy, page)
	if err != nil {
		return empty, err
	}
	entries, total, err := s.mdAudit.ListByDocument(ctx, documentID, direction, clauses, page.Offset(), page.Limit())
	if err != nil {
		s.log.Error("document transfer list failed", "document_id", documentID, "error", err)
		return empty, err
	}
	return pagination.NewPage(entries, total, page), nil
}

func (s *auditService) prepare(op string, id uuid.UUID, fields sortmap.FieldMap, orderBy string, page pagination.Params) ([]sortmap.Clause, error) {
	if o := validation.First(
		validation.UUIDRequired(id, "entity_id"),
		validation.PageParams(page),
	); !o.Passed() {
		s.log.Warn(op+" rejected", "id", id, "reason", o.Err.Error())
		return nil, o.Err
	}
	clauses, err := fields.Parse(orderBy, sortmap.ActivityDefaultOrder...)
	if err != nil {
		s.log.Warn(op+" rejected", "id", id, "order_by", orderBy, "reason", err.Error())
		return nil, err
	}
	return clauses, nil
}

func (s *auditService) prepareTransfers(op string, id uuid.UUID, direction *domain.TransferDirection, orderBy string, page pagination.Params) ([]sortmap.Clause, error) {
	if direction != nil && !direction.Valid() {
		o := validation.BadInputf("direction %q is not a transfer direction", *direction)
		s.log.Warn(op+" rejected", "id", id, "reason", o.Err.Error())
		return nil, o.Err
	}
	if o := validation.First(
		validation.UUIDRequired(id, "entity_id"),
		validation.PageParams(page),
	); !o.Passed() {
		s.log.Warn(op+" rejected", "id", id, "reason", o.Err.Error())
		return nil, o.Err
	}
	clauses, err := sortmap.TransferActivityFields.Parse(orderBy, sortmap.ActivityDefaultOrder...)
	if err != nil {
		s.log.Warn(op+" rejected", "id", id, "order_by", orderBy, "reason", err.Error())
		return nil, err
	}
	return clauses, nil
}
