package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"lexvault/internal/domain"
	"lexvault/internal/sortmap"
)

// MockMatterAuditRepo is a mock implementation of port.MatterAuditRepository.
type MockMatterAuditRepo struct {
	mock.Mock
}

func (m *MockMatterAuditRepo) Create(ctx context.Context, a *domain.MatterActivity) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockMatterAuditRepo) ListByMatter(ctx context.Context, matterID uuid.UUID, orderBy []sortmap.Clause, offset, limit int) ([]domain.MatterActivity, int, error) {
	args := m.Called(ctx, matterID, orderBy, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.MatterActivity), args.Int(1), args.Error(2)
}

// MockDocumentAuditRepo is a mock implementation of port.DocumentAuditRepository.
type MockDocumentAuditRepo struct {
	mock.Mock
}

func (m *MockDocumentAuditRepo) Create(ctx context.Context, a *domain.DocumentActivity) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockDocumentAuditRepo) ListByDocument(ctx context.Context, documentID uuid.UUID, orderBy []sortmap.Clause, offset, limit int) ([]domain.DocumentActivity, int, error) {
	args := m.Called(ctx, documentID, orderBy, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.DocumentActivity), args.Int(1), args.Error(2)
}

// MockRevisionAuditRepo is a mock implementation of port.RevisionAuditRepository.
type MockRevisionAuditRepo struct {
	mock.Mock
}

func (m *MockRevisionAuditRepo) Create(ctx context.Context, a *domain.RevisionActivity) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockRevisionAuditRepo) ListByRevision(ctx context.Context, revisionID uuid.UUID, orderBy []sortmap.Clause, offset, limit int) ([]domain.RevisionActivity, int, error) {
	args := m.Called(ctx, revisionID, orderBy, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.RevisionActivity), args.Int(1), args.Error(2)
}

// MockMatterDocumentAuditRepo is a mock implementation of
// port.MatterDocumentAuditRepository.
type MockMatterDocumentAuditRepo struct {
	mock.Mock
}

func (m *MockMatterDocumentAuditRepo) Create(ctx context.Context, a *domain.MatterDocumentActivity) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockMatterDocumentAuditRepo) ListByMatter(ctx context.Context, matterID uuid.UUID, direction *domain.TransferDirection, orderBy []sortmap.Clause, offset, limit int) ([]domain.MatterDocumentActivity, int, error) {
	args := m.Called(ctx, matterID, direction, orderBy, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.MatterDocumentActivity), args.Int(1), args.Error(2)
}

func (m *MockMatterDocumentAuditRepo) ListByDocument(ctx context.Context, documentID uuid.UUID, direction *domain.TransferDirection, orderBy []sortmap.Clause, offset, limit int) ([]domain.MatterDocumentActivity, int, error) {
	args := m.Called(ctx, documentID, direction, orderBy, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.MatterDocumentActivity), args.Int(1), args.Error(2)
}
