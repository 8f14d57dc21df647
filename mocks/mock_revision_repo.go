package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"lexvault/internal/domain"
	"lexvault/internal/sortmap"
)

// MockRevisionRepo is a mock implementation of port.RevisionRepository.
type MockRevisionRepo struct {
	mock.Mock
}

func (m *MockRevisionRepo) Create(ctx context.Context, r *domain.Revision) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRevisionRepo) GetByID(ctx context.Context, revisionID uuid.UUID) (*domain.Revision, error) {
	args := m.Called(ctx, revisionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Revision), args.Error(1)
}

func (m *MockRevisionRepo) ListByDocument(ctx context.Context, documentID uuid.UUID, includeDeleted bool, orderBy []sortmap.Clause, offset, limit int) ([]domain.Revision, int, error) {
	args := m.Called(ctx, documentID, includeDeleted, orderBy, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Revision), args.Int(1), args.Error(2)
}

func (m *MockRevisionRepo) NextNumber(ctx context.Context, documentID uuid.UUID) (int, error) {
	args := m.Called(ctx, documentID)
	return args.Int(0), args.Error(1)
}

func (m *MockRevisionRepo) SetDeleted(ctx context.Context, revisionID uuid.UUID, deleted bool) error {
	args := m.Called(ctx, revisionID, deleted)
	return args.Error(0)
}
