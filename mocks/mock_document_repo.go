package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"lexvault/internal/domain"
	"lexvault/internal/sortmap"
)

// MockDocumentRepo is a mock implementation of port.DocumentRepository.
type MockDocumentRepo struct {
	mock.Mock
}

func (m *MockDocumentRepo) Create(ctx context.Context, d *domain.Document) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDocumentRepo) GetByID(ctx context.Context, documentID uuid.UUID) (*domain.Document, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentRepo) ListByMatter(ctx context.Context, matterID uuid.UUID, includeDeleted bool, orderBy []sortmap.Clause, offset, limit int) ([]domain.Document, int, error) {
	args := m.Called(ctx, matterID, includeDeleted, orderBy, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Document), args.Int(1), args.Error(2)
}

func (m *MockDocumentRepo) Update(ctx context.Context, d *domain.Document) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDocumentRepo) SetDeleted(ctx context.Context, documentID uuid.UUID, deleted bool) error {
	args := m.Called(ctx, documentID, deleted)
	return args.Error(0)
}

func (m *MockDocumentRepo) SetCheckState(ctx context.Context, documentID, userID uuid.UUID, checkedOut bool) error {
	args := m.Called(ctx, documentID, userID, checkedOut)
	return args.Error(0)
}

func (m *MockDocumentRepo) Reassign(ctx context.Context, documentID, targetMatterID uuid.UUID) error {
	args := m.Called(ctx, documentID, targetMatterID)
	return args.Error(0)
}

func (m *MockDocumentRepo) FileNameExists(ctx context.Context, matterID uuid.UUID, fileName string) (bool, error) {
	args := m.Called(ctx, matterID, fileName)
	return args.Bool(0), args.Error(1)
}
