package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lexvault/internal/domain"
	"lexvault/internal/pagination"
	"lexvault/internal/service"
	"lexvault/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupMatterService() (service.MatterService, *mocks.MockMatterRepo, *mocks.MockMatterAuditRepo, *mocks.StubTxManager) {
	matterRepo := new(mocks.MockMatterRepo)
	auditRepo := new(mocks.MockMatterAuditRepo)
	txm := &mocks.StubTxManager{}
	svc := service.NewMatterService(matterRepo, auditRepo, txm, testLogger())
	return svc, matterRepo, auditRepo, txm
}

func TestMatterService_Create_Success(t *testing.T) {
	svc, matterRepo, auditRepo, _ := setupMatterService()
	userID := uuid.New()

	var audited *domain.MatterActivity
	matterRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Matter")).Return(nil)
	auditRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.MatterActivity")).
		Run(func(args mock.Arguments) { audited = args.Get(1).(*domain.MatterActivity) }).
		Return(nil)

	matter, err := svc.Create(context.Background(), &service.CreateMatterInput{
		Description: "Smith v. Jones",
		CreatedBy:   userID,
	})

	require.NoError(t, err)
	require.NotNil(t, matter)
	assert.Equal(t, "Smith v. Jones", matter.Description)
	assert.False(t, matter.IsDeleted)

	require.NotNil(t, audited)
	assert.Equal(t, matter.ID, audited.MatterID)
	assert.Equal(t, domain.ActionCreated, audited.Action)
	assert.Equal(t, userID, audited.UserID)

	matterRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
}

func TestMatterService_Create_NilPayload(t *testing.T) {
	svc, matterRepo, auditRepo, txm := setupMatterService()

	matter, err := svc.Create(context.Background(), nil)

	assert.Nil(t, matter)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, 0, txm.Calls)
	matterRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	auditRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMatterService_Create_BlankDescription(t *testing.T) {
	svc, _, auditRepo, txm := setupMatterService()

	_, err := svc.Create(context.Background(), &service.CreateMatterInput{
		Description: "  ",
		CreatedBy:   uuid.New(),
	})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, 0, txm.Calls)
	auditRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMatterService_Update_Deleted_Conflict(t *testing.T) {
	svc, matterRepo, auditRepo, txm := setupMatterService()
	matterID := uuid.New()

	matterRepo.On("GetByID", mock.Anything, matterID).Return(&domain.Matter{
		ID:        matterID,
		IsDeleted: true,
	}, nil)

	_, err := svc.Update(context.Background(), &service.UpdateMatterInput{
		MatterID:    matterID,
		Description: "renamed",
		UpdatedBy:   uuid.New(),
	})

	assert.True(t, errors.Is(err, domain.ErrMatterDeleted))
	assert.Equal(t, 0, txm.Calls)
	auditRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMatterService_Delete_Success(t *testing.T) {
	svc, matterRepo, auditRepo, _ := setupMatterService()
	matterID := uuid.New()
	userID := uuid.New()

	matterRepo.On("GetByID", mock.Anything, matterID).Return(&domain.Matter{ID: matterID}, nil)
	matterRepo.On("SetDeleted", mock.Anything, matterID, true).Return(nil)

	var audited *domain.MatterActivity
	auditRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.MatterActivity")).
		Run(func(args mock.Arguments) { audited = args.Get(1).(*domain.MatterActivity) }).
		Return(nil)

	err := svc.Delete(context.Background(), matterID, userID)

	require.NoError(t, err)
	require.NotNil(t, audited)
	assert.Equal(t, domain.ActionDeleted, audited.Action)
	assert.Equal(t, userID, audited.UserID)
	matterRepo.AssertExpectations(t)
}

func TestMatterService_Delete_NotFound_LedgerUntouched(t *testing.T) {
	svc, matterRepo, auditRepo, txm := setupMatterService()
	matterID := uuid.New()

	matterRepo.On("GetByID", mock.Anything, matterID).Return(nil, domain.ErrMatterNotFound)

	err := svc.Delete(context.Background(), matterID, uuid.New())

	assert.True(t, errors.Is(err, domain.ErrMatterNotFound))
	assert.Equal(t, 0, txm.Calls)
	auditRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	matterRepo.AssertNotCalled(t, "SetDeleted", mock.Anything, mock.Anything, mock.Anything)
}

func TestMatterService_Delete_AlreadyDeleted(t *testing.T) {
	svc, matterRepo, auditRepo, txm := setupMatterService()
	matterID := uuid.New()

	matterRepo.On("GetByID", mock.Anything, matterID).Return(&domain.Matter{
		ID:        matterID,
		IsDeleted: true,
	}, nil)

	err := svc.Delete(context.Background(), matterID, uuid.New())

	assert.True(t, errors.Is(err, domain.ErrAlreadyDeleted))
	assert.Equal(t, 0, txm.Calls)
	auditRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMatterService_Restore_Success(t *testing.T) {
	svc, matterRepo, auditRepo, _ := setupMatterService()
	matterID := uuid.New()

	matterRepo.On("GetByID", mock.Anything, matterID).Return(&domain.Matter{
		ID:        matterID,
		IsDeleted: true,
	}, nil)
	matterRepo.On("SetDeleted", mock.Anything, matterID, false).Return(nil)

	var audited *domain.MatterActivity
	auditRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.MatterActivity")).
		Run(func(args mock.Arguments) { audited = args.Get(1).(*domain.MatterActivity) }).
		Return(nil)

	err := svc.Restore(context.Background(), matterID, uuid.New())

	require.NoError(t, err)
	require.NotNil(t, audited)
	assert.Equal(t, domain.ActionRestored, audited.Action)
}

func TestMatterService_Restore_NotDeleted(t *testing.T) {
	svc, matterRepo, auditRepo, txm := setupMatterService()
	matterID := uuid.New()

	matterRepo.On("GetByID", mock.Anything, matterID).Return(&domain.Matter{ID: matterID}, nil)

	err := svc.Restore(context.Background(), matterID, uuid.New())

	assert.True(t, errors.Is(err, domain.ErrNotDeleted))
	assert.Equal(t, 0, txm.Calls)
	auditRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMatterService_Delete_CommitFault_ReturnsFailure(t *testing.T) {
	svc, matterRepo, auditRepo, txm := setupMatterService()
	matterID := uuid.New()
	txm.CommitErr = errors.New("connection reset")

	matterRepo.On("GetByID", mock.Anything, matterID).Return(&domain.Matter{ID: matterID}, nil)
	matterRepo.On("SetDeleted", mock.Anything, matterID, true).Return(nil)
	auditRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	err := svc.Delete(context.Background(), matterID, uuid.New())

	assert.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestMatterService_List_InvalidSort_Rejected(t *testing.T) {
	svc, matterRepo, _, _ := setupMatterService()

	_, err := svc.List(context.Background(), false, "Description; DROP TABLE matters", pagination.Params{Page: 1, PageSize: 10})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	matterRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMatterService_List_Success(t *testing.T) {
	svc, matterRepo, _, _ := setupMatterService()

	matters := []domain.Matter{{ID: uuid.New()}, {ID: uuid.New()}}
	matterRepo.On("List", mock.Anything, false, mock.Anything, 10, 10).Return(matters, 25, nil)

	page, err := svc.List(context.Background(), false, "", pagination.Params{Page: 2, PageSize: 10})

	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 25, page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasNext)
	assert.True(t, page.HasPrevious)
}

func TestMatterService_List_BadPageParams(t *testing.T) {
	svc, matterRepo, _, _ := setupMatterService()

	_, err := svc.List(context.Background(), false, "", pagination.Params{Page: 0, PageSize: 10})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	matterRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
