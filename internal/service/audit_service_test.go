package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lexvault/internal/domain"
	"lexvault/internal/pagination"
	"lexvault/internal/service"
	"lexvault/internal/sortmap"
	"lexvault/mocks"
)

type auditServiceMocks struct {
	matterAudit *mocks.MockMatterAuditRepo
	docAudit    *mocks.MockDocumentAuditRepo
	revAudit    *mocks.MockRevisionAuditRepo
	mdAudit     *mocks.MockMatterDocumentAuditRepo
}

func setupAuditService() (service.AuditService, *auditServiceMocks) {
	m := &auditServiceMocks{
		matterAudit: new(mocks.MockMatterAuditRepo),
		docAudit:    new(mocks.MockDocumentAuditRepo),
		revAudit:    new(mocks.MockRevisionAuditRepo),
		mdAudit:     new(mocks.MockMatterDocumentAuditRepo),
	}
	svc := service.NewAuditService(m.matterAudit, m.docAudit, m.revAudit, m.mdAudit, testLogger())
	return svc, m
}

func TestAuditService_ListMatterActivity_DefaultsToNewestFirst(t *testing.T) {
	svc, m := setupAuditService()
	matterID := uuid.New()

	var clauses []sortmap.Clause
	m.matterAudit.On("ListByMatter", mock.Anything, matterID, mock.Anything, 0, 20).
		Run(func(args mock.Arguments) { clauses = args.Get(2).([]sortmap.Clause) }).
		Return([]domain.MatterActivity{}, 0, nil)

	_, err := svc.ListMatterActivity(context.Background(), matterID, "", pagination.Params{Page: 1, PageSize: 20})

	require.NoError(t, err)
	require.Len(t, clauses, 1)
	assert.Equal(t, sortmap.Clause{Column: "created_at", Desc: true}, clauses[0])
}

func TestAuditService_ListMatterActivity_InjectionRejectedBeforeRepo(t *testing.T) {
	svc, m := setupAuditService()

	_, err := svc.ListMatterActivity(context.Background(), uuid.New(), "created_at; DROP TABLE matter_activity", pagination.Params{Page: 1, PageSize: 20})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	m.matterAudit.AssertNotCalled(t, "ListByMatter", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuditService_ListDocumentActivity_PaginationMetadata(t *testing.T) {
	svc, m := setupAuditService()
	docID := uuid.New()

	entries := make([]domain.DocumentActivity, 10)
	for i := range entries {
		entries[i] = domain.DocumentActivity{
			ID:         uuid.New(),
			DocumentID: docID,
			Action:     domain.ActionUpdated,
			CreatedAt:  time.Now().UTC(),
		}
	}
	m.docAudit.On("ListByDocument", mock.Anything, docID, mock.Anything, 10, 10).
		Return(entries, 25, nil)

	page, err := svc.ListDocumentActivity(context.Background(), docID, "", pagination.Params{Page: 2, PageSize: 10})

	require.NoError(t, err)
	assert.Len(t, page.Items, 10)
	assert.Equal(t, 25, page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasNext)
	assert.True(t, page.HasPrevious)
}

func TestAuditService_ListRevisionActivity_NilID(t *testing.T) {
	svc, m := setupAuditService()

	_, err := svc.ListRevisionActivity(context.Background(), uuid.Nil, "", pagination.Params{Page: 1, PageSize: 10})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	m.revAudit.AssertNotCalled(t, "ListByRevision", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuditService_ListMatterTransfers_DirectionPassedThrough(t *testing.T) {
	svc, m := setupAuditService()
	matterID := uuid.New()
	dir := domain.DirectionFrom

	m.mdAudit.On("ListByMatter", mock.Anything, matterID, &dir, mock.Anything, 0, 50).
		Return([]domain.MatterDocumentActivity{}, 0, nil)

	_, err := svc.ListMatterTransfers(context.Background(), matterID, &dir, "", pagination.Params{Page: 1, PageSize: 50})

	require.NoError(t, err)
	m.mdAudit.AssertExpectations(t)
}

func TestAuditService_ListMatterTransfers_NoDirectionFilter(t *testing.T) {
	svc, m := setupAuditService()
	matterID := uuid.New()

	m.mdAudit.On("ListByMatter", mock.Anything, matterID, (*domain.TransferDirection)(nil), mock.Anything, 0, 50).
		Return([]domain.MatterDocumentActivity{}, 0, nil)

	_, err := svc.ListMatterTransfers(context.Background(), matterID, nil, "", pagination.Params{Page: 1, PageSize: 50})

	require.NoError(t, err)
	m.mdAudit.AssertExpectations(t)
}

func TestAuditService_ListMatterTransfers_BadDirection(t *testing.T) {
	svc, m := setupAuditService()
	dir := domain.TransferDirection("sideways")

	_, err := svc.ListMatterTransfers(context.Background(), uuid.New(), &dir, "", pagination.Params{Page: 1, PageSize: 10})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	m.mdAudit.AssertNotCalled(t, "ListByMatter", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuditService_ListDocumentTransfers_SortableByDirection(t *testing.T) {
	svc, m := setupAuditService()
	docID := uuid.New()

	var clauses []sortmap.Clause
	m.mdAudit.On("ListByDocument", mock.Anything, docID, (*domain.TransferDirection)(nil), mock.Anything, 0, 10).
		Run(func(args mock.Arguments) { clauses = args.Get(3).([]sortmap.Clause) }).
		Return([]domain.MatterDocumentActivity{}, 0, nil)

	_, err := svc.ListDocumentTransfers(context.Background(), docID, nil, "direction desc, createdAt", pagination.Params{Page: 1, PageSize: 10})

	require.NoError(t, err)
	require.Len(t, clauses, 2)
	assert.Equal(t, sortmap.Clause{Column: "direction", Desc: true}, clauses[0])
	assert.Equal(t, sortmap.Clause{Column: "created_at"}, clauses[1])
}

func TestAuditService_ListDocumentTransfers_OversizedPage(t *testing.T) {
	svc, m := setupAuditService()

	_, err := svc.ListDocumentTransfers(context.Background(), uuid.New(), nil, "", pagination.Params{Page: 1, PageSize: pagination.MaxPageSize + 1})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	m.mdAudit.AssertNotCalled(t, "ListByDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
