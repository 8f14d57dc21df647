package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lexvault/internal/domain"
	"lexvault/internal/service"
	"lexvault/mocks"
)

type transferServiceMocks struct {
	matterRepo *mocks.MockMatterRepo
	docRepo    *mocks.MockDocumentRepo
	mdAudit    *mocks.MockMatterDocumentAuditRepo
	txm        *mocks.StubTxManager
}

func setupTransferService() (service.TransferService, *transferServiceMocks) {
	m := &transferServiceMocks{
		matterRepo: new(mocks.MockMatterRepo),
		docRepo:    new(mocks.MockDocumentRepo),
		mdAudit:    new(mocks.MockMatterDocumentAuditRepo),
		txm:        &mocks.StubTxManager{},
	}
	svc := service.NewTransferService(m.matterRepo, m.docRepo, m.mdAudit, m.txm, testLogger())
	return svc, m
}

func transferFixture(m *transferServiceMocks) (source, target, docID uuid.UUID) {
	source = uuid.New()
	target = uuid.New()
	docID = uuid.New()

	m.matterRepo.On("GetByID", mock.Anything, source).Return(&domain.Matter{ID: source}, nil)
	m.matterRepo.On("GetByID", mock.Anything, target).Return(&domain.Matter{ID: target}, nil)
	m.docRepo.On("GetByID", mock.Anything, docID).Return(&domain.Document{
		ID:       docID,
		MatterID: source,
		FileName: "complaint",
	}, nil)
	m.docRepo.On("FileNameExists", mock.Anything, target, "complaint").Return(false, nil)
	return source, target, docID
}

func TestTransferService_Move_WritesPairedRecords(t *testing.T) {
	svc, m := setupTransferService()
	source, target, docID := transferFixture(m)
	userID := uuid.New()

	m.docRepo.On("Reassign", mock.Anything, docID, target).Return(nil)

	var recorded []*domain.MatterDocumentActivity
	m.mdAudit.On("Create", mock.Anything, mock.AnythingOfType("*domain.MatterDocumentActivity")).
		Run(func(args mock.Arguments) {
			recorded = append(recorded, args.Get(1).(*domain.MatterDocumentActivity))
		}).
		Return(nil)

	err := svc.MoveOrCopy(context.Background(), &service.TransferInput{
		SourceMatterID: source,
		TargetMatterID: target,
		DocumentID:     docID,
		Mode:           domain.TransferMove,
		UserID:         userID,
	})

	require.NoError(t, err)
	require.Len(t, recorded, 2)

	from, to := recorded[0], recorded[1]
	assert.Equal(t, domain.DirectionFrom, from.Direction)
	assert.Equal(t, source, from.MatterID)
	assert.Equal(t, target, from.CounterpartMatterID)

	assert.Equal(t, domain.DirectionTo, to.Direction)
	assert.Equal(t, target, to.MatterID)
	assert.Equal(t, source, to.CounterpartMatterID)

	// Both halves of the pair carry the same action, document and instant.
	assert.Equal(t, domain.ActionMoved, from.Action)
	assert.Equal(t, domain.ActionMoved, to.Action)
	assert.Equal(t, docID, from.DocumentID)
	assert.Equal(t, docID, to.DocumentID)
	assert.True(t, from.CreatedAt.Equal(to.CreatedAt))
	assert.Equal(t, userID, from.UserID)
	assert.Equal(t, userID, to.UserID)

	assert.Equal(t, 1, m.txm.Calls)
	m.docRepo.AssertExpectations(t)
}

func TestTransferService_Copy_DoesNotReassign(t *testing.T) {
	svc, m := setupTransferService()
	source, target, docID := transferFixture(m)

	var recorded []*domain.MatterDocumentActivity
	m.mdAudit.On("Create", mock.Anything, mock.AnythingOfType("*domain.MatterDocumentActivity")).
		Run(func(args mock.Arguments) {
			recorded = append(recorded, args.Get(1).(*domain.MatterDocumentActivity))
		}).
		Return(nil)

	err := svc.MoveOrCopy(context.Background(), &service.TransferInput{
		SourceMatterID: source,
		TargetMatterID: target,
		DocumentID:     docID,
		Mode:           domain.TransferCopy,
		UserID:         uuid.New(),
	})

	require.NoError(t, err)
	require.Len(t, recorded, 2)
	assert.Equal(t, domain.ActionCopied, recorded[0].Action)
	assert.Equal(t, domain.ActionCopied, recorded[1].Action)
	m.docRepo.AssertNotCalled(t, "Reassign", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransferService_SameMatter_Rejected(t *testing.T) {
	svc, m := setupTransferService()
	matterID := uuid.New()

	err := svc.MoveOrCopy(context.Background(), &service.TransferInput{
		SourceMatterID: matterID,
		TargetMatterID: matterID,
		DocumentID:     uuid.New(),
		Mode:           domain.TransferMove,
		UserID:         uuid.New(),
	})

	assert.True(t, errors.Is(err, domain.ErrSameMatter))
	assert.Equal(t, 0, m.txm.Calls)
	m.matterRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestTransferService_InvalidMode_Rejected(t *testing.T) {
	svc, m := setupTransferService()

	err := svc.MoveOrCopy(context.Background(), &service.TransferInput{
		SourceMatterID: uuid.New(),
		TargetMatterID: uuid.New(),
		DocumentID:     uuid.New(),
		Mode:           domain.TransferMode("merge"),
		UserID:         uuid.New(),
	})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, 0, m.txm.Calls)
}

func TestTransferService_DocumentNotInSourceMatter(t *testing.T) {
	svc, m := setupTransferService()
	source := uuid.New()
	target := uuid.New()
	docID := uuid.New()
	elsewhere := uuid.New()

	m.matterRepo.On("GetByID", mock.Anything, source).Return(&domain.Matter{ID: source}, nil)
	m.matterRepo.On("GetByID", mock.Anything, target).Return(&domain.Matter{ID: target}, nil)
	m.docRepo.On("GetByID", mock.Anything, docID).Return(&domain.Document{
		ID:       docID,
		MatterID: elsewhere,
		FileName: "complaint",
	}, nil)

	err := svc.MoveOrCopy(context.Background(), &service.TransferInput{
		SourceMatterID: source,
		TargetMatterID: target,
		DocumentID:     docID,
		Mode:           domain.TransferMove,
		UserID:         uuid.New(),
	})

	assert.True(t, errors.Is(err, domain.ErrDocumentNotInMatter))
	assert.Equal(t, 0, m.txm.Calls)
	m.mdAudit.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTransferService_TargetFileNameTaken_NothingPersisted(t *testing.T) {
	svc, m := setupTransferService()
	source := uuid.New()
	target := uuid.New()
	docID := uuid.New()

	m.matterRepo.On("GetByID", mock.Anything, source).Return(&domain.Matter{ID: source}, nil)
	m.matterRepo.On("GetByID", mock.Anything, target).Return(&domain.Matter{ID: target}, nil)
	m.docRepo.On("GetByID", mock.Anything, docID).Return(&domain.Document{
		ID:       docID,
		MatterID: source,
		FileName: "complaint",
	}, nil)
	m.docRepo.On("FileNameExists", mock.Anything, target, "complaint").Return(true, nil)

	err := svc.MoveOrCopy(context.Background(), &service.TransferInput{
		SourceMatterID: source,
		TargetMatterID: target,
		DocumentID:     docID,
		Mode:           domain.TransferMove,
		UserID:         uuid.New(),
	})

	assert.True(t, errors.Is(err, domain.ErrFileNameTaken))
	assert.Equal(t, 0, m.txm.Calls)
	m.docRepo.AssertNotCalled(t, "Reassign", mock.Anything, mock.Anything, mock.Anything)
	m.mdAudit.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTransferService_DeletedTargetMatter_Rejected(t *testing.T) {
	svc, m := setupTransferService()
	source := uuid.New()
	target := uuid.New()

	m.matterRepo.On("GetByID", mock.Anything, source).Return(&domain.Matter{ID: source}, nil)
	m.matterRepo.On("GetByID", mock.Anything, target).Return(&domain.Matter{
		ID:        target,
		IsDeleted: true,
	}, nil)

	err := svc.MoveOrCopy(context.Background(), &service.TransferInput{
		SourceMatterID: source,
		TargetMatterID: target,
		DocumentID:     uuid.New(),
		Mode:           domain.TransferCopy,
		UserID:         uuid.New(),
	})

	assert.True(t, errors.Is(err, domain.ErrMatterDeleted))
	assert.Equal(t, 0, m.txm.Calls)
}

func TestTransferService_DeletedDocument_Rejected(t *testing.T) {
	svc, m := setupTransferService()
	source := uuid.New()
	target := uuid.New()
	docID := uuid.New()

	m.matterRepo.On("GetByID", mock.Anything, source).Return(&domain.Matter{ID: source}, nil)
	m.matterRepo.On("GetByID", mock.Anything, target).Return(&domain.Matter{ID: target}, nil)
	m.docRepo.On("GetByID", mock.Anything, docID).Return(&domain.Document{
		ID:        docID,
		MatterID:  source,
		IsDeleted: true,
	}, nil)

	err := svc.MoveOrCopy(context.Background(), &service.TransferInput{
		SourceMatterID: source,
		TargetMatterID: target,
		DocumentID:     docID,
		Mode:           domain.TransferMove,
		UserID:         uuid.New(),
	})

	assert.True(t, errors.Is(err, domain.ErrDocumentDeleted))
	assert.Equal(t, 0, m.txm.Calls)
}

func TestTransferService_SecondWriteFails_ErrorSurfaced(t *testing.T) {
	svc, m := setupTransferService()
	source, target, docID := transferFixture(m)

	boom := errors.New("insert failed")
	m.mdAudit.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.MatterDocumentActivity) bool {
		return a.Direction == domain.DirectionFrom
	})).Return(nil)
	m.mdAudit.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.MatterDocumentActivity) bool {
		return a.Direction == domain.DirectionTo
	})).Return(boom)

	err := svc.MoveOrCopy(context.Background(), &service.TransferInput{
		SourceMatterID: source,
		TargetMatterID: target,
		DocumentID:     docID,
		Mode:           domain.TransferCopy,
		UserID:         uuid.New(),
	})

	// The tx manager sees the failure, so the FROM half never commits.
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, 1, m.txm.Calls)
}
