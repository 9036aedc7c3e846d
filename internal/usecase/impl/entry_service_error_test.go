package impl

import (
	"context"
	"testing"

	deliverycontext "phonebook/internal/delivery/context"
	"phonebook/internal/domain/entity"
	domainerrors "phonebook/internal/domain/errors"
	"phonebook/internal/domain/repository"
	"phonebook/internal/domain/service"
	"phonebook/internal/errors"
	"phonebook/internal/infra/identifier"
	"phonebook/internal/infra/metrics"
	"phonebook/internal/infra/persistence/postgres"
	"phonebook/internal/infra/persistence/sqlitetest"
	mockRepo "phonebook/internal/mocks/repository"
	mockService "phonebook/internal/mocks/service"
	"phonebook/internal/usecase"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type entryServiceFixtures struct {
	service   usecase.EntryUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	publisher *mockService.MockEventPublisher
	codec     service.IdentifierCodec
	metrics   *metrics.Metrics
}

func createTestEntryService(t *testing.T) entryServiceFixtures {
	codec, err := identifier.NewCodecFromSecret(testIdentifierSecret)
	require.NoError(t, err)

	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	publisher := mockService.NewMockEventPublisher(t)
	m := metrics.New(metrics.NewRegistry())

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return entryServiceFixtures{
		service:   NewEntryService(txManager, codec, publisher, metrics.NewRecorder(m), usecase.NewValidator(), discardLogger()),
		txManager: txManager,
		factory:   factory,
		publisher: publisher,
		codec:     codec,
		metrics:   m,
	}
}

func validCreateInput() usecase.CreateEntryInput {
	return usecase.CreateEntryInput{
		Name:       "Ana",
		City:       "Zagreb",
		Street:     "Ilica 1",
		PostalCode: "10000",
		Country:    "Croatia",
		Type:       entity.EntryTypePersonal,
	}
}

func TestEntryService_Create_StorageFailureIsInternal(t *testing.T) {
	fx := createTestEntryService(t)
	ctx := context.Background()

	entryRepo := mockRepo.NewMockEntryRepository(t)
	fx.factory.EXPECT().NewEntryRepository().Return(entryRepo)
	fx.factory.EXPECT().NewGroupRepository().Return(mockRepo.NewMockGroupRepository(t))
	fx.factory.EXPECT().NewNumberRepository().Return(mockRepo.NewMockNumberRepository(t))
	entryRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("connection reset by peer"))

	view, err := fx.service.Create(ctx, uuid.New(), validCreateInput())

	assert.Nil(t, view)
	appErr := requireAppError(t, err, domainerrors.CodeInternalError)
	assert.Equal(t, "Something went wrong, please try again later", usecase.Reason(appErr))
	assert.NotContains(t, usecase.Reason(err), "connection reset")
	assert.InDelta(t, 1, testutil.ToFloat64(fx.metrics.Operations.WithLabelValues(usecase.OpCreate, domainerrors.CodeInternalError)), 0)
}

func TestEntryService_Update_LockFailureIsInternal(t *testing.T) {
	fx := createTestEntryService(t)
	ctx := context.Background()

	entryRepo := mockRepo.NewMockEntryRepository(t)
	fx.factory.EXPECT().NewEntryRepository().Return(entryRepo)
	entryRepo.EXPECT().FindByIDForUpdate(ctx, int64(7)).Return(nil, errors.New("deadlock detected"))

	_, err := fx.service.Update(ctx, uuid.New(), fx.codec.Encode(entity.KindEntry, 7), usecase.UpdateEntryInput{Name: strPtr("Ivo")})

	requireAppError(t, err, domainerrors.CodeInternalError)
}

func TestEntryService_Update_NoChangesSkipsWriteAndEvent(t *testing.T) {
	fx := createTestEntryService(t)
	ctx := context.Background()
	owner := uuid.New()
	entry := &entity.Entry{ID: 7, Name: "Ana", City: "Zagreb", Type: entity.EntryTypePersonal, OwnerID: &owner}

	entryRepo := mockRepo.NewMockEntryRepository(t)
	ratingRepo := mockRepo.NewMockRatingRepository(t)
	fx.factory.EXPECT().NewEntryRepository().Return(entryRepo)
	fx.factory.EXPECT().NewRatingRepository().Return(ratingRepo)
	entryRepo.EXPECT().FindByIDForUpdate(ctx, int64(7)).Return(entry, nil)
	entryRepo.EXPECT().FindByID(ctx, int64(7)).Return(entry, nil)
	ratingRepo.EXPECT().Summaries(ctx, []int64{7}).Return(map[int64]entity.RatingSummary{}, nil)

	view, err := fx.service.Update(ctx, owner, fx.codec.Encode(entity.KindEntry, 7), usecase.UpdateEntryInput{Name: strPtr("Ana")})

	require.NoError(t, err)
	assert.Equal(t, "Ana", view.Entry.Name)
	entryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishEntryEvent", mock.Anything, mock.Anything)
}

func TestEntryService_Update_WritesChangedColumns(t *testing.T) {
	fx := createTestEntryService(t)
	ctx := context.Background()
	owner := uuid.New()
	entry := &entity.Entry{ID: 7, Name: "Ana", City: "Zagreb", Type: entity.EntryTypePersonal, OwnerID: &owner}

	entryRepo := mockRepo.NewMockEntryRepository(t)
	ratingRepo := mockRepo.NewMockRatingRepository(t)
	fx.factory.EXPECT().NewEntryRepository().Return(entryRepo)
	fx.factory.EXPECT().NewRatingRepository().Return(ratingRepo)
	entryRepo.EXPECT().FindByIDForUpdate(ctx, int64(7)).Return(entry, nil)
	entryRepo.EXPECT().
		Update(ctx, entry, []repository.EntryField{repository.EntryFieldCity}).
		Return(nil)
	entryRepo.EXPECT().FindByID(ctx, int64(7)).Return(entry, nil)
	ratingRepo.EXPECT().Summaries(ctx, []int64{7}).Return(nil, nil)
	fx.publisher.EXPECT().PublishEntryEvent(ctx, mock.Anything).Return(nil)

	view, err := fx.service.Update(ctx, owner, fx.codec.Encode(entity.KindEntry, 7), usecase.UpdateEntryInput{
		Name: strPtr("Ana"),
		City: strPtr("Osijek"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Osijek", view.Entry.City)
}

func TestEntryService_PublishFailureDoesNotFailOperation(t *testing.T) {
	db := sqlitetest.New(t)
	codec, err := identifier.NewCodecFromSecret(testIdentifierSecret)
	require.NoError(t, err)
	publisher := mockService.NewMockEventPublisher(t)
	m := metrics.New(metrics.NewRegistry())
	svc := NewEntryService(postgres.NewTransactionManager(db), codec, publisher, metrics.NewRecorder(m), usecase.NewValidator(), discardLogger())

	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	caller := uuid.New()

	var published *service.EntryEvent
	publisher.EXPECT().
		PublishEntryEvent(ctx, mock.Anything).
		Run(func(_ context.Context, event *service.EntryEvent) {
			published = event
		}).
		Return(errors.New("broker unavailable"))

	view, err := svc.Create(ctx, caller, validCreateInput())

	require.NoError(t, err)
	require.NotNil(t, view)
	require.NotNil(t, published)
	assert.Equal(t, service.EntryCreated, published.Type)
	assert.Equal(t, codec.Encode(entity.KindEntry, view.Entry.ID), published.EntryID)
	assert.Equal(t, caller.String(), published.ActorID)
	assert.Equal(t, "req-42", published.RequestID)
	assert.InDelta(t, 1, testutil.ToFloat64(m.PublishFailures.WithLabelValues(string(service.EntryCreated))), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Operations.WithLabelValues(usecase.OpCreate, service.OutcomeOK)), 0)
}

func TestEntryService_RejectedOperationsDoNotPublish(t *testing.T) {
	fx := createTestEntryService(t)
	ctx := context.Background()
	owner := uuid.New()
	entry := &entity.Entry{ID: 9, OwnerID: &owner}

	entryRepo := mockRepo.NewMockEntryRepository(t)
	fx.factory.EXPECT().NewEntryRepository().Return(entryRepo)
	entryRepo.EXPECT().FindByIDForUpdate(ctx, int64(9)).Return(entry, nil)

	err := fx.service.Delete(ctx, uuid.New(), fx.codec.Encode(entity.KindEntry, 9))

	requireAppError(t, err, domainerrors.CodeNotOwner)
	fx.publisher.AssertNotCalled(t, "PublishEntryEvent", mock.Anything, mock.Anything)
}
