package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"phonebook/config"
	"phonebook/internal/domain/entity"
	domainerrors "phonebook/internal/domain/errors"
	"phonebook/internal/domain/service"
	"phonebook/internal/errors"
	"phonebook/internal/infra/identifier"
	"phonebook/internal/infra/metrics"
	"phonebook/internal/infra/persistence/postgres"
	"phonebook/internal/infra/persistence/sqlitetest"
	"phonebook/internal/infra/pubsub"
	"phonebook/internal/infra/qrcode"
	"phonebook/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testIdentifierSecret = "phonebook-test-identifier-secret"

func strPtr(s string) *string { return &s }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// phonebookFixtures wires both services to a private sqlite database.
type phonebookFixtures struct {
	db      *gorm.DB
	entries usecase.EntryUsecase
	search  usecase.SearchUsecase
	codec   service.IdentifierCodec
	metrics *metrics.Metrics
}

func createTestPhonebook(t *testing.T) *phonebookFixtures {
	t.Helper()

	db := sqlitetest.New(t)
	codec, err := identifier.NewCodecFromSecret(testIdentifierSecret)
	require.NoError(t, err)

	logger := discardLogger()
	m := metrics.New(metrics.NewRegistry())
	recorder := metrics.NewRecorder(m)
	validate := usecase.NewValidator()
	txManager := postgres.NewTransactionManager(db)
	cfg := &config.Config{Phonebook: &config.PhonebookConfig{DefaultPageSize: 2, MaxPageSize: 3}}

	return &phonebookFixtures{
		db:      db,
		entries: NewEntryService(txManager, codec, pubsub.NewNoopPublisher(logger), recorder, validate, logger),
		search:  NewSearchService(txManager, codec, qrcode.NewQRCodeService(256, "M"), recorder, validate, cfg, logger),
		codec:   codec,
		metrics: m,
	}
}

func (f *phonebookFixtures) create(t *testing.T, owner uuid.UUID, name, city string, groups ...string) *entity.EntryView {
	t.Helper()

	view, err := f.entries.Create(context.Background(), owner, usecase.CreateEntryInput{
		Name:       name,
		City:       city,
		Street:     "Ilica 1",
		PostalCode: "10000",
		Country:    "Croatia",
		Type:       entity.EntryTypePersonal,
		Groups:     groups,
	})
	require.NoError(t, err)

	return view
}

func (f *phonebookFixtures) token(view *entity.EntryView) string {
	return f.codec.Encode(entity.KindEntry, view.Entry.ID)
}

// requireAppError asserts err is a domain error with the given code and returns it.
func requireAppError(t *testing.T, err error, code string) domainerrors.AppError {
	t.Helper()

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected a domain error, got %v", err)
	require.Equal(t, code, appErr.ErrorCode())

	return appErr
}
