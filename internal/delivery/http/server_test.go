package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"phonebook/config"
	"phonebook/internal/delivery/http/middleware"
	"phonebook/internal/delivery/http/response"
	"phonebook/internal/delivery/http/router"
	"phonebook/internal/delivery/http/router/handler"
	"phonebook/internal/domain/entity"
	domainerrors "phonebook/internal/domain/errors"
	"phonebook/internal/domain/service"
	"phonebook/internal/infra/auth"
	"phonebook/internal/infra/identifier"
	"phonebook/internal/infra/metrics"
	"phonebook/internal/infra/persistence/postgres"
	"phonebook/internal/infra/persistence/sqlitetest"
	"phonebook/internal/infra/pubsub"
	"phonebook/internal/infra/qrcode"
	"phonebook/internal/usecase"
	"phonebook/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool                `json:"success"`
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Error   *response.ErrorInfo `json:"error"`
}

type apiFixture struct {
	echo   *echo.Echo
	tokens service.TokenService
	codec  service.IdentifierCodec
}

func newTestAPI(t *testing.T) *apiFixture {
	t.Helper()

	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{
			Access:     "http-test-access-secret",
			Identifier: "http-test-identifier-secret",
		},
		Phonebook: &config.PhonebookConfig{DefaultPageSize: 20, MaxPageSize: 100},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db := sqlitetest.New(t)
	codec, err := identifier.NewCodec(cfg)
	require.NoError(t, err)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	registry := metrics.NewRegistry()
	recorder := metrics.NewRecorder(metrics.New(registry))
	validate := usecase.NewValidator()
	txManager := postgres.NewTransactionManager(db)

	entryUC := impl.NewEntryService(txManager, codec, pubsub.NewNoopPublisher(logger), recorder, validate, logger)
	searchUC := impl.NewSearchService(txManager, codec, qrcode.NewQRCodeServiceFromConfig(cfg), recorder, validate, cfg, logger)

	e := NewEcho(HTTPParams{
		Config:              cfg,
		Logger:              logger,
		Validate:            validate,
		RequestIDMiddleware: middleware.NewRequestIDMiddleware(logger),
		LoggerMiddleware:    middleware.NewLoggerMiddleware(logger, cfg),
		ErrorMiddleware:     middleware.NewErrorMiddleware(logger),
		RouterParams: router.RouterParams{
			EntryHandler:   handler.NewEntryHandler(handler.EntryHandlerParams{EntryUC: entryUC, Codec: codec, Logger: logger}),
			SearchHandler:  handler.NewSearchHandler(handler.SearchHandlerParams{SearchUC: searchUC, Codec: codec, Logger: logger}),
			AuthMiddleware: middleware.NewAuthMiddleware(tokens),
			Registry:       registry,
		},
	})

	return &apiFixture{echo: e, tokens: tokens, codec: codec}
}

func (a *apiFixture) do(t *testing.T, method, path string, caller uuid.UUID, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if caller != uuid.Nil {
		token, err := a.tokens.GenerateAccessToken(caller, time.Minute)
		require.NoError(t, err)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	var env envelope
	if rec.Header().Get(echo.HeaderContentType) == echo.MIMEApplicationJSON ||
		rec.Header().Get(echo.HeaderContentType) == echo.MIMEApplicationJSONCharsetUTF8 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func (a *apiFixture) createEntry(t *testing.T, owner uuid.UUID, name string, groups ...string) handler.EntryResponse {
	t.Helper()

	rec, env := a.do(t, http.MethodPost, "/phonebook/entries", owner, map[string]any{
		"name":       name,
		"city":       "Zagreb",
		"street":     "Ilica 1",
		"postalCode": "10000",
		"country":    "Croatia",
		"type":       "personal",
		"groups":     groups,
		"numbers":    []map[string]any{{"number": "+385911234567", "type": "mobile"}},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var entry handler.EntryResponse
	require.NoError(t, json.Unmarshal(env.Data, &entry))

	return entry
}

func TestServer_HealthAndMetrics(t *testing.T) {
	api := newTestAPI(t)

	rec, env := api.do(t, http.MethodGet, "/health", uuid.Nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	api.createEntry(t, uuid.New(), "Ana")

	rec, _ = api.do(t, http.MethodGet, "/metrics", uuid.Nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `phonebook_operations_total{operation="create",outcome="ok"} 1`)
}

func TestServer_RequiresBearerToken(t *testing.T) {
	api := newTestAPI(t)

	rec, env := api.do(t, http.MethodGet, "/phonebook/entries", uuid.Nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, domainerrors.CodeUnauthorized, env.Error.Code)

	req := httptest.NewRequest(http.MethodGet, "/phonebook/entries", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-jwt")
	rec = httptest.NewRecorder()
	api.echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_CreateAndOwnership(t *testing.T) {
	api := newTestAPI(t)
	owner := uuid.New()
	created := api.createEntry(t, owner, "Ana", "friends")

	assert.Equal(t, "Ana", created.Name)
	assert.Equal(t, []string{"friends"}, created.Groups)
	require.Len(t, created.Numbers, 1)
	assert.Equal(t, "0.00", created.Rating)
	assert.Zero(t, created.RatingCount)

	rec, env := api.do(t, http.MethodPatch, "/phonebook/entries/"+created.ID, uuid.New(), map[string]any{"name": "Mallory"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "You are not owner of this entry", env.Message)
	require.NotNil(t, env.Error)
	assert.Equal(t, domainerrors.CodeNotOwner, env.Error.Code)

	rec, env = api.do(t, http.MethodPatch, "/phonebook/entries/"+created.ID, owner, map[string]any{"city": "Rijeka"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated handler.EntryResponse
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Ana", updated.Name)
	assert.Equal(t, "Rijeka", updated.City)

	rec, _ = api.do(t, http.MethodGet, "/phonebook/entries/"+created.ID, uuid.New(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = api.do(t, http.MethodDelete, "/phonebook/entries/"+created.ID, owner, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = api.do(t, http.MethodDelete, "/phonebook/entries/"+created.ID, owner, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Entry with given id does not exists!", env.Message)
}

func TestServer_Ratings(t *testing.T) {
	api := newTestAPI(t)
	created := api.createEntry(t, uuid.New(), "Ana")
	rater := uuid.New()

	var rated handler.EntryResponse
	for _, rate := range []int{5, 0, 3} {
		rec, env := api.do(t, http.MethodPost, "/phonebook/entries/"+created.ID+"/ratings", rater, map[string]any{"rate": rate})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		require.NoError(t, json.Unmarshal(env.Data, &rated))
	}
	assert.Equal(t, "2.67", rated.Rating)
	assert.Equal(t, int64(3), rated.RatingCount)

	rec, env := api.do(t, http.MethodPost, "/phonebook/entries/"+created.ID+"/ratings", rater, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Rate must be a non-negative integer!", env.Message)
	require.NotNil(t, env.Error)
	assert.Equal(t, "rate: is required", env.Error.Details)

	rec, env = api.do(t, http.MethodPost, "/phonebook/entries/"+created.ID+"/ratings", rater, map[string]any{"rate": -2})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.CodeValidationFailed, env.Error.Code)
	assert.Equal(t, "rate: must be at least 0", env.Error.Details)

	rec, env = api.do(t, http.MethodPost, "/phonebook/entries/"+created.ID+"/ratings", rater, map[string]any{"rate": int64(1) << 31})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "rate: must be at most 2147483647", env.Error.Details)

	rec, env = api.do(t, http.MethodPost, "/phonebook/entries/"+created.ID+"/ratings", rater, `{"rate":"five"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "rate: must be an integer", env.Error.Details)
}

func TestServer_GroupsAndNumbers(t *testing.T) {
	api := newTestAPI(t)
	owner := uuid.New()
	created := api.createEntry(t, owner, "Ana")

	rec, env := api.do(t, http.MethodPost, "/phonebook/entries/"+created.ID+"/groups", owner, map[string]any{"name": "work"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var entry handler.EntryResponse
	require.NoError(t, json.Unmarshal(env.Data, &entry))
	assert.Equal(t, []string{"work"}, entry.Groups)

	rec, env = api.do(t, http.MethodDelete, "/phonebook/entries/"+created.ID+"/groups/"+url.PathEscape("no such group"), owner, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domainerrors.CodeGroupNotFound, env.Error.Code)

	rec, env = api.do(t, http.MethodDelete, "/phonebook/numbers/"+created.ID, owner, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.CodeMismatchedIdentifierKind, env.Error.Code)
	assert.Equal(t, "Invalid phonebook number id!", env.Message)

	rec, env = api.do(t, http.MethodDelete, "/phonebook/numbers/"+created.Numbers[0].ID, owner, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, &entry))
	assert.Empty(t, entry.Numbers)
}

func TestServer_ListEntries(t *testing.T) {
	api := newTestAPI(t)
	owner := uuid.New()
	api.createEntry(t, owner, "Ana", "friends")
	api.createEntry(t, uuid.New(), "Ivo")

	rec, env := api.do(t, http.MethodGet, "/phonebook/entries?search=friend&limit=10", owner, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var page handler.EntryPageResponse
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Ana", page.Items[0].Name)

	rec, env = api.do(t, http.MethodGet, "/phonebook/me/entries?orderBy=-created_at", owner, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, int64(1), page.Total)

	rec, env = api.do(t, http.MethodGet, "/phonebook/entries?limit=many", owner, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid search parameters!", env.Message)
}

func TestServer_MalformedBody(t *testing.T) {
	api := newTestAPI(t)

	rec, env := api.do(t, http.MethodPost, "/phonebook/entries", uuid.New(), `{"name":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Error while creating phonebook entry!", env.Message)
	require.NotNil(t, env.Error)
	assert.Equal(t, "request is malformed", env.Error.Details)

	rec, env = api.do(t, http.MethodPost, "/phonebook/entries", uuid.New(), map[string]any{
		"city": "Zagreb", "street": "Ilica 1", "postalCode": "10000", "country": "Croatia", "type": "personal",
		"numbers": []map[string]any{{"type": "fax"}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "name: is required; numbers[0].type: must be one of: mobile, landline", env.Error.Details)
	assert.NotContains(t, env.Error.Details, "CreateEntryInput")
}

func TestServer_ContactCard(t *testing.T) {
	api := newTestAPI(t)
	owner := uuid.New()
	created := api.createEntry(t, owner, "Ana")

	rec, _ := api.do(t, http.MethodGet, "/phonebook/entries/"+created.ID+"/qrcode", owner, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
}

func TestServer_UnknownRoute(t *testing.T) {
	api := newTestAPI(t)

	rec, env := api.do(t, http.MethodGet, "/nope", uuid.Nil, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}

func TestServer_EntryTokenKinds(t *testing.T) {
	api := newTestAPI(t)
	owner := uuid.New()

	rec, env := api.do(t, http.MethodGet, "/phonebook/entries/"+api.codec.Encode(entity.KindRating, 1), owner, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid phonebook entry id!", env.Message)

	rec, env = api.do(t, http.MethodGet, "/phonebook/entries/garbage", owner, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.CodeMalformedIdentifier, env.Error.Code)
}
