package impl

import (
	"bytes"
	"context"
	"testing"

	"phonebook/internal/domain/entity"
	domainerrors "phonebook/internal/domain/errors"
	"phonebook/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(page *usecase.EntryPage) []string {
	result := make([]string, 0, len(page.Items))
	for _, item := range page.Items {
		result = append(result, item.Entry.Name)
	}

	return result
}

func TestSearchService_List_Pagination(t *testing.T) {
	fx := createTestPhonebook(t)
	ctx := context.Background()
	owner := uuid.New()
	for _, name := range []string{"A", "B", "C", "D"} {
		fx.create(t, owner, name, "Zagreb")
	}

	page, err := fx.search.List(ctx, usecase.ListEntriesInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), page.Total)
	assert.Equal(t, 2, page.Limit)
	assert.Equal(t, []string{"A", "B"}, names(page))

	page, err = fx.search.List(ctx, usecase.ListEntriesInput{Limit: 50, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Limit)
	assert.Equal(t, []string{"B", "C", "D"}, names(page))

	page, err = fx.search.List(ctx, usecase.ListEntriesInput{OrderBy: usecase.OrderCreatedAtDesc, Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "C", "B"}, names(page))
}

func TestSearchService_List_Filters(t *testing.T) {
	fx := createTestPhonebook(t)
	ctx := context.Background()
	owner := uuid.New()
	fx.create(t, owner, "Ana", "Zagreb", "friends", "friendly neighbours")
	fx.create(t, owner, "Ivo", "Split")
	company, err := fx.entries.Create(ctx, owner, usecase.CreateEntryInput{
		Name: "Friendly Corp", City: "Split", Street: "Riva 2", PostalCode: "21000", Country: "Croatia",
		Type: entity.EntryTypeEnterprise,
	})
	require.NoError(t, err)

	t.Run("search matches name, city and groups once per entry", func(t *testing.T) {
		page, err := fx.search.List(ctx, usecase.ListEntriesInput{Search: "FRIEND", Limit: 3})
		require.NoError(t, err)
		assert.Equal(t, int64(2), page.Total)
		assert.Equal(t, []string{"Ana", "Friendly Corp"}, names(page))
	})

	t.Run("city is exact", func(t *testing.T) {
		city := "Split"
		page, err := fx.search.List(ctx, usecase.ListEntriesInput{City: &city, Limit: 3})
		require.NoError(t, err)
		assert.Equal(t, []string{"Ivo", "Friendly Corp"}, names(page))
	})

	t.Run("type", func(t *testing.T) {
		enterprise := entity.EntryTypeEnterprise
		page, err := fx.search.List(ctx, usecase.ListEntriesInput{Type: &enterprise})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, company.Entry.ID, page.Items[0].Entry.ID)
	})

	t.Run("invalid order", func(t *testing.T) {
		_, err := fx.search.List(ctx, usecase.ListEntriesInput{OrderBy: "name"})
		appErr := requireAppError(t, err, domainerrors.CodeValidationFailed)
		assert.Equal(t, "Invalid search parameters!", appErr.Message())
	})
}

func TestSearchService_List_CarriesRatings(t *testing.T) {
	fx := createTestPhonebook(t)
	ctx := context.Background()
	rated := fx.create(t, uuid.New(), "Ana", "Zagreb")
	fx.create(t, uuid.New(), "Ivo", "Split")
	for _, rate := range []int{4, 5} {
		_, err := fx.entries.AddRating(ctx, uuid.New(), fx.token(rated), rate)
		require.NoError(t, err)
	}

	page, err := fx.search.List(ctx, usecase.ListEntriesInput{})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "4.50", page.Items[0].Rating.Average())
	assert.Equal(t, int64(2), page.Items[0].Rating.Count)
	assert.Equal(t, "0.00", page.Items[1].Rating.Average())
}

func TestSearchService_ListMine(t *testing.T) {
	fx := createTestPhonebook(t)
	ctx := context.Background()
	me := uuid.New()
	fx.create(t, me, "Mine", "Zagreb")
	fx.create(t, uuid.New(), "Theirs", "Zagreb")

	page, err := fx.search.ListMine(ctx, me, usecase.ListEntriesInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, []string{"Mine"}, names(page))

	_, err = fx.search.ListMine(ctx, uuid.Nil, usecase.ListEntriesInput{})
	requireAppError(t, err, domainerrors.CodeUnauthorized)
}

func TestSearchService_Get(t *testing.T) {
	fx := createTestPhonebook(t)
	ctx := context.Background()
	owner := uuid.New()
	created := fx.create(t, owner, "Ana", "Zagreb")

	view, err := fx.search.Get(ctx, owner, fx.token(created))
	require.NoError(t, err)
	assert.Equal(t, "Ana", view.Entry.Name)

	_, err = fx.search.Get(ctx, uuid.New(), fx.token(created))
	appErr := requireAppError(t, err, domainerrors.CodeNotFound)
	assert.Equal(t, "Entry with given id does not exists!", appErr.Message())

	_, err = fx.search.Get(ctx, owner, fx.codec.Encode(entity.KindNumber, created.Entry.ID))
	requireAppError(t, err, domainerrors.CodeMismatchedIdentifierKind)
}

func TestSearchService_ContactCard(t *testing.T) {
	fx := createTestPhonebook(t)
	ctx := context.Background()
	owner := uuid.New()
	created := fx.create(t, owner, "Ana", "Zagreb")

	png, err := fx.search.ContactCard(ctx, owner, fx.token(created))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	_, err = fx.search.ContactCard(ctx, uuid.New(), fx.token(created))
	requireAppError(t, err, domainerrors.CodeNotFound)
}
