package handler

import (
	"log/slog"
	"net/http"

	"phonebook/internal/delivery/http/response"
	"phonebook/internal/domain/entity"
	"phonebook/internal/domain/service"
	"phonebook/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	Codec    service.IdentifierCodec
	Logger   *slog.Logger
}

// SearchHandler serves the read-only phonebook routes.
type SearchHandler struct {
	searchUC usecase.SearchUsecase
	codec    service.IdentifierCodec
	logger   *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		searchUC: params.SearchUC,
		codec:    params.Codec,
		logger:   params.Logger,
	}
}

// ListEntries handles GET /phonebook/entries
func (h *SearchHandler) ListEntries(c echo.Context) error {
	if _, err := callerFrom(c); err != nil {
		return err
	}

	input, err := bindListInput(c)
	if err != nil {
		return err
	}

	page, err := h.searchUC.List(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newEntryPageResponse(h.codec, page), "")
}

// ListMyEntries handles GET /phonebook/me/entries
func (h *SearchHandler) ListMyEntries(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	input, err := bindListInput(c)
	if err != nil {
		return err
	}

	page, err := h.searchUC.ListMine(c.Request().Context(), caller, input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newEntryPageResponse(h.codec, page), "")
}

// GetEntry handles GET /phonebook/entries/:id
func (h *SearchHandler) GetEntry(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	view, err := h.searchUC.Get(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newEntryResponse(h.codec, view), "")
}

// GetContactCard handles GET /phonebook/entries/:id/qrcode
func (h *SearchHandler) GetContactCard(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	png, err := h.searchUC.ContactCard(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func bindListInput(c echo.Context) (usecase.ListEntriesInput, error) {
	input := usecase.ListEntriesInput{
		Search:  c.QueryParam("search"),
		OrderBy: c.QueryParam("orderBy"),
	}
	if value := c.QueryParam("type"); value != "" {
		entryType := entity.EntryType(value)
		input.Type = &entryType
	}
	if value := c.QueryParam("city"); value != "" {
		input.City = &value
	}

	err := echo.QueryParamsBinder(c).
		Int("limit", &input.Limit).
		Int("offset", &input.Offset).
		BindError()
	if err != nil {
		return input, bindingError(usecase.OpList, err)
	}

	return input, nil
}
