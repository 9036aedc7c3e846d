package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "phonebook/internal/delivery/context"
	"phonebook/internal/delivery/http/response"
	domainerrors "phonebook/internal/domain/errors"
	"phonebook/internal/domain/service"
	"phonebook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EntryHandlerParams holds dependencies for EntryHandler, injected by Fx.
type EntryHandlerParams struct {
	fx.In

	EntryUC usecase.EntryUsecase
	Codec   service.IdentifierCodec
	Logger  *slog.Logger
}

// EntryHandler serves the mutating phonebook routes.
type EntryHandler struct {
	entryUC usecase.EntryUsecase
	codec   service.IdentifierCodec
	logger  *slog.Logger
}

// NewEntryHandler is the constructor for EntryHandler
func NewEntryHandler(params EntryHandlerParams) *EntryHandler {
	return &EntryHandler{
		entryUC: params.EntryUC,
		codec:   params.Codec,
		logger:  params.Logger,
	}
}

// CreateEntry handles POST /phonebook/entries
func (h *EntryHandler) CreateEntry(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var input usecase.CreateEntryInput
	if err := c.Bind(&input); err != nil {
		return bindingError(usecase.OpCreate, err)
	}

	view, err := h.entryUC.Create(c.Request().Context(), caller, input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, newEntryResponse(h.codec, view), "Phonebook entry created")
}

// UpdateEntry handles PATCH /phonebook/entries/:id
func (h *EntryHandler) UpdateEntry(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateEntryInput
	if err := c.Bind(&input); err != nil {
		return bindingError(usecase.OpUpdate, err)
	}

	view, err := h.entryUC.Update(c.Request().Context(), caller, c.Param("id"), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newEntryResponse(h.codec, view), "Phonebook entry updated")
}

// DeleteEntry handles DELETE /phonebook/entries/:id
func (h *EntryHandler) DeleteEntry(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	token := c.Param("id")
	if err := h.entryUC.Delete(c.Request().Context(), caller, token); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, DeletedResponse{ID: token}, "Phonebook entry deleted")
}

// AddToGroup handles POST /phonebook/entries/:id/groups
func (h *EntryHandler) AddToGroup(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req AddToGroupRequest
	if err := c.Bind(&req); err != nil {
		return bindingError(usecase.OpAddToGroup, err)
	}

	view, err := h.entryUC.AddToGroup(c.Request().Context(), caller, c.Param("id"), req.Name)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newEntryResponse(h.codec, view), "Entry added to group")
}

// RemoveFromGroup handles DELETE /phonebook/entries/:id/groups/:name
func (h *EntryHandler) RemoveFromGroup(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	view, err := h.entryUC.RemoveFromGroup(c.Request().Context(), caller, c.Param("id"), c.Param("name"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newEntryResponse(h.codec, view), "Entry removed from group")
}

// AddNumber handles POST /phonebook/entries/:id/numbers
func (h *EntryHandler) AddNumber(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var input usecase.NumberInput
	if err := c.Bind(&input); err != nil {
		return bindingError(usecase.OpAddNumber, err)
	}

	view, err := h.entryUC.AddNumber(c.Request().Context(), caller, c.Param("id"), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, newEntryResponse(h.codec, view), "Number added")
}

// RemoveNumber handles DELETE /phonebook/numbers/:id
func (h *EntryHandler) RemoveNumber(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	view, err := h.entryUC.RemoveNumber(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newEntryResponse(h.codec, view), "Number removed")
}

// AddRating handles POST /phonebook/entries/:id/ratings
func (h *EntryHandler) AddRating(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req AddRatingRequest
	if err := c.Bind(&req); err != nil {
		return bindingError(usecase.OpAddRating, err)
	}
	if err := c.Validate(&req); err != nil {
		return usecase.WithOperationReason(usecase.OpAddRating, usecase.ValidationFailed(err, ""))
	}

	view, err := h.entryUC.AddRating(c.Request().Context(), caller, c.Param("id"), *req.Rate)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, newEntryResponse(h.codec, view), "Rating added")
}

// callerFrom returns the caller resolved by the auth middleware.
func callerFrom(c echo.Context) (uuid.UUID, error) {
	caller, ok := deliverycontext.GetCallerFromEcho(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return caller, nil
}

// bindingError reports a request body that could not be decoded as a validation failure of op.
func bindingError(op string, err error) error {
	return usecase.WithOperationReason(op, usecase.MalformedRequest(err))
}
