package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"phonebook/internal/delivery/http/response"
	domainerrors "phonebook/internal/domain/errors"
	"phonebook/internal/errors"
	"phonebook/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.ErrorCode() == domainerrors.CodeInternalError {
			m.logger.ErrorContext(c.Request().Context(), "Request failed",
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}
		m.write(c, appErr.HTTPCode(), appErr.ErrorCode(), usecase.Reason(err), publicDetails(appErr))

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprint(httpErr.Message)
		m.write(c, httpErr.Code, "HTTP_ERROR", message, "")

		return
	}

	m.logger.ErrorContext(c.Request().Context(), "Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
	m.write(c, http.StatusInternalServerError, domainerrors.CodeInternalError, usecase.Reason(err), "")
}

func (m *ErrorMiddleware) write(c echo.Context, status int, code, message, details string) {
	var err error
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = response.Error(c, status, code, message, details)
	}
	if err != nil {
		m.logger.Warn("Failed to write error response", slog.Any("error", err))
	}
}

// publicDetails hides details of storage faults.
func publicDetails(appErr domainerrors.AppError) string {
	if appErr.ErrorCode() == domainerrors.CodeInternalError {
		return ""
	}

	return appErr.Details()
}
