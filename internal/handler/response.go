package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"regadmin/internal/errors"
)

// Envelope is the fixed response shape of every JSON endpoint.
type Envelope struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ListData wraps a paginated collection.
type ListData struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

func respond(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, Envelope{
		Code:    errors.StatusText(status),
		Message: message,
		Data:    data,
	})
}

func respondErr(c echo.Context, err error) error {
	status := errors.HTTPStatus(err)
	return c.JSON(status, Envelope{
		Code:    errors.StatusText(status),
		Message: http.StatusText(status),
		Error:   err.Error(),
	})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, Envelope{
		Code:    errors.StatusText(http.StatusBadRequest),
		Message: http.StatusText(http.StatusBadRequest),
		Error:   msg,
	})
}
