package httputil

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"wittycar/internal/errors"
)

// Envelope is the uniform response body for every endpoint.
type Envelope struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	Data      interface{}         `json:"data,omitempty"`
	Timestamp time.Time           `json:"timestamp"`
	Errors    []errors.FieldError `json:"errors,omitempty"`
}

// OK writes a 200 envelope.
func OK(c echo.Context, message string, data interface{}) error {
	return respond(c, http.StatusOK, message, data)
}

// Created writes a 201 envelope.
func Created(c echo.Context, message string, data interface{}) error {
	return respond(c, http.StatusCreated, message, data)
}

// Fail writes an error envelope; the status code comes from the error's kind.
// Unclassified errors hide their message behind a generic 500.
func Fail(c echo.Context, err error) error {
	kind := errors.KindOf(err)
	message := err.Error()
	if kind == errors.KindInternal {
		message = "internal server error"
	}
	return c.JSON(errors.HTTPStatus(kind), Envelope{
		Success:   false,
		Message:   message,
		Timestamp: time.Now().UTC(),
		Errors:    errors.FieldsOf(err),
	})
}

func respond(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}
