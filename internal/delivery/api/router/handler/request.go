package handler

import (
	"zumap/internal/delivery/api/response"
	"zumap/internal/delivery/api/validator"
	"zumap/internal/errors"

	"github.com/labstack/echo/v4"
)

// bindingError marks a request that could not be decoded.
type bindingError struct {
	message string
}

func (e *bindingError) Error() string { return e.message }

func newBindingError(message string) error {
	return &bindingError{message: message}
}

// bindAndValidate decodes the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any, message string) error {
	if err := c.Bind(req); err != nil {
		return newBindingError(message)
	}

	return c.Validate(req)
}

// rejectRequest writes the response for a binding, validation or use case error.
func rejectRequest(c echo.Context, err error) error {
	var bindErr *bindingError
	if errors.As(err, &bindErr) {
		return response.BindingError(c, bindErr.message)
	}
	if details := validator.Details(err); details != nil {
		return response.ValidationError(c, details)
	}

	return response.HandleAppError(c, err)
}
