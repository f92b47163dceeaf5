package handler

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"wittycar/internal/auth"
	"wittycar/internal/errors"
)

// currentUser extracts the verified token claims placed in the context by
// the auth middleware.
func currentUser(c echo.Context) (*auth.Claims, error) {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok || claims == nil {
		return nil, errors.Unauthenticated("access token is required")
	}
	return claims, nil
}

// bindAndValidate binds the request body and runs struct-level validation,
// translating validator errors into per-field details.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.Validation("invalid request body")
	}
	if err := c.Validate(req); err != nil {
		var verrs validator.ValidationErrors
		if stderrors.As(err, &verrs) {
			fields := make([]errors.FieldError, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, errors.FieldError{
					Field:   strings.ToLower(fe.Field()[:1]) + fe.Field()[1:],
					Message: validationMessage(fe),
				})
			}
			return errors.Validation("validation failed", fields...)
		}
		return errors.Validation(err.Error())
	}
	return nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	default:
		return "is invalid"
	}
}
