package handler

import (
	"net/url"
	"strconv"

	domainerrors "ayra/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a positive integer")
	}

	return id, nil
}

// pathEmail reads an email path parameter, which clients may percent-encode.
func pathEmail(c echo.Context) string {
	raw := c.Param("email")
	if email, err := url.PathUnescape(raw); err == nil {
		return email
	}

	return raw
}

// bindAndValidate binds the request into req and runs its validate tags.
// The returned error is ready for the central error handler.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request")
	}

	return c.Validate(req)
}
