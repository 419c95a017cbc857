// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	deliverycontext "nms/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

var errMissingCaller = echo.NewHTTPError(http.StatusUnauthorized, "Caller identity missing from request")

// normalizer is implemented by every inbound DTO.
type normalizer interface {
	Normalize()
}

// bindRequest binds the request into input, normalizes it and validates the result.
// The returned error is safe to show to the client.
func bindRequest(c echo.Context, input normalizer) error {
	if err := c.Bind(input); err != nil {
		return errors.New("malformed request body")
	}

	input.Normalize()

	return c.Validate(input)
}

// requireID rejects updates that do not name the record to change.
func requireID(id int64, field string) error {
	if id <= 0 {
		return errors.Errorf("%s is required", field)
	}

	return nil
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int64, error) {
	var id int64
	if err := echo.PathParamsBinder(c).MustInt64("id", &id).BindError(); err != nil {
		return 0, errors.New("id must be a positive integer")
	}

	return id, requireID(id, "id")
}

// callerID returns the authenticated caller set by the auth middleware.
func callerID(c echo.Context) (int64, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return 0, errMissingCaller
	}

	return userID, nil
}
