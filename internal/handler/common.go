// Package handler exposes the HTTP endpoints. Handlers parse requests,
// apply the authorization policy, invoke the facade and map results and
// errors to JSON responses. Nothing below this layer knows about HTTP.
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hbnb-api/internal/model"
	"github.com/iliyamo/hbnb-api/internal/policy"
	"github.com/iliyamo/hbnb-api/internal/repository"
)

// actor extracts the authenticated identity stored by the JWTAuth
// middleware. ok is false when the request carries no valid identity.
func actor(c echo.Context) (policy.Actor, bool) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return policy.Actor{}, false
	}
	isAdmin, _ := c.Get("is_admin").(bool)
	return policy.Actor{UserID: id, IsAdmin: isAdmin}, true
}

// reqCtx derives a bounded context for store calls from the request.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}

// writeErr maps a facade or repository error to its HTTP response.
// Validation failures are 400, missing entities 404, unique-key
// violations 409; anything else is a 500 with a generic message so
// internal details never leak.
func writeErr(c echo.Context, err error) error {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": verr.Error()})
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrDuplicate):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}

// forbidden is the uniform 403 body; it reveals nothing about the
// target resource beyond what the caller already knows.
func forbidden(c echo.Context) error {
	return c.JSON(http.StatusForbidden, echo.Map{"error": "unauthorized action"})
}

// unauthorized is the uniform 401 body for requests without a usable
// identity.
func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
}
