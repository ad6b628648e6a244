package middleware // middleware provides shared request processing for handlers

import (
	"net/http" // http package defines standard HTTP status codes

	"github.com/labstack/echo/v4" // echo provides middleware chaining and context

	"github.com/iliyamo/hbnb-api/internal/policy" // policy holds the pure authorization decisions
)

// RequireAdmin returns a middleware function that enforces the admin
// claim on the authenticated user. It assumes JWTAuth has already stored
// the claims in the context under "user_id" and "is_admin". Non-admin
// requests are aborted with 403 without revealing anything about the
// target resource.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, _ := c.Get("user_id").(string)
			isAdmin, _ := c.Get("is_admin").(bool)
			if !policy.AdminOnly(policy.Actor{UserID: id, IsAdmin: isAdmin}) {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "admin privileges required"})
			}
			return next(c)
		}
	}
}
