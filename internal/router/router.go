// Package router wires the HTTP routes to their handlers. Public reads
// carry no middleware; authenticated routes run JWTAuth; admin routes
// additionally run RequireAdmin. Ownership checks finer than the admin
// gate live inside the handlers themselves as policy calls.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hbnb-api/internal/handler"
	"github.com/iliyamo/hbnb-api/internal/middleware"
)

// RegisterRoutes mounts the full API surface under /api/v1 on the given
// Echo instance.
func RegisterRoutes(e *echo.Echo, a *handler.AuthHandler, u *handler.UserHandler, am *handler.AmenityHandler, p *handler.PlaceHandler, r *handler.ReviewHandler, jwtSecret string) {
	e.GET("/healthz", handler.Health)

	v1 := e.Group("/api/v1")

	// Auth endpoints; none require an existing session.
	auth := v1.Group("/auth")
	auth.POST("/register", a.Register)
	auth.POST("/login", a.Login)
	auth.POST("/refresh", a.Refresh)
	auth.POST("/logout", a.Logout)

	// Public reads and open registration.
	v1.GET("/users", u.List)
	v1.GET("/users/:id", u.Get)
	v1.POST("/users", u.Create)
	v1.GET("/amenities", am.List)
	v1.GET("/amenities/:id", am.Get)
	v1.GET("/places", p.List)
	v1.GET("/places/:id", p.Get)
	v1.GET("/places/:id/reviews", r.ListByPlace)
	v1.GET("/reviews", r.List)
	v1.GET("/reviews/:id", r.Get)

	// Routes that require a valid access token.
	authed := v1.Group("", middleware.JWTAuth(jwtSecret))
	authed.GET("/me", a.Me)
	authed.PUT("/users/:id", u.UpdateSelf)
	authed.POST("/places", p.Create)
	authed.PUT("/places/:id", p.Update)
	authed.DELETE("/places/:id", p.Delete)
	authed.POST("/reviews", r.Create)
	authed.PUT("/reviews/:id", r.Update)
	authed.DELETE("/reviews/:id", r.Delete)

	// Admin-only management routes.
	admin := v1.Group("", middleware.JWTAuth(jwtSecret), middleware.RequireAdmin())
	admin.POST("/users/admin", u.AdminCreate)
	admin.PUT("/users/admin/:id", u.AdminUpdate)
	admin.DELETE("/users/admin/:id", u.AdminDelete)
	admin.POST("/amenities", am.Create)
	admin.PUT("/amenities/:id", am.Update)
	admin.DELETE("/amenities/:id", am.Delete)
}
