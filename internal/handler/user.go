package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hbnb-api/internal/policy"
	"github.com/iliyamo/hbnb-api/internal/service"
)

// UserHandler serves the /users resource: public registration and
// listing, self-service profile updates, and the admin management
// routes.
type UserHandler struct {
	Facade *service.Facade
}

func NewUserHandler(f *service.Facade) *UserHandler {
	if f == nil {
		panic("nil facade passed to NewUserHandler")
	}
	return &UserHandler{Facade: f}
}

type createUserReq struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	IsAdmin   bool   `json:"is_admin"`
}

// selfUpdateReq restricts self-service updates to the name fields;
// email, password and the admin flag can only move through the admin
// route.
type selfUpdateReq struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

type adminUpdateReq struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	IsAdmin   *bool   `json:"is_admin"`
}

// List handles GET /users (public).
func (h *UserHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	users, err := h.Facade.ListUsers(ctx)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /users/:id (public profile).
func (h *UserHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Facade.GetUser(ctx, c.Param("id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

// Create handles POST /users, the unauthenticated registration route.
// The admin flag in the body is ignored here.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Facade.CreateUser(ctx, req.FirstName, req.LastName, req.Email, req.Password, false)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, u)
}

// UpdateSelf handles PUT /users/:id. A user may rename themselves; an
// admin may rename anyone. Other fields are rejected by the DTO shape.
func (h *UserHandler) UpdateSelf(c echo.Context) error {
	a, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	id := c.Param("id")
	if !policy.SelfOrAdmin(a, id) {
		return forbidden(c)
	}

	var req selfUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.FirstName == nil && req.LastName == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no valid fields to update"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Facade.UpdateUser(ctx, id, service.UserPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

// AdminCreate handles POST /users/admin. Unlike public registration the
// admin flag from the body is honored.
func (h *UserHandler) AdminCreate(c echo.Context) error {
	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Facade.CreateUser(ctx, req.FirstName, req.LastName, req.Email, req.Password, req.IsAdmin)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, u)
}

// AdminUpdate handles PUT /users/admin/:id and may change any field,
// including email and password. An email collision surfaces as 409 from
// the unique key.
func (h *UserHandler) AdminUpdate(c echo.Context) error {
	var req adminUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Facade.UpdateUser(ctx, c.Param("id"), service.UserPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

// AdminDelete handles DELETE /users/admin/:id. Owned places and
// authored reviews cascade in the database.
func (h *UserHandler) AdminDelete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Facade.DeleteUser(ctx, c.Param("id")); err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "user deleted successfully"})
}
