package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hbnb-api/internal/service"
)

// AmenityHandler serves the /amenities resource. Reads are public; the
// router mounts the write routes behind RequireAdmin.
type AmenityHandler struct {
	Facade *service.Facade
}

func NewAmenityHandler(f *service.Facade) *AmenityHandler {
	if f == nil {
		panic("nil facade passed to NewAmenityHandler")
	}
	return &AmenityHandler{Facade: f}
}

type amenityReq struct {
	Name string `json:"name"`
}

// List handles GET /amenities (public).
func (h *AmenityHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	amenities, err := h.Facade.ListAmenities(ctx)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, amenities)
}

// Get handles GET /amenities/:id (public).
func (h *AmenityHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	a, err := h.Facade.GetAmenity(ctx, c.Param("id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

// Create handles POST /amenities (admin). A duplicate name is a 409
// straight from the unique key.
func (h *AmenityHandler) Create(c echo.Context) error {
	var req amenityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	a, err := h.Facade.CreateAmenity(ctx, req.Name)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}

// Update handles PUT /amenities/:id (admin).
func (h *AmenityHandler) Update(c echo.Context) error {
	var req amenityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	a, err := h.Facade.UpdateAmenity(ctx, c.Param("id"), req.Name)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

// Delete handles DELETE /amenities/:id (admin).
func (h *AmenityHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Facade.DeleteAmenity(ctx, c.Param("id")); err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "amenity deleted successfully"})
}
