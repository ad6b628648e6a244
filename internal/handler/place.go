package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hbnb-api/internal/model"
	"github.com/iliyamo/hbnb-api/internal/policy"
	"github.com/iliyamo/hbnb-api/internal/queue"
	"github.com/iliyamo/hbnb-api/internal/service"
)

// PlaceHandler serves the /places resource. Reads are public; create
// requires authentication and writes require owner-or-admin.
type PlaceHandler struct {
	Facade *service.Facade
}

func NewPlaceHandler(f *service.Facade) *PlaceHandler {
	if f == nil {
		panic("nil facade passed to NewPlaceHandler")
	}
	return &PlaceHandler{Facade: f}
}

type createPlaceReq struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Amenities   []string `json:"amenities"`
}

type updatePlaceReq struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Amenities   []string `json:"amenities"`
}

// placeSummary is the abbreviated projection used on list responses.
type placeSummary struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ownerPart is the owner subset embedded in a place detail response.
type ownerPart struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type placeDetail struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	Owner       ownerPart       `json:"owner"`
	Amenities   []model.Amenity `json:"amenities"`
}

// List handles GET /places (public) and returns the abbreviated
// projection.
func (h *PlaceHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	places, err := h.Facade.ListPlaces(ctx)
	if err != nil {
		return writeErr(c, err)
	}
	out := make([]placeSummary, 0, len(places))
	for _, p := range places {
		out = append(out, placeSummary{ID: p.ID, Title: p.Title, Price: p.Price, Latitude: p.Latitude, Longitude: p.Longitude})
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /places/:id (public) and embeds the owner's public
// fields plus the amenity list.
func (h *PlaceHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	p, err := h.Facade.GetPlace(ctx, c.Param("id"))
	if err != nil {
		return writeErr(c, err)
	}
	owner, err := h.Facade.GetUser(ctx, p.OwnerID)
	if err != nil {
		return writeErr(c, err)
	}
	amenities := p.Amenities
	if amenities == nil {
		amenities = []model.Amenity{}
	}
	return c.JSON(http.StatusOK, placeDetail{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		Owner:       ownerPart{ID: owner.ID, FirstName: owner.FirstName, LastName: owner.LastName, Email: owner.Email},
		Amenities:   amenities,
	})
}

// Create handles POST /places. The owner is always the caller; an
// owner_id in the body is ignored.
func (h *PlaceHandler) Create(c echo.Context) error {
	a, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	var req createPlaceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	p, err := h.Facade.CreatePlace(ctx, req.Title, req.Description, req.Price, req.Latitude, req.Longitude, a.UserID, req.Amenities)
	if err != nil {
		return writeErr(c, err)
	}

	_ = queue.Publish(ctx, queue.PlaceCreatedQueue, queue.PlaceCreatedEvent{
		PlaceID:   p.ID,
		OwnerID:   p.OwnerID,
		Title:     p.Title,
		Price:     p.Price,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	})
	return c.JSON(http.StatusCreated, p)
}

// Update handles PUT /places/:id (owner or admin). The owner reference
// never changes; the patch has no owner field.
func (h *PlaceHandler) Update(c echo.Context) error {
	a, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	p, err := h.Facade.GetPlace(ctx, c.Param("id"))
	if err != nil {
		return writeErr(c, err)
	}
	if !policy.OwnerOrAdmin(a, p.OwnerID) {
		return forbidden(c)
	}

	var req updatePlaceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	updated, err := h.Facade.UpdatePlace(ctx, p.ID, service.PlacePatch{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Amenities:   req.Amenities,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /places/:id (owner or admin). Reviews and
// amenity links cascade in the database.
func (h *PlaceHandler) Delete(c echo.Context) error {
	a, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	p, err := h.Facade.GetPlace(ctx, c.Param("id"))
	if err != nil {
		return writeErr(c, err)
	}
	if !policy.OwnerOrAdmin(a, p.OwnerID) {
		return forbidden(c)
	}

	if err := h.Facade.DeletePlace(ctx, p.ID); err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "place deleted successfully"})
}
