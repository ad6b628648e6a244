package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hbnb-api/internal/policy"
	"github.com/iliyamo/hbnb-api/internal/queue"
	"github.com/iliyamo/hbnb-api/internal/service"
)

// ReviewHandler serves the /reviews resource plus the per-place review
// listing. Reads are public; create requires an authenticated non-owner
// and writes require author-or-admin.
type ReviewHandler struct {
	Facade *service.Facade
}

func NewReviewHandler(f *service.Facade) *ReviewHandler {
	if f == nil {
		panic("nil facade passed to NewReviewHandler")
	}
	return &ReviewHandler{Facade: f}
}

type createReviewReq struct {
	Text    string `json:"text"`
	Rating  *int   `json:"rating"`
	PlaceID string `json:"place_id"`
}

type updateReviewReq struct {
	Text   *string `json:"text"`
	Rating *int    `json:"rating"`
}

// List handles GET /reviews (public).
func (h *ReviewHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	reviews, err := h.Facade.ListReviews(ctx)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, reviews)
}

// Get handles GET /reviews/:id (public).
func (h *ReviewHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	rev, err := h.Facade.GetReview(ctx, c.Param("id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, rev)
}

// ListByPlace handles GET /places/:id/reviews (public).
func (h *ReviewHandler) ListByPlace(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	reviews, err := h.Facade.ListReviewsByPlace(ctx, c.Param("id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, reviews)
}

// Create handles POST /reviews. The author is always the caller. Owners
// cannot review their own place (400, matching the original behavior,
// not 403); a second review for the same place is a 409. Admins bypass
// both the owner rule and the one-review rule.
func (h *ReviewHandler) Create(c echo.Context) error {
	a, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}
	var req createReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.PlaceID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "place_id is required"})
	}
	if req.Rating == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rating is required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	place, err := h.Facade.GetPlace(ctx, req.PlaceID)
	if err != nil {
		return writeErr(c, err)
	}
	if !policy.CanReview(a, place.OwnerID) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "you cannot review your own place"})
	}

	rev, err := h.Facade.CreateReview(ctx, req.Text, *req.Rating, a.UserID, req.PlaceID, a.IsAdmin)
	if err != nil {
		return writeErr(c, err)
	}

	_ = queue.Publish(ctx, queue.ReviewCreatedQueue, queue.ReviewCreatedEvent{
		ReviewID:  rev.ID,
		PlaceID:   rev.PlaceID,
		UserID:    rev.UserID,
		Rating:    rev.Rating,
		CreatedAt: rev.CreatedAt.Format(time.RFC3339),
	})
	return c.JSON(http.StatusCreated, rev)
}

// Update handles PUT /reviews/:id (author or admin).
func (h *ReviewHandler) Update(c echo.Context) error {
	a, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	rev, err := h.Facade.GetReview(ctx, c.Param("id"))
	if err != nil {
		return writeErr(c, err)
	}
	if !policy.OwnerOrAdmin(a, rev.UserID) {
		return forbidden(c)
	}

	var req updateReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	updated, err := h.Facade.UpdateReview(ctx, rev.ID, service.ReviewPatch{
		Text:   req.Text,
		Rating: req.Rating,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /reviews/:id (author or admin).
func (h *ReviewHandler) Delete(c echo.Context) error {
	a, ok := actor(c)
	if !ok {
		return unauthorized(c)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	rev, err := h.Facade.GetReview(ctx, c.Param("id"))
	if err != nil {
		return writeErr(c, err)
	}
	if !policy.OwnerOrAdmin(a, rev.UserID) {
		return forbidden(c)
	}

	if err := h.Facade.DeleteReview(ctx, rev.ID); err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "review deleted successfully"})
}
