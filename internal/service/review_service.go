package service

import (
	"context"

	"github.com/iliyamo/hbnb-api/internal/model"
)

// ReviewPatch carries a partial review update. The author and place
// references are immutable and therefore absent.
type ReviewPatch struct {
	Text   *string
	Rating *int
}

// CreateReview verifies that the author and the place exist, validates
// the fields and stores the review. The owner-cannot-review rule is a
// policy decision made by the handler, which already holds the place.
// For non-admins a duplicate (user, place) pair surfaces as
// repository.ErrDuplicate from the guarded insert; admins may review the
// same place more than once.
func (f *Facade) CreateReview(ctx context.Context, text string, rating int, userID, placeID string, isAdmin bool) (*model.Review, error) {
	if _, err := f.Users.GetByID(ctx, userID); err != nil {
		return nil, notFound("user")
	}
	if _, err := f.Places.GetByID(ctx, placeID); err != nil {
		return nil, notFound("place")
	}
	rev, err := model.NewReview(text, rating, userID, placeID)
	if err != nil {
		return nil, err
	}
	if err := f.Reviews.Create(ctx, rev, !isAdmin); err != nil {
		return nil, err
	}
	return rev, nil
}

// GetReview returns one review by id.
func (f *Facade) GetReview(ctx context.Context, id string) (model.Review, error) {
	return f.Reviews.GetByID(ctx, id)
}

// ListReviews returns every review.
func (f *Facade) ListReviews(ctx context.Context) ([]model.Review, error) {
	return f.Reviews.List(ctx)
}

// ListReviewsByPlace returns the reviews for one place after checking
// that the place exists.
func (f *Facade) ListReviewsByPlace(ctx context.Context, placeID string) ([]model.Review, error) {
	if _, err := f.Places.GetByID(ctx, placeID); err != nil {
		return nil, notFound("place")
	}
	return f.Reviews.ListByPlace(ctx, placeID)
}

// UpdateReview loads the review, applies the patch through the entity
// setters and persists the result.
func (f *Facade) UpdateReview(ctx context.Context, id string, patch ReviewPatch) (*model.Review, error) {
	rev, err := f.Reviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Text != nil {
		if err := rev.SetText(*patch.Text); err != nil {
			return nil, err
		}
	}
	if patch.Rating != nil {
		if err := rev.SetRating(*patch.Rating); err != nil {
			return nil, err
		}
	}
	rev.Touch()
	if err := f.Reviews.Update(ctx, &rev); err != nil {
		return nil, err
	}
	return &rev, nil
}

// DeleteReview removes a review.
func (f *Facade) DeleteReview(ctx context.Context, id string) error {
	return f.Reviews.Delete(ctx, id)
}
