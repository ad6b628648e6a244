package model

import "strings"

// Review mirrors the `reviews` table. UserID and PlaceID are foreign keys;
// a non-admin user can hold at most one review per place, enforced by the
// repository's guarded insert.
type Review struct {
	Base
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	UserID  string `json:"user_id"`
	PlaceID string `json:"place_id"`
}

// NewReview validates the fields and returns a Review with a fresh Base.
// Existence of the referenced user and place is checked by the facade,
// not here.
func NewReview(text string, rating int, userID, placeID string) (*Review, error) {
	r := &Review{Base: NewBase()}
	if err := r.SetText(text); err != nil {
		return nil, err
	}
	if err := r.SetRating(rating); err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, invalid("user_id", "is required")
	}
	if placeID == "" {
		return nil, invalid("place_id", "is required")
	}
	r.UserID = userID
	r.PlaceID = placeID
	return r, nil
}

// SetText validates and assigns the review text. The bound matches the
// text column width so an overlong review fails validation instead of
// erroring at insert.
func (r *Review) SetText(v string) error {
	if strings.TrimSpace(v) == "" {
		return invalid("text", "cannot be empty")
	}
	if len(v) > 1024 {
		return invalid("text", "must be at most 1024 characters")
	}
	r.Text = v
	return nil
}

// SetRating validates and assigns the rating.
func (r *Review) SetRating(v int) error {
	if v < 1 || v > 5 {
		return invalid("rating", "must be an integer between 1 and 5")
	}
	r.Rating = v
	return nil
}
