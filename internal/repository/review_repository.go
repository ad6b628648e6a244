package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/hbnb-api/internal/model"
)

type ReviewRepo struct{ DB *sql.DB }

func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{DB: db} }

const reviewColumns = "id,text,rating,user_id,place_id,created_at,updated_at"

// Create inserts a review row. With enforceUnique the statement is an
// atomic insert-if-absent on (user_id, place_id): a second review for the
// same pair writes nothing and returns ErrDuplicate. Without it the row
// is inserted unconditionally.
func (r *ReviewRepo) Create(ctx context.Context, rev *model.Review, enforceUnique bool) error {
	if !enforceUnique {
		_, err := r.DB.ExecContext(ctx,
			"INSERT INTO reviews (id, text, rating, user_id, place_id, created_at, updated_at) VALUES (?,?,?,?,?,?,?)",
			rev.ID, rev.Text, rev.Rating, rev.UserID, rev.PlaceID, rev.CreatedAt, rev.UpdatedAt)
		return translate(err)
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO reviews (id, text, rating, user_id, place_id, created_at, updated_at) "+
			"SELECT ?,?,?,?,?,?,? FROM DUAL "+
			"WHERE NOT EXISTS (SELECT 1 FROM reviews WHERE user_id=? AND place_id=?)",
		rev.ID, rev.Text, rev.Rating, rev.UserID, rev.PlaceID, rev.CreatedAt, rev.UpdatedAt,
		rev.UserID, rev.PlaceID)
	if err != nil {
		return translate(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrDuplicate
	}
	return nil
}

// GetByID fetches a review by id.
func (r *ReviewRepo) GetByID(ctx context.Context, id string) (model.Review, error) {
	var rev model.Review
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+reviewColumns+" FROM reviews WHERE id=? LIMIT 1", id).
		Scan(&rev.ID, &rev.Text, &rev.Rating, &rev.UserID, &rev.PlaceID, &rev.CreatedAt, &rev.UpdatedAt)
	return rev, translate(err)
}

// List returns all reviews ordered by creation time.
func (r *ReviewRepo) List(ctx context.Context) ([]model.Review, error) {
	return r.queryMany(ctx, "SELECT "+reviewColumns+" FROM reviews ORDER BY created_at")
}

// ListByPlace returns the reviews written for one place.
func (r *ReviewRepo) ListByPlace(ctx context.Context, placeID string) ([]model.Review, error) {
	return r.queryMany(ctx, "SELECT "+reviewColumns+" FROM reviews WHERE place_id=? ORDER BY created_at", placeID)
}

// Update persists the text and rating of an existing review. The user
// and place references are immutable.
func (r *ReviewRepo) Update(ctx context.Context, rev *model.Review) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE reviews SET text=?, rating=?, updated_at=? WHERE id=?",
		rev.Text, rev.Rating, rev.UpdatedAt, rev.ID)
	if err != nil {
		return translate(err)
	}
	return ensureFound(ctx, res, r.DB, "SELECT 1 FROM reviews WHERE id=?", rev.ID)
}

// Delete removes a review.
func (r *ReviewRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM reviews WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ReviewRepo) queryMany(ctx context.Context, query string, args ...any) ([]model.Review, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Review
	for rows.Next() {
		var rev model.Review
		if err := rows.Scan(&rev.ID, &rev.Text, &rev.Rating, &rev.UserID, &rev.PlaceID, &rev.CreatedAt, &rev.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rev)
	}
	return out, rows.Err()
}
