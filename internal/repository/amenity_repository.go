package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/hbnb-api/internal/model"
)

type AmenityRepo struct{ DB *sql.DB }

func NewAmenityRepo(db *sql.DB) *AmenityRepo { return &AmenityRepo{DB: db} }

// Create inserts an amenity row. A duplicate name surfaces as ErrDuplicate.
func (r *AmenityRepo) Create(ctx context.Context, a *model.Amenity) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO amenities (id, name, created_at, updated_at) VALUES (?,?,?,?)",
		a.ID, a.Name, a.CreatedAt, a.UpdatedAt)
	return translate(err)
}

// GetByID fetches an amenity by id.
func (r *AmenityRepo) GetByID(ctx context.Context, id string) (model.Amenity, error) {
	var a model.Amenity
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,created_at,updated_at FROM amenities WHERE id=? LIMIT 1", id).
		Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt)
	return a, translate(err)
}

// List returns all amenities ordered by name.
func (r *AmenityRepo) List(ctx context.Context) ([]model.Amenity, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,created_at,updated_at FROM amenities ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Amenity
	for rows.Next() {
		var a model.Amenity
		if err := rows.Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Update persists a renamed amenity.
func (r *AmenityRepo) Update(ctx context.Context, a *model.Amenity) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE amenities SET name=?, updated_at=? WHERE id=?",
		a.Name, a.UpdatedAt, a.ID)
	if err != nil {
		return translate(err)
	}
	return ensureFound(ctx, res, r.DB, "SELECT 1 FROM amenities WHERE id=?", a.ID)
}

// Delete removes an amenity; place links cascade in the database.
func (r *AmenityRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM amenities WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
