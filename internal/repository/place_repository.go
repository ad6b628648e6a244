package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/hbnb-api/internal/model"
)

type PlaceRepo struct{ DB *sql.DB }

func NewPlaceRepo(db *sql.DB) *PlaceRepo { return &PlaceRepo{DB: db} }

const placeColumns = "id,title,description,price,latitude,longitude,owner_id,created_at,updated_at"

// Create inserts a place together with its amenity links in one
// transaction. An unknown amenity id violates the foreign key and rolls
// the whole insert back.
func (r *PlaceRepo) Create(ctx context.Context, p *model.Place, amenityIDs []string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO places (id, title, description, price, latitude, longitude, owner_id, created_at, updated_at) VALUES (?,?,?,?,?,?,?,?,?)",
		p.ID, p.Title, p.Description, p.Price, p.Latitude, p.Longitude, p.OwnerID, p.CreatedAt, p.UpdatedAt); err != nil {
		return translate(err)
	}
	for _, aid := range amenityIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO place_amenities (place_id, amenity_id) VALUES (?,?)", p.ID, aid); err != nil {
			return translate(err)
		}
	}
	return tx.Commit()
}

// GetByID fetches a place by id without its amenity set; callers needing
// the set use ListAmenities.
func (r *PlaceRepo) GetByID(ctx context.Context, id string) (model.Place, error) {
	var p model.Place
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+placeColumns+" FROM places WHERE id=? LIMIT 1", id).
		Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Latitude, &p.Longitude, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt)
	return p, translate(err)
}

// List returns all places ordered by creation time.
func (r *PlaceRepo) List(ctx context.Context) ([]model.Place, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+placeColumns+" FROM places ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Place
	for rows.Next() {
		var p model.Place
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Latitude, &p.Longitude, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListAmenities resolves the amenity records linked to a place.
func (r *PlaceRepo) ListAmenities(ctx context.Context, placeID string) ([]model.Amenity, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT a.id,a.name,a.created_at,a.updated_at FROM amenities a JOIN place_amenities pa ON pa.amenity_id=a.id WHERE pa.place_id=? ORDER BY a.name",
		placeID)
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

// Update persists the mutable columns of a place and, when amenityIDs is
// non-nil, replaces the amenity link set in the same transaction.
// owner_id is never written here.
func (r *PlaceRepo) Update(ctx context.Context, p *model.Place, amenityIDs []string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"UPDATE places SET title=?, description=?, price=?, latitude=?, longitude=?, updated_at=? WHERE id=?",
		p.Title, p.Description, p.Price, p.Latitude, p.Longitude, p.UpdatedAt, p.ID)
	if err != nil {
		return translate(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		var one int
		if err := tx.QueryRowContext(ctx, "SELECT 1 FROM places WHERE id=?", p.ID).Scan(&one); err != nil {
			return translate(err)
		}
	}
	if amenityIDs != nil {
		if _, err := tx.ExecContext(ctx, "DELETE FROM place_amenities WHERE place_id=?", p.ID); err != nil {
			return err
		}
		for _, aid := range amenityIDs {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO place_amenities (place_id, amenity_id) VALUES (?,?)", p.ID, aid); err != nil {
				return translate(err)
			}
		}
	}
	return tx.Commit()
}

// Delete removes a place; reviews and amenity links cascade in the
// database.
func (r *PlaceRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM places WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
