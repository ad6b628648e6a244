package service

import (
	"context"

	"github.com/iliyamo/hbnb-api/internal/model"
)

// PlacePatch carries a partial place update. Nil fields are left
// untouched; a non-nil Amenities slice replaces the whole amenity set.
// The owner is immutable, so the patch has no owner field at all.
type PlacePatch struct {
	Title       *string
	Description *string
	Price       *float64
	Latitude    *float64
	Longitude   *float64
	Amenities   []string
}

// CreatePlace verifies that the owner and every referenced amenity exist,
// validates the fields and stores the place with its amenity links. The
// returned place carries the resolved amenity records.
func (f *Facade) CreatePlace(ctx context.Context, title, description string, price, latitude, longitude float64, ownerID string, amenityIDs []string) (*model.Place, error) {
	if _, err := f.Users.GetByID(ctx, ownerID); err != nil {
		return nil, notFound("owner")
	}
	if err := f.resolveAmenities(ctx, amenityIDs); err != nil {
		return nil, err
	}
	p, err := model.NewPlace(title, description, price, latitude, longitude, ownerID)
	if err != nil {
		return nil, err
	}
	if err := f.Places.Create(ctx, p, amenityIDs); err != nil {
		return nil, err
	}
	p.Amenities, err = f.Places.ListAmenities(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetPlace returns one place with its amenity set resolved.
func (f *Facade) GetPlace(ctx context.Context, id string) (model.Place, error) {
	p, err := f.Places.GetByID(ctx, id)
	if err != nil {
		return model.Place{}, err
	}
	p.Amenities, err = f.Places.ListAmenities(ctx, id)
	if err != nil {
		return model.Place{}, err
	}
	return p, nil
}

// ListPlaces returns every place without amenity sets; list responses
// use the abbreviated projection.
func (f *Facade) ListPlaces(ctx context.Context) ([]model.Place, error) {
	return f.Places.List(ctx)
}

// UpdatePlace loads the place, applies the patch through the entity
// setters and persists the result. The owner reference cannot change.
func (f *Facade) UpdatePlace(ctx context.Context, id string, patch PlacePatch) (*model.Place, error) {
	p, err := f.Places.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Title != nil {
		if err := p.SetTitle(*patch.Title); err != nil {
			return nil, err
		}
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		if err := p.SetPrice(*patch.Price); err != nil {
			return nil, err
		}
	}
	if patch.Latitude != nil {
		if err := p.SetLatitude(*patch.Latitude); err != nil {
			return nil, err
		}
	}
	if patch.Longitude != nil {
		if err := p.SetLongitude(*patch.Longitude); err != nil {
			return nil, err
		}
	}
	if patch.Amenities != nil {
		if err := f.resolveAmenities(ctx, patch.Amenities); err != nil {
			return nil, err
		}
	}
	p.Touch()
	if err := f.Places.Update(ctx, &p, patch.Amenities); err != nil {
		return nil, err
	}
	p.Amenities, err = f.Places.ListAmenities(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePlace removes a place; its reviews and amenity links cascade.
func (f *Facade) DeletePlace(ctx context.Context, id string) error {
	return f.Places.Delete(ctx, id)
}

// resolveAmenities checks that every id in the list refers to an
// existing amenity.
func (f *Facade) resolveAmenities(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if _, err := f.Amenities.GetByID(ctx, id); err != nil {
			return notFound("amenity " + id)
		}
	}
	return nil
}
