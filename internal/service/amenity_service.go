package service

import (
	"context"

	"github.com/iliyamo/hbnb-api/internal/model"
)

// CreateAmenity validates and stores a new amenity. A duplicate name
// surfaces as repository.ErrDuplicate from the unique key.
func (f *Facade) CreateAmenity(ctx context.Context, name string) (*model.Amenity, error) {
	a, err := model.NewAmenity(name)
	if err != nil {
		return nil, err
	}
	if err := f.Amenities.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// GetAmenity returns one amenity by id.
func (f *Facade) GetAmenity(ctx context.Context, id string) (model.Amenity, error) {
	return f.Amenities.GetByID(ctx, id)
}

// ListAmenities returns every amenity.
func (f *Facade) ListAmenities(ctx context.Context) ([]model.Amenity, error) {
	return f.Amenities.List(ctx)
}

// UpdateAmenity renames an amenity after re-validation.
func (f *Facade) UpdateAmenity(ctx context.Context, id, name string) (*model.Amenity, error) {
	a, err := f.Amenities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := a.SetName(name); err != nil {
		return nil, err
	}
	a.Touch()
	if err := f.Amenities.Update(ctx, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// DeleteAmenity removes an amenity; its place links cascade.
func (f *Facade) DeleteAmenity(ctx context.Context, id string) error {
	return f.Amenities.Delete(ctx, id)
}
