package model

import "strings"

// Amenity mirrors the `amenities` table. Only admins may create, update or
// delete amenities; places reference them through the place_amenities
// association table.
type Amenity struct {
	Base
	Name string `json:"name"`
}

// NewAmenity validates the name and returns an Amenity with a fresh Base.
func NewAmenity(name string) (*Amenity, error) {
	a := &Amenity{Base: NewBase()}
	if err := a.SetName(name); err != nil {
		return nil, err
	}
	return a, nil
}

// SetName validates and assigns the amenity name.
func (a *Amenity) SetName(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return invalid("name", "is required")
	}
	if len(v) > 50 {
		return invalid("name", "must be 50 characters or fewer")
	}
	a.Name = v
	return nil
}
