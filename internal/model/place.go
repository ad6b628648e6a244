package model

import "strings"

// Place mirrors the `places` table. OwnerID references users.id and is
// immutable once the place exists; the amenity set is stored in the
// place_amenities association table.
//
// Fields:
//  Base        – shared id/created_at/updated_at columns.
//  Title       – places.title, required, at most 100 characters.
//  Description – places.description, optional free text.
//  Price       – places.price, must be strictly positive.
//  Latitude    – places.latitude, in [-90, 90].
//  Longitude   – places.longitude, in [-180, 180].
//  OwnerID     – places.owner_id, set to the creator, never updated.
//  Amenities   – resolved amenity records, populated on detail reads.
type Place struct {
	Base
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	OwnerID     string    `json:"owner_id"`
	Amenities   []Amenity `json:"amenities,omitempty"`
}

// NewPlace validates all fields and returns a Place with a fresh Base.
// The caller is responsible for checking that ownerID resolves to an
// existing user; ownership existence is a cross-entity concern.
func NewPlace(title, description string, price, latitude, longitude float64, ownerID string) (*Place, error) {
	p := &Place{Base: NewBase(), Description: strings.TrimSpace(description)}
	if err := p.SetTitle(title); err != nil {
		return nil, err
	}
	if err := p.SetPrice(price); err != nil {
		return nil, err
	}
	if err := p.SetLatitude(latitude); err != nil {
		return nil, err
	}
	if err := p.SetLongitude(longitude); err != nil {
		return nil, err
	}
	if ownerID == "" {
		return nil, invalid("owner_id", "is required")
	}
	p.OwnerID = ownerID
	return p, nil
}

// SetTitle validates and assigns the title.
func (p *Place) SetTitle(v string) error {
	v = strings.TrimSpace(v)
	if v == "" || len(v) > 100 {
		return invalid("title", "is required and must be <= 100 characters")
	}
	p.Title = v
	return nil
}

// SetPrice validates and assigns the nightly price.
func (p *Place) SetPrice(v float64) error {
	if v <= 0 {
		return invalid("price", "must be positive")
	}
	p.Price = v
	return nil
}

// SetLatitude validates and assigns the latitude.
func (p *Place) SetLatitude(v float64) error {
	if v < -90 || v > 90 {
		return invalid("latitude", "must be between -90 and 90")
	}
	p.Latitude = v
	return nil
}

// SetLongitude validates and assigns the longitude.
func (p *Place) SetLongitude(v float64) error {
	if v < -180 || v > 180 {
		return invalid("longitude", "must be between -180 and 180")
	}
	p.Longitude = v
	return nil
}
