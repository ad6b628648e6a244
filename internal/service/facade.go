// Package service implements the facade between HTTP handlers and the
// repositories. Each use case validates input, resolves referenced
// entities, applies business rules and delegates storage. The facade is
// constructed once in main and handed to the handler constructors; there
// is no package-level instance.
package service

import (
	"fmt"

	"github.com/iliyamo/hbnb-api/internal/repository"
)

// Facade bundles the per-entity repositories together with the bcrypt
// cost used when hashing new passwords.
type Facade struct {
	Users      *repository.UserRepo
	Amenities  *repository.AmenityRepo
	Places     *repository.PlaceRepo
	Reviews    *repository.ReviewRepo
	BcryptCost int
}

// NewFacade constructs a Facade and panics if any repository is nil.
func NewFacade(users *repository.UserRepo, amenities *repository.AmenityRepo, places *repository.PlaceRepo, reviews *repository.ReviewRepo, bcryptCost int) *Facade {
	if users == nil || amenities == nil || places == nil || reviews == nil {
		panic("nil repository passed to NewFacade")
	}
	return &Facade{
		Users:      users,
		Amenities:  amenities,
		Places:     places,
		Reviews:    reviews,
		BcryptCost: bcryptCost,
	}
}

// notFound wraps repository.ErrNotFound with the entity name so handlers
// can render "owner not found" rather than a bare message while still
// matching errors.Is(err, repository.ErrNotFound).
func notFound(entity string) error {
	return fmt.Errorf("%s: %w", entity, repository.ErrNotFound)
}
