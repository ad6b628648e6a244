// Package policy holds the pure authorization decisions applied before any
// mutation. Each function takes the acting identity plus the relevant
// resource fields and returns allow/deny; handlers map a deny to HTTP 403.
// Keeping these as plain functions instead of middleware keeps the rule
// visible at the top of each handler.
package policy

// Actor is the authenticated identity extracted from the JWT claims.
type Actor struct {
	UserID  string
	IsAdmin bool
}

// AdminOnly allows the mutation only for admins.
func AdminOnly(a Actor) bool {
	return a.IsAdmin
}

// SelfOrAdmin allows a user to mutate their own record, or an admin to
// mutate anyone's.
func SelfOrAdmin(a Actor, userID string) bool {
	return a.IsAdmin || a.UserID == userID
}

// OwnerOrAdmin allows the owner of a resource, or an admin, to mutate it.
// Used for places (owner_id) and reviews (user_id).
func OwnerOrAdmin(a Actor, ownerID string) bool {
	return a.IsAdmin || a.UserID == ownerID
}

// CanReview decides whether the actor may write a review for a place with
// the given owner. Owners cannot review their own place; admins bypass the
// restriction.
func CanReview(a Actor, placeOwnerID string) bool {
	return a.IsAdmin || a.UserID != placeOwnerID
}
