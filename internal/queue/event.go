// Package queue defines the domain events published to the message
// broker and the publisher that delivers them. Events are emitted after
// successful mutations so downstream consumers can log, notify or feed
// analytics without querying the primary database.
package queue

// UserRegisteredEvent is published on the "user.registered" queue after
// a successful registration. The password never leaves the API.
type UserRegisteredEvent struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	RegisteredAt string `json:"registered_at"`
}

// PlaceCreatedEvent is published on the "place.created" queue after a
// place listing goes live.
type PlaceCreatedEvent struct {
	PlaceID   string  `json:"place_id"`
	OwnerID   string  `json:"owner_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	CreatedAt string  `json:"created_at"`
}

// ReviewCreatedEvent is published on the "review.created" queue after a
// review is stored.
type ReviewCreatedEvent struct {
	ReviewID  string `json:"review_id"`
	PlaceID   string `json:"place_id"`
	UserID    string `json:"user_id"`
	Rating    int    `json:"rating"`
	CreatedAt string `json:"created_at"`
}
