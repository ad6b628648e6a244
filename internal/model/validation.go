// Package model defines the domain entities (User, Amenity, Place, Review)
// together with their field-level validation rules. Entities validate at
// construction and through setters; they perform no I/O. Validation
// failures are reported as *ValidationError naming the offending field.
package model

import "fmt"

// ValidationError describes a field that violated one of the entity rules.
// Handlers translate it into an HTTP 400 response.
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Rule)
}

func invalid(field, rule string) *ValidationError {
	return &ValidationError{Field: field, Rule: rule}
}
