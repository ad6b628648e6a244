package model

import "strings"

// User mirrors the `users` table. The bcrypt password hash never appears
// in JSON output.
//
// Fields:
//  Base      – shared id/created_at/updated_at columns.
//  FirstName – users.first_name, required, at most 50 characters.
//  LastName  – users.last_name, required, at most 50 characters.
//  Email     – users.email, required, at most 100 characters, unique.
//  Password  – users.password, bcrypt hash, excluded from serialization.
//  IsAdmin   – users.is_admin, grants the admin override on mutations.
type User struct {
	Base
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"-"`
	IsAdmin   bool   `json:"is_admin"`
}

// NewUser validates the given fields and returns a User with a fresh Base.
// The password must already be hashed by the caller; the entity does not
// hash it itself.
func NewUser(firstName, lastName, email, passwordHash string, isAdmin bool) (*User, error) {
	u := &User{Base: NewBase(), IsAdmin: isAdmin, Password: passwordHash}
	if err := u.SetFirstName(firstName); err != nil {
		return nil, err
	}
	if err := u.SetLastName(lastName); err != nil {
		return nil, err
	}
	if err := u.SetEmail(email); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, invalid("password", "is required")
	}
	return u, nil
}

// SetFirstName validates and assigns first_name.
func (u *User) SetFirstName(v string) error {
	v = strings.TrimSpace(v)
	if v == "" || len(v) > 50 {
		return invalid("first_name", "is required and must be <= 50 characters")
	}
	u.FirstName = v
	return nil
}

// SetLastName validates and assigns last_name.
func (u *User) SetLastName(v string) error {
	v = strings.TrimSpace(v)
	if v == "" || len(v) > 50 {
		return invalid("last_name", "is required and must be <= 50 characters")
	}
	u.LastName = v
	return nil
}

// SetEmail validates and assigns email. Addresses are lower-cased so the
// unique key in the database compares consistently. The format rule is the
// minimal one the system enforces: an '@' with a '.' somewhere after it.
func (u *User) SetEmail(v string) error {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" || len(v) > 100 {
		return invalid("email", "is required and must be <= 100 characters")
	}
	at := strings.Index(v, "@")
	if at < 0 || !strings.Contains(v[at+1:], ".") {
		return invalid("email", "must be a valid email address")
	}
	u.Email = v
	return nil
}
