package service

import (
	"context"

	"github.com/iliyamo/hbnb-api/internal/model"
	"github.com/iliyamo/hbnb-api/internal/utils"
)

// UserPatch carries a partial user update. Nil fields are left untouched.
// Email and Password may only be set through the admin update path; the
// self-service path never populates them. The id is never part of a
// patch.
type UserPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
	IsAdmin   *bool
}

// CreateUser hashes the password, validates the fields and stores the
// user. A duplicate email comes back as repository.ErrDuplicate straight
// from the unique key.
func (f *Facade) CreateUser(ctx context.Context, firstName, lastName, email, password string, isAdmin bool) (*model.User, error) {
	if password == "" {
		return nil, &model.ValidationError{Field: "password", Rule: "is required"}
	}
	hash, err := utils.HashPassword(password, f.BcryptCost)
	if err != nil {
		return nil, err
	}
	u, err := model.NewUser(firstName, lastName, email, hash, isAdmin)
	if err != nil {
		return nil, err
	}
	if err := f.Users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// GetUser returns one user by id.
func (f *Facade) GetUser(ctx context.Context, id string) (model.User, error) {
	return f.Users.GetByID(ctx, id)
}

// GetUserByEmail returns one user by normalized email.
func (f *Facade) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return f.Users.GetByEmail(ctx, email)
}

// ListUsers returns every user.
func (f *Facade) ListUsers(ctx context.Context) ([]model.User, error) {
	return f.Users.List(ctx)
}

// UpdateUser loads the user, applies the patch through the entity
// setters and persists the result. An email change that collides with
// another account surfaces as repository.ErrDuplicate from the unique
// key.
func (f *Facade) UpdateUser(ctx context.Context, id string, patch UserPatch) (*model.User, error) {
	u, err := f.Users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.FirstName != nil {
		if err := u.SetFirstName(*patch.FirstName); err != nil {
			return nil, err
		}
	}
	if patch.LastName != nil {
		if err := u.SetLastName(*patch.LastName); err != nil {
			return nil, err
		}
	}
	if patch.Email != nil {
		if err := u.SetEmail(*patch.Email); err != nil {
			return nil, err
		}
	}
	if patch.Password != nil {
		if *patch.Password == "" {
			return nil, &model.ValidationError{Field: "password", Rule: "is required"}
		}
		hash, err := utils.HashPassword(*patch.Password, f.BcryptCost)
		if err != nil {
			return nil, err
		}
		u.Password = hash
	}
	if patch.IsAdmin != nil {
		u.IsAdmin = *patch.IsAdmin
	}
	u.Touch()
	if err := f.Users.Update(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// DeleteUser removes a user; owned places and authored reviews cascade.
func (f *Facade) DeleteUser(ctx context.Context, id string) error {
	return f.Users.Delete(ctx, id)
}
