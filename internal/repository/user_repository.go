package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/hbnb-api/internal/model"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = "id,first_name,last_name,email,password,is_admin,created_at,updated_at"

// Create inserts a user row. A duplicate email surfaces as ErrDuplicate.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (id, first_name, last_name, email, password, is_admin, created_at, updated_at) VALUES (?,?,?,?,?,?,?,?)",
		u.ID, u.FirstName, u.LastName, u.Email, u.Password, u.IsAdmin, u.CreatedAt, u.UpdatedAt)
	return translate(err)
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	return r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id))
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email=? LIMIT 1", email))
}

// List returns all users ordered by creation time.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+userColumns+" FROM users ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Password, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Update persists the mutable columns of an existing user. The row must
// exist; zero affected rows with changed values still count as found
// because MySQL reports matched rows via the fallback below.
func (r *UserRepo) Update(ctx context.Context, u *model.User) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET first_name=?, last_name=?, email=?, password=?, is_admin=?, updated_at=? WHERE id=?",
		u.FirstName, u.LastName, u.Email, u.Password, u.IsAdmin, u.UpdatedAt, u.ID)
	if err != nil {
		return translate(err)
	}
	return ensureFound(ctx, res, r.DB, "SELECT 1 FROM users WHERE id=?", u.ID)
}

// Delete removes a user; places and reviews cascade in the database.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM users WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepo) scanOne(row *sql.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Password, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	return u, translate(err)
}

// ensureFound distinguishes "row absent" from "row unchanged" after an
// UPDATE reporting zero affected rows.
func ensureFound(ctx context.Context, res sql.Result, db *sql.DB, probe string, id string) error {
	n, err := res.RowsAffected()
	if err != nil || n > 0 {
		return nil
	}
	var one int
	if err := db.QueryRowContext(ctx, probe, id).Scan(&one); err != nil {
		return translate(err)
	}
	return nil
}
