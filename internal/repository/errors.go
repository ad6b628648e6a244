// Package repository implements the persistence gateway: one repository
// per entity over *sql.DB, plus a Redis-backed refresh-token store. The
// sentinel errors defined here let the service and handler layers
// distinguish failure scenarios without inspecting driver errors.
package repository

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrNotFound is returned when a row for the requested id (or field
// value) does not exist. Handlers translate it into an HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert or update violates a unique
// key (users.email, amenities.name, reviews user/place pair). The
// database constraint is the sole source of this error; there is no
// separate read-before-insert check. Handlers translate it into 409.
var ErrDuplicate = errors.New("duplicate entry")

// translate maps driver-level errors onto the repository sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var my *mysql.MySQLError
	if errors.As(err, &my) && my.Number == 1062 {
		return ErrDuplicate
	}
	return err
}
