package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hbnb-api/internal/repository"
	"github.com/iliyamo/hbnb-api/internal/service"
)

var mysqlDuplicate = mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}

func newFacade(t *testing.T) (*service.Facade, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	f := service.NewFacade(
		repository.NewUserRepo(db),
		repository.NewAmenityRepo(db),
		repository.NewPlaceRepo(db),
		repository.NewReviewRepo(db),
		4,
	)
	return f, mock
}

// newCtx builds an echo context carrying an authenticated identity, the
// way JWTAuth leaves it behind.
func newCtx(t *testing.T, method, target, body, userID string, isAdmin bool) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set("user_id", userID)
		c.Set("is_admin", isAdmin)
	}
	return c, rec
}

func placeRows(id, ownerID string) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{"id", "title", "description", "price", "latitude", "longitude", "owner_id", "created_at", "updated_at"}).
		AddRow(id, "Loft", "central", 120.0, 48.85, 2.35, ownerID, now, now)
}

func userRows(id string) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "password", "is_admin", "created_at", "updated_at"}).
		AddRow(id, "Ada", "Lovelace", id+"@example.com", "hash", false, now, now)
}

func reviewRows(id, userID, placeID string) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{"id", "text", "rating", "user_id", "place_id", "created_at", "updated_at"}).
		AddRow(id, "nice", 4, userID, placeID, now, now)
}

func emptyAmenityJoin() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "created_at", "updated_at"})
}

func TestPlaceUpdateAuthorization(t *testing.T) {
	t.Run("non-owner is forbidden", func(t *testing.T) {
		f, mock := newFacade(t)
		h := NewPlaceHandler(f)
		mock.ExpectQuery("SELECT (.+) FROM places WHERE id=").WillReturnRows(placeRows("p1", "owner-1"))
		mock.ExpectQuery("SELECT (.+) FROM amenities a JOIN place_amenities").WillReturnRows(emptyAmenityJoin())

		c, rec := newCtx(t, http.MethodPut, "/api/v1/places/p1", `{"title":"Hacked"}`, "intruder", false)
		c.SetParamNames("id")
		c.SetParamValues("p1")

		require.NoError(t, h.Update(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet(), "no UPDATE may run for a forbidden actor")
	})

	t.Run("admin may update someone else's place", func(t *testing.T) {
		f, mock := newFacade(t)
		h := NewPlaceHandler(f)
		mock.ExpectQuery("SELECT (.+) FROM places WHERE id=").WillReturnRows(placeRows("p1", "owner-1"))
		mock.ExpectQuery("SELECT (.+) FROM amenities a JOIN place_amenities").WillReturnRows(emptyAmenityJoin())
		// UpdatePlace: reload, update tx, reload amenities.
		mock.ExpectQuery("SELECT (.+) FROM places WHERE id=").WillReturnRows(placeRows("p1", "owner-1"))
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE places SET").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
		mock.ExpectQuery("SELECT (.+) FROM amenities a JOIN place_amenities").WillReturnRows(emptyAmenityJoin())

		c, rec := newCtx(t, http.MethodPut, "/api/v1/places/p1", `{"title":"Renamed"}`, "admin-1", true)
		c.SetParamNames("id")
		c.SetParamValues("p1")

		require.NoError(t, h.Update(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown place is 404", func(t *testing.T) {
		f, mock := newFacade(t)
		h := NewPlaceHandler(f)
		mock.ExpectQuery("SELECT (.+) FROM places WHERE id=").WillReturnError(repository.ErrNotFound)

		c, rec := newCtx(t, http.MethodPut, "/api/v1/places/ghost", `{"title":"X"}`, "u1", false)
		c.SetParamNames("id")
		c.SetParamValues("ghost")

		require.NoError(t, h.Update(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestPlaceDeleteAuthorization(t *testing.T) {
	f, mock := newFacade(t)
	h := NewPlaceHandler(f)
	mock.ExpectQuery("SELECT (.+) FROM places WHERE id=").WillReturnRows(placeRows("p1", "owner-1"))
	mock.ExpectQuery("SELECT (.+) FROM amenities a JOIN place_amenities").WillReturnRows(emptyAmenityJoin())

	c, rec := newCtx(t, http.MethodDelete, "/api/v1/places/p1", "", "intruder", false)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestReviewCreateOwnerRule(t *testing.T) {
	t.Run("owner cannot review own place", func(t *testing.T) {
		f, mock := newFacade(t)
		h := NewReviewHandler(f)
		mock.ExpectQuery("SELECT (.+) FROM places WHERE id=").WillReturnRows(placeRows("p1", "owner-1"))
		mock.ExpectQuery("SELECT (.+) FROM amenities a JOIN place_amenities").WillReturnRows(emptyAmenityJoin())

		c, rec := newCtx(t, http.MethodPost, "/api/v1/reviews", `{"text":"mine!","rating":5,"place_id":"p1"}`, "owner-1", false)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "cannot review your own place")
	})

	t.Run("missing rating is 400", func(t *testing.T) {
		f, _ := newFacade(t)
		h := NewReviewHandler(f)

		c, rec := newCtx(t, http.MethodPost, "/api/v1/reviews", `{"text":"no rating","place_id":"p1"}`, "u1", false)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate review is 409", func(t *testing.T) {
		f, mock := newFacade(t)
		h := NewReviewHandler(f)
		mock.ExpectQuery("SELECT (.+) FROM places WHERE id=").WillReturnRows(placeRows("p1", "owner-1"))
		mock.ExpectQuery("SELECT (.+) FROM amenities a JOIN place_amenities").WillReturnRows(emptyAmenityJoin())
		mock.ExpectQuery("SELECT (.+) FROM users WHERE id=").WillReturnRows(userRows("u1"))
		mock.ExpectQuery("SELECT (.+) FROM places WHERE id=").WillReturnRows(placeRows("p1", "owner-1"))
		mock.ExpectExec("INSERT INTO reviews (.+) WHERE NOT EXISTS").
			WillReturnResult(sqlmock.NewResult(0, 0))

		c, rec := newCtx(t, http.MethodPost, "/api/v1/reviews", `{"text":"again","rating":4,"place_id":"p1"}`, "u1", false)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("admin may review the same place twice", func(t *testing.T) {
		f, mock := newFacade(t)
		h := NewReviewHandler(f)
		mock.ExpectQuery("SELECT (.+) FROM places WHERE id=").WillReturnRows(placeRows("p1", "owner-1"))
		mock.ExpectQuery("SELECT (.+) FROM amenities a JOIN place_amenities").WillReturnRows(emptyAmenityJoin())
		mock.ExpectQuery("SELECT (.+) FROM users WHERE id=").WillReturnRows(userRows("adm"))
		mock.ExpectQuery("SELECT (.+) FROM places WHERE id=").WillReturnRows(placeRows("p1", "owner-1"))
		mock.ExpectExec(`INSERT INTO reviews \(id, text, rating, user_id, place_id, created_at, updated_at\) VALUES`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		c, rec := newCtx(t, http.MethodPost, "/api/v1/reviews", `{"text":"second visit","rating":5,"place_id":"p1"}`, "adm", true)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReviewMutationAuthorization(t *testing.T) {
	t.Run("non-author cannot delete", func(t *testing.T) {
		f, mock := newFacade(t)
		h := NewReviewHandler(f)
		mock.ExpectQuery("SELECT (.+) FROM reviews WHERE id=").WillReturnRows(reviewRows("r1", "author-1", "p1"))

		c, rec := newCtx(t, http.MethodDelete, "/api/v1/reviews/r1", "", "intruder", false)
		c.SetParamNames("id")
		c.SetParamValues("r1")

		require.NoError(t, h.Delete(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("author updates own review", func(t *testing.T) {
		f, mock := newFacade(t)
		h := NewReviewHandler(f)
		mock.ExpectQuery("SELECT (.+) FROM reviews WHERE id=").WillReturnRows(reviewRows("r1", "author-1", "p1"))
		mock.ExpectQuery("SELECT (.+) FROM reviews WHERE id=").WillReturnRows(reviewRows("r1", "author-1", "p1"))
		mock.ExpectExec("UPDATE reviews SET").WillReturnResult(sqlmock.NewResult(0, 1))

		c, rec := newCtx(t, http.MethodPut, "/api/v1/reviews/r1", `{"text":"edited"}`, "author-1", false)
		c.SetParamNames("id")
		c.SetParamValues("r1")

		require.NoError(t, h.Update(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "edited")
	})
}

func TestUserSelfUpdateAuthorization(t *testing.T) {
	t.Run("another user's id is forbidden", func(t *testing.T) {
		f, _ := newFacade(t)
		h := NewUserHandler(f)

		c, rec := newCtx(t, http.MethodPut, "/api/v1/users/u2", `{"first_name":"X"}`, "u1", false)
		c.SetParamNames("id")
		c.SetParamValues("u2")

		require.NoError(t, h.UpdateSelf(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("self update succeeds", func(t *testing.T) {
		f, mock := newFacade(t)
		h := NewUserHandler(f)
		mock.ExpectQuery("SELECT (.+) FROM users WHERE id=").WillReturnRows(userRows("u1"))
		mock.ExpectExec("UPDATE users SET").WillReturnResult(sqlmock.NewResult(0, 1))

		c, rec := newCtx(t, http.MethodPut, "/api/v1/users/u1", `{"first_name":"X"}`, "u1", false)
		c.SetParamNames("id")
		c.SetParamValues("u1")

		require.NoError(t, h.UpdateSelf(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"first_name":"X"`)
	})

	t.Run("empty patch is 400", func(t *testing.T) {
		f, _ := newFacade(t)
		h := NewUserHandler(f)

		c, rec := newCtx(t, http.MethodPut, "/api/v1/users/u1", `{}`, "u1", false)
		c.SetParamNames("id")
		c.SetParamValues("u1")

		require.NoError(t, h.UpdateSelf(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAmenityCreateDuplicate(t *testing.T) {
	f, mock := newFacade(t)
	h := NewAmenityHandler(f)
	mock.ExpectExec("INSERT INTO amenities").WillReturnError(&mysqlDuplicate)

	c, rec := newCtx(t, http.MethodPost, "/api/v1/amenities", `{"name":"Wifi"}`, "adm", true)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}
