package model

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		u, err := NewUser("Ada", "Lovelace", "Ada@Example.COM", "hash", false)
		require.NoError(t, err)
		assert.NotEmpty(t, u.ID)
		assert.Equal(t, "ada@example.com", u.Email, "email is normalized to lower case")
		assert.False(t, u.IsAdmin)
	})

	cases := []struct {
		name  string
		first string
		last  string
		email string
		field string
	}{
		{"missing first name", "", "L", "a@b.com", "first_name"},
		{"first name too long", strings.Repeat("x", 51), "L", "a@b.com", "first_name"},
		{"missing last name", "A", "", "a@b.com", "last_name"},
		{"missing email", "A", "L", "", "email"},
		{"email too long", "A", "L", strings.Repeat("x", 95) + "@b.com", "email"},
		{"email without at", "A", "L", "nope.example.com", "email"},
		{"email without dot after at", "A", "L", "a.b@example", "email"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewUser(tc.first, tc.last, tc.email, "hash", false)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}

	t.Run("missing password hash", func(t *testing.T) {
		_, err := NewUser("A", "L", "a@b.com", "", false)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "password", verr.Field)
	})
}

func TestUserJSONHidesPassword(t *testing.T) {
	u, err := NewUser("Ada", "Lovelace", "a@b.com", "secret-hash", true)
	require.NoError(t, err)
	raw, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret-hash")
	assert.Contains(t, string(raw), `"is_admin":true`)
}

func TestNewAmenity(t *testing.T) {
	a, err := NewAmenity("  Wifi  ")
	require.NoError(t, err)
	assert.Equal(t, "Wifi", a.Name)

	_, err = NewAmenity("")
	assert.Error(t, err)

	_, err = NewAmenity(strings.Repeat("x", 51))
	assert.Error(t, err)
}

func TestNewPlace(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p, err := NewPlace("Loft", "central", 120, 48.85, 2.35, "owner-1")
		require.NoError(t, err)
		assert.Equal(t, "owner-1", p.OwnerID)
		assert.NotEmpty(t, p.ID)
	})

	cases := []struct {
		name  string
		title string
		price float64
		lat   float64
		lon   float64
		field string
	}{
		{"empty title", "", 10, 0, 0, "title"},
		{"title too long", strings.Repeat("x", 101), 10, 0, 0, "title"},
		{"zero price", "Loft", 0, 0, 0, "price"},
		{"negative price", "Loft", -5, 0, 0, "price"},
		{"latitude too low", "Loft", 10, -90.1, 0, "latitude"},
		{"latitude too high", "Loft", 10, 90.1, 0, "latitude"},
		{"longitude too low", "Loft", 10, 0, -180.1, "longitude"},
		{"longitude too high", "Loft", 10, 0, 180.1, "longitude"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPlace(tc.title, "", tc.price, tc.lat, tc.lon, "owner-1")
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}

	t.Run("boundary coordinates are accepted", func(t *testing.T) {
		_, err := NewPlace("Pole", "", 1, 90, -180, "owner-1")
		assert.NoError(t, err)
		_, err = NewPlace("Pole", "", 1, -90, 180, "owner-1")
		assert.NoError(t, err)
	})

	t.Run("missing owner", func(t *testing.T) {
		_, err := NewPlace("Loft", "", 10, 0, 0, "")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "owner_id", verr.Field)
	})
}

func TestNewReview(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r, err := NewReview("great stay", 4, "u1", "p1")
		require.NoError(t, err)
		assert.Equal(t, 4, r.Rating)
	})

	t.Run("blank text", func(t *testing.T) {
		_, err := NewReview("   ", 4, "u1", "p1")
		assert.Error(t, err)
	})

	t.Run("text at the column width", func(t *testing.T) {
		_, err := NewReview(strings.Repeat("a", 1024), 4, "u1", "p1")
		assert.NoError(t, err)
	})

	t.Run("overlong text", func(t *testing.T) {
		_, err := NewReview(strings.Repeat("a", 1025), 4, "u1", "p1")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "text", verr.Field)
	})

	for _, rating := range []int{0, 6, -1} {
		t.Run("rating out of range", func(t *testing.T) {
			_, err := NewReview("ok", rating, "u1", "p1")
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "rating", verr.Field)
		})
	}

	t.Run("missing references", func(t *testing.T) {
		_, err := NewReview("ok", 3, "", "p1")
		assert.Error(t, err)
		_, err = NewReview("ok", 3, "u1", "")
		assert.Error(t, err)
	})
}
