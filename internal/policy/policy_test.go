package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminOnly(t *testing.T) {
	assert.True(t, AdminOnly(Actor{UserID: "u1", IsAdmin: true}))
	assert.False(t, AdminOnly(Actor{UserID: "u1"}))
}

func TestSelfOrAdmin(t *testing.T) {
	cases := []struct {
		name   string
		actor  Actor
		target string
		want   bool
	}{
		{"self", Actor{UserID: "u1"}, "u1", true},
		{"other user", Actor{UserID: "u1"}, "u2", false},
		{"admin on other user", Actor{UserID: "u1", IsAdmin: true}, "u2", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SelfOrAdmin(tc.actor, tc.target))
		})
	}
}

func TestOwnerOrAdmin(t *testing.T) {
	cases := []struct {
		name  string
		actor Actor
		owner string
		want  bool
	}{
		{"owner", Actor{UserID: "u1"}, "u1", true},
		{"non-owner", Actor{UserID: "u1"}, "u2", false},
		{"admin non-owner", Actor{UserID: "u1", IsAdmin: true}, "u2", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, OwnerOrAdmin(tc.actor, tc.owner))
		})
	}
}

func TestCanReview(t *testing.T) {
	assert.False(t, CanReview(Actor{UserID: "u1"}, "u1"), "owners cannot review their own place")
	assert.True(t, CanReview(Actor{UserID: "u1"}, "u2"))
	assert.True(t, CanReview(Actor{UserID: "u1", IsAdmin: true}, "u1"), "admins bypass the owner rule")
}
