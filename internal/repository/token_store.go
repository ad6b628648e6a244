package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrTokenInvalid is returned when a refresh token hash is unknown,
// expired or already revoked.
var ErrTokenInvalid = errors.New("invalid refresh token")

// RefreshTokenStore keeps refresh-token sessions in Redis. One key per
// SHA-256 token hash maps to the owning user id; the key TTL matches the
// token lifetime, so expiry needs no sweeper. Revocation deletes the key.
type RefreshTokenStore struct{ RDB *redis.Client }

func NewRefreshTokenStore(rdb *redis.Client) *RefreshTokenStore {
	return &RefreshTokenStore{RDB: rdb}
}

func refreshKey(tokenHash string) string { return "refresh:" + tokenHash }

// Store records a refresh token hash for a user until exp.
func (s *RefreshTokenStore) Store(ctx context.Context, userID, tokenHash string, exp time.Time) error {
	ttl := time.Until(exp)
	if ttl <= 0 {
		return ErrTokenInvalid
	}
	return s.RDB.Set(ctx, refreshKey(tokenHash), userID, ttl).Err()
}

// Validate returns the user id bound to a token hash, or ErrTokenInvalid
// when no live session exists.
func (s *RefreshTokenStore) Validate(ctx context.Context, tokenHash string) (string, error) {
	userID, err := s.RDB.Get(ctx, refreshKey(tokenHash)).Result()
	if err == redis.Nil {
		return "", ErrTokenInvalid
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

// Revoke terminates the session for one token hash. Revoking an unknown
// hash is not an error.
func (s *RefreshTokenStore) Revoke(ctx context.Context, tokenHash string) error {
	return s.RDB.Del(ctx, refreshKey(tokenHash)).Err()
}
