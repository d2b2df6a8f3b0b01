package service

import (
	"context"
	"fmt"
	"time"

	autherror "github.com/DusanVelimirovic/corelayer-identity/internal/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RevocationStore is the slice of the Redis client the session service
// needs for its revocation denylist.
type RevocationStore interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

type SessionClaims struct {
	jwt.RegisteredClaims
	UserID  string   `json:"user_id"`
	RoleIDs []string `json:"role_ids,omitempty"`
}

// SessionService issues and verifies bearer session tokens. Tokens carry a
// jti; Revoke denylists the jti in Redis until the token's natural expiry,
// which keeps the denylist bounded.
type SessionService struct {
	secret        []byte
	ttl           time.Duration
	persistentTTL time.Duration
	revocations   RevocationStore
}

func NewSessionService(secret string, ttlMinutes, persistentTTLMinutes int, revocations RevocationStore) *SessionService {
	return &SessionService{
		secret:        []byte(secret),
		ttl:           time.Duration(ttlMinutes) * time.Minute,
		persistentTTL: time.Duration(persistentTTLMinutes) * time.Minute,
		revocations:   revocations,
	}
}

func (s *SessionService) Establish(ctx context.Context, userID string, roleIDs []string, persistent bool) (string, time.Time, error) {
	ttl := s.ttl
	if persistent {
		ttl = s.persistentTTL
	}

	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := SessionClaims{
		UserID:  userID,
		RoleIDs: roleIDs,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	return token, expiresAt, nil
}

// Verify returns the user ID behind a live session token.
func (s *SessionService) Verify(ctx context.Context, token string) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", err
	}

	revoked, err := s.revocations.Exists(ctx, revokedKey(claims.ID)).Result()
	if err != nil {
		return "", fmt.Errorf("failed to check session revocation: %w", err)
	}

	if revoked > 0 {
		return "", autherror.ErrSessionRevoked
	}

	return claims.UserID, nil
}

func (s *SessionService) Revoke(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return err
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 {
		return nil
	}

	if err := s.revocations.Set(ctx, revokedKey(claims.ID), 1, remaining).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	return nil
}

func (s *SessionService) parse(token string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, autherror.ErrSessionInvalid
	}

	return claims, nil
}

func revokedKey(jti string) string {
	return "session:revoked:" + jti
}
