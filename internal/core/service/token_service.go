package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/charactervault/character-api/internal/core/domain"
)

// TokenService issues and validates HS256-signed identity tokens binding a
// username and role for a fixed expiry window.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token for the given subject. Pure computation, no
// side effects.
func (s *TokenService) Issue(username, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"username": username,
		"role":     role,
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate checks signature, algorithm and expiry, and returns the token's
// subject. Any failure is reported as domain.ErrInvalidToken; callers never
// learn why a token was rejected.
func (s *TokenService) Validate(token string) (string, string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", "", domain.ErrInvalidToken
	}

	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	if username == "" || role == "" {
		return "", "", domain.ErrInvalidToken
	}
	return username, role, nil
}
