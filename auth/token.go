package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long an issued token stays valid.
const DefaultTokenTTL = 7 * 24 * time.Hour

var (
	// ErrInvalidToken means the token did not parse or its signature
	// did not verify.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken means the token was well-formed and correctly
	// signed but is past its expiry.
	ErrExpiredToken = errors.New("token expired")
)

// TokenManager issues and validates signed session tokens. The signing
// secret and clock are injected at construction so there is no
// process-wide signing state.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager creates a manager with the provided secret and token
// lifetime.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// NewTokenManagerWithClock is like NewTokenManager but with a caller
// supplied clock, so tests can control issuance and expiry times.
func NewTokenManagerWithClock(secret string, ttl time.Duration, now func() time.Time) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: now}
}

// Issue mints a signed token whose only claim subject is the user ID.
func (t *TokenManager) Issue(userID uint) (string, error) {
	now := t.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Validate checks signature and expiry and returns the user ID bound to
// the token. Expiry is reported as ErrExpiredToken, every other failure
// as ErrInvalidToken.
func (t *TokenManager) Validate(raw string) (uint, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpiredToken
		}
		return 0, ErrInvalidToken
	}
	if !token.Valid {
		return 0, ErrInvalidToken
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}
