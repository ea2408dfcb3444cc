// Package tokens issues and verifies the signed identity tokens used as
// bearer credentials on payment and enrollment endpoints.
package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers malformed, badly signed, and expired tokens.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the payload embedded in an identity token. Email is the only
// application claim; the registered claims carry issuer and expiry.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Service signs and verifies identity tokens with a process-wide HMAC
// secret. Rotating the secret invalidates all outstanding tokens; there is
// no refresh mechanism.
type Service struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// New builds a token Service. ttl is the token lifetime (one hour in the
// default configuration).
func New(secret, issuer string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// Issue signs a token for the given email, expiring after the service TTL.
func (s *Service) Issue(email string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token string, returning its claims.
// Any failure (bad signature, malformed token, expiry) maps to
// ErrInvalidToken so callers cannot distinguish why a credential was
// rejected.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
