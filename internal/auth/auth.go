package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleCourier is the only role allowed on dispatch endpoints.
const RoleCourier = "courier"

// Principal is the authenticated caller extracted from a bearer token.
type Principal struct {
	ID   string
	Role string
}

// Claims is the token payload issued by the identity service. The subject
// carries the courier id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Verifier validates HMAC-signed bearer tokens.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a Verifier for the shared signing secret.
func NewVerifier(secret string) (*Verifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("auth: empty signing secret")
	}
	return &Verifier{secret: []byte(secret)}, nil
}

// Parse validates the token and returns the caller's principal.
func (v *Verifier) Parse(tokenStr string) (Principal, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return v.secret, nil
	})
	if err != nil {
		return Principal{}, err
	}
	if !token.Valid {
		return Principal{}, errors.New("invalid token")
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return Principal{}, errors.New("token missing subject")
	}
	return Principal{ID: claims.Subject, Role: claims.Role}, nil
}

// IssueToken signs a token for the given subject and role. Used by tests and
// local tooling; production tokens come from the identity service.
func IssueToken(secret, subject, role string, ttl time.Duration) (string, error) {
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
