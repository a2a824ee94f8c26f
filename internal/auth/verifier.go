// Package auth verifies the bearer tokens issued by the upstream backend.
// The gateway never issues tokens itself; it only checks them.
package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/inventory/drive-gateway/internal/apperr"
)

const bearerPrefix = "Bearer "

// Claims is the validated payload of a caller's token. It lives for one
// request only.
type Claims struct {
	// Subject is the caller's user id ("sub"). Empty when the token carries
	// no subject; endpoints that need an identity reject that case.
	Subject string
	// ExpiresAt is the "exp" claim in epoch seconds, zero if absent.
	ExpiresAt int64

	raw jwt.MapClaims
}

// Get returns an arbitrary claim by name.
func (c *Claims) Get(name string) any {
	return c.raw[name]
}

// Verifier validates HMAC-signed bearer tokens against a shared secret.
// It is pure: no session, no caching, re-invoked on every request.
type Verifier struct {
	secret []byte
	now    func() time.Time
}

// NewVerifier creates a Verifier for the given shared secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret), now: time.Now}
}

// Verify validates a raw credential, with or without a literal "Bearer "
// prefix, and returns its claims. Expiry is rejected twice: once by the jwt
// library's validation and once by comparing the exp claim against the clock,
// so a token past its exp never passes even if one of the checks regresses.
func (v *Verifier) Verify(raw string) (*Claims, error) {
	token := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), bearerPrefix))
	if token == "" {
		return nil, apperr.Unauthorized("missing credential")
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, apperr.Unauthorized("invalid or expired token")
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperr.Unauthorized("invalid token claims")
	}

	claims := &Claims{raw: mapClaims}
	claims.Subject, _ = mapClaims["sub"].(string)
	if exp, ok := mapClaims["exp"].(float64); ok {
		claims.ExpiresAt = int64(exp)
		if v.now().Unix() > claims.ExpiresAt {
			return nil, apperr.Unauthorized("token expired")
		}
	}

	return claims, nil
}
