package middleware

import (
	"context"
	"net/http"

	"github.com/inventory/drive-gateway/internal/auth"
	"github.com/inventory/drive-gateway/internal/response"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

// claimsKey is the context key for the verified token claims.
const claimsKey contextKey = "claims"

// RequireAuth returns middleware that validates the caller's bearer token
// and injects the verified claims into the request context.
//
// The canonical header is "Authorization: Bearer <token>". The "x-api-key"
// header is honored as a deprecated alias carrying the same bearer-form
// value; new clients should not use it.
func RequireAuth(verifier *auth.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("Authorization")
			if raw == "" {
				raw = r.Header.Get("x-api-key")
			}
			if raw == "" {
				response.Unauthorized(w, "authorization header required")
				return
			}

			claims, err := verifier.Verify(raw)
			if err != nil {
				response.FromError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFrom extracts the verified claims injected by RequireAuth. The
// second return is false when the request skipped the auth middleware.
func ClaimsFrom(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}
