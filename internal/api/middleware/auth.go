package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/portfolio-studio/backend/internal/auth"
	"github.com/portfolio-studio/backend/internal/models"
)

type principalKeyType string

const principalKey principalKeyType = "principal"

// Principal is the authenticated identity attached to a request context.
type Principal struct {
	UserID string
	Role   string
}

// Auth validates a Bearer access token and attaches the principal to the
// request context. Missing or invalid credentials end the request with 401.
func Auth(issuer *auth.Issuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := principalFromHeader(r, issuer)
			if !ok {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

// OptionalAuth attaches the principal when a valid Bearer token is present and
// lets anonymous requests through untouched.
func OptionalAuth(issuer *auth.Issuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p, ok := principalFromHeader(r, issuer); ok {
				r = r.WithContext(WithPrincipal(r.Context(), p))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin gates a route to admin principals. Must run after Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p := GetPrincipal(r.Context()); p == nil || p.Role != models.RoleAdmin {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithPrincipal attaches a principal to a context.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// GetPrincipal returns the request principal, or nil for anonymous requests.
func GetPrincipal(ctx context.Context) *Principal {
	if v := ctx.Value(principalKey); v != nil {
		if p, ok := v.(*Principal); ok {
			return p
		}
	}
	return nil
}

func principalFromHeader(r *http.Request, issuer *auth.Issuer) (*Principal, bool) {
	ah := r.Header.Get("Authorization")
	if !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
		return nil, false
	}
	claims, err := issuer.ParseAccessToken(strings.TrimSpace(ah[len("Bearer "):]))
	if err != nil {
		return nil, false
	}
	return &Principal{UserID: claims.Subject, Role: claims.Role}, true
}
