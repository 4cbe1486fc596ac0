// Package auth provides the authentication HTTP surface: credential
// endpoints and the Bearer-token middleware protecting the rest of the API.
package auth

import (
	"context"
	"net/http"
	"strings"

	"recipe-catalog/internal/domain/entity"
	"recipe-catalog/internal/handler/http/respond"
	"recipe-catalog/internal/service/auth"
)

type ctxKey string

const ctxUser ctxKey = "user"

// UserFromContext returns the authenticated user stored by RequireUser,
// or nil when the request was not authenticated.
func UserFromContext(ctx context.Context) *entity.User {
	if user, ok := ctx.Value(ctxUser).(*entity.User); ok {
		return user
	}
	return nil
}

// BearerToken extracts the token from an Authorization header.
// Returns an empty string when the header is absent or not a Bearer scheme.
func BearerToken(r *http.Request) string {
	const prefix = "Bearer "
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, prefix) {
		return ""
	}
	return strings.TrimPrefix(authz, prefix)
}

// RequireUser wraps a handler so it only runs for requests carrying a valid
// token that still maps to a user. The user is stored in the request context.
func RequireUser(svc *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				respond.Unauthorized(w, "not authenticated")
				return
			}

			user, err := svc.Resolve(r.Context(), token)
			if err != nil {
				respond.Unauthorized(w, "could not validate credentials")
				return
			}

			ctx := context.WithValue(r.Context(), ctxUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
