package auth

import (
	"context"
	"net/http"

	"eats-marketplace/internal/models"
)

type contextKey string

const userContextKey contextKey = "auth_user"

// UserFinder loads the account a verified token belongs to
type UserFinder interface {
	FindUserByID(ctx context.Context, id int64) (*models.User, error)
}

// Middleware resolves the x-jwt header into an actor on the request
// context. Requests without a valid token pass through without an
// actor; handlers that need one use RequireUser.
func Middleware(tm *TokenManager, users UserFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("x-jwt")
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := tm.Verify(token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.FindUserByID(r.Context(), userID)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the authenticated actor, if any
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok
}

// WithUser returns a context carrying the actor; used by tests
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// HasRole reports whether the actor holds one of the given roles
func HasRole(user *models.User, roles ...models.UserRole) bool {
	for _, role := range roles {
		if user.Role == role {
			return true
		}
	}
	return false
}
