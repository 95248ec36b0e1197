package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sakif/movielist/internal/model"
	"github.com/sakif/movielist/internal/repository"
)

// contextKey is an unexported type for context keys in this package, so no
// other package can read or shadow the values it stores.
type contextKey string

const userKey contextKey = "user"

// RequireAuth guards routes that need an authenticated caller.
//
// It reads the bearer token from the Authorization header, validates it,
// and re-resolves the subject against the user store: a valid token whose
// user no longer exists is still rejected. On success the full user record
// is stored in the request context for handlers.
//
// Every failure mode (missing header, malformed token, expired token,
// unknown subject) produces the same 401 response with a
// WWW-Authenticate: Bearer header, so callers cannot probe which check
// failed.
func RequireAuth(tokens *TokenService, users repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := authenticate(r, tokens, users)
			if err != nil {
				writeUnauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext retrieves the authenticated user from the request
// context. Returns (nil, false) for anonymous requests.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userKey).(*model.User)
	return user, ok && user != nil
}

// authenticate extracts the bearer token, validates it, and loads the user
// it names.
func authenticate(r *http.Request, tokens *TokenService, users repository.UserRepository) (*model.User, error) {
	tokenStr, err := bearerToken(r)
	if err != nil {
		return nil, err
	}

	userID, err := tokens.Validate(tokenStr)
	if err != nil {
		return nil, err
	}

	return users.GetUserByID(r.Context(), userID)
}

// bearerToken pulls the token out of "Authorization: Bearer <token>". The
// scheme comparison is case-insensitive per RFC 7235.
func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", errors.New("auth: missing bearer token")
	}
	return strings.TrimSpace(token), nil
}

// writeUnauthorized sends the uniform 401 response. The body is written
// inline rather than through the handler package's helpers to keep this
// package free of that dependency.
func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"detail":"invalid authentication credentials"}` + "\n"))
}
