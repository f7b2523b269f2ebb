package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrMissingToken is returned when no bearer token is present
	ErrMissingToken = errors.New("missing Authorization header")

	// ErrInvalidToken is returned when a token cannot be resolved to an identity
	ErrInvalidToken = errors.New("invalid session token")
)

// Session describes the resolved caller identity.
type Session struct {
	UserID string `json:"userId"`
}

// Authenticator resolves a bearer token to a caller identity. The real
// account provider is an external collaborator; implementations here only
// resolve tokens it issued.
type Authenticator interface {
	Resolve(ctx context.Context, token string) (*Session, error)
}

// ExtractBearer extracts the bearer token from the Authorization header.
// Returns ErrMissingToken when the header is absent.
func ExtractBearer(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errors.New("invalid Authorization header format, expected 'Bearer <token>'")
	}
	return parts[1], nil
}

// CallerID resolves the request's caller, or "" for anonymous requests.
// Used by endpoints where authentication is optional.
func CallerID(r *http.Request, a Authenticator) string {
	token, err := ExtractBearer(r)
	if err != nil {
		return ""
	}
	sess, err := a.Resolve(r.Context(), token)
	if err != nil {
		return ""
	}
	return sess.UserID
}
