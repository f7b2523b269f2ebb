package auth

import (
	"context"
	"strings"
)

// localTokenPrefix marks tokens issued for local development only.
const localTokenPrefix = "sk_local_ideaforge_"

// DevAuthenticator resolves local development tokens of the form
// sk_local_ideaforge_<userId>. It stands in for the external session
// provider until a production authenticator is wired.
type DevAuthenticator struct{}

// NewDevAuthenticator creates a DevAuthenticator for local development.
func NewDevAuthenticator() *DevAuthenticator {
	return &DevAuthenticator{}
}

// Resolve validates the local token shape and derives the user id from it.
func (a *DevAuthenticator) Resolve(ctx context.Context, token string) (*Session, error) {
	if !strings.HasPrefix(token, localTokenPrefix) {
		return nil, ErrInvalidToken
	}
	userID := strings.TrimPrefix(token, localTokenPrefix)
	if userID == "" {
		return nil, ErrInvalidToken
	}
	return &Session{UserID: userID}, nil
}
