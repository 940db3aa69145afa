package ports

import (
	"context"

	"github.com/cjalex1313/trex-gym/internal/core/domain"
)

// AuthResult is what a successful login returns: the resolved identity plus a
// freshly signed token pair.
type AuthResult struct {
	User domain.AuthenticatedUser `json:"user"`
	domain.TokenPair
}

// AuthService implements the login and refresh flows.
type AuthService interface {
	LoginAdmin(ctx context.Context, email, password string) (*AuthResult, error)
	LoginClient(ctx context.Context, email, pin string) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
}

// TokenVerifier validates a signed token of the expected kind and returns the
// identity it carries. Implemented by the token service; consumed by the
// access guard middleware and the refresh flow.
type TokenVerifier interface {
	Verify(token, kind string) (*domain.AuthenticatedUser, error)
}
