package ports

import (
	"context"

	"github.com/cjalex1313/trex-gym/internal/core/domain"
)

// CredentialRepository is the single lookup capability behind both login
// flows, keyed by role. Admins and clients differ only in which collection is
// consulted and which hash field backs the secret; callers never branch on
// that. Returns domain.ErrCredentialNotFound when no account matches.
type CredentialRepository interface {
	FindByEmail(ctx context.Context, role, email string) (*domain.Credential, error)
}
