package ports

import (
	"context"

	"github.com/cjalex1313/trex-gym/internal/core/domain"
)

// ClientFilter narrows and pages a client listing.
type ClientFilter struct {
	// Search matches case-insensitively against first name, last name,
	// email, and phone.
	Search string
	Skip   int64
	Limit  int64
}

// ClientUpdate carries the mutable client fields. Nil pointers are left
// untouched by the store.
type ClientUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Status    *domain.ClientStatus
}

// ClientRepository defines persistence for client documents.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	Find(ctx context.Context, filter ClientFilter) ([]domain.Client, int64, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.Client, error)
	Update(ctx context.Context, id string, update ClientUpdate) (*domain.Client, error)
}
