package ports

import (
	"context"

	"github.com/cjalex1313/trex-gym/internal/core/domain"
)

type CreateClientInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Status    domain.ClientStatus
}

// CreateClientResult returns the stored client together with the generated
// PIN. The PIN is shown exactly once; only its hash is persisted.
type CreateClientResult struct {
	Client       *domain.Client `json:"client"`
	GeneratedPin string         `json:"generatedPin"`
}

type ListClientsInput struct {
	Page   int64
	Limit  int64
	Search string
}

type Pagination struct {
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

type ClientPage struct {
	Items      []domain.Client `json:"items"`
	Pagination Pagination      `json:"pagination"`
}

type UpdateClientInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Status    *domain.ClientStatus
}

// ClientService implements client management operations.
type ClientService interface {
	Create(ctx context.Context, input CreateClientInput) (*CreateClientResult, error)
	List(ctx context.Context, input ListClientsInput) (*ClientPage, error)
	Get(ctx context.Context, id string) (*domain.Client, error)
	Update(ctx context.Context, id string, input UpdateClientInput) (*domain.Client, error)
	Suspend(ctx context.Context, id string) (*domain.Client, error)
}
