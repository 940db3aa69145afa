package ports

import (
	"context"
	"time"

	"github.com/cjalex1313/trex-gym/internal/core/domain"
)

type CreateSubscriptionInput struct {
	PlanType  domain.PlanType
	PlanName  string
	StartDate time.Time
	EndDate   time.Time
	Price     float64
	Currency  domain.Currency
	Notes     string
}

type UpdateSubscriptionInput struct {
	PlanType  *domain.PlanType
	PlanName  *string
	StartDate *time.Time
	EndDate   *time.Time
	Status    *domain.SubscriptionStatus
	Price     *float64
	Currency  *domain.Currency
	Notes     *string
}

// SubscriptionService implements subscription management operations.
type SubscriptionService interface {
	ListByClient(ctx context.Context, clientID string) ([]domain.Subscription, error)
	CreateForClient(ctx context.Context, clientID string, input CreateSubscriptionInput) (*domain.Subscription, error)
	Get(ctx context.Context, id string) (*domain.Subscription, error)
	Update(ctx context.Context, id string, input UpdateSubscriptionInput) (*domain.Subscription, error)
}
