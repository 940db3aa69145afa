package ports

import (
	"context"
	"time"

	"github.com/cjalex1313/trex-gym/internal/core/domain"
)

// SubscriptionUpdate carries the mutable subscription fields.
type SubscriptionUpdate struct {
	PlanType  *domain.PlanType
	PlanName  *string
	StartDate *time.Time
	EndDate   *time.Time
	Status    *domain.SubscriptionStatus
	Price     *float64
	Currency  *domain.Currency
	Notes     *string
}

// SubscriptionRepository defines persistence for subscription documents.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error)
	FindByID(ctx context.Context, id string) (*domain.Subscription, error)
	FindByClient(ctx context.Context, clientID string) ([]domain.Subscription, error)
	FindByStatuses(ctx context.Context, statuses []domain.SubscriptionStatus) ([]domain.Subscription, error)
	Update(ctx context.Context, id string, update SubscriptionUpdate) (*domain.Subscription, error)
}
