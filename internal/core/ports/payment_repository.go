package ports

import (
	"context"
	"time"

	"github.com/cjalex1313/trex-gym/internal/core/domain"
)

// PaymentUpdate carries the mutable payment fields.
type PaymentUpdate struct {
	Amount      *float64
	PaymentDate *time.Time
	Method      *domain.PaymentMethod
	Notes       *string
}

// PaymentRepository defines persistence for payment documents.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	FindBySubscription(ctx context.Context, subscriptionID string) ([]domain.Payment, error)
	FindByClient(ctx context.Context, clientID string) ([]domain.Payment, error)
	FindBySubscriptionIDs(ctx context.Context, subscriptionIDs []string) ([]domain.Payment, error)
	Update(ctx context.Context, id string, update PaymentUpdate) (*domain.Payment, error)
	Delete(ctx context.Context, id string) error
}
