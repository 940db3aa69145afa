package ports

import (
	"context"
	"time"

	"github.com/cjalex1313/trex-gym/internal/core/domain"
)

type CreatePaymentInput struct {
	Amount      float64
	PaymentDate time.Time
	Method      domain.PaymentMethod
	Notes       string
}

type UpdatePaymentInput struct {
	Amount      *float64
	PaymentDate *time.Time
	Method      *domain.PaymentMethod
	Notes       *string
}

// DeletePaymentResult acknowledges a hard delete.
type DeletePaymentResult struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// PaymentService implements payment recording and the outstanding-balance
// report.
type PaymentService interface {
	ListBySubscription(ctx context.Context, subscriptionID string) ([]domain.Payment, error)
	ListByClient(ctx context.Context, clientID string) ([]domain.Payment, error)
	CreateForSubscription(ctx context.Context, subscriptionID string, input CreatePaymentInput) (*domain.Payment, error)
	Update(ctx context.Context, id string, input UpdatePaymentInput) (*domain.Payment, error)
	Delete(ctx context.Context, id string) (*DeletePaymentResult, error)
	Outstanding(ctx context.Context) ([]domain.OutstandingItem, error)
}
