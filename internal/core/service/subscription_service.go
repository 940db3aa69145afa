package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cjalex1313/trex-gym/internal/core/domain"
	"github.com/cjalex1313/trex-gym/internal/core/ports"
)

// SubscriptionService implements subscription management for clients.
type SubscriptionService struct {
	subs    ports.SubscriptionRepository
	clients ports.ClientRepository
	logger  zerolog.Logger
}

func NewSubscriptionService(subs ports.SubscriptionRepository, clients ports.ClientRepository, logger zerolog.Logger) *SubscriptionService {
	return &SubscriptionService{subs: subs, clients: clients, logger: logger}
}

// ListByClient returns a client's subscriptions, newest start date first.
func (s *SubscriptionService) ListByClient(ctx context.Context, clientID string) ([]domain.Subscription, error) {
	if _, err := s.clients.FindByID(ctx, clientID); err != nil {
		return nil, err
	}
	return s.subs.FindByClient(ctx, clientID)
}

// CreateForClient opens a new active subscription and, as a side effect,
// marks the client active.
func (s *SubscriptionService) CreateForClient(ctx context.Context, clientID string, input ports.CreateSubscriptionInput) (*domain.Subscription, error) {
	if _, err := s.clients.FindByID(ctx, clientID); err != nil {
		return nil, err
	}

	if err := validateDateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	currency := input.Currency
	if currency == "" {
		currency = domain.CurrencyRON
	}

	sub := &domain.Subscription{
		ClientID:  clientID,
		PlanType:  input.PlanType,
		PlanName:  input.PlanName,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Status:    domain.SubscriptionActive,
		Price:     input.Price,
		Currency:  currency,
		Notes:     input.Notes,
	}

	created, err := s.subs.Create(ctx, sub)
	if err != nil {
		return nil, err
	}

	active := domain.ClientStatusActive
	if _, err := s.clients.Update(ctx, clientID, ports.ClientUpdate{Status: &active}); err != nil {
		s.logger.Warn().Err(err).Str("client_id", clientID).Msg("failed to activate client after subscription")
	}

	s.logger.Info().
		Str("subscription_id", created.ID).
		Str("client_id", clientID).
		Str("plan_type", string(created.PlanType)).
		Msg("subscription created")

	return created, nil
}

func (s *SubscriptionService) Get(ctx context.Context, id string) (*domain.Subscription, error) {
	return s.subs.FindByID(ctx, id)
}

// Update applies a partial update. The date range is re-validated against the
// merged view of existing and incoming dates so a partial change cannot
// produce an inverted range.
func (s *SubscriptionService) Update(ctx context.Context, id string, input ports.UpdateSubscriptionInput) (*domain.Subscription, error) {
	existing, err := s.subs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	start := existing.StartDate
	if input.StartDate != nil {
		start = *input.StartDate
	}
	end := existing.EndDate
	if input.EndDate != nil {
		end = *input.EndDate
	}
	if err := validateDateRange(start, end); err != nil {
		return nil, err
	}

	return s.subs.Update(ctx, id, ports.SubscriptionUpdate{
		PlanType:  input.PlanType,
		PlanName:  input.PlanName,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Status:    input.Status,
		Price:     input.Price,
		Currency:  input.Currency,
		Notes:     input.Notes,
	})
}

func validateDateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return domain.ErrInvalidDate
	}
	if end.Before(start) {
		return domain.ErrInvalidDateRange
	}
	return nil
}
