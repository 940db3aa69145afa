package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/cjalex1313/trex-gym/internal/core/domain"
	"github.com/cjalex1313/trex-gym/internal/core/ports"
)

// PaymentService implements payment recording and the outstanding-balance
// report.
type PaymentService struct {
	payments ports.PaymentRepository
	subs     ports.SubscriptionRepository
	clients  ports.ClientRepository
	logger   zerolog.Logger
}

func NewPaymentService(
	payments ports.PaymentRepository,
	subs ports.SubscriptionRepository,
	clients ports.ClientRepository,
	logger zerolog.Logger,
) *PaymentService {
	return &PaymentService{payments: payments, subs: subs, clients: clients, logger: logger}
}

// ListBySubscription returns a subscription's payments, newest first.
func (s *PaymentService) ListBySubscription(ctx context.Context, subscriptionID string) ([]domain.Payment, error) {
	if _, err := s.subs.FindByID(ctx, subscriptionID); err != nil {
		return nil, err
	}
	return s.payments.FindBySubscription(ctx, subscriptionID)
}

// ListByClient returns all payments for a client across subscriptions.
func (s *PaymentService) ListByClient(ctx context.Context, clientID string) ([]domain.Payment, error) {
	if _, err := s.clients.FindByID(ctx, clientID); err != nil {
		return nil, err
	}
	return s.payments.FindByClient(ctx, clientID)
}

// CreateForSubscription records a payment against a subscription. The client
// id is denormalized from the subscription so per-client listings stay a
// single-collection query.
func (s *PaymentService) CreateForSubscription(ctx context.Context, subscriptionID string, input ports.CreatePaymentInput) (*domain.Payment, error) {
	sub, err := s.subs.FindByID(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}

	if input.PaymentDate.IsZero() {
		return nil, domain.ErrInvalidDate
	}

	payment := &domain.Payment{
		SubscriptionID: subscriptionID,
		ClientID:       sub.ClientID,
		Amount:         input.Amount,
		PaymentDate:    input.PaymentDate,
		Method:         input.Method,
		Notes:          input.Notes,
	}

	created, err := s.payments.Create(ctx, payment)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("payment_id", created.ID).
		Str("subscription_id", subscriptionID).
		Float64("amount", created.Amount).
		Str("method", string(created.Method)).
		Msg("payment recorded")

	return created, nil
}

func (s *PaymentService) Update(ctx context.Context, id string, input ports.UpdatePaymentInput) (*domain.Payment, error) {
	if input.PaymentDate != nil && input.PaymentDate.IsZero() {
		return nil, domain.ErrInvalidDate
	}
	return s.payments.Update(ctx, id, ports.PaymentUpdate{
		Amount:      input.Amount,
		PaymentDate: input.PaymentDate,
		Method:      input.Method,
		Notes:       input.Notes,
	})
}

func (s *PaymentService) Delete(ctx context.Context, id string) (*ports.DeletePaymentResult, error) {
	if err := s.payments.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &ports.DeletePaymentResult{Deleted: true, ID: id}, nil
}

// Outstanding computes the unpaid balance per subscription across the whole
// dataset. Active and expired subscriptions are considered; cancelled ones
// never are. A subscription appears only when price exceeds the sum of its
// payments. Results are sorted by end date, then client name, for stable
// dashboard ordering.
func (s *PaymentService) Outstanding(ctx context.Context) ([]domain.OutstandingItem, error) {
	subs, err := s.subs.FindByStatuses(ctx, []domain.SubscriptionStatus{
		domain.SubscriptionActive,
		domain.SubscriptionExpired,
	})
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		return []domain.OutstandingItem{}, nil
	}

	subIDs := make([]string, 0, len(subs))
	clientIDSet := make(map[string]struct{}, len(subs))
	for _, sub := range subs {
		subIDs = append(subIDs, sub.ID)
		clientIDSet[sub.ClientID] = struct{}{}
	}

	payments, err := s.payments.FindBySubscriptionIDs(ctx, subIDs)
	if err != nil {
		return nil, err
	}

	type paidTotal struct {
		amount float64
		last   *domain.Payment
	}
	paid := make(map[string]*paidTotal, len(subs))
	for i := range payments {
		p := &payments[i]
		t := paid[p.SubscriptionID]
		if t == nil {
			t = &paidTotal{}
			paid[p.SubscriptionID] = t
		}
		t.amount += p.Amount
		if t.last == nil || p.PaymentDate.After(t.last.PaymentDate) {
			t.last = p
		}
	}

	clientIDs := make([]string, 0, len(clientIDSet))
	for id := range clientIDSet {
		clientIDs = append(clientIDs, id)
	}
	clients, err := s.clients.FindByIDs(ctx, clientIDs)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(clients))
	for i := range clients {
		names[clients[i].ID] = clients[i].FullName()
	}

	items := make([]domain.OutstandingItem, 0, len(subs))
	for _, sub := range subs {
		var totalPaid float64
		var lastPaymentDate *domain.Payment
		if t := paid[sub.ID]; t != nil {
			totalPaid = t.amount
			lastPaymentDate = t.last
		}

		outstanding := sub.Price - totalPaid
		if outstanding <= 0 {
			continue
		}

		name, ok := names[sub.ClientID]
		if !ok {
			// Orphaned subscription; skip rather than render a blank row.
			continue
		}

		item := domain.OutstandingItem{
			SubscriptionID:    sub.ID,
			ClientID:          sub.ClientID,
			ClientName:        name,
			PlanType:          sub.PlanType,
			PlanName:          sub.PlanName,
			EndDate:           sub.EndDate,
			TotalPrice:        sub.Price,
			TotalPaid:         totalPaid,
			OutstandingAmount: outstanding,
			Currency:          sub.Currency,
		}
		if lastPaymentDate != nil {
			d := lastPaymentDate.PaymentDate
			item.LastPaymentDate = &d
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].EndDate.Equal(items[j].EndDate) {
			return items[i].EndDate.Before(items[j].EndDate)
		}
		return items[i].ClientName < items[j].ClientName
	})

	return items, nil
}
