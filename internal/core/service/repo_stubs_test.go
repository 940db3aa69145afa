package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/cjalex1313/trex-gym/internal/core/domain"
	"github.com/cjalex1313/trex-gym/internal/core/ports"
)

// In-memory repository stubs shared by the service tests.

type stubClientRepo struct {
	clients map[string]*domain.Client
	nextID  int
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[string]*domain.Client)}
}

func (r *stubClientRepo) Create(_ context.Context, client *domain.Client) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.Email == client.Email {
			return nil, domain.ErrEmailExists
		}
	}
	r.nextID++
	stored := *client
	stored.ID = fmt.Sprintf("client-%d", r.nextID)
	r.clients[stored.ID] = &stored
	clone := stored
	return &clone, nil
}

func (r *stubClientRepo) Find(_ context.Context, filter ports.ClientFilter) ([]domain.Client, int64, error) {
	var all []domain.Client
	for _, c := range r.clients {
		if filter.Search != "" {
			s := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(c.FirstName), s) &&
				!strings.Contains(strings.ToLower(c.LastName), s) &&
				!strings.Contains(strings.ToLower(c.Email), s) &&
				!strings.Contains(c.Phone, s) {
				continue
			}
		}
		all = append(all, *c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := int64(len(all))
	start := filter.Skip
	if start > total {
		start = total
	}
	end := start + filter.Limit
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id string) (*domain.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubClientRepo) FindByIDs(_ context.Context, ids []string) ([]domain.Client, error) {
	var out []domain.Client
	for _, id := range ids {
		if c, ok := r.clients[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubClientRepo) Update(_ context.Context, id string, update ports.ClientUpdate) (*domain.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	if update.FirstName != nil {
		c.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		c.LastName = *update.LastName
	}
	if update.Email != nil {
		c.Email = *update.Email
	}
	if update.Phone != nil {
		c.Phone = *update.Phone
	}
	if update.Status != nil {
		c.Status = *update.Status
	}
	clone := *c
	return &clone, nil
}

type stubSubscriptionRepo struct {
	subs   map[string]*domain.Subscription
	nextID int
}

func newStubSubscriptionRepo() *stubSubscriptionRepo {
	return &stubSubscriptionRepo{subs: make(map[string]*domain.Subscription)}
}

func (r *stubSubscriptionRepo) Create(_ context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
	r.nextID++
	stored := *sub
	stored.ID = fmt.Sprintf("sub-%d", r.nextID)
	r.subs[stored.ID] = &stored
	clone := stored
	return &clone, nil
}

func (r *stubSubscriptionRepo) FindByID(_ context.Context, id string) (*domain.Subscription, error) {
	s, ok := r.subs[id]
	if !ok {
		return nil, domain.ErrSubscriptionNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubSubscriptionRepo) FindByClient(_ context.Context, clientID string) ([]domain.Subscription, error) {
	var out []domain.Subscription
	for _, s := range r.subs {
		if s.ClientID == clientID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

func (r *stubSubscriptionRepo) FindByStatuses(_ context.Context, statuses []domain.SubscriptionStatus) ([]domain.Subscription, error) {
	want := make(map[domain.SubscriptionStatus]struct{}, len(statuses))
	for _, s := range statuses {
		want[s] = struct{}{}
	}
	var out []domain.Subscription
	for _, s := range r.subs {
		if _, ok := want[s.Status]; ok {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubSubscriptionRepo) Update(_ context.Context, id string, update ports.SubscriptionUpdate) (*domain.Subscription, error) {
	s, ok := r.subs[id]
	if !ok {
		return nil, domain.ErrSubscriptionNotFound
	}
	if update.PlanType != nil {
		s.PlanType = *update.PlanType
	}
	if update.PlanName != nil {
		s.PlanName = *update.PlanName
	}
	if update.StartDate != nil {
		s.StartDate = *update.StartDate
	}
	if update.EndDate != nil {
		s.EndDate = *update.EndDate
	}
	if update.Status != nil {
		s.Status = *update.Status
	}
	if update.Price != nil {
		s.Price = *update.Price
	}
	if update.Currency != nil {
		s.Currency = *update.Currency
	}
	if update.Notes != nil {
		s.Notes = *update.Notes
	}
	clone := *s
	return &clone, nil
}

type stubPaymentRepo struct {
	payments map[string]*domain.Payment
	nextID   int
}

func newStubPaymentRepo() *stubPaymentRepo {
	return &stubPaymentRepo{payments: make(map[string]*domain.Payment)}
}

func (r *stubPaymentRepo) Create(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
	r.nextID++
	stored := *payment
	stored.ID = fmt.Sprintf("pay-%d", r.nextID)
	r.payments[stored.ID] = &stored
	clone := stored
	return &clone, nil
}

func (r *stubPaymentRepo) FindBySubscription(_ context.Context, subscriptionID string) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range r.payments {
		if p.SubscriptionID == subscriptionID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaymentDate.After(out[j].PaymentDate) })
	return out, nil
}

func (r *stubPaymentRepo) FindByClient(_ context.Context, clientID string) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range r.payments {
		if p.ClientID == clientID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaymentDate.After(out[j].PaymentDate) })
	return out, nil
}

func (r *stubPaymentRepo) FindBySubscriptionIDs(_ context.Context, subscriptionIDs []string) ([]domain.Payment, error) {
	want := make(map[string]struct{}, len(subscriptionIDs))
	for _, id := range subscriptionIDs {
		want[id] = struct{}{}
	}
	var out []domain.Payment
	for _, p := range r.payments {
		if _, ok := want[p.SubscriptionID]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPaymentRepo) Update(_ context.Context, id string, update ports.PaymentUpdate) (*domain.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	if update.Amount != nil {
		p.Amount = *update.Amount
	}
	if update.PaymentDate != nil {
		p.PaymentDate = *update.PaymentDate
	}
	if update.Method != nil {
		p.Method = *update.Method
	}
	if update.Notes != nil {
		p.Notes = *update.Notes
	}
	clone := *p
	return &clone, nil
}

func (r *stubPaymentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.payments[id]; !ok {
		return domain.ErrPaymentNotFound
	}
	delete(r.payments, id)
	return nil
}
