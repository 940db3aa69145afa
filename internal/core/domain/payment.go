package domain

import "time"

// PaymentMethod enumerates how a payment was collected.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

// Payment records money received against a subscription. ClientID is
// denormalized from the subscription at creation time.
type Payment struct {
	ID             string        `json:"id"`
	SubscriptionID string        `json:"subscriptionId"`
	ClientID       string        `json:"clientId"`
	Amount         float64       `json:"amount"`
	PaymentDate    time.Time     `json:"paymentDate"`
	Method         PaymentMethod `json:"method"`
	Notes          string        `json:"notes,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// OutstandingItem is a derived, read-only row of the outstanding-balance
// report. Only subscriptions with a positive unpaid amount appear.
type OutstandingItem struct {
	SubscriptionID    string     `json:"subscriptionId"`
	ClientID          string     `json:"clientId"`
	ClientName        string     `json:"clientName"`
	PlanType          PlanType   `json:"planType"`
	PlanName          string     `json:"planName,omitempty"`
	EndDate           time.Time  `json:"endDate"`
	TotalPrice        float64    `json:"totalPrice"`
	TotalPaid         float64    `json:"totalPaid"`
	OutstandingAmount float64    `json:"outstandingAmount"`
	Currency          Currency   `json:"currency"`
	LastPaymentDate   *time.Time `json:"lastPaymentDate,omitempty"`
}
