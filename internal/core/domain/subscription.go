package domain

import "time"

// SubscriptionStatus represents the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionExpired   SubscriptionStatus = "expired"
)

// PlanType enumerates the billing periods a gym sells.
type PlanType string

const (
	PlanMonthly    PlanType = "monthly"
	PlanQuarterly  PlanType = "quarterly"
	PlanSemiannual PlanType = "semiannual"
	PlanAnnual     PlanType = "annual"
	PlanCustom     PlanType = "custom"
)

// Currency is the ISO code a subscription is priced in.
type Currency string

const (
	CurrencyRON Currency = "RON"
	CurrencyEUR Currency = "EUR"
)

// Subscription binds a client to a plan for a date range at a fixed price.
type Subscription struct {
	ID        string             `json:"id"`
	ClientID  string             `json:"clientId"`
	PlanType  PlanType           `json:"planType"`
	PlanName  string             `json:"planName,omitempty"`
	StartDate time.Time          `json:"startDate"`
	EndDate   time.Time          `json:"endDate"`
	Status    SubscriptionStatus `json:"status"`
	Price     float64            `json:"price"`
	Currency  Currency           `json:"currency"`
	Notes     string             `json:"notes,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}
