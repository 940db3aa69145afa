package domain

import "time"

// ClientStatus represents the membership state of a client.
type ClientStatus string

const (
	ClientStatusActive    ClientStatus = "active"
	ClientStatusInactive  ClientStatus = "inactive"
	ClientStatusSuspended ClientStatus = "suspended"
	ClientStatusInvited   ClientStatus = "invited"
)

// Client is a gym member. The PIN hash is kept out of every JSON response.
type Client struct {
	ID        string       `json:"id"`
	FirstName string       `json:"firstName"`
	LastName  string       `json:"lastName"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone"`
	PinHash   string       `json:"-"`
	Status    ClientStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// FullName joins first and last name for display purposes.
func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}
