package domain

import "errors"

// Sentinel errors mapped to HTTP statuses by the central error handler.
// Auth failures carry deliberately generic messages so callers cannot tell
// an unknown email apart from a wrong secret.
var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidToken         = errors.New("invalid token")
	ErrForbidden            = errors.New("insufficient permissions")
	ErrCredentialNotFound   = errors.New("credential not found")
	ErrClientNotFound       = errors.New("client not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrEmailExists          = errors.New("email already exists")
	ErrInvalidID            = errors.New("invalid id")
	ErrInvalidDateRange     = errors.New("end date must be after start date")
	ErrInvalidDate          = errors.New("invalid date value")
)
