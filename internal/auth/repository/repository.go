package repository

import (
	"context"

	authdomain "customers-backend/internal/auth/domain"
)

// CustomerRepository is the document-store boundary for customer records.
// Lookup methods return (nil, nil) when no record matches.
type CustomerRepository interface {
	Create(ctx context.Context, customer *authdomain.Customer) error
	FindByEmail(ctx context.Context, email string) (*authdomain.Customer, error)
	FindByID(ctx context.Context, id string) (*authdomain.Customer, error)
}

// ProviderLinkRepository is the document-store boundary for federated
// identity links.
type ProviderLinkRepository interface {
	Create(ctx context.Context, link *authdomain.ProviderLink) error
	FindByEmail(ctx context.Context, email string) (*authdomain.ProviderLink, error)
	FindByProviderAccountID(ctx context.Context, providerAccountID string) (*authdomain.ProviderLink, error)
}

// SessionRecorder stores best-effort login session entries keyed by
// customer id. Callers treat failures as non-fatal.
type SessionRecorder interface {
	Record(ctx context.Context, customerID, token, device string) error
}
