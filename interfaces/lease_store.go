package interfaces

import (
	"context"
	"time"

	"mysessions/domain"
)

// LeaseStore persists leases and the management API pool. Implemented by adapters/myredis.
//
//go:generate moq -stub -out mock/lease_store.go -pkg mock . LeaseStore
type LeaseStore interface {
	// SaveLease writes every lease field and the expiry in one transaction.
	// Returns internal_server_error when the transaction fails.
	SaveLease(ctx context.Context, lease domain.Lease, ttl time.Duration) error

	// GetLease returns (lease, true, nil) when the lease exists with all required fields,
	// (zero, false, nil) when it is absent, (zero, false, internal_server_error) on storage failure.
	GetLease(ctx context.Context, sessionID string) (domain.Lease, bool, error)

	// Exists reports whether a lease key exists.
	Exists(ctx context.Context, sessionID string) (bool, error)

	// ListSessionIDs returns the ids of all live lease keys (possibly empty, never entity_not_found).
	ListSessionIDs(ctx context.Context) ([]string, error)

	// DeleteLease removes the lease key; deleting an absent key is not an error.
	DeleteLease(ctx context.Context, sessionID string) error

	// RefreshLease resets the expiry of an existing lease. Returns false when the lease is absent.
	RefreshLease(ctx context.Context, sessionID string, ttl time.Duration) (bool, error)

	// AddEndpoints adds management API URLs to the pool set.
	AddEndpoints(ctx context.Context, urls ...string) error

	// ListEndpoints returns the members of the pool set in no particular order.
	ListEndpoints(ctx context.Context) ([]string, error)

	// Flush removes every key of the database: leases and the pool.
	Flush(ctx context.Context) error
}
