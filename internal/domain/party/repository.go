package party

import (
	"context"
)

// PartyRepository defines the persistence port for parties. Implementations
// never commit or roll back; transaction control belongs to the scope that
// hands out the repository.
type PartyRepository interface {
	// FindByID loads a party with its current address.
	// Returns shared.ErrNotFound when no such party exists.
	FindByID(ctx context.Context, id int64) (*Party, error)

	// Create inserts the party and assigns its identity. The insert is
	// flushed immediately: the ID is available to the caller while the
	// row remains subject to the enclosing transaction's rollback.
	Create(ctx context.Context, p *Party) error

	// Update persists the party's mutable fields and address reference.
	Update(ctx context.Context, p *Party) error
}

// AddressRepository defines the persistence port for content-addressed
// addresses.
type AddressRepository interface {
	// FindByID returns shared.ErrNotFound when no such address exists.
	FindByID(ctx context.Context, id int64) (*Address, error)

	// FindByFingerprint resolves an address by content hash.
	// Returns shared.ErrNotFound on a miss.
	FindByFingerprint(ctx context.Context, fingerprint string) (*Address, error)

	// Create inserts the address and assigns its identity. A violation
	// of the fingerprint uniqueness constraint surfaces as
	// shared.ErrAlreadyExists so callers can fall back to a lookup.
	Create(ctx context.Context, a *Address) error
}

// PartyHistoryRepository defines the persistence port for the append-only
// audit trail.
type PartyHistoryRepository interface {
	// Append inserts a history snapshot.
	Append(ctx context.Context, h *PartyHistory) error

	// FindByPartyID lists snapshots for a party, oldest first.
	FindByPartyID(ctx context.Context, partyID int64) ([]PartyHistory, error)
}
