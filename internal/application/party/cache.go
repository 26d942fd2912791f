package party

import "context"

// PartyCache is a best-effort read-aside cache of party responses. The
// service treats it as an accelerator only: every error it returns is logged
// and swallowed, and a miss simply falls through to the database. Entries are
// written after a committed create or effective update, never inside the
// transaction.
type PartyCache interface {
	// Get returns the cached response for the party, or (nil, nil) on a miss.
	Get(ctx context.Context, partyID int64) (*PartyResponse, error)

	// Set stores the response under the party's ID.
	Set(ctx context.Context, resp PartyResponse) error
}

// NoOpPartyCache satisfies PartyCache without caching anything. Used when
// caching is disabled and in tests that don't care about the cache.
type NoOpPartyCache struct{}

// Get always misses.
func (NoOpPartyCache) Get(context.Context, int64) (*PartyResponse, error) { return nil, nil }

// Set discards the response.
func (NoOpPartyCache) Set(context.Context, PartyResponse) error { return nil }

var _ PartyCache = NoOpPartyCache{}
