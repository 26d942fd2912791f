package party

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/partysvc/backend/internal/domain/party"
	"github.com/partysvc/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// validate checks patch field values that gin's binding layer cannot reach
// through the Optional wrapper.
var validate = validator.New()

// PartyService orchestrates party creation, reads, and patch updates over a
// transaction scope, with a best-effort Redis-backed response cache bolted on
// the side.
type PartyService struct {
	scope   TransactionScope
	parties party.PartyRepository
	history party.PartyHistoryRepository
	cache   PartyCache
	logger  *zap.Logger
	clock   func() time.Time
}

// NewPartyService creates a new PartyService. The parties and history
// repositories are the non-transactional read path; all writes go through
// the scope.
func NewPartyService(
	scope TransactionScope,
	parties party.PartyRepository,
	history party.PartyHistoryRepository,
	cache PartyCache,
	logger *zap.Logger,
) *PartyService {
	return &PartyService{
		scope:   scope,
		parties: parties,
		history: history,
		cache:   cache,
		logger:  logger,
		clock:   time.Now,
	}
}

// Create creates a party, reusing an existing address row when one with the
// same canonical content already exists. The party insert, the address
// resolution, and the first history snapshot commit or roll back together;
// the cache write happens only after commit.
func (s *PartyService) Create(ctx context.Context, req CreatePartyRequest) (*PartyResponse, error) {
	// Stored audit timestamps come from the server clock, not the request
	// meta block.
	now := s.clock().UTC()

	// Canonicalize up front so an invalid state code fails before any
	// transaction is opened.
	fields, err := req.Address.Fields().Normalize()
	if err != nil {
		return nil, err
	}

	var resp PartyResponse
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		addr, err := s.getOrCreateAddress(ctx, repos.AddressRepo(), fields, req.Meta.CreatedBy, now)
		if err != nil {
			return err
		}

		p := party.NewParty(req.FirstName, req.MiddleName, req.LastName, req.Email, req.PhoneNumber, addr, req.Meta.CreatedBy, now)
		if err := repos.PartyRepo().Create(ctx, p); err != nil {
			return err
		}

		if err := repos.HistoryRepo().Append(ctx, party.NewPartyHistory(p, now)); err != nil {
			return err
		}

		resp = ToPartyResponse(p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, resp)
	return &resp, nil
}

// Get returns a party by ID, served from cache when possible. Cache failures
// degrade to a database read; a projection served from the database is
// written back to the cache best-effort.
func (s *PartyService) Get(ctx context.Context, partyID int64) (*PartyResponse, error) {
	cached, err := s.cache.Get(ctx, partyID)
	if err != nil {
		s.logger.Warn("party cache read failed, falling back to database",
			zap.Int64("party_id", partyID),
			zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	p, err := s.parties.FindByID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	resp := ToPartyResponse(p)
	s.cacheSet(ctx, resp)
	return &resp, nil
}

// Update applies a partial update to a party. Fields absent from the request
// keep their current value; a partial address block is merged with the
// current address before canonicalization, and the merged result is resolved
// to an existing or new address row. Only an effective change stamps
// updated_by, appends history, and refreshes the cache: a no-op patch leaves
// every row and the cache untouched.
func (s *PartyService) Update(ctx context.Context, partyID int64, req UpdatePartyRequest) (*PartyResponse, error) {
	if err := validateUpdate(req); err != nil {
		return nil, err
	}

	now := s.clock().UTC()

	var (
		resp       PartyResponse
		wasUpdated bool
	)
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		p, err := repos.PartyRepo().FindByID(ctx, partyID)
		if err != nil {
			return err
		}

		wasUpdated = applyScalarPatch(p, req)

		if req.Address != nil {
			merged, err := req.Address.MergeInto(p.Address.Fields()).Normalize()
			if err != nil {
				return err
			}

			if merged.Fingerprint() != p.Address.Fingerprint {
				addr, err := s.getOrCreateAddress(ctx, repos.AddressRepo(), merged, req.Meta.UpdatedBy, now)
				if err != nil {
					return err
				}
				if p.Relink(addr) {
					wasUpdated = true
				}
			}
		}

		if wasUpdated {
			p.UpdatedBy = req.Meta.UpdatedBy
			p.UpdatedAt = now
			if err := repos.PartyRepo().Update(ctx, p); err != nil {
				return err
			}
			if err := repos.HistoryRepo().Append(ctx, party.NewPartyHistory(p, now)); err != nil {
				return err
			}
		}

		resp = ToPartyResponse(p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if wasUpdated {
		s.cacheSet(ctx, resp)
	}
	return &resp, nil
}

// GetHistory lists the history snapshots of a party, oldest first.
func (s *PartyService) GetHistory(ctx context.Context, partyID int64) ([]PartyHistoryResponse, error) {
	if _, err := s.parties.FindByID(ctx, partyID); err != nil {
		return nil, err
	}

	items, err := s.history.FindByPartyID(ctx, partyID)
	if err != nil {
		return nil, err
	}
	return ToPartyHistoryResponses(items), nil
}

// getOrCreateAddress resolves canonical address fields to a row, creating one
// when no row with that fingerprint exists yet. A concurrent insert of the
// same fingerprint loses the unique-constraint race and falls back to reading
// the winner's row.
func (s *PartyService) getOrCreateAddress(ctx context.Context, repo party.AddressRepository, fields party.AddressFields, actor string, now time.Time) (*party.Address, error) {
	fingerprint := fields.Fingerprint()

	addr, err := repo.FindByFingerprint(ctx, fingerprint)
	if err == nil {
		return addr, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	addr, err = party.NewAddress(fields, actor, now)
	if err != nil {
		return nil, err
	}

	if err := repo.Create(ctx, addr); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return repo.FindByFingerprint(ctx, fingerprint)
		}
		return nil, err
	}
	return addr, nil
}

// cacheSet stores the response best-effort after a commit. Failures are
// logged and swallowed so cache availability never affects the outcome of a
// committed write.
func (s *PartyService) cacheSet(ctx context.Context, resp PartyResponse) {
	if err := s.cache.Set(ctx, resp); err != nil {
		s.logger.Warn("party cache write failed",
			zap.Int64("party_id", resp.ID),
			zap.Error(err))
	}
}

// applyScalarPatch applies the non-address fields of a patch to the party
// and reports whether any value actually changed.
func applyScalarPatch(p *party.Party, req UpdatePartyRequest) bool {
	changed := false

	if v, ok := req.FirstName.Get(); ok && v != p.FirstName {
		p.FirstName = v
		changed = true
	}
	if req.MiddleName.Set {
		if v := req.MiddleName.Resolve(p.MiddleName); v != p.MiddleName {
			p.MiddleName = v
			changed = true
		}
	}
	if v, ok := req.LastName.Get(); ok && v != p.LastName {
		p.LastName = v
		changed = true
	}
	if v, ok := req.Email.Get(); ok && v != p.Email {
		p.Email = v
		changed = true
	}
	if v, ok := req.PhoneNumber.Get(); ok && v != p.PhoneNumber {
		p.PhoneNumber = v
		changed = true
	}

	return changed
}

// validateUpdate enforces the value constraints of patch fields. Explicit
// null is allowed only on fields whose columns are nullable (middle name and
// street two); on anything else it is rejected rather than silently ignored.
func validateUpdate(req UpdatePartyRequest) error {
	checks := []struct {
		name string
		opt  Optional[string]
		tag  string
	}{
		{"first_name", req.FirstName, "min=1,max=100"},
		{"last_name", req.LastName, "min=1,max=100"},
		{"email", req.Email, "email,max=50"},
		{"phone_number", req.PhoneNumber, "len=10,numeric"},
	}
	for _, c := range checks {
		if !c.opt.Set {
			continue
		}
		if !c.opt.Valid {
			return shared.NewDomainError("INVALID_INPUT", c.name+" cannot be null")
		}
		if err := validate.Var(c.opt.Value, c.tag); err != nil {
			return shared.NewDomainError("INVALID_INPUT", "invalid value for "+c.name)
		}
	}

	if v, ok := req.MiddleName.Get(); ok {
		if err := validate.Var(v, "max=100"); err != nil {
			return shared.NewDomainError("INVALID_INPUT", "invalid value for middle_name")
		}
	}

	if req.Address != nil {
		addrChecks := []struct {
			name string
			opt  Optional[string]
			tag  string
		}{
			{"street_one", req.Address.StreetOne, "min=1,max=50"},
			{"city", req.Address.City, "min=1,max=50"},
			{"state", req.Address.State, "len=2,alpha"},
			{"postal_code", req.Address.PostalCode, "min=1,max=10"},
			{"country", req.Address.Country, "min=1,max=3"},
		}
		for _, c := range addrChecks {
			if !c.opt.Set {
				continue
			}
			if !c.opt.Valid {
				return shared.NewDomainError("INVALID_INPUT", c.name+" cannot be null")
			}
			if err := validate.Var(c.opt.Value, c.tag); err != nil {
				return shared.NewDomainError("INVALID_INPUT", "invalid value for "+c.name)
			}
		}
		if v, ok := req.Address.StreetTwo.Get(); ok {
			if err := validate.Var(v, "max=50"); err != nil {
				return shared.NewDomainError("INVALID_INPUT", "invalid value for street_two")
			}
		}
	}

	return nil
}
