package party

import (
	"time"

	"github.com/partysvc/backend/internal/domain/shared"
)

// Address is a content-addressed postal address. Rows are immutable once
// created: a change to any field on a party resolves to a different
// fingerprint and therefore to reuse of another row or creation of a new
// one, never to an in-place update. An address may be shared by many
// parties and may outlive all of them.
type Address struct {
	shared.AuditedEntity
	StreetOne   string
	StreetTwo   string
	City        string
	State       string
	PostalCode  string
	Country     string
	Fingerprint string
}

// NewAddress canonicalizes the given fields and builds an Address stamped
// with the acting user and timestamp. Returns an INVALID_FIELD error when
// the state code is not a known two-letter code.
func NewAddress(fields AddressFields, actor string, at time.Time) (*Address, error) {
	norm, err := fields.Normalize()
	if err != nil {
		return nil, err
	}

	return &Address{
		AuditedEntity: shared.NewAuditedEntity(actor, at),
		StreetOne:     norm.StreetOne,
		StreetTwo:     norm.StreetTwo,
		City:          norm.City,
		State:         norm.State,
		PostalCode:    norm.PostalCode,
		Country:       norm.Country,
		Fingerprint:   norm.Fingerprint(),
	}, nil
}

// Fields returns the address content as AddressFields, used by the
// patch-update flow to fill the gaps of a partial address request.
func (a *Address) Fields() AddressFields {
	return AddressFields{
		StreetOne:  a.StreetOne,
		StreetTwo:  a.StreetTwo,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}
