package party

import (
	"time"

	"github.com/partysvc/backend/internal/domain/shared"
)

// Party is a person linked to exactly one current Address. Identity and
// the created_* audit fields are fixed at creation; the business fields
// and the address reference are the only things an update may change.
type Party struct {
	shared.AuditedEntity
	FirstName   string
	MiddleName  string
	LastName    string
	Email       string
	PhoneNumber string
	AddressID   int64
	Address     *Address
}

// NewParty builds a not-yet-persisted Party linked to the given address,
// stamped with the acting user and timestamp.
func NewParty(firstName, middleName, lastName, email, phoneNumber string, address *Address, actor string, at time.Time) *Party {
	return &Party{
		AuditedEntity: shared.NewAuditedEntity(actor, at),
		FirstName:     firstName,
		MiddleName:    middleName,
		LastName:      lastName,
		Email:         email,
		PhoneNumber:   phoneNumber,
		AddressID:     address.ID,
		Address:       address,
	}
}

// Relink points the party at a different address. Returns true when the
// reference actually changed.
func (p *Party) Relink(address *Address) bool {
	if address.ID == p.AddressID {
		return false
	}
	p.AddressID = address.ID
	p.Address = address
	return true
}
