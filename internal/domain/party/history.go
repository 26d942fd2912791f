package party

import (
	"time"
)

// PartyHistory is an append-only snapshot of a party's full state at the
// moment of a successful create or effective update. Address fields are
// denormalized so the snapshot stays intact even as the party is
// repointed to other addresses later. Rows are never updated or deleted.
type PartyHistory struct {
	ID      int64
	PartyID int64

	FirstName   string
	MiddleName  string
	LastName    string
	Email       string
	PhoneNumber string

	StreetOne  string
	StreetTwo  string
	City       string
	State      string
	PostalCode string
	Country    string

	PartyCreatedAt time.Time
	PartyUpdatedAt time.Time
	PartyCreatedBy string
	PartyUpdatedBy string

	CreatedAt time.Time
}

// NewPartyHistory captures the current state of a party and its address.
// The party must already be persisted (non-zero ID) and carry its address.
func NewPartyHistory(p *Party, at time.Time) *PartyHistory {
	return &PartyHistory{
		PartyID:        p.ID,
		FirstName:      p.FirstName,
		MiddleName:     p.MiddleName,
		LastName:       p.LastName,
		Email:          p.Email,
		PhoneNumber:    p.PhoneNumber,
		StreetOne:      p.Address.StreetOne,
		StreetTwo:      p.Address.StreetTwo,
		City:           p.Address.City,
		State:          p.Address.State,
		PostalCode:     p.Address.PostalCode,
		Country:        p.Address.Country,
		PartyCreatedAt: p.CreatedAt,
		PartyUpdatedAt: p.UpdatedAt,
		PartyCreatedBy: p.CreatedBy,
		PartyUpdatedBy: p.UpdatedBy,
		CreatedAt:      at,
	}
}
