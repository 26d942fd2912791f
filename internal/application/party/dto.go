package party

import (
	"time"

	"github.com/partysvc/backend/internal/domain/party"
)

// =============================================================================
// Address DTOs
// =============================================================================

// CreateAddressRequest represents the address block of a party create request.
// Field limits mirror the column widths of the address table.
type CreateAddressRequest struct {
	StreetOne  string `json:"street_one" binding:"required,min=1,max=50"`
	StreetTwo  string `json:"street_two" binding:"max=50"`
	City       string `json:"city" binding:"required,min=1,max=50"`
	State      string `json:"state" binding:"required,len=2,alpha"`
	PostalCode string `json:"postal_code" binding:"required,min=1,max=10"`
	Country    string `json:"country" binding:"required,min=1,max=3"`
}

// Fields converts the request block to canonicalizer input.
func (r CreateAddressRequest) Fields() party.AddressFields {
	return party.AddressFields{
		StreetOne:  r.StreetOne,
		StreetTwo:  r.StreetTwo,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		Country:    r.Country,
	}
}

// UpdateAddressRequest represents the address block of a party patch request.
// Every field is optional; fields left absent keep the value of the party's
// current address before the merged result is canonicalized again.
type UpdateAddressRequest struct {
	StreetOne  Optional[string] `json:"street_one"`
	StreetTwo  Optional[string] `json:"street_two"`
	City       Optional[string] `json:"city"`
	State      Optional[string] `json:"state"`
	PostalCode Optional[string] `json:"postal_code"`
	Country    Optional[string] `json:"country"`
}

// MergeInto fills the gaps of the patch block from the given current fields
// and returns the merged, not-yet-canonicalized result.
func (r UpdateAddressRequest) MergeInto(current party.AddressFields) party.AddressFields {
	return party.AddressFields{
		StreetOne:  r.StreetOne.Or(current.StreetOne),
		StreetTwo:  r.StreetTwo.Resolve(current.StreetTwo),
		City:       r.City.Or(current.City),
		State:      r.State.Or(current.State),
		PostalCode: r.PostalCode.Or(current.PostalCode),
		Country:    r.Country.Or(current.Country),
	}
}

// AddressResponse represents an address in API responses.
type AddressResponse struct {
	ID         int64  `json:"id"`
	StreetOne  string `json:"street_one"`
	StreetTwo  string `json:"street_two,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// =============================================================================
// Party DTOs
// =============================================================================

// CreateMeta is the audit block of a create request. The caller's timestamp
// rides along on the wire; stored rows are stamped from the server clock.
type CreateMeta struct {
	CreatedBy string    `json:"created_by" binding:"required,min=1,max=50"`
	CreatedAt time.Time `json:"created_at" binding:"required"`
}

// UpdateMeta is the audit block of a patch request.
type UpdateMeta struct {
	UpdatedBy string    `json:"updated_by" binding:"required,min=1,max=50"`
	UpdatedAt time.Time `json:"updated_at" binding:"required"`
}

// CreatePartyRequest represents a request to create a new party.
type CreatePartyRequest struct {
	FirstName   string               `json:"first_name" binding:"required,min=1,max=100"`
	MiddleName  string               `json:"middle_name" binding:"max=100"`
	LastName    string               `json:"last_name" binding:"required,min=1,max=100"`
	Email       string               `json:"email" binding:"required,email,max=50"`
	PhoneNumber string               `json:"phone_number" binding:"required,len=10,numeric"`
	Address     CreateAddressRequest `json:"address" binding:"required"`
	Meta        CreateMeta           `json:"meta" binding:"required"`
}

// UpdatePartyRequest represents a partial update to a party. Absent fields are
// left untouched; the Optional wrapper is what distinguishes absent from the
// zero value. Value constraints that binding tags would normally enforce are
// checked in the service because the validator cannot see through Optional.
type UpdatePartyRequest struct {
	FirstName   Optional[string]      `json:"first_name"`
	MiddleName  Optional[string]      `json:"middle_name"`
	LastName    Optional[string]      `json:"last_name"`
	Email       Optional[string]      `json:"email"`
	PhoneNumber Optional[string]      `json:"phone_number"`
	Address     *UpdateAddressRequest `json:"address"`
	Meta        UpdateMeta            `json:"meta" binding:"required"`
}

// PartyResponse represents a party in API responses. This is also the shape
// cached in Redis, so reads served from cache and reads served from the
// database are indistinguishable to clients.
type PartyResponse struct {
	ID          int64           `json:"id"`
	FirstName   string          `json:"first_name"`
	MiddleName  string          `json:"middle_name,omitempty"`
	LastName    string          `json:"last_name"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phone_number"`
	Address     AddressResponse `json:"address"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	CreatedBy   string          `json:"created_by"`
	UpdatedBy   string          `json:"updated_by"`
}

// PartyHistoryResponse represents one history snapshot of a party.
type PartyHistoryResponse struct {
	ID          int64           `json:"id"`
	PartyID     int64           `json:"party_id"`
	FirstName   string          `json:"first_name"`
	MiddleName  string          `json:"middle_name,omitempty"`
	LastName    string          `json:"last_name"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phone_number"`
	Address     AddressResponse `json:"address"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	CreatedBy   string          `json:"created_by"`
	UpdatedBy   string          `json:"updated_by"`
	RecordedAt  time.Time       `json:"recorded_at"`
}

// ToAddressResponse converts a domain Address to AddressResponse.
func ToAddressResponse(a *party.Address) AddressResponse {
	return AddressResponse{
		ID:         a.ID,
		StreetOne:  a.StreetOne,
		StreetTwo:  a.StreetTwo,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

// ToPartyResponse converts a domain Party (with its address loaded) to
// PartyResponse.
func ToPartyResponse(p *party.Party) PartyResponse {
	resp := PartyResponse{
		ID:          p.ID,
		FirstName:   p.FirstName,
		MiddleName:  p.MiddleName,
		LastName:    p.LastName,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		CreatedBy:   p.CreatedBy,
		UpdatedBy:   p.UpdatedBy,
	}
	if p.Address != nil {
		resp.Address = ToAddressResponse(p.Address)
	}
	return resp
}

// ToPartyHistoryResponse converts a history snapshot to PartyHistoryResponse.
func ToPartyHistoryResponse(h *party.PartyHistory) PartyHistoryResponse {
	return PartyHistoryResponse{
		ID:          h.ID,
		PartyID:     h.PartyID,
		FirstName:   h.FirstName,
		MiddleName:  h.MiddleName,
		LastName:    h.LastName,
		Email:       h.Email,
		PhoneNumber: h.PhoneNumber,
		Address: AddressResponse{
			StreetOne:  h.StreetOne,
			StreetTwo:  h.StreetTwo,
			City:       h.City,
			State:      h.State,
			PostalCode: h.PostalCode,
			Country:    h.Country,
		},
		CreatedAt:   h.PartyCreatedAt,
		UpdatedAt:   h.PartyUpdatedAt,
		CreatedBy:   h.PartyCreatedBy,
		UpdatedBy:   h.PartyUpdatedBy,
		RecordedAt:  h.CreatedAt,
	}
}

// ToPartyHistoryResponses converts a slice of history snapshots.
func ToPartyHistoryResponses(items []party.PartyHistory) []PartyHistoryResponse {
	out := make([]PartyHistoryResponse, 0, len(items))
	for i := range items {
		out = append(out, ToPartyHistoryResponse(&items[i]))
	}
	return out
}
