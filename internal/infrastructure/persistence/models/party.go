package models

import (
	"time"

	"github.com/partysvc/backend/internal/domain/party"
)

// AddressModel is the persistence model for the Address domain entity.
// The fingerprint column carries the unique constraint that makes address
// deduplication safe under concurrent inserts.
type AddressModel struct {
	AuditedModel
	StreetOne   string `gorm:"type:varchar(50);not null"`
	StreetTwo   string `gorm:"type:varchar(50)"`
	City        string `gorm:"type:varchar(50);not null"`
	State       string `gorm:"type:varchar(2);not null"`
	PostalCode  string `gorm:"type:varchar(10);not null"`
	Country     string `gorm:"type:varchar(3);not null"`
	Fingerprint string `gorm:"type:varchar(64);not null;uniqueIndex:uq_address_fingerprint"`
}

// TableName returns the table name for GORM
func (AddressModel) TableName() string {
	return "address"
}

// ToDomain converts the persistence model to a domain Address entity.
func (m *AddressModel) ToDomain() *party.Address {
	return &party.Address{
		AuditedEntity: m.AuditedModel.ToDomain(),
		StreetOne:     m.StreetOne,
		StreetTwo:     m.StreetTwo,
		City:          m.City,
		State:         m.State,
		PostalCode:    m.PostalCode,
		Country:       m.Country,
		Fingerprint:   m.Fingerprint,
	}
}

// AddressModelFromDomain builds a persistence model from a domain Address.
func AddressModelFromDomain(a *party.Address) *AddressModel {
	m := &AddressModel{
		StreetOne:   a.StreetOne,
		StreetTwo:   a.StreetTwo,
		City:        a.City,
		State:       a.State,
		PostalCode:  a.PostalCode,
		Country:     a.Country,
		Fingerprint: a.Fingerprint,
	}
	m.FromDomainEntity(a.AuditedEntity)
	return m
}

// PartyModel is the persistence model for the Party domain entity.
type PartyModel struct {
	AuditedModel
	FirstName   string        `gorm:"type:varchar(100);not null"`
	MiddleName  string        `gorm:"type:varchar(100)"`
	LastName    string        `gorm:"type:varchar(100);not null"`
	Email       string        `gorm:"type:varchar(50);not null"`
	PhoneNumber string        `gorm:"type:varchar(10);not null"`
	AddressID   int64         `gorm:"not null;index"`
	Address     *AddressModel `gorm:"foreignKey:AddressID"`
}

// TableName returns the table name for GORM
func (PartyModel) TableName() string {
	return "party"
}

// ToDomain converts the persistence model to a domain Party entity.
func (m *PartyModel) ToDomain() *party.Party {
	p := &party.Party{
		AuditedEntity: m.AuditedModel.ToDomain(),
		FirstName:     m.FirstName,
		MiddleName:    m.MiddleName,
		LastName:      m.LastName,
		Email:         m.Email,
		PhoneNumber:   m.PhoneNumber,
		AddressID:     m.AddressID,
	}
	if m.Address != nil {
		p.Address = m.Address.ToDomain()
	}
	return p
}

// PartyModelFromDomain builds a persistence model from a domain Party.
// The association is deliberately left nil so GORM never cascades writes
// into the shared address row.
func PartyModelFromDomain(p *party.Party) *PartyModel {
	m := &PartyModel{
		FirstName:   p.FirstName,
		MiddleName:  p.MiddleName,
		LastName:    p.LastName,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
		AddressID:   p.AddressID,
	}
	m.FromDomainEntity(p.AuditedEntity)
	return m
}

// PartyHistoryModel is the persistence model for history snapshots. Rows are
// insert-only; there is no update or delete path through this model.
type PartyHistoryModel struct {
	ID      int64 `gorm:"primaryKey;autoIncrement"`
	PartyID int64 `gorm:"not null;index"`

	FirstName   string `gorm:"type:varchar(100);not null"`
	MiddleName  string `gorm:"type:varchar(100)"`
	LastName    string `gorm:"type:varchar(100);not null"`
	Email       string `gorm:"type:varchar(50);not null"`
	PhoneNumber string `gorm:"type:varchar(10);not null"`

	StreetOne  string `gorm:"type:varchar(50);not null"`
	StreetTwo  string `gorm:"type:varchar(50)"`
	City       string `gorm:"type:varchar(50);not null"`
	State      string `gorm:"type:varchar(2);not null"`
	PostalCode string `gorm:"type:varchar(10);not null"`
	Country    string `gorm:"type:varchar(3);not null"`

	PartyCreatedAt time.Time `gorm:"not null"`
	PartyUpdatedAt time.Time `gorm:"not null"`
	PartyCreatedBy string    `gorm:"type:varchar(50);not null"`
	PartyUpdatedBy string    `gorm:"type:varchar(50);not null"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
}

// TableName returns the table name for GORM
func (PartyHistoryModel) TableName() string {
	return "party_history"
}

// ToDomain converts the persistence model to a domain PartyHistory snapshot.
func (m *PartyHistoryModel) ToDomain() *party.PartyHistory {
	return &party.PartyHistory{
		ID:             m.ID,
		PartyID:        m.PartyID,
		FirstName:      m.FirstName,
		MiddleName:     m.MiddleName,
		LastName:       m.LastName,
		Email:          m.Email,
		PhoneNumber:    m.PhoneNumber,
		StreetOne:      m.StreetOne,
		StreetTwo:      m.StreetTwo,
		City:           m.City,
		State:          m.State,
		PostalCode:     m.PostalCode,
		Country:        m.Country,
		PartyCreatedAt: m.PartyCreatedAt,
		PartyUpdatedAt: m.PartyUpdatedAt,
		PartyCreatedBy: m.PartyCreatedBy,
		PartyUpdatedBy: m.PartyUpdatedBy,
		CreatedAt:      m.CreatedAt,
	}
}

// PartyHistoryModelFromDomain builds a persistence model from a snapshot.
func PartyHistoryModelFromDomain(h *party.PartyHistory) *PartyHistoryModel {
	return &PartyHistoryModel{
		ID:             h.ID,
		PartyID:        h.PartyID,
		FirstName:      h.FirstName,
		MiddleName:     h.MiddleName,
		LastName:       h.LastName,
		Email:          h.Email,
		PhoneNumber:    h.PhoneNumber,
		StreetOne:      h.StreetOne,
		StreetTwo:      h.StreetTwo,
		City:           h.City,
		State:          h.State,
		PostalCode:     h.PostalCode,
		Country:        h.Country,
		PartyCreatedAt: h.PartyCreatedAt,
		PartyUpdatedAt: h.PartyUpdatedAt,
		PartyCreatedBy: h.PartyCreatedBy,
		PartyUpdatedBy: h.PartyUpdatedBy,
		CreatedAt:      h.CreatedAt,
	}
}
