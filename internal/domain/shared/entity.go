package shared

import "time"

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() int64
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
}

// AuditedEntity provides the common identity and audit fields shared by
// every row in the party schema. IDs are assigned by the store on insert;
// a zero ID marks a not-yet-persisted entity.
type AuditedEntity struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy string
	UpdatedBy string
}

// GetID returns the entity ID
func (e *AuditedEntity) GetID() int64 {
	return e.ID
}

// GetCreatedAt returns the creation timestamp
func (e *AuditedEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// GetUpdatedAt returns the last update timestamp
func (e *AuditedEntity) GetUpdatedAt() time.Time {
	return e.UpdatedAt
}

// NewAuditedEntity creates audit fields stamped with the given actor and time.
func NewAuditedEntity(actor string, at time.Time) AuditedEntity {
	return AuditedEntity{
		CreatedAt: at,
		UpdatedAt: at,
		CreatedBy: actor,
		UpdatedBy: actor,
	}
}
