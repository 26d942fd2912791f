package models

import (
	"time"

	"github.com/partysvc/backend/internal/domain/shared"
)

// AuditedModel provides common persistence fields for all models.
// It maps to the domain's AuditedEntity. Timestamps are stamped by the
// domain layer, not by GORM hooks, so the same values flow into history
// snapshots and responses.
type AuditedModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
	CreatedBy string    `gorm:"size:50;not null"`
	UpdatedBy string    `gorm:"size:50;not null"`
}

// ToDomain converts AuditedModel to domain AuditedEntity
func (m *AuditedModel) ToDomain() shared.AuditedEntity {
	return shared.AuditedEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		CreatedBy: m.CreatedBy,
		UpdatedBy: m.UpdatedBy,
	}
}

// FromDomainEntity populates AuditedModel from domain AuditedEntity
func (m *AuditedModel) FromDomainEntity(e shared.AuditedEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
	m.CreatedBy = e.CreatedBy
	m.UpdatedBy = e.UpdatedBy
}
