package persistence

import (
	"context"
	"errors"

	"github.com/partysvc/backend/internal/domain/party"
	"github.com/partysvc/backend/internal/domain/shared"
	"github.com/partysvc/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPartyRepository implements party.PartyRepository using GORM
type GormPartyRepository struct {
	db *gorm.DB
}

// NewGormPartyRepository creates a new GormPartyRepository
func NewGormPartyRepository(db *gorm.DB) *GormPartyRepository {
	return &GormPartyRepository{db: db}
}

// FindByID finds a party by its ID, with its current address preloaded.
func (r *GormPartyRepository) FindByID(ctx context.Context, id int64) (*party.Party, error) {
	var model models.PartyModel
	if err := r.db.WithContext(ctx).
		Preload("Address").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// Create inserts the party. The generated ID is written back onto the
// domain entity before returning.
func (r *GormPartyRepository) Create(ctx context.Context, p *party.Party) error {
	model := models.PartyModelFromDomain(p)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err)
	}
	p.ID = model.ID
	return nil
}

// Update persists the party's mutable fields and address reference.
func (r *GormPartyRepository) Update(ctx context.Context, p *party.Party) error {
	model := models.PartyModelFromDomain(p)
	result := r.db.WithContext(ctx).
		Model(&models.PartyModel{}).
		Where("id = ?", p.ID).
		Select("first_name", "middle_name", "last_name", "email", "phone_number", "address_id", "updated_at", "updated_by").
		Updates(model)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormPartyRepository implements PartyRepository
var _ party.PartyRepository = (*GormPartyRepository)(nil)
