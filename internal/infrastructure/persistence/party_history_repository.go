package persistence

import (
	"context"

	"github.com/partysvc/backend/internal/domain/party"
	"github.com/partysvc/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPartyHistoryRepository implements party.PartyHistoryRepository using GORM.
// The table is append-only; this repository exposes no update or delete.
type GormPartyHistoryRepository struct {
	db *gorm.DB
}

// NewGormPartyHistoryRepository creates a new GormPartyHistoryRepository
func NewGormPartyHistoryRepository(db *gorm.DB) *GormPartyHistoryRepository {
	return &GormPartyHistoryRepository{db: db}
}

// Append inserts a history snapshot
func (r *GormPartyHistoryRepository) Append(ctx context.Context, h *party.PartyHistory) error {
	model := models.PartyHistoryModelFromDomain(h)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err)
	}
	h.ID = model.ID
	return nil
}

// FindByPartyID lists snapshots for a party, oldest first
func (r *GormPartyHistoryRepository) FindByPartyID(ctx context.Context, partyID int64) ([]party.PartyHistory, error) {
	var historyModels []models.PartyHistoryModel
	if err := r.db.WithContext(ctx).
		Where("party_id = ?", partyID).
		Order("id ASC").
		Find(&historyModels).Error; err != nil {
		return nil, translateError(err)
	}

	items := make([]party.PartyHistory, len(historyModels))
	for i, model := range historyModels {
		items[i] = *model.ToDomain()
	}
	return items, nil
}

// Ensure GormPartyHistoryRepository implements PartyHistoryRepository
var _ party.PartyHistoryRepository = (*GormPartyHistoryRepository)(nil)
