package persistence

import (
	"context"
	"errors"

	"github.com/partysvc/backend/internal/domain/party"
	"github.com/partysvc/backend/internal/domain/shared"
	"github.com/partysvc/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAddressRepository implements party.AddressRepository using GORM
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GormAddressRepository
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// FindByID finds an address by its ID
func (r *GormAddressRepository) FindByID(ctx context.Context, id int64) (*party.Address, error) {
	var model models.AddressModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByFingerprint finds an address by its content fingerprint
func (r *GormAddressRepository) FindByFingerprint(ctx context.Context, fingerprint string) (*party.Address, error) {
	var model models.AddressModel
	if err := r.db.WithContext(ctx).
		Where("fingerprint = ?", fingerprint).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// Create inserts the address. A concurrent insert of the same fingerprint
// surfaces as shared.ErrAlreadyExists through the unique constraint. The
// insert runs in a nested transaction, which GORM issues as a savepoint when
// an enclosing transaction is open, so a unique violation rolls back only
// the failed insert and the enclosing transaction stays usable for the
// fallback lookup.
func (r *GormAddressRepository) Create(ctx context.Context, a *party.Address) error {
	model := models.AddressModelFromDomain(a)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(model).Error
	})
	if err != nil {
		return translateError(translateDuplicateKey(err))
	}
	a.ID = model.ID
	return nil
}

// Ensure GormAddressRepository implements AddressRepository
var _ party.AddressRepository = (*GormAddressRepository)(nil)
