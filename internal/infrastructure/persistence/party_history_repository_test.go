package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/partysvc/backend/internal/domain/party"
	"github.com/partysvc/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newHistoryTestRepository(t *testing.T) *GormPartyHistoryRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.PartyHistoryModel{}))
	return NewGormPartyHistoryRepository(db)
}

func historySnapshot(partyID int64, email string, at time.Time) *party.PartyHistory {
	return &party.PartyHistory{
		PartyID:        partyID,
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          email,
		PhoneNumber:    "2175551234",
		StreetOne:      "123 Main St",
		City:           "Springfield",
		State:          "IL",
		PostalCode:     "62704",
		Country:        "USA",
		PartyCreatedAt: at,
		PartyUpdatedAt: at,
		PartyCreatedBy: "tester",
		PartyUpdatedBy: "tester",
		CreatedAt:      at,
	}
}

func TestGormPartyHistoryRepository_Append(t *testing.T) {
	repo := newHistoryTestRepository(t)
	ctx := context.Background()
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	h := historySnapshot(42, "ada@example.com", at)
	require.NoError(t, repo.Append(ctx, h))

	// The generated ID must flow back to the caller.
	assert.NotZero(t, h.ID)
}

func TestGormPartyHistoryRepository_FindByPartyID(t *testing.T) {
	repo := newHistoryTestRepository(t)
	ctx := context.Background()
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Append(ctx, historySnapshot(42, "ada@example.com", at)))
	require.NoError(t, repo.Append(ctx, historySnapshot(42, "ada@newmail.com", at.Add(time.Hour))))
	require.NoError(t, repo.Append(ctx, historySnapshot(99, "other@example.com", at)))

	t.Run("returns snapshots oldest first", func(t *testing.T) {
		items, err := repo.FindByPartyID(ctx, 42)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "ada@example.com", items[0].Email)
		assert.Equal(t, "ada@newmail.com", items[1].Email)
		assert.Less(t, items[0].ID, items[1].ID)
	})

	t.Run("returns empty slice for unknown party", func(t *testing.T) {
		items, err := repo.FindByPartyID(ctx, 1000)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}
