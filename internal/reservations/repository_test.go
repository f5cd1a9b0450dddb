package reservations_test

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"seatgrid/internal/inventory"
	"seatgrid/internal/reservations"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// The uuid column defaults are postgres expressions, so the table is
	// created directly here.
	require.NoError(t, db.Exec(`CREATE TABLE seat_holds (
		id TEXT PRIMARY KEY,
		hold_id TEXT NOT NULL,
		event_id TEXT NOT NULL,
		seat_id TEXT NOT NULL,
		holder_id TEXT NOT NULL,
		status TEXT NOT NULL,
		expires_at DATETIME NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	)`).Error)

	return db
}

func seedHold(t *testing.T, db *gorm.DB, holdID, eventID uuid.UUID, seatID string, status inventory.HoldStatus) {
	t.Helper()

	row := inventory.SeatHold{
		ID:        uuid.New(),
		HoldID:    holdID,
		EventID:   eventID,
		SeatID:    seatID,
		HolderID:  "holder-1",
		Status:    status,
		ExpiresAt: time.Now().UTC().Add(5 * time.Minute),
	}
	require.NoError(t, db.Create(&row).Error)
}

func countHolds(t *testing.T, db *gorm.DB, holdID uuid.UUID, status inventory.HoldStatus) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(&inventory.SeatHold{}).
		Where("hold_id = ? AND status = ?", holdID, status).
		Count(&n).Error)
	return n
}

func TestDeleteHoldRemovesOnlyReservedRows(t *testing.T) {
	db := setupTestDB(t)
	repo := reservations.NewRepository(db)

	holdID := uuid.New()
	eventID := uuid.New()
	seedHold(t, db, holdID, eventID, "orchestra-A1", inventory.HoldStatusReserved)
	seedHold(t, db, holdID, eventID, "orchestra-A2", inventory.HoldStatusReserved)
	seedHold(t, db, holdID, eventID, "orchestra-A3", inventory.HoldStatusConfirmed)
	seedHold(t, db, holdID, eventID, "orchestra-A4", inventory.HoldStatusSold)

	released, gotEventID, err := repo.DeleteHold(context.Background(), holdID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), released)
	assert.Equal(t, eventID, gotEventID)

	// The sales flow's rows survive the release untouched.
	assert.Equal(t, int64(0), countHolds(t, db, holdID, inventory.HoldStatusReserved))
	assert.Equal(t, int64(1), countHolds(t, db, holdID, inventory.HoldStatusConfirmed))
	assert.Equal(t, int64(1), countHolds(t, db, holdID, inventory.HoldStatusSold))
}

func TestDeleteHoldAfterSaleLeavesSoldRecord(t *testing.T) {
	db := setupTestDB(t)
	repo := reservations.NewRepository(db)

	holdID := uuid.New()
	eventID := uuid.New()
	seedHold(t, db, holdID, eventID, "orchestra-A1", inventory.HoldStatusSold)

	released, _, err := repo.DeleteHold(context.Background(), holdID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), released, "a fully sold hold has nothing left to release")
	assert.Equal(t, int64(1), countHolds(t, db, holdID, inventory.HoldStatusSold))
}

func TestDeleteHoldIsIdempotentAgainstRealRows(t *testing.T) {
	db := setupTestDB(t)
	repo := reservations.NewRepository(db)

	holdID := uuid.New()
	eventID := uuid.New()
	seedHold(t, db, holdID, eventID, "orchestra-A1", inventory.HoldStatusReserved)

	released, _, err := repo.DeleteHold(context.Background(), holdID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), released)

	released, gotEventID, err := repo.DeleteHold(context.Background(), holdID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), released)
	assert.Equal(t, uuid.Nil, gotEventID)
}

func TestDeleteHoldUnknownID(t *testing.T) {
	db := setupTestDB(t)
	repo := reservations.NewRepository(db)

	released, gotEventID, err := repo.DeleteHold(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(0), released)
	assert.Equal(t, uuid.Nil, gotEventID)
}

func TestInsertHoldsPersistsRows(t *testing.T) {
	db := setupTestDB(t)
	repo := reservations.NewRepository(db)

	holdID := uuid.New()
	eventID := uuid.New()
	expires := time.Now().UTC().Add(5 * time.Minute)

	rows := []inventory.SeatHold{
		{ID: uuid.New(), HoldID: holdID, EventID: eventID, SeatID: "orchestra-A1", HolderID: "holder-1", Status: inventory.HoldStatusReserved, ExpiresAt: expires},
		{ID: uuid.New(), HoldID: holdID, EventID: eventID, SeatID: "orchestra-A2", HolderID: "holder-1", Status: inventory.HoldStatusReserved, ExpiresAt: expires},
	}
	require.NoError(t, repo.InsertHolds(context.Background(), rows))

	assert.Equal(t, int64(2), countHolds(t, db, holdID, inventory.HoldStatusReserved))
}
