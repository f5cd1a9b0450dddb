package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds indexes the hot reservation queries depend on that
// AutoMigrate does not express.
func MigrateConstraints(db *gorm.DB) error {
	// Active-hold reads filter by event and expiry on every availability
	// request and inside every hold transaction.
	err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_seat_holds_event_expiry
		ON seat_holds (event_id, expires_at);
	`).Error
	if err != nil {
		return err
	}

	// Sold-seat reads join tickets to their block by event.
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_tickets_block_status
		ON tickets (block_id, status);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
