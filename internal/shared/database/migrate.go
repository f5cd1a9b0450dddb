package database

import (
	"seatgrid/internal/events"
	"seatgrid/internal/inventory"
	"seatgrid/internal/tenants"
	"seatgrid/internal/venues"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&tenants.Tenant{},
		&venues.Venue{},
		&events.Event{},
		&inventory.TicketBlock{},
		&inventory.Ticket{},
		&inventory.IndividualTicket{},
		&inventory.SeatHold{},
	)
}
