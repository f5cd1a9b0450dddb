package main

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"seatgrid/internal/events"
	"seatgrid/internal/inventory"
	"seatgrid/internal/shared/config"
	"seatgrid/internal/shared/database"
	"seatgrid/internal/tenants"
	"seatgrid/internal/venues"
)

// Seeds a demo tenant with one venue, one published event, and a spread of
// inventory: a sold ticket block, individual tickets, and an active hold.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	cfg := config.Load()
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("failed to initialize databases: %v", err)
	}
	defer db.Close()

	pg := db.PostgreSQL

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-api-key"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash api key: %v", err)
	}
	tenant := tenants.Tenant{
		Name:         "Demo Productions",
		ContactEmail: "ops@demo-productions.test",
		APIKeyHash:   string(hash),
		Active:       true,
	}
	if err := pg.Create(&tenant).Error; err != nil {
		log.Fatalf("failed to seed tenant: %v", err)
	}

	capacity := 100
	venue := venues.Venue{
		TenantID: tenant.ID,
		Name:     "Grand Hall",
		Address:  "1 Theater Row",
		Capacity: &capacity,
	}
	if err := pg.Create(&venue).Error; err != nil {
		log.Fatalf("failed to seed venue: %v", err)
	}

	event := events.Event{
		TenantID:    tenant.ID,
		VenueID:     venue.ID,
		Name:        "Opening Night",
		Description: "Season opener at the Grand Hall",
		StartsAt:    time.Now().UTC().Add(30 * 24 * time.Hour),
		Status:      events.StatusPublished,
	}
	if err := pg.Create(&event).Error; err != nil {
		log.Fatalf("failed to seed event: %v", err)
	}

	// A sold block covering the first orchestra row.
	block := inventory.TicketBlock{
		EventID: event.ID,
		Label:   "Season subscribers",
	}
	if err := pg.Create(&block).Error; err != nil {
		log.Fatalf("failed to seed ticket block: %v", err)
	}
	for n := 1; n <= 10; n++ {
		ticket := inventory.Ticket{
			BlockID: block.ID,
			SeatID:  fmt.Sprintf("orchestra-A%d", n),
			Status:  inventory.TicketStatusSold,
		}
		if err := pg.Create(&ticket).Error; err != nil {
			log.Fatalf("failed to seed ticket: %v", err)
		}
	}

	// A few individually sold seats in the balcony.
	for n := 1; n <= 3; n++ {
		ticket := inventory.IndividualTicket{
			EventID: event.ID,
			SeatID:  fmt.Sprintf("balcony-A%d", n),
			Status:  inventory.TicketStatusSold,
		}
		if err := pg.Create(&ticket).Error; err != nil {
			log.Fatalf("failed to seed individual ticket: %v", err)
		}
	}

	// One active hold on two orchestra seats.
	holdID := uuid.New()
	expires := time.Now().UTC().Add(5 * time.Minute)
	for n := 1; n <= 2; n++ {
		hold := inventory.SeatHold{
			HoldID:    holdID,
			EventID:   event.ID,
			SeatID:    fmt.Sprintf("orchestra-B%d", n),
			HolderID:  "seed-holder",
			Status:    inventory.HoldStatusReserved,
			ExpiresAt: expires,
		}
		if err := pg.Create(&hold).Error; err != nil {
			log.Fatalf("failed to seed seat hold: %v", err)
		}
	}

	log.Printf("seeded tenant=%s venue=%s event=%s hold=%s", tenant.ID, venue.ID, event.ID, holdID)
}
