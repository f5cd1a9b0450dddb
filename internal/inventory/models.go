package inventory

import (
	"time"

	"github.com/google/uuid"
)

// TicketBlock is a grouped issuance: a batch of tickets pre-assigned to seats
// for one event. Written by the external sales flow, read-only here.
type TicketBlock struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EventID   uuid.UUID `gorm:"type:uuid;index;not null" json:"event_id"`
	Label     string    `gorm:"size:255" json:"label"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Tickets []Ticket `json:"tickets,omitempty" gorm:"foreignKey:BlockID;constraint:OnDelete:CASCADE;"`
}

// Ticket is one seat assignment inside a TicketBlock.
type Ticket struct {
	ID        uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BlockID   uuid.UUID    `gorm:"type:uuid;index;not null" json:"block_id"`
	SeatID    string       `gorm:"not null;size:64" json:"seat_id"`
	Status    TicketStatus `gorm:"type:varchar(20);not null;default:'AVAILABLE'" json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// IndividualTicket is a ticket tracked outside the grouped-block mechanism,
// addressed directly by event. Written by the external sales flow.
type IndividualTicket struct {
	ID        uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EventID   uuid.UUID    `gorm:"type:uuid;index;not null;uniqueIndex:idx_individual_event_seat" json:"event_id"`
	SeatID    string       `gorm:"not null;size:64;uniqueIndex:idx_individual_event_seat" json:"seat_id"`
	Status    TicketStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// SeatHold is the reservation record: a time-bounded hold on one seat for one
// event. Expiration is lazy; rows are never swept, every read filters on
// expires_at > now. This is the only table this subsystem writes.
type SeatHold struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	HoldID    uuid.UUID  `gorm:"type:uuid;index;not null" json:"hold_id"`
	EventID   uuid.UUID  `gorm:"type:uuid;index;not null" json:"event_id"`
	SeatID    string     `gorm:"not null;size:64" json:"seat_id"`
	HolderID  string     `gorm:"not null;size:64" json:"holder_id"`
	Status    HoldStatus `gorm:"type:varchar(20);not null;default:'RESERVED'" json:"status"`
	ExpiresAt time.Time  `gorm:"not null;index" json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Active reports whether the hold still counts at the given instant.
func (h *SeatHold) Active(now time.Time) bool {
	return h.ExpiresAt.After(now)
}

func (TicketBlock) TableName() string {
	return "ticket_blocks"
}

func (Ticket) TableName() string {
	return "tickets"
}

func (IndividualTicket) TableName() string {
	return "individual_tickets"
}

func (SeatHold) TableName() string {
	return "seat_holds"
}
