package events

import (
	"time"

	"github.com/google/uuid"
)

type EventStatus string

const (
	StatusDraft     EventStatus = "DRAFT"
	StatusPublished EventStatus = "PUBLISHED"
	StatusCancelled EventStatus = "CANCELLED"
)

func (s EventStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusCancelled:
		return true
	}
	return false
}

// Event is a scheduled performance at a venue. Hold creation locks this row
// to serialize concurrent reservation attempts for the same event.
type Event struct {
	ID          uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TenantID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"tenant_id"`
	VenueID     uuid.UUID   `gorm:"type:uuid;not null;index" json:"venue_id"`
	Name        string      `gorm:"not null;size:255" json:"name"`
	Description string      `gorm:"type:text" json:"description"`
	StartsAt    time.Time   `gorm:"not null" json:"starts_at"`
	EndsAt      time.Time   `json:"ends_at"`
	Status      EventStatus `gorm:"not null;default:'DRAFT';size:20" json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}
