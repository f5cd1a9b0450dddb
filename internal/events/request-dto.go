package events

import "time"

type CreateEventRequest struct {
	TenantID    string    `json:"tenant_id" binding:"required,uuid"`
	VenueID     string    `json:"venue_id" binding:"required,uuid"`
	Name        string    `json:"name" binding:"required,min=2,max=255"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"starts_at" binding:"required"`
	EndsAt      time.Time `json:"ends_at"`
}

type UpdateEventRequest struct {
	Name        *string    `json:"name" binding:"omitempty,min=2,max=255"`
	Description *string    `json:"description"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	Status      *string    `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED CANCELLED"`
}
