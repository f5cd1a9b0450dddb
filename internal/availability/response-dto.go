package availability

import (
	"time"

	"seatgrid/internal/seatmap"
)

// VenueSeatMapResponse is the layout of a venue with no event context, so
// every seat is reported available.
type VenueSeatMapResponse struct {
	VenueID    string         `json:"venue_id"`
	TotalSeats int            `json:"total_seats"`
	SeatMap    seatmap.Layout `json:"seat_map"`
}

// EventSeatMapResponse is the layout of an event's venue annotated with live
// availability. GeneratedAt is the instant the inventory snapshot was taken;
// cached responses keep the original timestamp.
type EventSeatMapResponse struct {
	EventID     string         `json:"event_id"`
	VenueID     string         `json:"venue_id"`
	TotalSeats  int            `json:"total_seats"`
	GeneratedAt time.Time      `json:"generated_at"`
	SeatMap     seatmap.Layout `json:"seat_map"`
}
