package constants

import (
	"fmt"
	"time"
)

// Redis cache keys and TTLs.
// Pattern: seatgrid:{module}:{operation}:{identifier}

// Semi-static data
const (
	TTL_VENUE_LAYOUT = 4 * time.Hour // synthesized layouts are deterministic
)

// Highly dynamic data (live availability changes with every hold)
const (
	TTL_EVENT_SEAT_MAP = 30 * time.Second
)

const (
	CACHE_KEY_VENUE_LAYOUT   = "seatgrid:venues:layout:"
	CACHE_KEY_EVENT_SEAT_MAP = "seatgrid:availability:event:"
)

// BuildVenueLayoutKey returns the cache key for a venue's layout.
func BuildVenueLayoutKey(venueID string) string {
	return fmt.Sprintf("%s%s", CACHE_KEY_VENUE_LAYOUT, venueID)
}

// BuildEventSeatMapKey returns the cache key for an event's live seat map.
func BuildEventSeatMapKey(eventID string) string {
	return fmt.Sprintf("%s%s", CACHE_KEY_EVENT_SEAT_MAP, eventID)
}
