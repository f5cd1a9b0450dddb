package reservations

import "time"

// HoldResponse describes a successfully created hold. All seats in one hold
// share the same hold id and expiry.
type HoldResponse struct {
	HoldID    string    `json:"hold_id"`
	EventID   string    `json:"event_id"`
	HolderID  string    `json:"holder_id"`
	SeatIDs   []string  `json:"seat_ids"`
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ReleaseHoldResponse struct {
	HoldID        string `json:"hold_id"`
	SeatsReleased int64  `json:"seats_released"`
}
