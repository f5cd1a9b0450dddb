package reservations

type CreateHoldRequest struct {
	EventID         string   `json:"event_id" binding:"required,uuid"`
	HolderID        string   `json:"holder_id" binding:"omitempty,max=64"`
	SeatIDs         []string `json:"seat_ids" binding:"required,min=1,dive,required,max=64,seatid"`
	DurationSeconds int      `json:"duration_seconds" binding:"omitempty,min=1,max=86400"`
}
