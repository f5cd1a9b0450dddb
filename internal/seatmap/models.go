package seatmap

// SeatType classifies a seat within a section.
type SeatType string

const (
	SeatTypeRegular SeatType = "REGULAR"
)

// Layout is the section -> row -> seat tree describing a venue's seating.
// It is synthesized on demand and immutable within a request; the per-seat
// availability flags are presentation-only and recomputed on every read.
type Layout struct {
	VenueName  string    `json:"venue_name"`
	TotalSeats int       `json:"total_seats"`
	Sections   []Section `json:"sections"`
}

type Section struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Rows  []Row   `json:"rows"`
}

type Row struct {
	Label string `json:"label"`
	Seats []Seat `json:"seats"`
}

type Seat struct {
	ID          string   `json:"id"` // composite: {section-id}-{rowLabel}{seatNumber}
	Row         string   `json:"row"`
	Number      int      `json:"number"`
	Section     string   `json:"section"`
	Type        SeatType `json:"type"`
	Price       float64  `json:"price"`
	IsAvailable bool     `json:"is_available"`
	IsReserved  bool     `json:"is_reserved"`
}

// SeatIDs returns every seat id in the layout in section/row order.
func (l *Layout) SeatIDs() []string {
	ids := make([]string, 0, l.TotalSeats)
	for _, section := range l.Sections {
		for _, row := range section.Rows {
			for _, seat := range row.Seats {
				ids = append(ids, seat.ID)
			}
		}
	}
	return ids
}
