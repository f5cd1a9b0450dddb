package seatmap

import "fmt"

// Section split and pricing for synthesized layouts. 70% of capacity goes to
// the orchestra, the remainder to the balcony.
const (
	seatsPerRow    = 10
	orchestraShare = 7 // out of 10

	orchestraPrice = 100.0
	balconyPrice   = 60.0
)

// DefaultCapacity is used when a venue has no capacity recorded.
const DefaultCapacity = 100

// Build deterministically synthesizes a seating layout for a venue that has
// no persisted layout. Same capacity always yields the same layout. A
// non-positive capacity falls back to DefaultCapacity, same as a venue with
// no capacity recorded.
func Build(capacity int, venueName string) Layout {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	// Integer ceil so small venues collapse to a single orchestra section
	// (the balcony is omitted when its share rounds to zero).
	orchestraSeats := (capacity*orchestraShare + 9) / 10
	balconySeats := capacity - orchestraSeats

	sections := []Section{
		buildSection("orchestra", "Orchestra", orchestraSeats, orchestraPrice),
	}
	if balconySeats > 0 {
		sections = append(sections, buildSection("balcony", "Balcony", balconySeats, balconyPrice))
	}

	return Layout{
		VenueName:  venueName,
		TotalSeats: capacity,
		Sections:   sections,
	}
}

func buildSection(id, name string, seatCount int, price float64) Section {
	section := Section{
		ID:    id,
		Name:  name,
		Price: price,
	}

	for placed := 0; placed < seatCount; {
		label := rowLabel(len(section.Rows))
		row := Row{Label: label}

		for n := 1; n <= seatsPerRow && placed < seatCount; n++ {
			row.Seats = append(row.Seats, Seat{
				ID:          fmt.Sprintf("%s-%s%d", id, label, n),
				Row:         label,
				Number:      n,
				Section:     name,
				Type:        SeatTypeRegular,
				Price:       price,
				IsAvailable: true,
				IsReserved:  false,
			})
			placed++
		}

		section.Rows = append(section.Rows, row)
	}

	return section
}

// rowLabel produces A..Z, then AA, AB, ... for sections deeper than 26 rows.
func rowLabel(index int) string {
	label := ""
	for {
		label = string(rune('A'+index%26)) + label
		index = index/26 - 1
		if index < 0 {
			break
		}
	}
	return label
}
