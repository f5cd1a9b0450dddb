package seatmap

// Present projects resolved inventory back onto a layout. It returns a deep
// copy with per-seat flags set: a seat is available iff it is neither sold
// nor held, and reserved iff it is held. Sold and held are expected to be
// disjoint (the resolver guarantees it); if they ever overlap, sold wins.
// The input layout is never mutated.
func Present(layout Layout, sold map[string]struct{}, held map[string]struct{}) Layout {
	out := Layout{
		VenueName:  layout.VenueName,
		TotalSeats: layout.TotalSeats,
		Sections:   make([]Section, len(layout.Sections)),
	}

	for i, section := range layout.Sections {
		outSection := Section{
			ID:    section.ID,
			Name:  section.Name,
			Price: section.Price,
			Rows:  make([]Row, len(section.Rows)),
		}

		for j, row := range section.Rows {
			outRow := Row{
				Label: row.Label,
				Seats: make([]Seat, len(row.Seats)),
			}

			for k, seat := range row.Seats {
				_, isSold := sold[seat.ID]
				_, isHeld := held[seat.ID]
				if isSold {
					isHeld = false
				}

				seat.IsAvailable = !isSold && !isHeld
				seat.IsReserved = isHeld
				outRow.Seats[k] = seat
			}

			outSection.Rows[j] = outRow
		}

		out.Sections[i] = outSection
	}

	return out
}
