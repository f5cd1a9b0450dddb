package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Snapshot bundles one read pass over the three inventory sources. The
// resolver treats it as a single consistent view; sources are never
// re-queried mid-resolution.
type Snapshot struct {
	BlockSoldSeats    []string
	IndividualTickets []IndividualTicket
	Holds             []SeatHold
}

// HeldSeat is an active hold projected onto a single seat.
type HeldSeat struct {
	SeatID    string    `json:"seat_id"`
	HolderID  string    `json:"holder_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LoadSnapshot queries all three sources once for the event. Any source
// failure aborts the whole load.
func LoadSnapshot(ctx context.Context, src Source, eventID uuid.UUID, now time.Time) (Snapshot, error) {
	blockSold, err := src.SoldSeatsFromBlocks(ctx, eventID)
	if err != nil {
		return Snapshot{}, err
	}

	individual, err := src.IndividualTicketsByEvent(ctx, eventID)
	if err != nil {
		return Snapshot{}, err
	}

	holds, err := src.ActiveHoldsByEvent(ctx, eventID, now)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		BlockSoldSeats:    blockSold,
		IndividualTickets: individual,
		Holds:             holds,
	}, nil
}

// Resolve merges a snapshot into one decision per seat. Sold status always
// takes precedence over a lingering hold record, so the returned sets are
// disjoint by construction. Holds already expired at `now` are skipped even
// if the adapter let them through (lazy expiry is re-checked at merge time).
// Idempotent and order-independent for the final sets.
func Resolve(snapshot Snapshot, now time.Time) (sold map[string]struct{}, held []HeldSeat) {
	sold = make(map[string]struct{})

	for _, seatID := range snapshot.BlockSoldSeats {
		sold[seatID] = struct{}{}
	}

	for _, ticket := range snapshot.IndividualTickets {
		if ticket.Status == TicketStatusSold {
			sold[ticket.SeatID] = struct{}{}
		}
	}

	// Holds with status SOLD count as sold before held seats are collected,
	// so a RESERVED hold on a seat some other record sold never surfaces.
	for _, hold := range snapshot.Holds {
		if !hold.Active(now) {
			continue
		}
		if hold.Status == HoldStatusSold {
			sold[hold.SeatID] = struct{}{}
		}
	}

	seen := make(map[string]struct{})
	for _, hold := range snapshot.Holds {
		if !hold.Active(now) {
			continue
		}
		if hold.Status != HoldStatusReserved && hold.Status != HoldStatusConfirmed {
			continue
		}
		if _, isSold := sold[hold.SeatID]; isSold {
			continue
		}
		if _, dup := seen[hold.SeatID]; dup {
			continue
		}
		seen[hold.SeatID] = struct{}{}
		held = append(held, HeldSeat{
			SeatID:    hold.SeatID,
			HolderID:  hold.HolderID,
			ExpiresAt: hold.ExpiresAt,
		})
	}

	return sold, held
}

// HeldSeatSet projects a held list down to its seat ids.
func HeldSeatSet(held []HeldSeat) map[string]struct{} {
	set := make(map[string]struct{}, len(held))
	for _, h := range held {
		set[h.SeatID] = struct{}{}
	}
	return set
}
