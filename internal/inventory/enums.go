package inventory

// TicketStatus covers both grouped-block tickets and individually tracked
// tickets. Closed enumeration so the resolver's precedence logic is checked
// at compile time rather than against open strings.
type TicketStatus string

const (
	TicketStatusSold      TicketStatus = "SOLD"
	TicketStatusReserved  TicketStatus = "RESERVED"
	TicketStatusAvailable TicketStatus = "AVAILABLE"
	TicketStatusCancelled TicketStatus = "CANCELLED"
)

func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusSold, TicketStatusReserved, TicketStatusAvailable, TicketStatusCancelled:
		return true
	}
	return false
}

func (s TicketStatus) String() string {
	return string(s)
}

// HoldStatus is the state of a SeatHold row. RESERVED moves to CONFIRMED and
// then SOLD through the external sales flow; nothing transitions out of SOLD.
type HoldStatus string

const (
	HoldStatusReserved  HoldStatus = "RESERVED"
	HoldStatusConfirmed HoldStatus = "CONFIRMED"
	HoldStatusSold      HoldStatus = "SOLD"
)

func (s HoldStatus) IsValid() bool {
	switch s {
	case HoldStatusReserved, HoldStatusConfirmed, HoldStatusSold:
		return true
	}
	return false
}

func (s HoldStatus) String() string {
	return string(s)
}

// BlocksSeat reports whether a hold in this status keeps the seat out of
// availability while the hold is active.
func (s HoldStatus) BlocksSeat() bool {
	return s == HoldStatusReserved || s == HoldStatusConfirmed || s == HoldStatusSold
}
