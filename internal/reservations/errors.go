package reservations

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrNoHolder        = errors.New("holder id is required")
	ErrNoSeats         = errors.New("at least one seat is required")
	ErrDuplicateSeats  = errors.New("seat list contains duplicates")
	ErrInvalidDuration = errors.New("hold duration must be positive")
)

// ConflictError rejects a hold attempt because some of the requested seats
// are already sold or actively held. It always carries the full conflicting
// list, not just the first seat found.
type ConflictError struct {
	Seats []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("seats unavailable: %s", strings.Join(e.Seats, ", "))
}

// AsConflict unwraps a ConflictError if the chain contains one.
func AsConflict(err error) (*ConflictError, bool) {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		return conflict, true
	}
	return nil, false
}
