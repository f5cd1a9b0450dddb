package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Source exposes the three independent inventory reads for one event. A
// datastore failure on any read must surface as an error; reporting "no rows"
// in place of an outage would present sold seats as free.
type Source interface {
	SoldSeatsFromBlocks(ctx context.Context, eventID uuid.UUID) ([]string, error)
	IndividualTicketsByEvent(ctx context.Context, eventID uuid.UUID) ([]IndividualTicket, error)
	ActiveHoldsByEvent(ctx context.Context, eventID uuid.UUID, now time.Time) ([]SeatHold, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a Source backed by the given gorm handle. Passing a
// transaction handle scopes all three reads to that transaction.
func NewRepository(db *gorm.DB) Source {
	return &repository{db: db}
}

func (r *repository) SoldSeatsFromBlocks(ctx context.Context, eventID uuid.UUID) ([]string, error) {
	var seatIDs []string
	err := r.db.WithContext(ctx).
		Table("tickets t").
		Joins("JOIN ticket_blocks tb ON tb.id = t.block_id").
		Where("tb.event_id = ? AND t.status = ?", eventID, TicketStatusSold).
		Pluck("t.seat_id", &seatIDs).Error
	if err != nil {
		return nil, fmt.Errorf("ticket block source: %w", err)
	}
	return seatIDs, nil
}

func (r *repository) IndividualTicketsByEvent(ctx context.Context, eventID uuid.UUID) ([]IndividualTicket, error) {
	var tickets []IndividualTicket
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND status IN ?", eventID,
			[]TicketStatus{TicketStatusSold, TicketStatusReserved}).
		Find(&tickets).Error
	if err != nil {
		return nil, fmt.Errorf("individual ticket source: %w", err)
	}
	return tickets, nil
}

func (r *repository) ActiveHoldsByEvent(ctx context.Context, eventID uuid.UUID, now time.Time) ([]SeatHold, error) {
	var holds []SeatHold
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND status IN ? AND expires_at > ?", eventID,
			[]HoldStatus{HoldStatusReserved, HoldStatusConfirmed, HoldStatusSold}, now).
		Find(&holds).Error
	if err != nil {
		return nil, fmt.Errorf("seat hold source: %w", err)
	}
	return holds, nil
}
