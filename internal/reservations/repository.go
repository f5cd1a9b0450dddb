package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"seatgrid/internal/events"
	"seatgrid/internal/inventory"
)

// Repository is the transactional surface for hold writes. Transaction hands
// the callback a Repository bound to the transaction, so every call inside
// the callback shares one database transaction.
type Repository interface {
	Transaction(ctx context.Context, fn func(tx Repository) error) error
	LockEvent(ctx context.Context, eventID uuid.UUID) (*events.Event, error)
	Snapshot(ctx context.Context, eventID uuid.UUID, now time.Time) (inventory.Snapshot, error)
	InsertHolds(ctx context.Context, holds []inventory.SeatHold) error
	DeleteHold(ctx context.Context, holdID uuid.UUID) (int64, uuid.UUID, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Transaction(ctx context.Context, fn func(tx Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repository{db: tx})
	})
}

// LockEvent takes a row lock on the event with SELECT ... FOR UPDATE. Every
// hold creation for an event locks this row first, so concurrent attempts on
// the same event serialize and each sees the previous attempt's rows.
func (r *repository) LockEvent(ctx context.Context, eventID uuid.UUID) (*events.Event, error) {
	var event events.Event
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&event, "id = ?", eventID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to lock event: %w", err)
	}
	return &event, nil
}

func (r *repository) Snapshot(ctx context.Context, eventID uuid.UUID, now time.Time) (inventory.Snapshot, error) {
	return inventory.LoadSnapshot(ctx, inventory.NewRepository(r.db), eventID, now)
}

func (r *repository) InsertHolds(ctx context.Context, holds []inventory.SeatHold) error {
	if err := r.db.WithContext(ctx).Create(&holds).Error; err != nil {
		return fmt.Errorf("failed to insert seat holds: %w", err)
	}
	return nil
}

// DeleteHold removes the RESERVED rows sharing the hold id and reports how
// many rows went away, plus the event they belonged to so callers can
// invalidate derived caches. Rows the sales flow has advanced to CONFIRMED
// or SOLD are never touched; a seat's sold record must survive a release.
// Zero rows is not an error; release is idempotent.
func (r *repository) DeleteHold(ctx context.Context, holdID uuid.UUID) (int64, uuid.UUID, error) {
	var hold inventory.SeatHold
	err := r.db.WithContext(ctx).Select("event_id").
		Where("hold_id = ? AND status = ?", holdID, inventory.HoldStatusReserved).
		Take(&hold).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, uuid.Nil, nil
		}
		return 0, uuid.Nil, fmt.Errorf("failed to look up seat holds: %w", err)
	}

	res := r.db.WithContext(ctx).
		Where("hold_id = ? AND status = ?", holdID, inventory.HoldStatusReserved).
		Delete(&inventory.SeatHold{})
	if res.Error != nil {
		return 0, uuid.Nil, fmt.Errorf("failed to delete seat holds: %w", res.Error)
	}
	return res.RowsAffected, hold.EventID, nil
}
