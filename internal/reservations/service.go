package reservations

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"seatgrid/internal/inventory"
	"seatgrid/internal/shared/clock"
	"seatgrid/internal/shared/config"
	"seatgrid/internal/shared/constants"
	"seatgrid/pkg/cache"
	"seatgrid/pkg/logger"
)

// Publisher emits hold lifecycle events to the message broker. A nil
// Publisher disables publishing without touching the hold flow.
type Publisher interface {
	PublishHoldCreated(ctx context.Context, hold HoldResponse) error
	PublishHoldReleased(ctx context.Context, holdID string, seatsReleased int64) error
}

type Service interface {
	CreateHold(ctx context.Context, req CreateHoldRequest) (*HoldResponse, error)
	ReleaseHold(ctx context.Context, holdID uuid.UUID) (*ReleaseHoldResponse, error)
}

type service struct {
	repo      Repository
	cfg       *config.Config
	clk       clock.Clock
	cache     cache.Service
	publisher Publisher
	log       *logger.Logger
}

func NewService(repo Repository, cfg *config.Config, clk clock.Clock, cacheService cache.Service, publisher Publisher) Service {
	return &service{
		repo:      repo,
		cfg:       cfg,
		clk:       clk,
		cache:     cacheService,
		publisher: publisher,
		log:       logger.GetDefault(),
	}
}

// CreateHold reserves all requested seats or none of them. Inside one
// transaction the event row is locked FOR UPDATE, a fresh inventory snapshot
// is resolved under that lock, and every requested seat must be neither sold
// nor actively held. On any conflict the transaction writes nothing and the
// error names every conflicting seat.
func (s *service) CreateHold(ctx context.Context, req CreateHoldRequest) (*HoldResponse, error) {
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, fmt.Errorf("invalid event id: %w", err)
	}
	if req.HolderID == "" {
		return nil, ErrNoHolder
	}
	if len(req.SeatIDs) == 0 {
		return nil, ErrNoSeats
	}
	if max := s.cfg.Holds.MaxSeatsPerHold; max > 0 && len(req.SeatIDs) > max {
		return nil, fmt.Errorf("a hold may cover at most %d seats", max)
	}
	seen := make(map[string]struct{}, len(req.SeatIDs))
	for _, seatID := range req.SeatIDs {
		if seatID == "" {
			return nil, ErrNoSeats
		}
		if _, dup := seen[seatID]; dup {
			return nil, ErrDuplicateSeats
		}
		seen[seatID] = struct{}{}
	}

	duration := s.cfg.Holds.DefaultDuration
	if req.DurationSeconds > 0 {
		duration = time.Duration(req.DurationSeconds) * time.Second
	}
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}

	now := s.clk.Now()
	expiresAt := now.Add(duration)
	holdID := uuid.New()

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.LockEvent(ctx, eventID); err != nil {
			return err
		}

		snapshot, err := tx.Snapshot(ctx, eventID, now)
		if err != nil {
			s.log.LogInventoryReadFailed(ctx, eventID.String(), "hold snapshot", err)
			return err
		}

		sold, held := inventory.Resolve(snapshot, now)
		heldSet := inventory.HeldSeatSet(held)

		var conflicts []string
		for _, seatID := range req.SeatIDs {
			if _, isSold := sold[seatID]; isSold {
				conflicts = append(conflicts, seatID)
				continue
			}
			if _, isHeld := heldSet[seatID]; isHeld {
				conflicts = append(conflicts, seatID)
			}
		}
		if len(conflicts) > 0 {
			sort.Strings(conflicts)
			return &ConflictError{Seats: conflicts}
		}

		rows := make([]inventory.SeatHold, 0, len(req.SeatIDs))
		for _, seatID := range req.SeatIDs {
			rows = append(rows, inventory.SeatHold{
				HoldID:    holdID,
				EventID:   eventID,
				SeatID:    seatID,
				HolderID:  req.HolderID,
				Status:    inventory.HoldStatusReserved,
				ExpiresAt: expiresAt,
			})
		}
		return tx.InsertHolds(ctx, rows)
	})
	if err != nil {
		if conflict, ok := AsConflict(err); ok {
			s.log.LogHoldConflict(ctx, eventID.String(), conflict.Seats)
		}
		return nil, err
	}

	resp := &HoldResponse{
		HoldID:    holdID.String(),
		EventID:   eventID.String(),
		HolderID:  req.HolderID,
		SeatIDs:   req.SeatIDs,
		Status:    inventory.HoldStatusReserved.String(),
		ExpiresAt: expiresAt,
	}

	s.log.LogHoldCreated(ctx, resp.HoldID, resp.EventID, len(resp.SeatIDs))
	s.invalidateSeatMapCache(ctx, eventID)
	if s.publisher != nil {
		if err := s.publisher.PublishHoldCreated(ctx, *resp); err != nil {
			s.log.WithError(err).Warn("failed to publish hold created event", "hold_id", resp.HoldID)
		}
	}
	return resp, nil
}

// ReleaseHold deletes every seat row for the hold id. Releasing an unknown or
// already released hold succeeds with zero seats released.
func (s *service) ReleaseHold(ctx context.Context, holdID uuid.UUID) (*ReleaseHoldResponse, error) {
	var released int64
	var eventID uuid.UUID

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		n, evID, err := tx.DeleteHold(ctx, holdID)
		if err != nil {
			return err
		}
		released = n
		eventID = evID
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.LogHoldReleased(ctx, holdID.String(), released)
	if released > 0 && eventID != uuid.Nil {
		s.invalidateSeatMapCache(ctx, eventID)
	}
	if s.publisher != nil {
		if err := s.publisher.PublishHoldReleased(ctx, holdID.String(), released); err != nil {
			s.log.WithError(err).Warn("failed to publish hold released event", "hold_id", holdID.String())
		}
	}
	return &ReleaseHoldResponse{HoldID: holdID.String(), SeatsReleased: released}, nil
}

func (s *service) invalidateSeatMapCache(ctx context.Context, eventID uuid.UUID) {
	if s.cache == nil {
		return
	}
	key := constants.BuildEventSeatMapKey(eventID.String())
	if err := s.cache.Delete(ctx, key); err != nil {
		s.log.WithError(err).Warn("failed to invalidate event seat map cache", "event_id", eventID.String())
	}
}
