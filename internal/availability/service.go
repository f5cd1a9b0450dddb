package availability

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"seatgrid/internal/events"
	"seatgrid/internal/inventory"
	"seatgrid/internal/seatmap"
	"seatgrid/internal/shared/clock"
	"seatgrid/internal/shared/constants"
	"seatgrid/internal/venues"
	"seatgrid/pkg/cache"
	"seatgrid/pkg/logger"
)

var (
	ErrVenueNotFound = errors.New("venue not found")
	ErrEventNotFound = errors.New("event not found")
)

type Service interface {
	VenueSeatMap(ctx context.Context, venueID uuid.UUID) (*VenueSeatMapResponse, error)
	EventSeatMap(ctx context.Context, eventID uuid.UUID) (*EventSeatMapResponse, error)
}

type service struct {
	venueRepo venues.Repository
	eventRepo events.Repository
	source    inventory.Source
	clk       clock.Clock
	cache     cache.Service
	log       *logger.Logger
}

func NewService(venueRepo venues.Repository, eventRepo events.Repository, source inventory.Source, clk clock.Clock, cacheService cache.Service) Service {
	return &service{
		venueRepo: venueRepo,
		eventRepo: eventRepo,
		source:    source,
		clk:       clk,
		cache:     cacheService,
		log:       logger.GetDefault(),
	}
}

// VenueSeatMap returns the venue's plain layout. With no event there is no
// inventory, so the presenter runs with empty sold and held sets and every
// seat comes back available.
func (s *service) VenueSeatMap(ctx context.Context, venueID uuid.UUID) (*VenueSeatMapResponse, error) {
	if resp, ok := s.cachedVenueLayout(ctx, venueID); ok {
		return resp, nil
	}

	venue, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}

	layout := layoutForVenue(venue)
	presented := seatmap.Present(layout, nil, nil)

	resp := &VenueSeatMapResponse{
		VenueID:    venue.ID.String(),
		TotalSeats: presented.TotalSeats,
		SeatMap:    presented,
	}
	s.storeVenueLayout(ctx, venueID, resp)
	return resp, nil
}

// EventSeatMap resolves live availability for the event's venue. A missing
// event and a missing venue are reported as distinct errors; an event whose
// venue row has vanished is a data integrity problem, not a user error.
func (s *service) EventSeatMap(ctx context.Context, eventID uuid.UUID) (*EventSeatMapResponse, error) {
	if resp, ok := s.cachedSeatMap(ctx, eventID); ok {
		return resp, nil
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	venue, err := s.venueRepo.GetByID(ctx, event.VenueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}

	now := s.clk.Now()
	snapshot, err := inventory.LoadSnapshot(ctx, s.source, eventID, now)
	if err != nil {
		s.log.LogInventoryReadFailed(ctx, eventID.String(), "seat map snapshot", err)
		return nil, err
	}

	sold, held := inventory.Resolve(snapshot, now)
	layout := layoutForVenue(venue)
	presented := seatmap.Present(layout, sold, inventory.HeldSeatSet(held))

	resp := &EventSeatMapResponse{
		EventID:     event.ID.String(),
		VenueID:     venue.ID.String(),
		TotalSeats:  presented.TotalSeats,
		GeneratedAt: now,
		SeatMap:     presented,
	}
	s.storeSeatMap(ctx, eventID, resp)
	return resp, nil
}

// layoutForVenue prefers a curated stored layout and falls back to the
// generated one. A nil capacity means the builder default.
func layoutForVenue(venue *venues.Venue) seatmap.Layout {
	if stored, ok := venue.Layout(); ok {
		return stored
	}
	capacity := seatmap.DefaultCapacity
	if venue.Capacity != nil {
		capacity = *venue.Capacity
	}
	return seatmap.Build(capacity, venue.Name)
}

func (s *service) cachedVenueLayout(ctx context.Context, venueID uuid.UUID) (*VenueSeatMapResponse, bool) {
	if s.cache == nil {
		return nil, false
	}
	key := constants.BuildVenueLayoutKey(venueID.String())
	var resp VenueSeatMapResponse
	err := s.cache.Get(ctx, key, &resp)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.log.WithError(err).Warn("venue layout cache read failed", "venue_id", venueID.String())
		}
		return nil, false
	}
	return &resp, true
}

func (s *service) storeVenueLayout(ctx context.Context, venueID uuid.UUID, resp *VenueSeatMapResponse) {
	if s.cache == nil {
		return
	}
	key := constants.BuildVenueLayoutKey(venueID.String())
	if err := s.cache.Set(ctx, key, resp, constants.TTL_VENUE_LAYOUT); err != nil {
		s.log.WithError(err).Warn("venue layout cache write failed", "venue_id", venueID.String())
	}
}

func (s *service) cachedSeatMap(ctx context.Context, eventID uuid.UUID) (*EventSeatMapResponse, bool) {
	if s.cache == nil {
		return nil, false
	}
	key := constants.BuildEventSeatMapKey(eventID.String())
	var resp EventSeatMapResponse
	err := s.cache.Get(ctx, key, &resp)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.log.WithError(err).Warn("event seat map cache read failed", "event_id", eventID.String())
		}
		return nil, false
	}
	return &resp, true
}

func (s *service) storeSeatMap(ctx context.Context, eventID uuid.UUID, resp *EventSeatMapResponse) {
	if s.cache == nil {
		return
	}
	key := constants.BuildEventSeatMapKey(eventID.String())
	if err := s.cache.Set(ctx, key, resp, constants.TTL_EVENT_SEAT_MAP); err != nil {
		s.log.WithError(err).Warn("event seat map cache write failed", "event_id", eventID.String())
	}
}
