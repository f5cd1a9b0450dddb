package availability_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"seatgrid/internal/availability"
	"seatgrid/internal/events"
	"seatgrid/internal/inventory"
	"seatgrid/internal/seatmap"
	"seatgrid/internal/shared/clock"
	"seatgrid/internal/venues"
)

type MockVenueRepo struct {
	mock.Mock
}

func (m *MockVenueRepo) Create(ctx context.Context, venue *venues.Venue) error {
	args := m.Called(ctx, venue)
	return args.Error(0)
}

func (m *MockVenueRepo) GetByID(ctx context.Context, id uuid.UUID) (*venues.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venues.Venue), args.Error(1)
}

func (m *MockVenueRepo) GetByTenant(ctx context.Context, tenantID uuid.UUID) ([]venues.Venue, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]venues.Venue), args.Error(1)
}

func (m *MockVenueRepo) Update(ctx context.Context, venue *venues.Venue) error {
	args := m.Called(ctx, venue)
	return args.Error(0)
}

func (m *MockVenueRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) Create(ctx context.Context, event *events.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*events.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.Event), args.Error(1)
}

func (m *MockEventRepo) GetByTenant(ctx context.Context, tenantID uuid.UUID) ([]events.Event, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]events.Event), args.Error(1)
}

func (m *MockEventRepo) Update(ctx context.Context, event *events.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSource struct {
	mock.Mock
}

func (m *MockSource) SoldSeatsFromBlocks(ctx context.Context, eventID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSource) IndividualTicketsByEvent(ctx context.Context, eventID uuid.UUID) ([]inventory.IndividualTicket, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.IndividualTicket), args.Error(1)
}

func (m *MockSource) ActiveHoldsByEvent(ctx context.Context, eventID uuid.UUID, now time.Time) ([]inventory.SeatHold, error) {
	args := m.Called(ctx, eventID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.SeatHold), args.Error(1)
}

func seatByID(layout seatmap.Layout, id string) *seatmap.Seat {
	for _, section := range layout.Sections {
		for _, row := range section.Rows {
			for i := range row.Seats {
				if row.Seats[i].ID == id {
					return &row.Seats[i]
				}
			}
		}
	}
	return nil
}

func TestVenueSeatMapAllAvailable(t *testing.T) {
	venueID := uuid.New()
	capacity := 20

	venueRepo := new(MockVenueRepo)
	venueRepo.On("GetByID", mock.Anything, venueID).Return(&venues.Venue{
		ID:       venueID,
		Name:     "Grand Hall",
		Capacity: &capacity,
	}, nil)

	svc := availability.NewService(venueRepo, new(MockEventRepo), new(MockSource), clock.NewSystem(), nil)

	resp, err := svc.VenueSeatMap(context.Background(), venueID)
	require.NoError(t, err)
	assert.Equal(t, 20, resp.TotalSeats)

	for _, section := range resp.SeatMap.Sections {
		for _, row := range section.Rows {
			for _, seat := range row.Seats {
				assert.True(t, seat.IsAvailable)
				assert.False(t, seat.IsReserved)
			}
		}
	}
}

func TestVenueSeatMapUnknownVenue(t *testing.T) {
	venueID := uuid.New()

	venueRepo := new(MockVenueRepo)
	venueRepo.On("GetByID", mock.Anything, venueID).Return(nil, gorm.ErrRecordNotFound)

	svc := availability.NewService(venueRepo, new(MockEventRepo), new(MockSource), clock.NewSystem(), nil)

	_, err := svc.VenueSeatMap(context.Background(), venueID)
	assert.ErrorIs(t, err, availability.ErrVenueNotFound)
}

func TestEventSeatMapAnnotatesAvailability(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	eventID := uuid.New()
	venueID := uuid.New()
	capacity := 30

	eventRepo := new(MockEventRepo)
	eventRepo.On("GetByID", mock.Anything, eventID).Return(&events.Event{
		ID:      eventID,
		VenueID: venueID,
		Name:    "Opening Night",
	}, nil)

	venueRepo := new(MockVenueRepo)
	venueRepo.On("GetByID", mock.Anything, venueID).Return(&venues.Venue{
		ID:       venueID,
		Name:     "Grand Hall",
		Capacity: &capacity,
	}, nil)

	source := new(MockSource)
	source.On("SoldSeatsFromBlocks", mock.Anything, eventID).Return([]string{"orchestra-A1"}, nil)
	source.On("IndividualTicketsByEvent", mock.Anything, eventID).Return([]inventory.IndividualTicket{
		{SeatID: "orchestra-A2", Status: inventory.TicketStatusSold},
	}, nil)
	source.On("ActiveHoldsByEvent", mock.Anything, eventID, now).Return([]inventory.SeatHold{{
		HoldID:    uuid.New(),
		EventID:   eventID,
		SeatID:    "orchestra-A3",
		HolderID:  "user-9",
		Status:    inventory.HoldStatusReserved,
		ExpiresAt: now.Add(time.Minute),
	}}, nil)

	svc := availability.NewService(venueRepo, eventRepo, source, clock.NewFixed(now), nil)

	resp, err := svc.EventSeatMap(context.Background(), eventID)
	require.NoError(t, err)
	assert.Equal(t, eventID.String(), resp.EventID)
	assert.Equal(t, venueID.String(), resp.VenueID)
	assert.Equal(t, 30, resp.TotalSeats)
	assert.Equal(t, now, resp.GeneratedAt)

	soldSeat := seatByID(resp.SeatMap, "orchestra-A1")
	require.NotNil(t, soldSeat)
	assert.False(t, soldSeat.IsAvailable)
	assert.False(t, soldSeat.IsReserved)

	heldSeat := seatByID(resp.SeatMap, "orchestra-A3")
	require.NotNil(t, heldSeat)
	assert.False(t, heldSeat.IsAvailable)
	assert.True(t, heldSeat.IsReserved)

	freeSeat := seatByID(resp.SeatMap, "orchestra-A4")
	require.NotNil(t, freeSeat)
	assert.True(t, freeSeat.IsAvailable)
}

func TestEventSeatMapDistinguishesNotFound(t *testing.T) {
	eventID := uuid.New()
	venueID := uuid.New()

	eventRepo := new(MockEventRepo)
	eventRepo.On("GetByID", mock.Anything, eventID).Return(nil, gorm.ErrRecordNotFound)

	svc := availability.NewService(new(MockVenueRepo), eventRepo, new(MockSource), clock.NewSystem(), nil)
	_, err := svc.EventSeatMap(context.Background(), eventID)
	assert.ErrorIs(t, err, availability.ErrEventNotFound)

	// An event whose venue row is gone reports the venue, not the event.
	orphanID := uuid.New()
	eventRepo.On("GetByID", mock.Anything, orphanID).Return(&events.Event{
		ID:      orphanID,
		VenueID: venueID,
	}, nil)
	venueRepo := new(MockVenueRepo)
	venueRepo.On("GetByID", mock.Anything, venueID).Return(nil, gorm.ErrRecordNotFound)

	svc = availability.NewService(venueRepo, eventRepo, new(MockSource), clock.NewSystem(), nil)
	_, err = svc.EventSeatMap(context.Background(), orphanID)
	assert.ErrorIs(t, err, availability.ErrVenueNotFound)
}

func TestEventSeatMapAbortsOnSourceFailure(t *testing.T) {
	eventID := uuid.New()
	venueID := uuid.New()

	eventRepo := new(MockEventRepo)
	eventRepo.On("GetByID", mock.Anything, eventID).Return(&events.Event{ID: eventID, VenueID: venueID}, nil)

	venueRepo := new(MockVenueRepo)
	venueRepo.On("GetByID", mock.Anything, venueID).Return(&venues.Venue{ID: venueID, Name: "Grand Hall"}, nil)

	source := new(MockSource)
	source.On("SoldSeatsFromBlocks", mock.Anything, eventID).Return(nil, gorm.ErrInvalidDB)

	svc := availability.NewService(venueRepo, eventRepo, source, clock.NewSystem(), nil)

	_, err := svc.EventSeatMap(context.Background(), eventID)
	assert.Error(t, err, "availability never degrades to an empty inventory")
}

func TestEventSeatMapPrefersStoredLayout(t *testing.T) {
	eventID := uuid.New()
	venueID := uuid.New()

	stored := []byte(`{
		"venue_name": "Grand Hall",
		"total_seats": 2,
		"sections": [{
			"id": "pit", "name": "Pit", "price": 150,
			"rows": [{"label": "A", "seats": [
				{"id": "pit-A1", "row": "A", "number": 1, "section": "Pit", "type": "REGULAR", "price": 150},
				{"id": "pit-A2", "row": "A", "number": 2, "section": "Pit", "type": "REGULAR", "price": 150}
			]}]
		}]
	}`)

	eventRepo := new(MockEventRepo)
	eventRepo.On("GetByID", mock.Anything, eventID).Return(&events.Event{ID: eventID, VenueID: venueID}, nil)

	venueRepo := new(MockVenueRepo)
	venueRepo.On("GetByID", mock.Anything, venueID).Return(&venues.Venue{
		ID:         venueID,
		Name:       "Grand Hall",
		LayoutJSON: stored,
	}, nil)

	source := new(MockSource)
	source.On("SoldSeatsFromBlocks", mock.Anything, eventID).Return([]string{}, nil)
	source.On("IndividualTicketsByEvent", mock.Anything, eventID).Return([]inventory.IndividualTicket{}, nil)
	source.On("ActiveHoldsByEvent", mock.Anything, eventID, mock.Anything).Return([]inventory.SeatHold{}, nil)

	svc := availability.NewService(venueRepo, eventRepo, source, clock.NewSystem(), nil)

	resp, err := svc.EventSeatMap(context.Background(), eventID)
	require.NoError(t, err)
	require.Len(t, resp.SeatMap.Sections, 1)
	assert.Equal(t, "pit", resp.SeatMap.Sections[0].ID)
	assert.Equal(t, 2, resp.TotalSeats)
}

func TestMalformedStoredLayoutFallsBackToGenerated(t *testing.T) {
	venueID := uuid.New()
	capacity := 10

	venueRepo := new(MockVenueRepo)
	venueRepo.On("GetByID", mock.Anything, venueID).Return(&venues.Venue{
		ID:         venueID,
		Name:       "Grand Hall",
		Capacity:   &capacity,
		LayoutJSON: []byte(`{"sections": "oops"`),
	}, nil)

	svc := availability.NewService(venueRepo, new(MockEventRepo), new(MockSource), clock.NewSystem(), nil)

	resp, err := svc.VenueSeatMap(context.Background(), venueID)
	require.NoError(t, err)
	assert.Equal(t, 10, resp.TotalSeats)
	require.NotEmpty(t, resp.SeatMap.Sections)
	assert.Equal(t, "orchestra", resp.SeatMap.Sections[0].ID)
}
