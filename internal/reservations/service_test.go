package reservations_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"seatgrid/internal/events"
	"seatgrid/internal/inventory"
	"seatgrid/internal/reservations"
	"seatgrid/internal/shared/clock"
	"seatgrid/internal/shared/config"
)

type MockRepository struct {
	mock.Mock
}

// Transaction runs the callback against the same mock, mirroring how the
// real implementation rebinds itself to the transaction handle.
func (m *MockRepository) Transaction(ctx context.Context, fn func(tx reservations.Repository) error) error {
	return fn(m)
}

func (m *MockRepository) LockEvent(ctx context.Context, eventID uuid.UUID) (*events.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*events.Event), args.Error(1)
}

func (m *MockRepository) Snapshot(ctx context.Context, eventID uuid.UUID, now time.Time) (inventory.Snapshot, error) {
	args := m.Called(ctx, eventID, now)
	return args.Get(0).(inventory.Snapshot), args.Error(1)
}

func (m *MockRepository) InsertHolds(ctx context.Context, holds []inventory.SeatHold) error {
	args := m.Called(ctx, holds)
	return args.Error(0)
}

func (m *MockRepository) DeleteHold(ctx context.Context, holdID uuid.UUID) (int64, uuid.UUID, error) {
	args := m.Called(ctx, holdID)
	return args.Get(0).(int64), args.Get(1).(uuid.UUID), args.Error(2)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishHoldCreated(ctx context.Context, hold reservations.HoldResponse) error {
	args := m.Called(ctx, hold)
	return args.Error(0)
}

func (m *MockPublisher) PublishHoldReleased(ctx context.Context, holdID string, seatsReleased int64) error {
	args := m.Called(ctx, holdID, seatsReleased)
	return args.Error(0)
}

func testConfig() *config.Config {
	return &config.Config{
		Holds: config.HoldConfig{
			DefaultDuration: 300 * time.Second,
			MaxSeatsPerHold: 10,
		},
	}
}

func testEvent(id uuid.UUID) *events.Event {
	return &events.Event{ID: id, Name: "Opening Night", Status: events.StatusPublished}
}

func TestCreateHoldReservesAllSeats(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	eventID := uuid.New()

	repo := new(MockRepository)
	repo.On("LockEvent", mock.Anything, eventID).Return(testEvent(eventID), nil)
	repo.On("Snapshot", mock.Anything, eventID, now).Return(inventory.Snapshot{}, nil)
	repo.On("InsertHolds", mock.Anything, mock.MatchedBy(func(holds []inventory.SeatHold) bool {
		return len(holds) == 2 &&
			holds[0].HoldID == holds[1].HoldID &&
			holds[0].Status == inventory.HoldStatusReserved &&
			holds[0].ExpiresAt.Equal(now.Add(300*time.Second))
	})).Return(nil)

	svc := reservations.NewService(repo, testConfig(), clock.NewFixed(now), nil, nil)

	resp, err := svc.CreateHold(context.Background(), reservations.CreateHoldRequest{
		EventID:  eventID.String(),
		HolderID: "user-1",
		SeatIDs:  []string{"orchestra-A1", "orchestra-A2"},
	})

	require.NoError(t, err)
	assert.Equal(t, eventID.String(), resp.EventID)
	assert.Equal(t, []string{"orchestra-A1", "orchestra-A2"}, resp.SeatIDs)
	assert.Equal(t, "RESERVED", resp.Status)
	assert.Equal(t, now.Add(300*time.Second), resp.ExpiresAt)
	repo.AssertExpectations(t)
}

func TestCreateHoldIsAllOrNothing(t *testing.T) {
	now := time.Now().UTC()
	eventID := uuid.New()

	snapshot := inventory.Snapshot{
		BlockSoldSeats: []string{"orchestra-A1"},
		Holds: []inventory.SeatHold{{
			HoldID:    uuid.New(),
			EventID:   eventID,
			SeatID:    "orchestra-A3",
			HolderID:  "someone-else",
			Status:    inventory.HoldStatusReserved,
			ExpiresAt: now.Add(time.Minute),
		}},
	}

	repo := new(MockRepository)
	repo.On("LockEvent", mock.Anything, eventID).Return(testEvent(eventID), nil)
	repo.On("Snapshot", mock.Anything, eventID, now).Return(snapshot, nil)

	svc := reservations.NewService(repo, testConfig(), clock.NewFixed(now), nil, nil)

	_, err := svc.CreateHold(context.Background(), reservations.CreateHoldRequest{
		EventID:  eventID.String(),
		HolderID: "user-1",
		SeatIDs:  []string{"orchestra-A1", "orchestra-A2", "orchestra-A3"},
	})

	require.Error(t, err)
	conflict, ok := reservations.AsConflict(err)
	require.True(t, ok)
	assert.Equal(t, []string{"orchestra-A1", "orchestra-A3"}, conflict.Seats)
	repo.AssertNotCalled(t, "InsertHolds", mock.Anything, mock.Anything)
}

func TestCreateHoldIgnoresExpiredHolds(t *testing.T) {
	now := time.Now().UTC()
	eventID := uuid.New()

	snapshot := inventory.Snapshot{
		Holds: []inventory.SeatHold{{
			HoldID:    uuid.New(),
			EventID:   eventID,
			SeatID:    "orchestra-A1",
			HolderID:  "someone-else",
			Status:    inventory.HoldStatusReserved,
			ExpiresAt: now.Add(-time.Second),
		}},
	}

	repo := new(MockRepository)
	repo.On("LockEvent", mock.Anything, eventID).Return(testEvent(eventID), nil)
	repo.On("Snapshot", mock.Anything, eventID, now).Return(snapshot, nil)
	repo.On("InsertHolds", mock.Anything, mock.Anything).Return(nil)

	svc := reservations.NewService(repo, testConfig(), clock.NewFixed(now), nil, nil)

	_, err := svc.CreateHold(context.Background(), reservations.CreateHoldRequest{
		EventID:  eventID.String(),
		HolderID: "user-1",
		SeatIDs:  []string{"orchestra-A1"},
	})

	require.NoError(t, err, "an expired hold does not block the seat")
}

func TestCreateHoldCustomDuration(t *testing.T) {
	now := time.Now().UTC()
	eventID := uuid.New()

	repo := new(MockRepository)
	repo.On("LockEvent", mock.Anything, eventID).Return(testEvent(eventID), nil)
	repo.On("Snapshot", mock.Anything, eventID, now).Return(inventory.Snapshot{}, nil)
	repo.On("InsertHolds", mock.Anything, mock.Anything).Return(nil)

	svc := reservations.NewService(repo, testConfig(), clock.NewFixed(now), nil, nil)

	resp, err := svc.CreateHold(context.Background(), reservations.CreateHoldRequest{
		EventID:         eventID.String(),
		HolderID:        "user-1",
		SeatIDs:         []string{"orchestra-A1"},
		DurationSeconds: 60,
	})

	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Minute), resp.ExpiresAt)
}

func TestCreateHoldValidation(t *testing.T) {
	repo := new(MockRepository)
	svc := reservations.NewService(repo, testConfig(), clock.NewSystem(), nil, nil)
	eventID := uuid.New().String()

	_, err := svc.CreateHold(context.Background(), reservations.CreateHoldRequest{
		EventID: eventID, HolderID: "u", SeatIDs: nil,
	})
	assert.ErrorIs(t, err, reservations.ErrNoSeats)

	_, err = svc.CreateHold(context.Background(), reservations.CreateHoldRequest{
		EventID: eventID, SeatIDs: []string{"orchestra-A1"},
	})
	assert.ErrorIs(t, err, reservations.ErrNoHolder)

	_, err = svc.CreateHold(context.Background(), reservations.CreateHoldRequest{
		EventID: eventID, HolderID: "u", SeatIDs: []string{"orchestra-A1", "orchestra-A1"},
	})
	assert.ErrorIs(t, err, reservations.ErrDuplicateSeats)

	_, err = svc.CreateHold(context.Background(), reservations.CreateHoldRequest{
		EventID: "not-a-uuid", HolderID: "u", SeatIDs: []string{"orchestra-A1"},
	})
	assert.Error(t, err)

	tooMany := make([]string, 11)
	for i := range tooMany {
		tooMany[i] = uuid.NewString()
	}
	_, err = svc.CreateHold(context.Background(), reservations.CreateHoldRequest{
		EventID: eventID, HolderID: "u", SeatIDs: tooMany,
	})
	assert.Error(t, err)

	repo.AssertNotCalled(t, "LockEvent", mock.Anything, mock.Anything)
}

func TestCreateHoldUnknownEvent(t *testing.T) {
	eventID := uuid.New()

	repo := new(MockRepository)
	repo.On("LockEvent", mock.Anything, eventID).Return(nil, reservations.ErrEventNotFound)

	svc := reservations.NewService(repo, testConfig(), clock.NewSystem(), nil, nil)

	_, err := svc.CreateHold(context.Background(), reservations.CreateHoldRequest{
		EventID:  eventID.String(),
		HolderID: "user-1",
		SeatIDs:  []string{"orchestra-A1"},
	})
	assert.ErrorIs(t, err, reservations.ErrEventNotFound)
}

func TestCreateHoldPublishesLifecycleEvent(t *testing.T) {
	now := time.Now().UTC()
	eventID := uuid.New()

	repo := new(MockRepository)
	repo.On("LockEvent", mock.Anything, eventID).Return(testEvent(eventID), nil)
	repo.On("Snapshot", mock.Anything, eventID, now).Return(inventory.Snapshot{}, nil)
	repo.On("InsertHolds", mock.Anything, mock.Anything).Return(nil)

	publisher := new(MockPublisher)
	publisher.On("PublishHoldCreated", mock.Anything, mock.Anything).Return(nil)

	svc := reservations.NewService(repo, testConfig(), clock.NewFixed(now), nil, publisher)

	_, err := svc.CreateHold(context.Background(), reservations.CreateHoldRequest{
		EventID:  eventID.String(),
		HolderID: "user-1",
		SeatIDs:  []string{"orchestra-A1"},
	})

	require.NoError(t, err)
	publisher.AssertExpectations(t)
}

func TestReleaseHoldIsIdempotent(t *testing.T) {
	holdID := uuid.New()
	eventID := uuid.New()

	repo := new(MockRepository)
	repo.On("DeleteHold", mock.Anything, holdID).Return(int64(2), eventID, nil).Once()
	repo.On("DeleteHold", mock.Anything, holdID).Return(int64(0), uuid.Nil, nil).Once()

	svc := reservations.NewService(repo, testConfig(), clock.NewSystem(), nil, nil)

	first, err := svc.ReleaseHold(context.Background(), holdID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), first.SeatsReleased)

	second, err := svc.ReleaseHold(context.Background(), holdID)
	require.NoError(t, err, "releasing an already released hold succeeds")
	assert.Equal(t, int64(0), second.SeatsReleased)

	repo.AssertExpectations(t)
}
