package events

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"seatgrid/internal/shared/constants"
	"seatgrid/pkg/cache"
	"seatgrid/pkg/logger"
)

type Service interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*Event, error)
	GetEventsByTenant(ctx context.Context, tenantID uuid.UUID) ([]Event, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, req UpdateEventRequest) (*Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo  Repository
	cache cache.Service
}

func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{repo: repo, cache: cacheService}
}

func (s *service) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	tenantID, err := uuid.Parse(req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("invalid tenant id: %w", err)
	}
	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		return nil, fmt.Errorf("invalid venue id: %w", err)
	}
	if !req.EndsAt.IsZero() && req.EndsAt.Before(req.StartsAt) {
		return nil, fmt.Errorf("event cannot end before it starts")
	}

	event := &Event{
		TenantID:    tenantID,
		VenueID:     venueID,
		Name:        req.Name,
		Description: req.Description,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		Status:      StatusDraft,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *service) GetEvent(ctx context.Context, id uuid.UUID) (*Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetEventsByTenant(ctx context.Context, tenantID uuid.UUID) ([]Event, error) {
	return s.repo.GetByTenant(ctx, tenantID)
}

func (s *service) UpdateEvent(ctx context.Context, id uuid.UUID, req UpdateEventRequest) (*Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.StartsAt != nil {
		event.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		event.EndsAt = *req.EndsAt
	}
	if req.Status != nil {
		status := EventStatus(*req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("invalid event status: %s", *req.Status)
		}
		event.Status = status
	}
	if err := s.repo.Update(ctx, event); err != nil {
		return nil, err
	}
	s.invalidateSeatMapCache(ctx, id)
	return event, nil
}

func (s *service) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateSeatMapCache(ctx, id)
	return nil
}

func (s *service) invalidateSeatMapCache(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	key := constants.BuildEventSeatMapKey(id.String())
	if err := s.cache.Delete(ctx, key); err != nil {
		logger.GetDefault().WithError(err).Warn("failed to invalidate event seat map cache", "event_id", id.String())
	}
}
