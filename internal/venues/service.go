package venues

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"seatgrid/internal/shared/constants"
	"seatgrid/pkg/cache"
	"seatgrid/pkg/logger"
)

type Service interface {
	CreateVenue(ctx context.Context, req CreateVenueRequest) (*Venue, error)
	GetVenue(ctx context.Context, id uuid.UUID) (*Venue, error)
	GetVenuesByTenant(ctx context.Context, tenantID uuid.UUID) ([]Venue, error)
	UpdateVenue(ctx context.Context, id uuid.UUID, req UpdateVenueRequest) (*Venue, error)
	DeleteVenue(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo  Repository
	cache cache.Service
}

func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{repo: repo, cache: cacheService}
}

func (s *service) CreateVenue(ctx context.Context, req CreateVenueRequest) (*Venue, error) {
	tenantID, err := uuid.Parse(req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("invalid tenant id: %w", err)
	}

	venue := &Venue{
		TenantID: tenantID,
		Name:     req.Name,
		Address:  req.Address,
		Capacity: req.Capacity,
	}
	if len(req.Layout) > 0 {
		if !json.Valid(req.Layout) {
			return nil, fmt.Errorf("layout is not valid JSON")
		}
		venue.LayoutJSON = req.Layout
	}
	if err := s.repo.Create(ctx, venue); err != nil {
		return nil, err
	}
	return venue, nil
}

func (s *service) GetVenue(ctx context.Context, id uuid.UUID) (*Venue, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetVenuesByTenant(ctx context.Context, tenantID uuid.UUID) ([]Venue, error) {
	return s.repo.GetByTenant(ctx, tenantID)
}

func (s *service) UpdateVenue(ctx context.Context, id uuid.UUID, req UpdateVenueRequest) (*Venue, error) {
	venue, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		venue.Name = *req.Name
	}
	if req.Address != nil {
		venue.Address = *req.Address
	}
	if req.Capacity != nil {
		venue.Capacity = req.Capacity
	}
	if len(req.Layout) > 0 {
		if !json.Valid(req.Layout) {
			return nil, fmt.Errorf("layout is not valid JSON")
		}
		venue.LayoutJSON = req.Layout
	}
	if err := s.repo.Update(ctx, venue); err != nil {
		return nil, err
	}
	s.invalidateLayoutCache(ctx, id)
	return venue, nil
}

func (s *service) DeleteVenue(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateLayoutCache(ctx, id)
	return nil
}

// Cached layouts go stale when capacity or the stored layout change. Cache
// errors are logged and swallowed; the TTL bounds staleness anyway.
func (s *service) invalidateLayoutCache(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	key := constants.BuildVenueLayoutKey(id.String())
	if err := s.cache.Delete(ctx, key); err != nil {
		logger.GetDefault().WithError(err).Warn("failed to invalidate venue layout cache", "venue_id", id.String())
	}
}
