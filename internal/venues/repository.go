package venues

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, venue *Venue) error
	GetByID(ctx context.Context, id uuid.UUID) (*Venue, error)
	GetByTenant(ctx context.Context, tenantID uuid.UUID) ([]Venue, error)
	Update(ctx context.Context, venue *Venue) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, venue *Venue) error {
	if err := r.db.WithContext(ctx).Create(venue).Error; err != nil {
		return fmt.Errorf("failed to create venue: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Venue, error) {
	var venue Venue
	if err := r.db.WithContext(ctx).First(&venue, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *repository) GetByTenant(ctx context.Context, tenantID uuid.UUID) ([]Venue, error) {
	var list []Venue
	if err := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}
	return list, nil
}

func (r *repository) Update(ctx context.Context, venue *Venue) error {
	if err := r.db.WithContext(ctx).Save(venue).Error; err != nil {
		return fmt.Errorf("failed to update venue: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Venue{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete venue: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
