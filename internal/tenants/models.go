package tenants

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is an organization selling events through the platform.
type Tenant struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name         string    `gorm:"uniqueIndex;not null;size:255" json:"name"`
	ContactEmail string    `gorm:"not null;size:255" json:"contact_email"`
	APIKeyHash   string    `gorm:"not null" json:"-"`
	Active       bool      `gorm:"default:true" json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}

type CreateTenantRequest struct {
	Name         string `json:"name" binding:"required,min=3,max=255"`
	ContactEmail string `json:"contact_email" binding:"required,email"`
}

type UpdateTenantRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=3,max=255"`
	ContactEmail *string `json:"contact_email" binding:"omitempty,email"`
	Active       *bool   `json:"active"`
}

// TenantResponse is the API projection; the API key appears only once, on
// creation, and is never readable again.
type TenantResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email"`
	Active       bool      `json:"active"`
	APIKey       string    `json:"api_key,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func (t *Tenant) ToResponse(apiKey string) TenantResponse {
	return TenantResponse{
		ID:           t.ID.String(),
		Name:         t.Name,
		ContactEmail: t.ContactEmail,
		Active:       t.Active,
		APIKey:       apiKey,
		CreatedAt:    t.CreatedAt,
	}
}
