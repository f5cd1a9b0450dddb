package venues

import "encoding/json"

type CreateVenueRequest struct {
	TenantID string          `json:"tenant_id" binding:"required,uuid"`
	Name     string          `json:"name" binding:"required,min=2,max=255"`
	Address  string          `json:"address" binding:"max=500"`
	Capacity *int            `json:"capacity" binding:"omitempty,min=1,max=100000"`
	Layout   json.RawMessage `json:"layout"`
}

type UpdateVenueRequest struct {
	Name     *string         `json:"name" binding:"omitempty,min=2,max=255"`
	Address  *string         `json:"address" binding:"omitempty,max=500"`
	Capacity *int            `json:"capacity" binding:"omitempty,min=1,max=100000"`
	Layout   json.RawMessage `json:"layout"`
}
