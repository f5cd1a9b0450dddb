package venues

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"seatgrid/internal/seatmap"
)

// Venue is a physical location owned by a tenant. Capacity is optional;
// when absent the seat map builder falls back to its default. LayoutJSON
// optionally stores a curated seat map that overrides the generated one.
type Venue struct {
	ID         uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TenantID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Name       string          `gorm:"not null;size:255" json:"name"`
	Address    string          `gorm:"size:500" json:"address"`
	Capacity   *int            `json:"capacity,omitempty"`
	LayoutJSON json.RawMessage `gorm:"type:jsonb" json:"-"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (Venue) TableName() string {
	return "venues"
}

// Layout decodes the stored seat map. A malformed or structurally empty
// document is treated the same as no stored layout at all, so callers can
// always fall back to generating one.
func (v *Venue) Layout() (seatmap.Layout, bool) {
	if len(v.LayoutJSON) == 0 {
		return seatmap.Layout{}, false
	}
	var layout seatmap.Layout
	if err := json.Unmarshal(v.LayoutJSON, &layout); err != nil {
		return seatmap.Layout{}, false
	}
	if !validLayout(layout) {
		return seatmap.Layout{}, false
	}
	return layout, true
}

func validLayout(layout seatmap.Layout) bool {
	if len(layout.Sections) == 0 {
		return false
	}
	for _, section := range layout.Sections {
		if section.ID == "" || len(section.Rows) == 0 {
			return false
		}
		for _, row := range section.Rows {
			if len(row.Seats) == 0 {
				return false
			}
			for _, seat := range row.Seats {
				if seat.ID == "" {
					return false
				}
			}
		}
	}
	return true
}
