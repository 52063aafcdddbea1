package wire_models

import "github.com/lib/pq"

// Plan persists only pricing and content. Presentation fields (color, accent,
// popular) are view-side and never reach the wire.
type Plan struct {
	ID                int64          `gorm:"primaryKey" json:"id,omitempty"`
	Name              string         `json:"name"`
	Price             float64        `json:"price"`
	Features          pq.StringArray `gorm:"type:text[]" json:"features"`
	Subscribers       int            `json:"subscribers"`
	Revenue           float64        `json:"revenue"`
	ProductExpiryDays int            `json:"product_expiry_days"`
	CreatedAt         int64          `gorm:"autoCreateTime" json:"created_at,omitempty"`
	UpdatedAt         int64          `gorm:"autoUpdateTime" json:"updated_at,omitempty"`
}

func (Plan) TableName() string { return "plans" }
