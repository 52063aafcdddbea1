package wire_models

import "github.com/lib/pq"

// Product is the row shape of the hosted products table. Photos travel as a
// bare list of URLs; the view layer rehydrates them into photo objects.
type Product struct {
	ID              int64          `gorm:"primaryKey" json:"id,omitempty"`
	Name            string         `json:"name"`
	Category        string         `json:"category"`
	City            string         `json:"city"`
	PriceDay        float64        `json:"price_day"`
	PriceMonth      float64        `json:"price_month"`
	PriceYear       float64        `json:"price_year"`
	Stock           int            `json:"stock"`
	Status          string         `json:"status"`
	Badge           string         `json:"badge"`
	Photos          pq.StringArray `gorm:"type:text[]" json:"photos"`
	TagIDs          pq.Int64Array  `gorm:"type:bigint[]" json:"tag_ids"`
	OwnerName       string         `json:"owner_name"`
	OwnerEmail      string         `json:"owner_email"`
	MinDuration     int            `json:"min_duration"`
	MinDurationUnit string         `json:"min_duration_unit"`
	CreatedAt       int64          `gorm:"autoCreateTime" json:"created_at,omitempty"`
	UpdatedAt       int64          `gorm:"autoUpdateTime" json:"updated_at,omitempty"`
}

func (Product) TableName() string { return "products" }
