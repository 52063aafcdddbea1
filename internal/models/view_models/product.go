package view_models

// Product workflow states. A storefront submission enters as Pending Review
// and either becomes active/New on approval or is deleted on rejection.
const (
	BadgePendingReview = "Pending Review"
	BadgeNew           = "New"

	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Photo struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Name string `json:"name"`
}

type Product struct {
	ID              int64   `json:"id,omitempty"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	City            string  `json:"city"`
	PriceDay        float64 `json:"priceDay"`
	PriceMonth      float64 `json:"priceMonth"`
	PriceYear       float64 `json:"priceYear"`
	Stock           int     `json:"stock"`
	Status          string  `json:"status"`
	Badge           string  `json:"badge"`
	Photos          []Photo `json:"photos"`
	Tags            []int64 `json:"tags"`
	OwnerName       string  `json:"ownerName"`
	OwnerEmail      string  `json:"ownerEmail"`
	MinDuration     int     `json:"minDuration"`
	MinDurationUnit string  `json:"minDurationUnit"`
	CreatedAt       int64   `json:"createdAt,omitempty"`
	UpdatedAt       int64   `json:"updatedAt,omitempty"`
}

// Pending reports whether the product is awaiting admin review.
func (p Product) Pending() bool { return p.Badge == BadgePendingReview }

// HasTag reports whether the product references the given tag id.
func (p Product) HasTag(tagID int64) bool {
	for _, id := range p.Tags {
		if id == tagID {
			return true
		}
	}
	return false
}
