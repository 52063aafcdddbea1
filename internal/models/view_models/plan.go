package view_models

// Plan carries three presentation-only fields (Color, Accent, Popular). They
// are accepted from the admin UI but stripped before persistence; reads
// always return them zero-valued.
type Plan struct {
	ID                int64    `json:"id,omitempty"`
	Name              string   `json:"name"`
	Price             float64  `json:"price"`
	Features          []string `json:"features"`
	Subscribers       int      `json:"subscribers"`
	Revenue           float64  `json:"revenue"`
	ProductExpiryDays int      `json:"productExpiryDays"`
	Color             string   `json:"color,omitempty"`
	Accent            string   `json:"accent,omitempty"`
	Popular           bool     `json:"popular,omitempty"`
	CreatedAt         int64    `json:"createdAt,omitempty"`
	UpdatedAt         int64    `json:"updatedAt,omitempty"`
}
