package view_models

// Well-known flag keys consulted by the HTTP surface.
const (
	FlagBannerRail   = "banner_rail"
	FlagRealtimeSync = "realtime_sync"
	FlagCustomFields = "custom_fields"
)

type FeatureFlag struct {
	ID        int64  `json:"id,omitempty"`
	Key       string `json:"key"`
	Enabled   bool   `json:"enabled"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	UpdatedAt int64  `json:"updatedAt,omitempty"`
}
