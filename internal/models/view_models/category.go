package view_models

type Category struct {
	ID        int64  `json:"id,omitempty"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Active    bool   `json:"active"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	UpdatedAt int64  `json:"updatedAt,omitempty"`
}
