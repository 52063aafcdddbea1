package view_models

type Tag struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Emoji       string `json:"emoji"`
	Active      bool   `json:"active"`
	IsBannerTag bool   `json:"isBannerTag"`
	MaxProducts int    `json:"maxProducts"`
	CreatedAt   int64  `json:"createdAt,omitempty"`
	UpdatedAt   int64  `json:"updatedAt,omitempty"`
}
