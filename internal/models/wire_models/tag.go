package wire_models

// Tag rows with is_banner_tag set carry a max_products capacity: at most that
// many products may reference the tag at a time.
type Tag struct {
	ID          int64  `gorm:"primaryKey" json:"id,omitempty"`
	Name        string `gorm:"unique" json:"name"`
	Color       string `json:"color"`
	Emoji       string `json:"emoji"`
	Active      bool   `json:"active"`
	IsBannerTag bool   `json:"is_banner_tag"`
	MaxProducts int    `json:"max_products"`
	CreatedAt   int64  `gorm:"autoCreateTime" json:"created_at,omitempty"`
	UpdatedAt   int64  `gorm:"autoUpdateTime" json:"updated_at,omitempty"`
}

func (Tag) TableName() string { return "tags" }
