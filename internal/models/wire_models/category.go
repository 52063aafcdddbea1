package wire_models

type Category struct {
	ID        int64  `gorm:"primaryKey" json:"id,omitempty"`
	Name      string `gorm:"unique;not null" json:"name"`
	Icon      string `json:"icon"`
	Active    bool   `json:"active"`
	CreatedAt int64  `gorm:"autoCreateTime" json:"created_at,omitempty"`
	UpdatedAt int64  `gorm:"autoUpdateTime" json:"updated_at,omitempty"`
}

func (Category) TableName() string { return "categories" }
