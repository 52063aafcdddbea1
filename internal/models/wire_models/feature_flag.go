package wire_models

type FeatureFlag struct {
	ID        int64  `gorm:"primaryKey" json:"id,omitempty"`
	Key       string `gorm:"uniqueIndex" json:"key"`
	Enabled   bool   `json:"enabled"`
	CreatedAt int64  `gorm:"autoCreateTime" json:"created_at,omitempty"`
	UpdatedAt int64  `gorm:"autoUpdateTime" json:"updated_at,omitempty"`
}

func (FeatureFlag) TableName() string { return "feature_flags" }
