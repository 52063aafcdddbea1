package wire_models

import "github.com/lib/pq"

// Setting is a durable key → string-list pair. The admin-managed city list
// lives here under the "cities" key; unlike session markers it survives
// restarts.
type Setting struct {
	ID        int64          `gorm:"primaryKey" json:"id,omitempty"`
	Key       string         `gorm:"uniqueIndex" json:"key"`
	Values    pq.StringArray `gorm:"type:text[]" json:"values"`
	CreatedAt int64          `gorm:"autoCreateTime" json:"created_at,omitempty"`
	UpdatedAt int64          `gorm:"autoUpdateTime" json:"updated_at,omitempty"`
}

func (Setting) TableName() string { return "settings" }
