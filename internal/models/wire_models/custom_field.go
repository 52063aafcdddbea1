package wire_models

// CustomField defines an additional Profile attribute. The key doubles as the
// key in Profile.custom_values.
type CustomField struct {
	ID         int64  `gorm:"primaryKey" json:"id,omitempty"`
	Key        string `gorm:"uniqueIndex" json:"key"`
	Label      string `json:"label"`
	InputType  string `json:"input_type"`
	Required   bool   `json:"required"`
	ShowInList bool   `json:"show_in_list"`
	Active     bool   `json:"active"`
	CreatedAt  int64  `gorm:"autoCreateTime" json:"created_at,omitempty"`
	UpdatedAt  int64  `gorm:"autoUpdateTime" json:"updated_at,omitempty"`
}

func (CustomField) TableName() string { return "custom_fields" }
