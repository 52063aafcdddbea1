package wire_models

import "gorm.io/datatypes"

// Profile is a marketplace user. Values for admin-defined custom fields live
// in the custom_values jsonb column, keyed by the custom field key.
type Profile struct {
	ID            int64             `gorm:"primaryKey" json:"id,omitempty"`
	Name          string            `json:"name"`
	Email         string            `gorm:"unique" json:"email"`
	Plan          string            `json:"plan"`
	Status        string            `json:"status"`
	EmailVerified bool              `json:"email_verified"`
	PhoneVerified bool              `json:"phone_verified"`
	City          string            `json:"city"`
	Phone         string            `json:"phone"`
	CustomValues  datatypes.JSONMap `gorm:"type:jsonb" json:"custom_values"`
	CreatedAt     int64             `gorm:"autoCreateTime" json:"created_at,omitempty"`
	UpdatedAt     int64             `gorm:"autoUpdateTime" json:"updated_at,omitempty"`
}

func (Profile) TableName() string { return "profiles" }
