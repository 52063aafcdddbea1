package view_models

const (
	ProfileActive    = "active"
	ProfileSuspended = "suspended"
)

type Profile struct {
	ID            int64          `json:"id,omitempty"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Plan          string         `json:"plan"`
	Status        string         `json:"status"`
	EmailVerified bool           `json:"emailVerified"`
	PhoneVerified bool           `json:"phoneVerified"`
	City          string         `json:"city"`
	Phone         string         `json:"phone"`
	Custom        map[string]any `json:"custom,omitempty"`
	CreatedAt     int64          `json:"createdAt,omitempty"`
	UpdatedAt     int64          `json:"updatedAt,omitempty"`
}
