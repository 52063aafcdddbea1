package wire_models

// Order rows denormalize the product and renter names so the grid never has
// to join. Status drives display only.
type Order struct {
	ID          int64   `gorm:"primaryKey" json:"id,omitempty"`
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	UserName    string  `json:"user_name"`
	UserEmail   string  `json:"user_email"`
	Amount      float64 `json:"amount"`
	Days        int     `json:"days"`
	Status      string  `json:"status"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	CreatedAt   int64   `gorm:"autoCreateTime" json:"created_at,omitempty"`
	UpdatedAt   int64   `gorm:"autoUpdateTime" json:"updated_at,omitempty"`
}

func (Order) TableName() string { return "orders" }
