package view_models

const (
	OrderPending   = "pending"
	OrderActive    = "active"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

type Order struct {
	ID          int64   `json:"id,omitempty"`
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	UserName    string  `json:"userName"`
	UserEmail   string  `json:"userEmail"`
	Amount      float64 `json:"amount"`
	Days        int     `json:"days"`
	Status      string  `json:"status"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	CreatedAt   int64   `json:"createdAt,omitempty"`
	UpdatedAt   int64   `json:"updatedAt,omitempty"`
}
