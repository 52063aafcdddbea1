package request_models

import "renthub/internal/models/view_models"

// PlanRequest accepts the presentation fields the admin UI edits (color,
// accent, popular); they are stripped before persistence.
type PlanRequest struct {
	Name              string   `json:"name" binding:"required"`
	Price             float64  `json:"price" binding:"gte=0"`
	Features          []string `json:"features"`
	Subscribers       int      `json:"subscribers" binding:"omitempty,gte=0"`
	Revenue           float64  `json:"revenue" binding:"omitempty,gte=0"`
	ProductExpiryDays int      `json:"productExpiryDays" binding:"omitempty,gt=0"`
	Color             string   `json:"color"`
	Accent            string   `json:"accent"`
	Popular           bool     `json:"popular"`
}

func (r PlanRequest) ToView() view_models.Plan {
	return view_models.Plan{
		Name:              r.Name,
		Price:             r.Price,
		Features:          r.Features,
		Subscribers:       r.Subscribers,
		Revenue:           r.Revenue,
		ProductExpiryDays: r.ProductExpiryDays,
		Color:             r.Color,
		Accent:            r.Accent,
		Popular:           r.Popular,
	}
}

type OrderRequest struct {
	ProductID   int64   `json:"productId" binding:"required,gt=0"`
	ProductName string  `json:"productName" binding:"required"`
	UserName    string  `json:"userName" binding:"required"`
	UserEmail   string  `json:"userEmail" binding:"required,email"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Days        int     `json:"days" binding:"required,gt=0"`
	Status      string  `json:"status" binding:"omitempty,oneof=pending active completed cancelled"`
	StartDate   string  `json:"startDate" binding:"required"`
	EndDate     string  `json:"endDate" binding:"required"`
}

func (r OrderRequest) ToView() view_models.Order {
	status := r.Status
	if status == "" {
		status = view_models.OrderPending
	}
	return view_models.Order{
		ProductID:   r.ProductID,
		ProductName: r.ProductName,
		UserName:    r.UserName,
		UserEmail:   r.UserEmail,
		Amount:      r.Amount,
		Days:        r.Days,
		Status:      status,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
	}
}
