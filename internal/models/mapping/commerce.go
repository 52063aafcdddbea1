package mapping

import (
	"github.com/lib/pq"

	"renthub/internal/models/view_models"
	"renthub/internal/models/wire_models"
)

// PlanFromWire leaves the presentation fields (Color, Accent, Popular)
// zero-valued: they are never persisted.
func PlanFromWire(w wire_models.Plan) view_models.Plan {
	features := make([]string, 0, len(w.Features))
	features = append(features, w.Features...)

	return view_models.Plan{
		ID:                w.ID,
		Name:              w.Name,
		Price:             w.Price,
		Features:          features,
		Subscribers:       w.Subscribers,
		Revenue:           w.Revenue,
		ProductExpiryDays: w.ProductExpiryDays,
		CreatedAt:         w.CreatedAt,
		UpdatedAt:         w.UpdatedAt,
	}
}

// PlanToWire strips the presentation fields.
func PlanToWire(v view_models.Plan) wire_models.Plan {
	features := make(pq.StringArray, 0, len(v.Features))
	features = append(features, v.Features...)

	return wire_models.Plan{
		ID:                v.ID,
		Name:              v.Name,
		Price:             v.Price,
		Features:          features,
		Subscribers:       v.Subscribers,
		Revenue:           v.Revenue,
		ProductExpiryDays: v.ProductExpiryDays,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

func OrderFromWire(w wire_models.Order) view_models.Order {
	return view_models.Order{
		ID:          w.ID,
		ProductID:   w.ProductID,
		ProductName: w.ProductName,
		UserName:    w.UserName,
		UserEmail:   w.UserEmail,
		Amount:      w.Amount,
		Days:        w.Days,
		Status:      w.Status,
		StartDate:   w.StartDate,
		EndDate:     w.EndDate,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func OrderToWire(v view_models.Order) wire_models.Order {
	return wire_models.Order{
		ID:          v.ID,
		ProductID:   v.ProductID,
		ProductName: v.ProductName,
		UserName:    v.UserName,
		UserEmail:   v.UserEmail,
		Amount:      v.Amount,
		Days:        v.Days,
		Status:      v.Status,
		StartDate:   v.StartDate,
		EndDate:     v.EndDate,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}
