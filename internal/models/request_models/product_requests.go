package request_models

import "renthub/internal/models/view_models"

type PhotoRequest struct {
	URL  string `json:"url" binding:"required,url"`
	Name string `json:"name"`
}

// ProductRequest is the admin create/update payload. The wizard on the
// client side collapses into this one validated submission.
type ProductRequest struct {
	Name            string         `json:"name" binding:"required"`
	Category        string         `json:"category" binding:"required"`
	City            string         `json:"city" binding:"required"`
	PriceDay        float64        `json:"priceDay" binding:"required,gt=0"`
	PriceMonth      float64        `json:"priceMonth" binding:"omitempty,gt=0"`
	PriceYear       float64        `json:"priceYear" binding:"omitempty,gt=0"`
	Stock           *int           `json:"stock" binding:"required,gte=0"`
	Status          string         `json:"status" binding:"omitempty,oneof=active inactive"`
	Badge           string         `json:"badge"`
	Photos          []PhotoRequest `json:"photos" binding:"omitempty,dive"`
	Tags            []int64        `json:"tags"`
	OwnerName       string         `json:"ownerName"`
	OwnerEmail      string         `json:"ownerEmail" binding:"omitempty,email"`
	MinDuration     int            `json:"minDuration" binding:"omitempty,gt=0"`
	MinDurationUnit string         `json:"minDurationUnit" binding:"omitempty,oneof=days weeks months"`
}

func (r ProductRequest) ToView() view_models.Product {
	photos := make([]view_models.Photo, 0, len(r.Photos))
	for _, p := range r.Photos {
		photos = append(photos, view_models.Photo{URL: p.URL, Name: p.Name})
	}

	stock := 0
	if r.Stock != nil {
		stock = *r.Stock
	}

	status := r.Status
	if status == "" {
		status = view_models.StatusActive
	}

	return view_models.Product{
		Name:            r.Name,
		Category:        r.Category,
		City:            r.City,
		PriceDay:        r.PriceDay,
		PriceMonth:      r.PriceMonth,
		PriceYear:       r.PriceYear,
		Stock:           stock,
		Status:          status,
		Badge:           r.Badge,
		Photos:          photos,
		Tags:            r.Tags,
		OwnerName:       r.OwnerName,
		OwnerEmail:      r.OwnerEmail,
		MinDuration:     r.MinDuration,
		MinDurationUnit: r.MinDurationUnit,
	}
}

// SubmitProductRequest is the public storefront listing submission. It always
// enters the review queue regardless of what the client sends.
type SubmitProductRequest struct {
	ProductRequest
}

func (r SubmitProductRequest) ToView() view_models.Product {
	p := r.ProductRequest.ToView()
	p.Badge = view_models.BadgePendingReview
	return p
}
