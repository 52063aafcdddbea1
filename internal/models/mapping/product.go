// Package mapping joins the wire DTOs of the hosted table API with the view
// models served to the admin and storefront. One pair of functions per
// entity; the pairs are exact inverses over the semantic fields.
package mapping

import (
	"fmt"
	"path"

	"github.com/lib/pq"

	"renthub/internal/models/view_models"
	"renthub/internal/models/wire_models"
)

// ProductFromWire rehydrates the bare photo URL list into photo objects with
// deterministic synthetic ids ("db-{recordId}-{index}") so the grid can key
// rows without the backend storing photo ids.
func ProductFromWire(w wire_models.Product) view_models.Product {
	photos := make([]view_models.Photo, 0, len(w.Photos))
	for i, url := range w.Photos {
		photos = append(photos, view_models.Photo{
			ID:   fmt.Sprintf("db-%d-%d", w.ID, i),
			URL:  url,
			Name: path.Base(url),
		})
	}

	tags := make([]int64, 0, len(w.TagIDs))
	tags = append(tags, w.TagIDs...)

	return view_models.Product{
		ID:              w.ID,
		Name:            w.Name,
		Category:        w.Category,
		City:            w.City,
		PriceDay:        w.PriceDay,
		PriceMonth:      w.PriceMonth,
		PriceYear:       w.PriceYear,
		Stock:           w.Stock,
		Status:          w.Status,
		Badge:           w.Badge,
		Photos:          photos,
		Tags:            tags,
		OwnerName:       w.OwnerName,
		OwnerEmail:      w.OwnerEmail,
		MinDuration:     w.MinDuration,
		MinDurationUnit: w.MinDurationUnit,
		CreatedAt:       w.CreatedAt,
		UpdatedAt:       w.UpdatedAt,
	}
}

func ProductToWire(v view_models.Product) wire_models.Product {
	photos := make(pq.StringArray, 0, len(v.Photos))
	for _, p := range v.Photos {
		photos = append(photos, p.URL)
	}

	tagIDs := make(pq.Int64Array, 0, len(v.Tags))
	tagIDs = append(tagIDs, v.Tags...)

	return wire_models.Product{
		ID:              v.ID,
		Name:            v.Name,
		Category:        v.Category,
		City:            v.City,
		PriceDay:        v.PriceDay,
		PriceMonth:      v.PriceMonth,
		PriceYear:       v.PriceYear,
		Stock:           v.Stock,
		Status:          v.Status,
		Badge:           v.Badge,
		Photos:          photos,
		TagIDs:          tagIDs,
		OwnerName:       v.OwnerName,
		OwnerEmail:      v.OwnerEmail,
		MinDuration:     v.MinDuration,
		MinDurationUnit: v.MinDurationUnit,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}
