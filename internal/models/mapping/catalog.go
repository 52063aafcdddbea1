package mapping

import (
	"renthub/internal/models/view_models"
	"renthub/internal/models/wire_models"
)

func CategoryFromWire(w wire_models.Category) view_models.Category {
	return view_models.Category{
		ID:        w.ID,
		Name:      w.Name,
		Icon:      w.Icon,
		Active:    w.Active,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func CategoryToWire(v view_models.Category) wire_models.Category {
	return wire_models.Category{
		ID:        v.ID,
		Name:      v.Name,
		Icon:      v.Icon,
		Active:    v.Active,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func TagFromWire(w wire_models.Tag) view_models.Tag {
	return view_models.Tag{
		ID:          w.ID,
		Name:        w.Name,
		Color:       w.Color,
		Emoji:       w.Emoji,
		Active:      w.Active,
		IsBannerTag: w.IsBannerTag,
		MaxProducts: w.MaxProducts,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func TagToWire(v view_models.Tag) wire_models.Tag {
	return wire_models.Tag{
		ID:          v.ID,
		Name:        v.Name,
		Color:       v.Color,
		Emoji:       v.Emoji,
		Active:      v.Active,
		IsBannerTag: v.IsBannerTag,
		MaxProducts: v.MaxProducts,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}
