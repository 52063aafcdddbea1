package request_models

import "renthub/internal/models/view_models"

type CategoryRequest struct {
	Name   string `json:"name" binding:"required"`
	Icon   string `json:"icon"`
	Active *bool  `json:"active"`
}

func (r CategoryRequest) ToView() view_models.Category {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return view_models.Category{Name: r.Name, Icon: r.Icon, Active: active}
}

type TagRequest struct {
	Name        string `json:"name" binding:"required"`
	Color       string `json:"color"`
	Emoji       string `json:"emoji"`
	Active      *bool  `json:"active"`
	IsBannerTag bool   `json:"isBannerTag"`
	MaxProducts int    `json:"maxProducts" binding:"omitempty,gte=0"`
}

func (r TagRequest) ToView() view_models.Tag {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return view_models.Tag{
		Name:        r.Name,
		Color:       r.Color,
		Emoji:       r.Emoji,
		Active:      active,
		IsBannerTag: r.IsBannerTag,
		MaxProducts: r.MaxProducts,
	}
}
