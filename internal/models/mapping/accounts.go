package mapping

import (
	"gorm.io/datatypes"

	"renthub/internal/models/view_models"
	"renthub/internal/models/wire_models"
)

func ProfileFromWire(w wire_models.Profile) view_models.Profile {
	var custom map[string]any
	if len(w.CustomValues) > 0 {
		custom = make(map[string]any, len(w.CustomValues))
		for k, v := range w.CustomValues {
			custom[k] = v
		}
	}

	return view_models.Profile{
		ID:            w.ID,
		Name:          w.Name,
		Email:         w.Email,
		Plan:          w.Plan,
		Status:        w.Status,
		EmailVerified: w.EmailVerified,
		PhoneVerified: w.PhoneVerified,
		City:          w.City,
		Phone:         w.Phone,
		Custom:        custom,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}

func ProfileToWire(v view_models.Profile) wire_models.Profile {
	var custom datatypes.JSONMap
	if len(v.Custom) > 0 {
		custom = make(datatypes.JSONMap, len(v.Custom))
		for k, val := range v.Custom {
			custom[k] = val
		}
	}

	return wire_models.Profile{
		ID:            v.ID,
		Name:          v.Name,
		Email:         v.Email,
		Plan:          v.Plan,
		Status:        v.Status,
		EmailVerified: v.EmailVerified,
		PhoneVerified: v.PhoneVerified,
		City:          v.City,
		Phone:         v.Phone,
		CustomValues:  custom,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func CustomFieldFromWire(w wire_models.CustomField) view_models.CustomField {
	return view_models.CustomField{
		ID:         w.ID,
		Key:        w.Key,
		Label:      w.Label,
		InputType:  w.InputType,
		Required:   w.Required,
		ShowInList: w.ShowInList,
		Active:     w.Active,
		CreatedAt:  w.CreatedAt,
		UpdatedAt:  w.UpdatedAt,
	}
}

func CustomFieldToWire(v view_models.CustomField) wire_models.CustomField {
	return wire_models.CustomField{
		ID:         v.ID,
		Key:        v.Key,
		Label:      v.Label,
		InputType:  v.InputType,
		Required:   v.Required,
		ShowInList: v.ShowInList,
		Active:     v.Active,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

func FeatureFlagFromWire(w wire_models.FeatureFlag) view_models.FeatureFlag {
	return view_models.FeatureFlag{
		ID:        w.ID,
		Key:       w.Key,
		Enabled:   w.Enabled,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func FeatureFlagToWire(v view_models.FeatureFlag) wire_models.FeatureFlag {
	return wire_models.FeatureFlag{
		ID:        v.ID,
		Key:       v.Key,
		Enabled:   v.Enabled,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
