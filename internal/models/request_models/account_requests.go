package request_models

import "renthub/internal/models/view_models"

type ProfileRequest struct {
	Name          string         `json:"name" binding:"required"`
	Email         string         `json:"email" binding:"required,email"`
	Plan          string         `json:"plan"`
	Status        string         `json:"status" binding:"omitempty,oneof=active suspended"`
	EmailVerified bool           `json:"emailVerified"`
	PhoneVerified bool           `json:"phoneVerified"`
	City          string         `json:"city"`
	Phone         string         `json:"phone"`
	Custom        map[string]any `json:"custom"`
}

func (r ProfileRequest) ToView() view_models.Profile {
	status := r.Status
	if status == "" {
		status = view_models.ProfileActive
	}
	return view_models.Profile{
		Name:          r.Name,
		Email:         r.Email,
		Plan:          r.Plan,
		Status:        status,
		EmailVerified: r.EmailVerified,
		PhoneVerified: r.PhoneVerified,
		City:          r.City,
		Phone:         r.Phone,
		Custom:        r.Custom,
	}
}

type CustomFieldRequest struct {
	Key        string `json:"key" binding:"required"`
	Label      string `json:"label" binding:"required"`
	InputType  string `json:"inputType" binding:"required,oneof=text number date select checkbox"`
	Required   bool   `json:"required"`
	ShowInList bool   `json:"showInList"`
	Active     *bool  `json:"active"`
}

func (r CustomFieldRequest) ToView() view_models.CustomField {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return view_models.CustomField{
		Key:        r.Key,
		Label:      r.Label,
		InputType:  r.InputType,
		Required:   r.Required,
		ShowInList: r.ShowInList,
		Active:     active,
	}
}
