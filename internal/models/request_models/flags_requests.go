package request_models

type ToggleFlagRequest struct {
	Value *bool `json:"value" binding:"required"`
}

type CitiesRequest struct {
	Cities []string `json:"cities" binding:"required,dive,required"`
}
