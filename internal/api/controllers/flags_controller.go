package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"renthub/internal/models/request_models"
	"renthub/internal/stores"
	"renthub/pkg/utils"
)

// FlagsController exposes the feature flag switches and the city list
// used to validate product locations.
type FlagsController struct {
	flags  *stores.FeatureFlagStore
	cities *stores.CityStore
}

func NewFlagsController(flags *stores.FeatureFlagStore, cities *stores.CityStore) *FlagsController {
	return &FlagsController{flags: flags, cities: cities}
}

func (fc *FlagsController) ListFlags(c *gin.Context) {
	utils.RespondSuccess(c, fc.flags.List(), "")
}

func (fc *FlagsController) ToggleFlag(c *gin.Context) {
	key := c.Param("key")
	var req request_models.ToggleFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := fc.flags.Toggle(c.Request.Context(), key, *req.Value); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"key": key, "enabled": *req.Value}, "Flag updated")
}

func (fc *FlagsController) ListCities(c *gin.Context) {
	utils.RespondSuccess(c, fc.cities.List(), "")
}

func (fc *FlagsController) SaveCities(c *gin.Context) {
	var req request_models.CitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := fc.cities.Save(c.Request.Context(), req.Cities); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, req.Cities, "Cities saved")
}
