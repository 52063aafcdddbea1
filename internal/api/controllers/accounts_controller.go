package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"renthub/internal/listview"
	"renthub/internal/models/request_models"
	"renthub/internal/models/view_models"
	"renthub/internal/stores"
	"renthub/pkg/utils"
)

var profileFields = listview.Accessors[view_models.Profile]{
	"name":      func(p view_models.Profile) any { return p.Name },
	"email":     func(p view_models.Profile) any { return p.Email },
	"plan":      func(p view_models.Profile) any { return p.Plan },
	"status":    func(p view_models.Profile) any { return p.Status },
	"city":      func(p view_models.Profile) any { return p.City },
	"createdAt": func(p view_models.Profile) any { return p.CreatedAt },
}

var customFieldFields = listview.Accessors[view_models.CustomField]{
	"key":       func(f view_models.CustomField) any { return f.Key },
	"label":     func(f view_models.CustomField) any { return f.Label },
	"inputType": func(f view_models.CustomField) any { return f.InputType },
}

// AccountsController serves the user profile grid and the custom field
// definitions that extend it.
type AccountsController struct {
	profiles *stores.ProfileStore
	fields   *stores.CustomFieldStore
	flags    *stores.FeatureFlagStore
}

func NewAccountsController(profiles *stores.ProfileStore, fields *stores.CustomFieldStore, flags *stores.FeatureFlagStore) *AccountsController {
	return &AccountsController{profiles: profiles, fields: fields, flags: flags}
}

func (ac *AccountsController) ListProfiles(c *gin.Context) {
	q, ok := parseGridQuery(c)
	if !ok {
		return
	}
	filters := []listview.Filter[view_models.Profile]{
		{Value: c.Query("status"), Pred: func(p view_models.Profile, v string) bool { return p.Status == v }},
		{Value: c.Query("plan"), Pred: func(p view_models.Profile, v string) bool { return p.Plan == v }},
	}
	items := listview.Select(ac.profiles.List(), q.Search, []string{"name", "email", "city"}, q.Sort, q.Dir, filters, profileFields)
	respondGrid(c, items, q)
}

// checkRequiredCustom enforces required custom fields only while the
// custom fields feature is enabled.
func (ac *AccountsController) checkRequiredCustom(custom map[string]any) error {
	if !ac.flags.Enabled(view_models.FlagCustomFields) {
		return nil
	}
	for _, f := range ac.fields.ActiveFields() {
		if !f.Required {
			continue
		}
		v, ok := custom[f.Key]
		if !ok || v == nil || v == "" {
			return fmt.Errorf("%w: %s is required", utils.ErrValidation, f.Label)
		}
	}
	return nil
}

func (ac *AccountsController) CreateProfile(c *gin.Context) {
	var req request_models.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := ac.checkRequiredCustom(req.Custom); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	saved, err := ac.profiles.Add(c.Request.Context(), req.ToView())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, saved, "Profile created")
}

func (ac *AccountsController) UpdateProfile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req request_models.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := ac.checkRequiredCustom(req.Custom); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	saved, err := ac.profiles.Update(c.Request.Context(), id, req.ToView())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, saved, "Profile updated")
}

func (ac *AccountsController) DeleteProfile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ac.profiles.Remove(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Profile deleted")
}

func (ac *AccountsController) ListCustomFields(c *gin.Context) {
	q, ok := parseGridQuery(c)
	if !ok {
		return
	}
	items := listview.Select(ac.fields.List(), q.Search, []string{"key", "label"}, q.Sort, q.Dir, nil, customFieldFields)
	respondGrid(c, items, q)
}

func (ac *AccountsController) CreateCustomField(c *gin.Context) {
	var req request_models.CustomFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	saved, err := ac.fields.Add(c.Request.Context(), req.ToView())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, saved, "Field created")
}

func (ac *AccountsController) UpdateCustomField(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req request_models.CustomFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	saved, err := ac.fields.Update(c.Request.Context(), id, req.ToView())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, saved, "Field updated")
}

func (ac *AccountsController) DeleteCustomField(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ac.fields.Remove(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Field deleted")
}
