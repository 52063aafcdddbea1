package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"renthub/internal/listview"
	"renthub/internal/models/request_models"
	"renthub/internal/models/view_models"
	"renthub/internal/stores"
	"renthub/pkg/utils"
)

var categoryFields = listview.Accessors[view_models.Category]{
	"name":   func(cat view_models.Category) any { return cat.Name },
	"active": func(cat view_models.Category) any { return cat.Active },
}

var tagFields = listview.Accessors[view_models.Tag]{
	"name":        func(t view_models.Tag) any { return t.Name },
	"maxProducts": func(t view_models.Tag) any { return t.MaxProducts },
	"active":      func(t view_models.Tag) any { return t.Active },
}

// TaxonomyController serves the category and tag grids.
type TaxonomyController struct {
	categories *stores.CategoryStore
	tags       *stores.TagStore
}

func NewTaxonomyController(categories *stores.CategoryStore, tags *stores.TagStore) *TaxonomyController {
	return &TaxonomyController{categories: categories, tags: tags}
}

func (tc *TaxonomyController) ListCategories(c *gin.Context) {
	q, ok := parseGridQuery(c)
	if !ok {
		return
	}
	items := listview.Select(tc.categories.List(), q.Search, []string{"name"}, q.Sort, q.Dir, nil, categoryFields)
	respondGrid(c, items, q)
}

func (tc *TaxonomyController) CreateCategory(c *gin.Context) {
	var req request_models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	saved, err := tc.categories.Add(c.Request.Context(), req.ToView())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, saved, "Category created")
}

func (tc *TaxonomyController) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req request_models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	saved, err := tc.categories.Update(c.Request.Context(), id, req.ToView())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, saved, "Category updated")
}

// DeleteCategory surfaces the reassign hint when products still reference
// the category.
func (tc *TaxonomyController) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := tc.categories.Remove(c.Request.Context(), id); err != nil {
		handleDeleteError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Category deleted")
}

func (tc *TaxonomyController) ListTags(c *gin.Context) {
	q, ok := parseGridQuery(c)
	if !ok {
		return
	}
	filters := []listview.Filter[view_models.Tag]{
		{Value: c.Query("banner"), Pred: func(t view_models.Tag, v string) bool {
			return (v == "true") == t.IsBannerTag
		}},
	}
	items := listview.Select(tc.tags.List(), q.Search, []string{"name"}, q.Sort, q.Dir, filters, tagFields)
	respondGrid(c, items, q)
}

func (tc *TaxonomyController) CreateTag(c *gin.Context) {
	var req request_models.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	saved, err := tc.tags.Add(c.Request.Context(), req.ToView())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, saved, "Tag created")
}

func (tc *TaxonomyController) UpdateTag(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req request_models.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	saved, err := tc.tags.Update(c.Request.Context(), id, req.ToView())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, saved, "Tag updated")
}

func (tc *TaxonomyController) DeleteTag(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := tc.tags.Remove(c.Request.Context(), id); err != nil {
		handleDeleteError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Tag deleted")
}
