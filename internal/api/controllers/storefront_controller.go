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

// StorefrontController serves the public catalog: browse, product detail
// and listing submission. No session required.
type StorefrontController struct {
	products   *stores.ProductStore
	categories *stores.CategoryStore
	tags       *stores.TagStore
	plans      *stores.PlanStore
	flags      *stores.FeatureFlagStore
	cities     *stores.CityStore
}

func NewStorefrontController(
	products *stores.ProductStore,
	categories *stores.CategoryStore,
	tags *stores.TagStore,
	plans *stores.PlanStore,
	flags *stores.FeatureFlagStore,
	cities *stores.CityStore,
) *StorefrontController {
	return &StorefrontController{
		products:   products,
		categories: categories,
		tags:       tags,
		plans:      plans,
		flags:      flags,
		cities:     cities,
	}
}

// bannerRail returns the products carried by banner tags, capped per tag,
// or nil while the banner rail flag is off.
func (sc *StorefrontController) bannerRail() []gin.H {
	if !sc.flags.Enabled(view_models.FlagBannerRail) {
		return nil
	}
	active := sc.products.Active()
	rail := make([]gin.H, 0)
	for _, tag := range sc.tags.BannerTags() {
		picked := make([]view_models.Product, 0, tag.MaxProducts)
		for _, p := range active {
			if p.HasTag(tag.ID) {
				picked = append(picked, p)
				if tag.MaxProducts > 0 && len(picked) == tag.MaxProducts {
					break
				}
			}
		}
		rail = append(rail, gin.H{"tag": tag, "products": picked})
	}
	return rail
}

// Home aggregates everything the landing page needs in one response.
func (sc *StorefrontController) Home(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{
		"categories": sc.categories.Active(),
		"cities":     sc.cities.List(),
		"plans":      sc.plans.List(),
		"banners":    sc.bannerRail(),
		"products":   sc.products.Active(),
	}, "")
}

func (sc *StorefrontController) ListProducts(c *gin.Context) {
	q, ok := parseGridQuery(c)
	if !ok {
		return
	}
	filters := []listview.Filter[view_models.Product]{
		{Value: c.Query("category"), Pred: func(p view_models.Product, v string) bool { return p.Category == v }},
		{Value: c.Query("city"), Pred: func(p view_models.Product, v string) bool { return p.City == v }},
	}
	items := listview.Select(sc.products.Active(), q.Search, productSearchFields, q.Sort, q.Dir, filters, productFields)
	respondGrid(c, items, q)
}

func (sc *StorefrontController) GetProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, found := sc.products.Get(id)
	if !found || p.Status != view_models.StatusActive || p.Pending() {
		utils.RespondError(c, http.StatusNotFound, "Product not found")
		return
	}
	utils.RespondSuccess(c, p, "")
}

func (sc *StorefrontController) ListCategories(c *gin.Context) {
	utils.RespondSuccess(c, sc.categories.Active(), "")
}

func (sc *StorefrontController) ListPlans(c *gin.Context) {
	utils.RespondSuccess(c, sc.plans.List(), "")
}

// Banner serves one tag's rail. An unknown or non-banner tag is a 404; a
// disabled rail flag yields the tag with no products.
func (sc *StorefrontController) Banner(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	tag, found := sc.tags.Get(id)
	if !found || !tag.IsBannerTag {
		utils.RespondError(c, http.StatusNotFound, "Banner not found")
		return
	}

	picked := make([]view_models.Product, 0)
	if sc.flags.Enabled(view_models.FlagBannerRail) {
		for _, p := range sc.products.Active() {
			if p.HasTag(tag.ID) {
				picked = append(picked, p)
				if tag.MaxProducts > 0 && len(picked) == tag.MaxProducts {
					break
				}
			}
		}
	}
	utils.RespondSuccess(c, gin.H{"tag": tag, "products": picked}, "")
}

// SubmitListing files a public listing into the review queue. It stays
// invisible on the storefront until an admin approves it.
func (sc *StorefrontController) SubmitListing(c *gin.Context) {
	var req request_models.SubmitProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if !sc.cities.Has(req.City) {
		utils.RespondError(c, http.StatusBadRequest, "Unknown city")
		return
	}
	saved, err := sc.products.Add(c.Request.Context(), req.ToView())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, saved, "Listing submitted for review")
}
