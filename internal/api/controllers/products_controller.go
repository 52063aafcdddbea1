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

var productFields = listview.Accessors[view_models.Product]{
	"name":      func(p view_models.Product) any { return p.Name },
	"category":  func(p view_models.Product) any { return p.Category },
	"city":      func(p view_models.Product) any { return p.City },
	"priceDay":  func(p view_models.Product) any { return p.PriceDay },
	"stock":     func(p view_models.Product) any { return p.Stock },
	"status":    func(p view_models.Product) any { return p.Status },
	"badge":     func(p view_models.Product) any { return p.Badge },
	"ownerName": func(p view_models.Product) any { return p.OwnerName },
	"createdAt": func(p view_models.Product) any { return p.CreatedAt },
}

var productSearchFields = []string{"name", "category", "city", "ownerName"}

type ProductsController struct {
	products *stores.ProductStore
	cities   *stores.CityStore
}

func NewProductsController(products *stores.ProductStore, cities *stores.CityStore) *ProductsController {
	return &ProductsController{products: products, cities: cities}
}

// List serves the admin product grid with search, per-column filters,
// sorting and pagination.
func (pc *ProductsController) List(c *gin.Context) {
	q, ok := parseGridQuery(c)
	if !ok {
		return
	}

	filters := []listview.Filter[view_models.Product]{
		{Value: c.Query("category"), Pred: func(p view_models.Product, v string) bool { return p.Category == v }},
		{Value: c.Query("status"), Pred: func(p view_models.Product, v string) bool { return p.Status == v }},
		{Value: c.Query("badge"), Pred: func(p view_models.Product, v string) bool { return p.Badge == v }},
		{Value: c.Query("city"), Pred: func(p view_models.Product, v string) bool { return p.City == v }},
	}

	items := listview.Select(pc.products.List(), q.Search, productSearchFields, q.Sort, q.Dir, filters, productFields)
	respondGrid(c, items, q)
}

func (pc *ProductsController) Create(c *gin.Context) {
	var req request_models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if !pc.cities.Has(req.City) {
		utils.RespondError(c, http.StatusBadRequest, "Unknown city")
		return
	}

	saved, err := pc.products.Add(c.Request.Context(), req.ToView())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, saved, "Product created")
}

func (pc *ProductsController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req request_models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	saved, err := pc.products.Update(c.Request.Context(), id, req.ToView())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, saved, "Product updated")
}

func (pc *ProductsController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := pc.products.Remove(c.Request.Context(), id); err != nil {
		handleDeleteError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Product deleted")
}

func (pc *ProductsController) Approve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	saved, err := pc.products.Approve(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, saved, "Product approved")
}

func (pc *ProductsController) Reject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := pc.products.Reject(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Product rejected and removed")
}
