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

var planFields = listview.Accessors[view_models.Plan]{
	"name":        func(p view_models.Plan) any { return p.Name },
	"price":       func(p view_models.Plan) any { return p.Price },
	"subscribers": func(p view_models.Plan) any { return p.Subscribers },
	"revenue":     func(p view_models.Plan) any { return p.Revenue },
}

var orderFields = listview.Accessors[view_models.Order]{
	"productName": func(o view_models.Order) any { return o.ProductName },
	"userName":    func(o view_models.Order) any { return o.UserName },
	"amount":      func(o view_models.Order) any { return o.Amount },
	"days":        func(o view_models.Order) any { return o.Days },
	"status":      func(o view_models.Order) any { return o.Status },
	"startDate":   func(o view_models.Order) any { return o.StartDate },
	"createdAt":   func(o view_models.Order) any { return o.CreatedAt },
}

var orderSearchFields = []string{"productName", "userName", "userEmail"}

// CommerceController serves the subscription plan and order grids.
type CommerceController struct {
	plans  *stores.PlanStore
	orders *stores.OrderStore
}

func NewCommerceController(plans *stores.PlanStore, orders *stores.OrderStore) *CommerceController {
	return &CommerceController{plans: plans, orders: orders}
}

func (cc *CommerceController) ListPlans(c *gin.Context) {
	q, ok := parseGridQuery(c)
	if !ok {
		return
	}
	items := listview.Select(cc.plans.List(), q.Search, []string{"name"}, q.Sort, q.Dir, nil, planFields)
	respondGrid(c, items, q)
}

func (cc *CommerceController) CreatePlan(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	saved, err := cc.plans.Add(c.Request.Context(), req.ToView())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, saved, "Plan created")
}

func (cc *CommerceController) UpdatePlan(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	saved, err := cc.plans.Update(c.Request.Context(), id, req.ToView())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, saved, "Plan updated")
}

func (cc *CommerceController) DeletePlan(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := cc.plans.Remove(c.Request.Context(), id); err != nil {
		handleDeleteError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Plan deleted")
}

func (cc *CommerceController) ListOrders(c *gin.Context) {
	q, ok := parseGridQuery(c)
	if !ok {
		return
	}
	filters := []listview.Filter[view_models.Order]{
		{Value: c.Query("status"), Pred: func(o view_models.Order, v string) bool { return o.Status == v }},
	}
	items := listview.Select(cc.orders.List(), q.Search, orderSearchFields, q.Sort, q.Dir, filters, orderFields)
	respondGrid(c, items, q)
}

func (cc *CommerceController) CreateOrder(c *gin.Context) {
	var req request_models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	saved, err := cc.orders.Add(c.Request.Context(), req.ToView())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, saved, "Order created")
}

func (cc *CommerceController) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req request_models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	saved, err := cc.orders.Update(c.Request.Context(), id, req.ToView())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, saved, "Order updated")
}

func (cc *CommerceController) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := cc.orders.Remove(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Order deleted")
}
