package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"renthub/internal/gateway"
	"renthub/internal/listview"
	"renthub/pkg/utils"
)

// GridQuery is the common admin-grid query surface: free-text search, one
// sort column with direction, and 1-based pagination from the fixed page
// size set.
type GridQuery struct {
	Search   string
	Sort     string
	Dir      listview.Dir
	Page     int
	PageSize int
}

func parseGridQuery(c *gin.Context) (GridQuery, bool) {
	q := GridQuery{
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
		Dir:    listview.Asc,
	}
	if c.Query("dir") == string(listview.Desc) {
		q.Dir = listview.Desc
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return q, false
	}
	q.Page = page

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || !listview.AllowedPageSize(pageSize) {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size")
		return q, false
	}
	q.PageSize = pageSize

	return q, true
}

// respondGrid paginates an already filtered/sorted list and wraps it in the
// grid envelope.
func respondGrid[T any](c *gin.Context, items []T, q GridQuery) {
	total := len(items)
	utils.RespondSuccess(c, gin.H{
		"items":      listview.Paginate(items, q.Page, q.PageSize),
		"total":      total,
		"page":       q.Page,
		"pageSize":   q.PageSize,
		"totalPages": listview.TotalPages(total, q.PageSize),
	}, "ok")
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

// handleServiceError maps domain sentinels and gateway kinds onto HTTP
// codes. Gateway kinds are decided at the gateway boundary; nothing here
// inspects error text.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrRecordNotFound):
		utils.RespondError(c, http.StatusNotFound, "Record not found")
	case errors.Is(err, utils.ErrPendingOnly):
		utils.RespondError(c, http.StatusConflict, "Product is not awaiting review")
	case errors.Is(err, utils.ErrBannerTagFull):
		utils.RespondError(c, http.StatusConflict, "Banner tag is at capacity, remove it from another product first")
	case errors.Is(err, utils.ErrUnknownFlag):
		utils.RespondError(c, http.StatusNotFound, "Unknown feature flag")
	case errors.Is(err, utils.ErrInvalidLogin):
		utils.RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, utils.ErrLoginDisabled):
		utils.RespondError(c, http.StatusServiceUnavailable, "Admin login is not configured")
	default:
		switch gateway.KindOf(err) {
		case gateway.KindConflict:
			utils.RespondError(c, http.StatusConflict, "The record is still referenced by other data")
		case gateway.KindForbidden:
			utils.RespondError(c, http.StatusForbidden, "The backend write policy rejected this change")
		case gateway.KindNotFound:
			utils.RespondError(c, http.StatusNotFound, "Record not found")
		case gateway.KindNetwork:
			utils.RespondError(c, http.StatusBadGateway, "Backend unreachable")
		default:
			utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
		}
	}
}

// handleDeleteError adds the two admin-facing hints for delete failures on
// top of the standard mapping.
func handleDeleteError(c *gin.Context, err error) {
	switch gateway.KindOf(err) {
	case gateway.KindConflict:
		utils.RespondError(c, http.StatusConflict, "This record still has products assigned. Reassign them first.")
	case gateway.KindForbidden:
		utils.RespondError(c, http.StatusForbidden, "Deletes are blocked by the write policy. Run the write-policy script against the backend.")
	default:
		handleServiceError(c, err)
	}
}
