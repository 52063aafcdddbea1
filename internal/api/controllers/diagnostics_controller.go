package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"renthub/internal/gateway"
	"renthub/pkg/utils"
)

type DiagnosticsController struct {
	api gateway.TableAPI
}

func NewDiagnosticsController(api gateway.TableAPI) *DiagnosticsController {
	return &DiagnosticsController{api: api}
}

// Healthz reports the backend mode and whether it is reachable. The
// service itself always answers 200; a degraded backend shows up in the
// payload, not the status code.
func (dc *DiagnosticsController) Healthz(c *gin.Context) {
	backend := "ok"
	if err := dc.api.Ping(c.Request.Context()); err != nil {
		backend = err.Error()
	}
	utils.RespondSuccess(c, gin.H{
		"mode":    dc.api.Mode(),
		"backend": backend,
	}, "")
}

func (dc *DiagnosticsController) NotFound(c *gin.Context) {
	utils.RespondError(c, http.StatusNotFound, "Route not found")
}
