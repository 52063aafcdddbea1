package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"renthub/internal/models/request_models"
	"renthub/internal/services"
	"renthub/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{authService: authService}
}

func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token}, "Signed in")
}

func (a *AuthController) Logout(c *gin.Context) {
	a.authService.Logout(bearerToken(c))
	utils.RespondSuccess(c, nil, "Signed out")
}

// Session lets the admin portal skip re-authentication on reload.
func (a *AuthController) Session(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{
		"active":  a.authService.SessionActive(bearerToken(c)),
		"enabled": a.authService.Enabled(),
	}, "ok")
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
