package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripweaver/internal/models/request_models"
	"tripweaver/internal/models/response_models"
	"tripweaver/internal/services"
	"tripweaver/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
	tokenTTL    time.Duration
}

func NewAuthController(authService services.AuthServiceInterface, issuer *utils.TokenIssuer) *AuthController {
	return &AuthController{
		authService: authService,
		tokenTTL:    issuer.TTL(),
	}
}

// POST /auth/token
func (a *AuthController) TokenHandler(c *gin.Context) {
	var req request_models.AdminTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "password is required")
		return
	}

	token, err := a.authService.IssueAdminToken(c.Request.Context(), req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.TokenResponse{
		Token:     token,
		ExpiresIn: int64(a.tokenTTL.Seconds()),
	}, "Token issued")
}
