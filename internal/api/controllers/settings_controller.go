package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripweaver/internal/models/request_models"
	"tripweaver/internal/models/response_models"
	"tripweaver/internal/services"
	"tripweaver/pkg/utils"
)

type SettingsController struct {
	settingsService services.SettingsServiceInterface
}

func NewSettingsController(settingsService services.SettingsServiceInterface) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
	}
}

// GET /settings/:key
func (s *SettingsController) GetSettingHandler(c *gin.Context) {
	key := c.Param("key")
	value, err := s.settingsService.Get(c.Request.Context(), key)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.SettingResponse{Key: key, Value: services.MaskSecret(key, value)}, "")
}

// DELETE /settings/:key
func (s *SettingsController) DeleteSettingHandler(c *gin.Context) {
	if err := s.settingsService.Delete(c.Request.Context(), c.Param("key")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Setting cleared")
}

// PUT /settings/:key
func (s *SettingsController) PutSettingHandler(c *gin.Context) {
	var req request_models.SettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	key := c.Param("key")
	if err := s.settingsService.Set(c.Request.Context(), key, req.Value); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	value := s.settingsService.Lookup(key)
	utils.RespondSuccess(c, response_models.SettingResponse{Key: key, Value: services.MaskSecret(key, value)}, "Setting saved")
}
