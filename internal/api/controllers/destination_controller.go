package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripweaver/internal/models/response_models"
	"tripweaver/internal/services"
	"tripweaver/pkg/utils"
)

type DestinationController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationController(destinationService services.DestinationServiceInterface) *DestinationController {
	return &DestinationController{
		destinationService: destinationService,
	}
}

// GET /destinations/image?query=
func (d *DestinationController) ImageHandler(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		utils.RespondError(c, http.StatusBadRequest, "query is required")
		return
	}

	url, err := d.destinationService.ImageURL(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.DestinationImageResponse{Query: query, ImageURL: url}, "")
}

// GET /destinations/predictions?input=
func (d *DestinationController) PredictionsHandler(c *gin.Context) {
	predictions, err := d.destinationService.Predictions(c.Request.Context(), c.Query("input"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, predictions, "")
}
