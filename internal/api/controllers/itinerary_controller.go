package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripweaver/internal/itinerary"
	"tripweaver/internal/models/request_models"
	"tripweaver/internal/models/response_models"
	"tripweaver/internal/services"
	"tripweaver/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// POST /itineraries/generate
func (i *ItineraryController) GenerateHandler(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "At least one destination is required")
		return
	}

	prefs, err := req.ToPreferences()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	result, err := i.itineraryService.Generate(c.Request.Context(), prefs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Itinerary generated successfully")
}

// POST /itineraries/parse
func (i *ItineraryController) ParseHandler(c *gin.Context) {
	var req request_models.ParseItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "content is required")
		return
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	parsed, err := i.itineraryService.Parse(c.Request.Context(), req.Content, start, req.Persona)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, parsed, "Itinerary parsed")
}

// POST /itineraries/annotate
func (i *ItineraryController) AnnotateHandler(c *gin.Context) {
	var req request_models.AnnotateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "text is required")
		return
	}

	utils.RespondSuccess(c, response_models.AnnotateResponse{Spans: itinerary.Annotate(req.Text)}, "")
}

// GET /venues/link?name=&kind=web|maps
func (i *ItineraryController) VenueLinkHandler(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, "name is required")
		return
	}

	kind := c.DefaultQuery("kind", "web")
	var url string
	switch kind {
	case "web":
		url = itinerary.ResolveVenueURL(name)
	case "maps":
		url = itinerary.ResolveMapsURL(name)
	default:
		utils.RespondError(c, http.StatusBadRequest, "kind must be web or maps")
		return
	}

	utils.RespondSuccess(c, response_models.VenueLinkResponse{Name: name, Kind: kind, URL: url}, "")
}
