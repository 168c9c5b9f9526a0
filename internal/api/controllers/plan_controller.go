package controllers

import (
	"github.com/gin-gonic/gin"

	"tripweaver/internal/models/response_models"
	"tripweaver/internal/services"
	"tripweaver/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// GET /plans
func (p *PlanController) ListPlansHandler(c *gin.Context) {
	plans, err := p.planService.ListPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	summaries := make([]response_models.PlanSummary, 0, len(plans))
	for _, plan := range plans {
		summaries = append(summaries, response_models.NewPlanSummary(plan))
	}
	utils.RespondSuccess(c, summaries, "")
}

// GET /plans/:slug
func (p *PlanController) GetPlanHandler(c *gin.Context) {
	plan, err := p.planService.GetPlan(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "")
}

// DELETE /plans/:slug
func (p *PlanController) DeletePlanHandler(c *gin.Context) {
	if err := p.planService.DeletePlan(c.Request.Context(), c.Param("slug")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Plan deleted")
}
