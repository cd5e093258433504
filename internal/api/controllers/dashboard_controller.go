package controllers

import (
	"github.com/gin-gonic/gin"
	"match2b/internal/services"
	"match2b/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetStats godoc
// @Summary Get admin dashboard counts
// @Description Total users, providers, survey responses and solutions
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/stats [get]
func (p *DashboardController) GetStats(c *gin.Context) {
	stats, err := p.dashboardService.Stats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Dashboard data fetched successfully")
}
