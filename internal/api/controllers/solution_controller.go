package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"match2b/internal/models/request_models"
	"match2b/internal/services"
	"match2b/pkg/middleware"
	"match2b/pkg/utils"
)

type SolutionController struct {
	solutionService services.SolutionServiceInterface
}

func NewSolutionController(solutionService services.SolutionServiceInterface) *SolutionController {
	return &SolutionController{
		solutionService: solutionService,
	}
}

// ListSolutions godoc
// @Summary List the solution catalog
// @Description Every submitted solution, newest first
// @Tags Solutions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /solutions [get]
func (sc *SolutionController) ListSolutions(c *gin.Context) {
	catalog, err := sc.solutionService.ListCatalog(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, catalog, "Fetched solutions successfully")
}

// ExploreSolutions godoc
// @Summary Search and filter the solution directory
// @Tags Solutions
// @Produce json
// @Param q             query string false "Case-insensitive search over title, company, description and industries"
// @Param industry      query string false "Industry, or 'all'"
// @Param company_sizes query string false "Comma separated company sizes (any-of)"
// @Param budget_ranges query string false "Comma separated budget ranges (any-of)"
// @Param sort          query string false "newest | alphabetical (default: newest)"
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /solutions/explore [get]
func (sc *SolutionController) ExploreSolutions(c *gin.Context) {
	var req request_models.ExploreRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}
	req.CompanySizes = splitCSV(req.CompanySizes)
	req.BudgetRanges = splitCSV(req.BudgetRanges)

	result, err := sc.solutionService.Explore(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Fetched solutions successfully")
}

// GetOptions godoc
// @Summary List industries, company sizes and budget ranges
// @Tags Solutions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /solutions/options [get]
func (sc *SolutionController) GetOptions(c *gin.Context) {
	utils.RespondSuccess(c, sc.solutionService.Options(), "Fetched options successfully")
}

// GetSolution godoc
// @Summary Get a solution by id
// @Tags Solutions
// @Produce json
// @Param id path string true "Solution ID (uuid)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /solutions/{id} [get]
func (sc *SolutionController) GetSolution(c *gin.Context) {
	solution, err := sc.solutionService.GetSolution(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, solution, "Fetched solution successfully")
}

// SubmitSolution godoc
// @Summary Submit a solution listing
// @Tags Solutions
// @Accept json
// @Produce json
// @Param request body request_models.SubmitSolutionRequest true "Solution listing"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /solutions [post]
func (sc *SolutionController) SubmitSolution(c *gin.Context) {
	var req request_models.SubmitSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	solution, err := sc.solutionService.SubmitSolution(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondWithCode(c, http.StatusCreated, solution, "Solution submitted successfully")
}

// ListProviderSolutions godoc
// @Summary List the caller's submitted solutions
// @Description Solutions whose contact email matches the token email
// @Tags Provider
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /provider/solutions [get]
func (sc *SolutionController) ListProviderSolutions(c *gin.Context) {
	result, err := sc.solutionService.ListProviderSolutions(c.Request.Context(), c.GetString(middleware.CtxEmail))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Fetched provider solutions successfully")
}

// splitCSV accepts both repeated parameters and comma separated values.
func splitCSV(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
