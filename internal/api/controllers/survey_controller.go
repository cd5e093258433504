package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"match2b/internal/matching"
	"match2b/internal/models/request_models"
	"match2b/internal/services"
	"match2b/pkg/middleware"
	"match2b/pkg/utils"
)

type SurveyController struct {
	surveyService services.SurveyServiceInterface
}

func NewSurveyController(surveyService services.SurveyServiceInterface) *SurveyController {
	return &SurveyController{
		surveyService: surveyService,
	}
}

// ListQuestions godoc
// @Summary List the active survey questions
// @Tags Survey
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /survey/questions [get]
func (sc *SurveyController) ListQuestions(c *gin.Context) {
	questions, err := sc.surveyService.ListQuestions(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, questions, "Fetched survey questions successfully")
}

// SubmitSurvey godoc
// @Summary Save survey answers and get matches
// @Description Anonymous submissions are allowed; a bearer token links the response to the caller
// @Tags Survey
// @Accept json
// @Produce json
// @Param request body request_models.SubmitSurveyRequest true "Survey answers"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /survey/responses [post]
func (sc *SurveyController) SubmitSurvey(c *gin.Context) {
	var req request_models.SubmitSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Survey answers are required")
		return
	}

	var userID *uuid.UUID
	if id, ok := middleware.CurrentUserID(c); ok {
		userID = &id
	}

	result, err := sc.surveyService.SubmitSurvey(c.Request.Context(), req, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondWithCode(c, http.StatusCreated, result, "Survey submitted successfully")
}

// ComputeMatches godoc
// @Summary Score the catalog against survey answers
// @Tags Survey
// @Accept json
// @Produce json
// @Param request body request_models.MatchRequest true "Answers and optional limit (1-50)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /survey/matches [post]
func (sc *SurveyController) ComputeMatches(c *gin.Context) {
	var req request_models.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	matches, err := sc.surveyService.Matches(c.Request.Context(), matching.SurveyAnswers(req.Answers), req.Limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, matches, "Computed matches successfully")
}

// ListMyResponses godoc
// @Summary List the caller's survey responses
// @Tags Survey
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /survey/responses/me [get]
func (sc *SurveyController) ListMyResponses(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrUnauthorized)
		return
	}

	history, err := sc.surveyService.History(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, history, "Fetched survey responses successfully")
}

// LinkSession godoc
// @Summary Claim anonymous responses of a session
// @Tags Survey
// @Accept json
// @Produce json
// @Param request body request_models.LinkSessionRequest true "Session to claim"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /survey/responses/link [post]
func (sc *SurveyController) LinkSession(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrUnauthorized)
		return
	}

	var req request_models.LinkSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Session id is required")
		return
	}

	result, err := sc.surveyService.LinkSession(c.Request.Context(), req.SessionID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Survey responses linked successfully")
}
