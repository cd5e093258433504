package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"match2b/internal/api/controllers"
	"match2b/internal/config"
	"match2b/pkg/middleware"
	"match2b/pkg/utils"
)

func ProvideRouter(
	cfg *config.Config,
	log *zap.Logger,
	verifier *utils.TokenVerifier,
	solutionController *controllers.SolutionController,
	surveyController *controllers.SurveyController,
	dashboardController *controllers.DashboardController) *gin.Engine {

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log.Named("http")))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.HTTP.AllowedOrigins))

	RegisterRoutes(r, log, verifier, solutionController, surveyController, dashboardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	log *zap.Logger,
	verifier *utils.TokenVerifier,
	solutionController *controllers.SolutionController,
	surveyController *controllers.SurveyController,
	dashboardController *controllers.DashboardController) {

	requireAuth := middleware.JWTAuthMiddleware(verifier)
	optionalAuth := middleware.OptionalJWTMiddleware(verifier, log.Named("auth"))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	solutionsGroup := r.Group("/solutions")
	solutionsGroup.GET("", solutionController.ListSolutions)
	solutionsGroup.GET("/explore", solutionController.ExploreSolutions)
	solutionsGroup.GET("/options", solutionController.GetOptions)
	solutionsGroup.GET("/:id", solutionController.GetSolution)
	solutionsGroup.POST("", requireAuth, middleware.RoleMiddleware(utils.RoleProvider), solutionController.SubmitSolution)

	providerGroup := r.Group("/provider", requireAuth, middleware.RoleMiddleware(utils.RoleProvider))
	providerGroup.GET("/solutions", solutionController.ListProviderSolutions)

	surveyGroup := r.Group("/survey")
	surveyGroup.GET("/questions", surveyController.ListQuestions)
	surveyGroup.POST("/responses", optionalAuth, surveyController.SubmitSurvey)
	surveyGroup.POST("/matches", surveyController.ComputeMatches)
	surveyGroup.GET("/responses/me", requireAuth, surveyController.ListMyResponses)
	surveyGroup.POST("/responses/link", requireAuth, surveyController.LinkSession)

	adminGroup := r.Group("/admin", requireAuth, middleware.RoleMiddleware(utils.RoleAdmin))
	adminGroup.GET("/stats", dashboardController.GetStats)
}
