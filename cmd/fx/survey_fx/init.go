package survey_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"match2b/internal/config"
	"match2b/internal/repositories"
	"match2b/internal/services"
)

var Module = fx.Provide(
	provideSurveyRepo, provideSurveyService)

func provideSurveyRepo(db *gorm.DB) repositories.SurveyRepositoryInterface {
	return repositories.NewSurveyRepository(db)
}

func provideSurveyService(
	repo repositories.SurveyRepositoryInterface,
	solutions services.SolutionServiceInterface,
	cfg *config.Config,
	log *zap.Logger,
) services.SurveyServiceInterface {
	return services.NewSurveyService(repo, solutions, cfg.Matching.Limit, log.Named("survey"))
}
