package solutions_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"match2b/internal/repositories"
	"match2b/internal/services"
	mem "match2b/pkg/memcache"
)

var Module = fx.Provide(
	provideSolutionRepo, provideSolutionService)

func provideSolutionRepo(db *gorm.DB) repositories.SolutionRepositoryInterface {
	return repositories.NewSolutionRepository(db)
}

func provideSolutionService(repo repositories.SolutionRepositoryInterface, cache mem.CatalogCache, log *zap.Logger) services.SolutionServiceInterface {
	return services.NewSolutionService(repo, cache, log.Named("solutions"))
}
