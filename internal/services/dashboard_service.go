package services

import (
	"context"

	"go.uber.org/zap"

	resp "match2b/internal/models/response_models"
	"match2b/internal/repositories"
	"match2b/pkg/utils"
)

type DashboardService interface {
	Stats(ctx context.Context) (*resp.DashboardStats, error)
}

type dashboardService struct {
	repo repositories.DashboardRepository
	log  *zap.Logger
}

func NewDashboardService(repo repositories.DashboardRepository, log *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, log: log}
}

func (s *dashboardService) Stats(ctx context.Context) (*resp.DashboardStats, error) {
	var (
		out resp.DashboardStats
		err error
	)

	// ---------- Counts ----------
	if out.TotalUsers, err = s.repo.CountProfiles(ctx); err != nil {
		return nil, s.fail("profiles", err)
	}
	if out.TotalProviders, err = s.repo.CountProfilesByRole(ctx, utils.RoleProvider); err != nil {
		return nil, s.fail("providers", err)
	}
	if out.TotalSurveyResponses, err = s.repo.CountSurveyResponses(ctx); err != nil {
		return nil, s.fail("survey_responses", err)
	}
	if out.TotalSolutions, err = s.repo.CountSolutions(ctx); err != nil {
		return nil, s.fail("solutions", err)
	}

	return &out, nil
}

func (s *dashboardService) fail(what string, err error) error {
	s.log.Error("dashboard count failed", zap.String("count", what), zap.Error(err))
	return utils.ErrDatabaseError
}
