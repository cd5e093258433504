package repositories

import (
	"context"

	"gorm.io/gorm"

	dbm "match2b/internal/models/db_models"
)

type DashboardRepository interface {
	CountProfiles(ctx context.Context) (int64, error)
	CountProfilesByRole(ctx context.Context, role string) (int64, error)
	CountSurveyResponses(ctx context.Context) (int64, error)
	CountSolutions(ctx context.Context) (int64, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) CountProfiles(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Profile{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountProfilesByRole(ctx context.Context, role string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Profile{}).
		Where("role = ?", role).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountSurveyResponses(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.SurveyResponse{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountSolutions(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbm.Solution{}).Count(&n).Error
	return n, err
}
