package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"match2b/internal/models/db_models"
)

type SolutionRepositoryInterface interface {
	CreateSolution(ctx context.Context, solution *db_models.Solution) error
	ListSolutions(ctx context.Context) ([]db_models.Solution, error)
	GetSolutionByID(ctx context.Context, id uuid.UUID) (*db_models.Solution, error)
	ListSolutionsByContactEmail(ctx context.Context, email string) ([]db_models.Solution, error)
}

type SolutionRepository struct {
	db *gorm.DB
}

func NewSolutionRepository(db *gorm.DB) SolutionRepositoryInterface {
	return &SolutionRepository{db: db}
}

func (r *SolutionRepository) CreateSolution(ctx context.Context, solution *db_models.Solution) error {
	return r.db.WithContext(ctx).Create(solution).Error
}

// ListSolutions returns the whole catalog, newest first.
func (r *SolutionRepository) ListSolutions(ctx context.Context) ([]db_models.Solution, error) {
	var solutions []db_models.Solution
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&solutions).Error
	if err != nil {
		return nil, err
	}
	return solutions, nil
}

func (r *SolutionRepository) GetSolutionByID(ctx context.Context, id uuid.UUID) (*db_models.Solution, error) {
	var solution db_models.Solution
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&solution).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &solution, nil
}

func (r *SolutionRepository) ListSolutionsByContactEmail(ctx context.Context, email string) ([]db_models.Solution, error) {
	var solutions []db_models.Solution
	err := r.db.WithContext(ctx).
		Where("contact_email = ?", email).
		Order("created_at DESC").
		Find(&solutions).Error
	if err != nil {
		return nil, err
	}
	return solutions, nil
}
