package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"match2b/internal/models/db_models"
)

const DefaultSurveyType = "default"

type SurveyRepositoryInterface interface {
	ListActiveQuestions(ctx context.Context, surveyType string) ([]db_models.SurveyQuestion, error)
	CreateResponse(ctx context.Context, response *db_models.SurveyResponse) error
	ListResponsesByUser(ctx context.Context, userID uuid.UUID) ([]db_models.SurveyResponse, error)
	LinkSessionResponses(ctx context.Context, sessionID string, userID uuid.UUID) (int64, error)
}

type SurveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) SurveyRepositoryInterface {
	return &SurveyRepository{db: db}
}

func (r *SurveyRepository) ListActiveQuestions(ctx context.Context, surveyType string) ([]db_models.SurveyQuestion, error) {
	var questions []db_models.SurveyQuestion
	err := r.db.WithContext(ctx).
		Where("survey_type = ? AND is_active = ?", surveyType, true).
		Order("order_index").
		Find(&questions).Error
	return questions, err
}

func (r *SurveyRepository) CreateResponse(ctx context.Context, response *db_models.SurveyResponse) error {
	return r.db.WithContext(ctx).Create(response).Error
}

func (r *SurveyRepository) ListResponsesByUser(ctx context.Context, userID uuid.UUID) ([]db_models.SurveyResponse, error) {
	var responses []db_models.SurveyResponse
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&responses).Error
	return responses, err
}

// LinkSessionResponses claims the anonymous responses of a session. Responses
// already owned by a user are left alone.
func (r *SurveyRepository) LinkSessionResponses(ctx context.Context, sessionID string, userID uuid.UUID) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&db_models.SurveyResponse{}).
		Where("session_id = ? AND user_id IS NULL", sessionID).
		Update("user_id", userID)
	return tx.RowsAffected, tx.Error
}
