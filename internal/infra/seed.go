package infra

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"match2b/internal/matching"
	"match2b/internal/models/db_models"
	"match2b/internal/repositories"
)

const (
	QuestionTypeRadio = "radio"
	QuestionTypeText  = "text"
)

// DefaultQuestions is the seeker survey installed on an empty database. The
// question ids are the answer keys read by the matching engine.
func DefaultQuestions() []db_models.SurveyQuestion {
	return []db_models.SurveyQuestion{
		{QuestionID: matching.KeyIndustry, QuestionText: "Which industry is your business in?", QuestionType: QuestionTypeRadio, Options: matching.Industries, OrderIndex: 1, IsRequired: true},
		{QuestionID: matching.KeyCompanySize, QuestionText: "How many people work at your company?", QuestionType: QuestionTypeRadio, Options: matching.CompanySizes, OrderIndex: 2, IsRequired: true},
		{QuestionID: matching.KeyBudget, QuestionText: "What is your budget for a solution?", QuestionType: QuestionTypeRadio, Options: matching.BudgetRanges, OrderIndex: 3, IsRequired: true},
		{QuestionID: matching.KeyUrgentNeed, QuestionText: "Do you need a solution urgently?", QuestionType: QuestionTypeRadio, Options: []string{"Yes", "No"}, OrderIndex: 4, IsRequired: true},
		{QuestionID: matching.KeyProblemArea, QuestionText: "Briefly describe the problem you want to solve.", QuestionType: QuestionTypeText, OrderIndex: 5, IsRequired: false},
	}
}

// SeedSurveyQuestions inserts the default questions, skipping any question id
// that already exists.
func SeedSurveyQuestions(db *gorm.DB) error {
	questions := DefaultQuestions()
	for i := range questions {
		questions[i].ID = uuid.New()
		questions[i].SurveyType = repositories.DefaultSurveyType
		questions[i].IsActive = true
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "question_id"}},
		DoNothing: true,
	}).Create(&questions).Error
}
