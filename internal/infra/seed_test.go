package infra

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"match2b/internal/matching"
)

func TestDefaultQuestions_KeysMatchEngine(t *testing.T) {
	keys := map[string]bool{}
	for i, q := range DefaultQuestions() {
		keys[q.QuestionID] = true
		assert.Equal(t, i+1, q.OrderIndex)
	}
	for _, k := range []string{matching.KeyIndustry, matching.KeyCompanySize, matching.KeyBudget, matching.KeyUrgentNeed, matching.KeyProblemArea} {
		assert.True(t, keys[k], k)
	}
}

func TestSeedSurveyQuestions(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectExec(`INSERT INTO "survey_questions" .* ON CONFLICT \("question_id"\) DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 5))

	require.NoError(t, SeedSurveyQuestions(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
