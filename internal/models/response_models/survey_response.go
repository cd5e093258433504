package response_models

import (
	"time"

	"match2b/internal/matching"
)

type SurveyQuestion struct {
	ID           string   `json:"id"`
	QuestionID   string   `json:"question_id"`
	QuestionText string   `json:"question_text"`
	QuestionType string   `json:"question_type"`
	Options      []string `json:"options"`
	OrderIndex   int      `json:"order_index"`
	IsRequired   bool     `json:"is_required"`
}

type SurveyResponseRecord struct {
	ID        string                 `json:"id"`
	SessionID string                 `json:"session_id"`
	UserID    *string                `json:"user_id"`
	Answers   matching.SurveyAnswers `json:"answers"`
	CreatedAt time.Time              `json:"created_at"`
}

type SurveySubmission struct {
	Response SurveyResponseRecord      `json:"response"`
	Matches  []matching.ScoredSolution `json:"matches"`
}

type LinkSessionResult struct {
	SessionID string `json:"session_id"`
	Linked    int64  `json:"linked"`
}
