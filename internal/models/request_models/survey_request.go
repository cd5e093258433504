package request_models

type SubmitSurveyRequest struct {
	SessionID string         `json:"session_id"`
	Answers   map[string]any `json:"answers" binding:"required"`
}

type MatchRequest struct {
	Answers map[string]any `json:"answers" binding:"required"`
	Limit   int            `json:"limit" binding:"omitempty,min=1,max=50"`
}

type LinkSessionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}
