package response_models

type DashboardStats struct {
	TotalUsers           int64 `json:"total_users"`
	TotalSurveyResponses int64 `json:"total_survey_responses"`
	TotalSolutions       int64 `json:"total_solutions"`
	TotalProviders       int64 `json:"total_providers"`
}
