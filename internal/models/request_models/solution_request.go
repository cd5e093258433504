package request_models

type SubmitSolutionRequest struct {
	CompanyName   string   `json:"company_name"`
	SolutionTitle string   `json:"solution_title"`
	Industry      string   `json:"industry"`
	Description   string   `json:"description"`
	ContactEmail  string   `json:"contact_email"`
	CompanySizes  []string `json:"company_sizes"`
	BudgetRanges  []string `json:"budget_ranges"`
}

type ExploreRequest struct {
	SearchTerm   string   `form:"q"`
	Industry     string   `form:"industry"`
	CompanySizes []string `form:"company_sizes"`
	BudgetRanges []string `form:"budget_ranges"`
	Sort         string   `form:"sort"`
}
