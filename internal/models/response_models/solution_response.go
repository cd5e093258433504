package response_models

import "match2b/internal/matching"

type ExploreResponse struct {
	Solutions     []matching.Solution `json:"solutions"`
	Total         int                 `json:"total"`
	CatalogSize   int                 `json:"catalog_size"`
	ActiveFilters int                 `json:"active_filters"`
	Sort          string              `json:"sort"`
}

type ProviderSolutionsResponse struct {
	Solutions      []matching.Solution `json:"solutions"`
	TotalSolutions int                 `json:"total_solutions"`
}

type OptionsResponse struct {
	Industries   []string `json:"industries"`
	CompanySizes []string `json:"company_sizes"`
	BudgetRanges []string `json:"budget_ranges"`
}
