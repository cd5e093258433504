package matching

import (
	"strings"
	"time"
)

const (
	KeyIndustry    = "industry"
	KeyCompanySize = "company_size"
	KeyBudget      = "budget"
	KeyUrgentNeed  = "urgent_need"
	KeyProblemArea = "problem_area"
)

var CompanySizes = []string{"1-10", "11-50", "51-200", "201-1000", "1000+"}

var BudgetRanges = []string{"$0-$10k", "$10k-$25k", "$25k-$50k", "$50k-$100k", "$100k+"}

var Industries = []string{
	"Tech",
	"Finance",
	"Healthcare",
	"Retail",
	"Manufacturing",
	"SaaS",
	"Consulting",
	"Education",
}

// SurveyAnswers maps a survey question key to the seeker's answer.
type SurveyAnswers map[string]any

func (a SurveyAnswers) str(key string) (string, bool) {
	v, ok := a[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func (a SurveyAnswers) Industry() (string, bool)    { return a.str(KeyIndustry) }
func (a SurveyAnswers) CompanySize() (string, bool) { return a.str(KeyCompanySize) }
func (a SurveyAnswers) Budget() (string, bool)      { return a.str(KeyBudget) }
func (a SurveyAnswers) ProblemArea() (string, bool) { return a.str(KeyProblemArea) }

// UrgentNeed is informational only and never affects scoring.
func (a SurveyAnswers) UrgentNeed() bool {
	switch v := a[KeyUrgentNeed].(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "true") || strings.EqualFold(v, "yes")
	default:
		return false
	}
}

type Solution struct {
	ID            string    `json:"id"`
	CompanyName   string    `json:"company_name"`
	SolutionTitle string    `json:"solution_title"`
	Description   string    `json:"description"`
	ContactEmail  string    `json:"contact_email"`
	Industries    []string  `json:"industries"`
	CompanySizes  []string  `json:"company_sizes"`
	BudgetRanges  []string  `json:"budget_ranges"`
	CreatedAt     time.Time `json:"created_at"`
}

type ScoredSolution struct {
	Solution
	MatchScore int `json:"match_score"`
}

func IsCompanySize(s string) bool { return contains(CompanySizes, s) }

func IsBudgetRange(s string) bool { return contains(BudgetRanges, s) }

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func containsFold(set []string, s string) bool {
	ls := strings.ToLower(s)
	for _, v := range set {
		if strings.ToLower(v) == ls {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, v := range a {
		if contains(b, v) {
			return true
		}
	}
	return false
}
