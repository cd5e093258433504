// Package matching scores and filters solution catalogs against seeker input.
// Everything here is pure: no I/O, no shared state, safe for concurrent use.
package matching

import (
	"math"
	"sort"
)

const (
	IndustryWeight    = 40
	CompanySizeWeight = 30
	BudgetWeight      = 30

	DefaultLimit = 6
)

// Score returns the 0..100 match percentage of one solution.
// Every dimension counts toward the maximum whether or not it was answered.
func Score(answers SurveyAnswers, s Solution) int {
	score, maxScore := 0, 0

	maxScore += IndustryWeight
	if industry, ok := answers.Industry(); ok && containsFold(s.Industries, industry) {
		score += IndustryWeight
	}

	maxScore += CompanySizeWeight
	if size, ok := answers.CompanySize(); ok && contains(s.CompanySizes, size) {
		score += CompanySizeWeight
	}

	maxScore += BudgetWeight
	if budget, ok := answers.Budget(); ok && contains(s.BudgetRanges, budget) {
		score += BudgetWeight
	}

	return int(math.Round(float64(score) / float64(maxScore) * 100))
}

// ComputeMatches scores the catalog, drops zero scores and returns at most
// limit entries ordered by score descending. Equal scores keep catalog order.
func ComputeMatches(answers SurveyAnswers, catalog []Solution, limit int) []ScoredSolution {
	if limit <= 0 {
		limit = DefaultLimit
	}

	scored := make([]ScoredSolution, 0, len(catalog))
	for _, s := range catalog {
		pct := Score(answers, s)
		if pct == 0 {
			continue
		}
		scored = append(scored, ScoredSolution{Solution: s, MatchScore: pct})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
