package matching

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortOrder string

const (
	SortNewest       SortOrder = "newest"
	SortAlphabetical SortOrder = "alphabetical"

	AllIndustries = "all"
)

type Filter struct {
	SearchTerm   string
	Industry     string
	CompanySizes []string
	BudgetRanges []string
}

func (f Filter) industryActive() bool {
	return f.Industry != "" && f.Industry != AllIndustries
}

// ActiveFilterCount counts the facet filters in use. The search term is not a facet.
func ActiveFilterCount(f Filter) int {
	n := 0
	if f.industryActive() {
		n++
	}
	if len(f.CompanySizes) > 0 {
		n++
	}
	if len(f.BudgetRanges) > 0 {
		n++
	}
	return n
}

// ParseSortOrder falls back to newest for anything it does not recognise.
func ParseSortOrder(s string) SortOrder {
	if SortOrder(s) == SortAlphabetical {
		return SortAlphabetical
	}
	return SortNewest
}

func (f Filter) matches(s Solution) bool {
	if f.SearchTerm != "" && !matchesSearch(s, strings.ToLower(f.SearchTerm)) {
		return false
	}
	if f.industryActive() && !containsFold(s.Industries, f.Industry) {
		return false
	}
	if len(f.CompanySizes) > 0 && !intersects(s.CompanySizes, f.CompanySizes) {
		return false
	}
	if len(f.BudgetRanges) > 0 && !intersects(s.BudgetRanges, f.BudgetRanges) {
		return false
	}
	return true
}

func matchesSearch(s Solution, term string) bool {
	if strings.Contains(strings.ToLower(s.SolutionTitle), term) ||
		strings.Contains(strings.ToLower(s.CompanyName), term) ||
		strings.Contains(strings.ToLower(s.Description), term) {
		return true
	}
	for _, industry := range s.Industries {
		if strings.Contains(strings.ToLower(industry), term) {
			return true
		}
	}
	return false
}

// FilterSolutions applies f to the catalog and sorts the survivors. The
// catalog itself is left untouched.
func FilterSolutions(catalog []Solution, f Filter, order SortOrder) []Solution {
	out := make([]Solution, 0, len(catalog))
	for _, s := range catalog {
		if f.matches(s) {
			out = append(out, s)
		}
	}

	switch order {
	case SortAlphabetical:
		// Collators keep scratch buffers, so each call gets its own.
		c := collate.New(language.English)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].SolutionTitle, out[j].SolutionTitle) < 0
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out
}
