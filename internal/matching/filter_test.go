package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func directory() []Solution {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return []Solution{
		{
			ID: "crm", SolutionTitle: "banana CRM", CompanyName: "Acme",
			Description: "Customer pipeline", Industries: []string{"Tech", "Retail"},
			CompanySizes: []string{"11-50", "51-200"}, BudgetRanges: []string{"$10k-$25k"},
			CreatedAt: base,
		},
		{
			ID: "ledger", SolutionTitle: "Apple Ledger", CompanyName: "Quill Finance",
			Description: "Bookkeeping for SMEs", Industries: []string{"Finance"},
			CompanySizes: []string{"1-10"}, BudgetRanges: []string{"$0-$10k", "$10k-$25k"},
			CreatedAt: base.Add(48 * time.Hour),
		},
		{
			ID: "ehr", SolutionTitle: "Éclair Health Records", CompanyName: "MedCo",
			Description: "EHR platform", Industries: []string{"Healthcare"},
			CompanySizes: []string{"201-1000", "1000+"}, BudgetRanges: []string{"$100k+"},
			CreatedAt: base.Add(24 * time.Hour),
		},
	}
}

func ids(sols []Solution) []string {
	out := make([]string, 0, len(sols))
	for _, s := range sols {
		out = append(out, s.ID)
	}
	return out
}

func TestFilterSolutions_NoFilters(t *testing.T) {
	catalog := directory()
	got := FilterSolutions(catalog, Filter{}, SortNewest)
	assert.Equal(t, []string{"ledger", "ehr", "crm"}, ids(got))

	// input slice keeps its order
	assert.Equal(t, []string{"crm", "ledger", "ehr"}, ids(catalog))
}

func TestFilterSolutions_Search(t *testing.T) {
	tests := []struct {
		term string
		want []string
	}{
		{"CRM", []string{"crm"}},
		{"quill", []string{"ledger"}},
		{"bookkeeping", []string{"ledger"}},
		{"health", []string{"ehr"}},
		{"retail", []string{"crm"}},
		{"zzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got := FilterSolutions(directory(), Filter{SearchTerm: tt.term}, SortNewest)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterSolutions_Industry(t *testing.T) {
	got := FilterSolutions(directory(), Filter{Industry: "finance"}, SortNewest)
	assert.Equal(t, []string{"ledger"}, ids(got))

	got = FilterSolutions(directory(), Filter{Industry: AllIndustries}, SortNewest)
	assert.Len(t, got, 3)

	got = FilterSolutions(directory(), Filter{Industry: "Fin"}, SortNewest)
	assert.Empty(t, got)
}

func TestFilterSolutions_AnyOfSemantics(t *testing.T) {
	got := FilterSolutions(directory(), Filter{CompanySizes: []string{"1-10", "51-200"}}, SortNewest)
	assert.Equal(t, []string{"ledger", "crm"}, ids(got))

	got = FilterSolutions(directory(), Filter{BudgetRanges: []string{"$10k-$25k", "$50k-$100k"}}, SortNewest)
	assert.Equal(t, []string{"ledger", "crm"}, ids(got))
}

func TestFilterSolutions_FiltersCombineWithAnd(t *testing.T) {
	f := Filter{
		Industry:     "tech",
		CompanySizes: []string{"11-50"},
		BudgetRanges: []string{"$0-$10k"},
	}
	assert.Empty(t, FilterSolutions(directory(), f, SortNewest))

	f.BudgetRanges = []string{"$10k-$25k"}
	assert.Equal(t, []string{"crm"}, ids(FilterSolutions(directory(), f, SortNewest)))
}

func TestFilterSolutions_Alphabetical(t *testing.T) {
	got := FilterSolutions(directory(), Filter{}, SortAlphabetical)
	assert.Equal(t, []string{"ledger", "crm", "ehr"}, ids(got))
}

func TestActiveFilterCount(t *testing.T) {
	assert.Equal(t, 0, ActiveFilterCount(Filter{SearchTerm: "x", Industry: AllIndustries}))
	assert.Equal(t, 3, ActiveFilterCount(Filter{
		Industry:     "Tech",
		CompanySizes: []string{"1-10"},
		BudgetRanges: []string{"$100k+"},
	}))
}

func TestParseSortOrder(t *testing.T) {
	assert.Equal(t, SortAlphabetical, ParseSortOrder("alphabetical"))
	assert.Equal(t, SortNewest, ParseSortOrder("newest"))
	assert.Equal(t, SortNewest, ParseSortOrder("popular"))
}
