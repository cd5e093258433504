package db_models

import (
	"github.com/lib/pq"
	"match2b/internal/matching"
)

type Solution struct {
	BaseModel
	CompanyName   string         `gorm:"not null"`
	SolutionTitle string         `gorm:"not null"`
	Description   string         `gorm:"type:text;not null"`
	ContactEmail  string         `gorm:"index;not null"`
	Industries    pq.StringArray `gorm:"type:text[];not null"`
	CompanySizes  pq.StringArray `gorm:"type:text[];not null"`
	BudgetRanges  pq.StringArray `gorm:"type:text[];not null"`
}

func (s Solution) ToDomain() matching.Solution {
	return matching.Solution{
		ID:            s.ID.String(),
		CompanyName:   s.CompanyName,
		SolutionTitle: s.SolutionTitle,
		Description:   s.Description,
		ContactEmail:  s.ContactEmail,
		Industries:    []string(s.Industries),
		CompanySizes:  []string(s.CompanySizes),
		BudgetRanges:  []string(s.BudgetRanges),
		CreatedAt:     s.CreatedAt,
	}
}
