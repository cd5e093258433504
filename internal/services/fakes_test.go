package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"match2b/internal/models/db_models"
)

type fakeSolutionRepo struct {
	rows      []db_models.Solution
	created   []*db_models.Solution
	listCalls int
	onList    func()
	err       error
}

func (f *fakeSolutionRepo) CreateSolution(_ context.Context, s *db_models.Solution) error {
	if f.err != nil {
		return f.err
	}
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	f.created = append(f.created, s)
	return nil
}

func (f *fakeSolutionRepo) ListSolutions(context.Context) ([]db_models.Solution, error) {
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	rows := append([]db_models.Solution(nil), f.rows...)
	if f.onList != nil {
		f.onList()
	}
	return rows, nil
}

func (f *fakeSolutionRepo) GetSolutionByID(_ context.Context, id uuid.UUID) (*db_models.Solution, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.rows {
		if f.rows[i].ID == id {
			return &f.rows[i], nil
		}
	}
	return nil, nil
}

func (f *fakeSolutionRepo) ListSolutionsByContactEmail(_ context.Context, email string) ([]db_models.Solution, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.Solution
	for _, r := range f.rows {
		if r.ContactEmail == email {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeSurveyRepo struct {
	questions []db_models.SurveyQuestion
	responses []db_models.SurveyResponse
	linked    int64
	err       error
}

func (f *fakeSurveyRepo) ListActiveQuestions(context.Context, string) ([]db_models.SurveyQuestion, error) {
	return f.questions, f.err
}

func (f *fakeSurveyRepo) CreateResponse(_ context.Context, r *db_models.SurveyResponse) error {
	if f.err != nil {
		return f.err
	}
	r.ID = uuid.New()
	r.CreatedAt = time.Now()
	f.responses = append(f.responses, *r)
	return nil
}

func (f *fakeSurveyRepo) ListResponsesByUser(_ context.Context, userID uuid.UUID) ([]db_models.SurveyResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.SurveyResponse
	for _, r := range f.responses {
		if r.UserID != nil && *r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeSurveyRepo) LinkSessionResponses(context.Context, string, uuid.UUID) (int64, error) {
	return f.linked, f.err
}

type fakeDashboardRepo struct {
	users, providers, responses, solutions int64
	err                                    error
}

func (f *fakeDashboardRepo) CountProfiles(context.Context) (int64, error) { return f.users, f.err }
func (f *fakeDashboardRepo) CountProfilesByRole(_ context.Context, role string) (int64, error) {
	if role != "provider" {
		return 0, nil
	}
	return f.providers, f.err
}
func (f *fakeDashboardRepo) CountSurveyResponses(context.Context) (int64, error) {
	return f.responses, f.err
}
func (f *fakeDashboardRepo) CountSolutions(context.Context) (int64, error) { return f.solutions, f.err }

func solutionRow(title, email string, industries, sizes, budgets []string, created time.Time) db_models.Solution {
	return db_models.Solution{
		BaseModel:     db_models.BaseModel{ID: uuid.New(), CreatedAt: created, UpdatedAt: created},
		CompanyName:   title + " Inc",
		SolutionTitle: title,
		Description:   title + " description",
		ContactEmail:  email,
		Industries:    industries,
		CompanySizes:  sizes,
		BudgetRanges:  budgets,
	}
}
