package services

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"match2b/internal/matching"
	"match2b/internal/metrics"
	"match2b/internal/models/db_models"
	"match2b/internal/models/request_models"
	"match2b/internal/models/response_models"
	"match2b/internal/repositories"
	mem "match2b/pkg/memcache"
	"match2b/pkg/utils"
)

const (
	msgRequiredFields = "All required fields must be filled out"
	msgCompanySizes   = "Please select at least one company size you serve"
	msgBudgetRanges   = "Please select at least one budget range"
	msgContactEmail   = "Please enter a valid contact email"
	msgUnknownSize    = "Unknown company size: "
	msgUnknownBudget  = "Unknown budget range: "
)

type SolutionServiceInterface interface {
	SubmitSolution(ctx context.Context, req request_models.SubmitSolutionRequest) (*matching.Solution, error)
	ListCatalog(ctx context.Context) ([]matching.Solution, error)
	Explore(ctx context.Context, req request_models.ExploreRequest) (*response_models.ExploreResponse, error)
	GetSolution(ctx context.Context, id string) (*matching.Solution, error)
	ListProviderSolutions(ctx context.Context, email string) (*response_models.ProviderSolutionsResponse, error)
	Options() response_models.OptionsResponse
}

type SolutionService struct {
	repo     repositories.SolutionRepositoryInterface
	cache    mem.CatalogCache
	validate *validator.Validate
	log      *zap.Logger
}

func NewSolutionService(repo repositories.SolutionRepositoryInterface, cache mem.CatalogCache, log *zap.Logger) SolutionServiceInterface {
	if cache == nil {
		cache = mem.NoopCatalog{}
	}
	return &SolutionService{
		repo:     repo,
		cache:    cache,
		validate: validator.New(),
		log:      log,
	}
}

func (s *SolutionService) SubmitSolution(ctx context.Context, req request_models.SubmitSolutionRequest) (*matching.Solution, error) {
	if err := s.validateSubmission(&req); err != nil {
		return nil, err
	}

	row := &db_models.Solution{
		CompanyName:   req.CompanyName,
		SolutionTitle: req.SolutionTitle,
		Description:   req.Description,
		ContactEmail:  req.ContactEmail,
		Industries:    []string{req.Industry},
		CompanySizes:  req.CompanySizes,
		BudgetRanges:  req.BudgetRanges,
	}
	if err := s.repo.CreateSolution(ctx, row); err != nil {
		s.log.Error("create solution failed", zap.Error(err), zap.String("contact_email", req.ContactEmail))
		return nil, utils.ErrDatabaseError
	}
	s.cache.Invalidate(ctx)

	out := row.ToDomain()
	s.log.Info("solution submitted", zap.String("solution_id", out.ID), zap.String("contact_email", out.ContactEmail))
	return &out, nil
}

// validateSubmission trims the text fields in place and checks them.
func (s *SolutionService) validateSubmission(req *request_models.SubmitSolutionRequest) error {
	req.CompanyName = strings.TrimSpace(req.CompanyName)
	req.SolutionTitle = strings.TrimSpace(req.SolutionTitle)
	req.Industry = strings.TrimSpace(req.Industry)
	req.Description = strings.TrimSpace(req.Description)
	req.ContactEmail = strings.TrimSpace(req.ContactEmail)

	if req.CompanyName == "" || req.SolutionTitle == "" || req.Industry == "" ||
		req.Description == "" || req.ContactEmail == "" {
		return utils.NewValidationError(msgRequiredFields)
	}
	if err := s.validate.Var(req.ContactEmail, "email"); err != nil {
		return utils.NewValidationError(msgContactEmail)
	}
	if len(req.CompanySizes) == 0 {
		return utils.NewValidationError(msgCompanySizes)
	}
	if len(req.BudgetRanges) == 0 {
		return utils.NewValidationError(msgBudgetRanges)
	}
	return validateFacets(req.CompanySizes, req.BudgetRanges)
}

func validateFacets(sizes, budgets []string) error {
	for _, v := range sizes {
		if !matching.IsCompanySize(v) {
			return utils.NewValidationError(msgUnknownSize + v)
		}
	}
	for _, v := range budgets {
		if !matching.IsBudgetRange(v) {
			return utils.NewValidationError(msgUnknownBudget + v)
		}
	}
	return nil
}

// ListCatalog returns every solution, newest first.
func (s *SolutionService) ListCatalog(ctx context.Context) ([]matching.Solution, error) {
	if catalog, ok := s.cache.Get(ctx); ok {
		metrics.CatalogCache.WithLabelValues("hit").Inc()
		return catalog, nil
	}
	metrics.CatalogCache.WithLabelValues("miss").Inc()

	gen := s.cache.Generation(ctx)
	rows, err := s.repo.ListSolutions(ctx)
	if err != nil {
		s.log.Error("list solutions failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	catalog := toDomain(rows)
	if !s.cache.Set(ctx, gen, catalog) {
		s.log.Debug("catalog changed during load, not caching")
	}
	return catalog, nil
}

func (s *SolutionService) Explore(ctx context.Context, req request_models.ExploreRequest) (*response_models.ExploreResponse, error) {
	// an unencoded "+" arrives as a space, so "1000+" would silently match nothing
	if err := validateFacets(req.CompanySizes, req.BudgetRanges); err != nil {
		return nil, err
	}

	catalog, err := s.ListCatalog(ctx)
	if err != nil {
		return nil, err
	}

	filter := matching.Filter{
		SearchTerm:   strings.TrimSpace(req.SearchTerm),
		Industry:     strings.TrimSpace(req.Industry),
		CompanySizes: req.CompanySizes,
		BudgetRanges: req.BudgetRanges,
	}
	order := matching.ParseSortOrder(req.Sort)
	filtered := matching.FilterSolutions(catalog, filter, order)

	return &response_models.ExploreResponse{
		Solutions:     filtered,
		Total:         len(filtered),
		CatalogSize:   len(catalog),
		ActiveFilters: matching.ActiveFilterCount(filter),
		Sort:          string(order),
	}, nil
}

func (s *SolutionService) GetSolution(ctx context.Context, id string) (*matching.Solution, error) {
	solutionID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrInvalidSolutionID
	}

	row, err := s.repo.GetSolutionByID(ctx, solutionID)
	if err != nil {
		s.log.Error("get solution failed", zap.Error(err), zap.String("solution_id", id))
		return nil, utils.ErrDatabaseError
	}
	if row == nil {
		return nil, utils.ErrSolutionNotFound
	}

	out := row.ToDomain()
	return &out, nil
}

// ListProviderSolutions lists the submissions whose contact email matches the
// provider's token email.
func (s *SolutionService) ListProviderSolutions(ctx context.Context, email string) (*response_models.ProviderSolutionsResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, utils.ErrUnauthorized
	}

	rows, err := s.repo.ListSolutionsByContactEmail(ctx, email)
	if err != nil {
		s.log.Error("list provider solutions failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	solutions := toDomain(rows)
	return &response_models.ProviderSolutionsResponse{
		Solutions:      solutions,
		TotalSolutions: len(solutions),
	}, nil
}

func (s *SolutionService) Options() response_models.OptionsResponse {
	return response_models.OptionsResponse{
		Industries:   append([]string(nil), matching.Industries...),
		CompanySizes: append([]string(nil), matching.CompanySizes...),
		BudgetRanges: append([]string(nil), matching.BudgetRanges...),
	}
}

func toDomain(rows []db_models.Solution) []matching.Solution {
	out := make([]matching.Solution, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToDomain())
	}
	return out
}
