package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"match2b/internal/matching"
	"match2b/internal/metrics"
	"match2b/internal/models/db_models"
	"match2b/internal/models/request_models"
	"match2b/internal/models/response_models"
	"match2b/internal/repositories"
	"match2b/pkg/utils"
)

// MaxProblemAreaLength bounds the free-text problem description.
const MaxProblemAreaLength = 500

type SurveyServiceInterface interface {
	ListQuestions(ctx context.Context) ([]response_models.SurveyQuestion, error)
	SubmitSurvey(ctx context.Context, req request_models.SubmitSurveyRequest, userID *uuid.UUID) (*response_models.SurveySubmission, error)
	Matches(ctx context.Context, answers matching.SurveyAnswers, limit int) ([]matching.ScoredSolution, error)
	History(ctx context.Context, userID uuid.UUID) ([]response_models.SurveyResponseRecord, error)
	LinkSession(ctx context.Context, sessionID string, userID uuid.UUID) (*response_models.LinkSessionResult, error)
}

type SurveyService struct {
	repo      repositories.SurveyRepositoryInterface
	solutions SolutionServiceInterface
	limit     int
	log       *zap.Logger
	now       func() time.Time
}

// NewSurveyService builds the survey flow. limit is the default number of
// matches returned; values <= 0 fall back to matching.DefaultLimit.
func NewSurveyService(repo repositories.SurveyRepositoryInterface, solutions SolutionServiceInterface, limit int, log *zap.Logger) SurveyServiceInterface {
	return &SurveyService{
		repo:      repo,
		solutions: solutions,
		limit:     limit,
		log:       log,
		now:       time.Now,
	}
}

func (s *SurveyService) ListQuestions(ctx context.Context) ([]response_models.SurveyQuestion, error) {
	rows, err := s.repo.ListActiveQuestions(ctx, repositories.DefaultSurveyType)
	if err != nil {
		s.log.Error("list survey questions failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.SurveyQuestion, 0, len(rows))
	for _, q := range rows {
		options := []string(q.Options)
		if options == nil {
			options = []string{}
		}
		out = append(out, response_models.SurveyQuestion{
			ID:           q.ID.String(),
			QuestionID:   q.QuestionID,
			QuestionText: q.QuestionText,
			QuestionType: q.QuestionType,
			Options:      options,
			OrderIndex:   q.OrderIndex,
			IsRequired:   q.IsRequired,
		})
	}
	return out, nil
}

// SubmitSurvey stores the answers and returns them with the computed matches.
// A failed catalog read yields an empty match list rather than an error.
func (s *SurveyService) SubmitSurvey(ctx context.Context, req request_models.SubmitSurveyRequest, userID *uuid.UUID) (*response_models.SurveySubmission, error) {
	if req.Answers == nil {
		return nil, utils.NewValidationError("Survey answers are required")
	}
	answers := matching.SurveyAnswers(req.Answers)
	if p, ok := answers.ProblemArea(); ok && utf8.RuneCountInString(p) > MaxProblemAreaLength {
		return nil, utils.NewValidationError(fmt.Sprintf("Problem description must be %d characters or fewer", MaxProblemAreaLength))
	}

	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		sessionID = fmt.Sprintf("session-%d", s.now().UnixMilli())
	}

	row := &db_models.SurveyResponse{
		SessionID: sessionID,
		UserID:    userID,
		Answers:   datatypes.JSONMap(req.Answers),
	}
	if err := s.repo.CreateResponse(ctx, row); err != nil {
		s.log.Error("save survey response failed", zap.Error(err), zap.String("session_id", sessionID))
		return nil, utils.ErrDatabaseError
	}

	matches, err := s.Matches(ctx, answers, 0)
	if err != nil {
		s.log.Warn("catalog unavailable, returning no matches",
			zap.Error(err), zap.String("response_id", row.ID.String()))
		matches = []matching.ScoredSolution{}
	}

	return &response_models.SurveySubmission{
		Response: toRecord(*row),
		Matches:  matches,
	}, nil
}

// Matches scores the catalog against answers without persisting anything.
// limit <= 0 uses the configured default.
func (s *SurveyService) Matches(ctx context.Context, answers matching.SurveyAnswers, limit int) ([]matching.ScoredSolution, error) {
	catalog, err := s.solutions.ListCatalog(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.limit
	}

	matches := matching.ComputeMatches(answers, catalog, limit)
	metrics.MatchingRuns.Inc()
	metrics.MatchingResults.Observe(float64(len(matches)))

	s.log.Debug("matches computed",
		zap.Int("catalog_size", len(catalog)),
		zap.Int("matches", len(matches)),
		zap.Bool("urgent_need", answers.UrgentNeed()))
	return matches, nil
}

func (s *SurveyService) History(ctx context.Context, userID uuid.UUID) ([]response_models.SurveyResponseRecord, error) {
	rows, err := s.repo.ListResponsesByUser(ctx, userID)
	if err != nil {
		s.log.Error("list survey history failed", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.SurveyResponseRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, toRecord(r))
	}
	return out, nil
}

// LinkSession assigns the anonymous responses of sessionID to userID.
func (s *SurveyService) LinkSession(ctx context.Context, sessionID string, userID uuid.UUID) (*response_models.LinkSessionResult, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, utils.NewValidationError("Session id is required")
	}

	n, err := s.repo.LinkSessionResponses(ctx, sessionID, userID)
	if err != nil {
		s.log.Error("link survey session failed", zap.Error(err), zap.String("session_id", sessionID))
		return nil, utils.ErrDatabaseError
	}
	if n > 0 {
		s.log.Info("survey session linked",
			zap.String("session_id", sessionID),
			zap.String("user_id", userID.String()),
			zap.Int64("responses", n))
	}
	return &response_models.LinkSessionResult{SessionID: sessionID, Linked: n}, nil
}

func toRecord(r db_models.SurveyResponse) response_models.SurveyResponseRecord {
	var userID *string
	if r.UserID != nil {
		id := r.UserID.String()
		userID = &id
	}
	answers := matching.SurveyAnswers(r.Answers)
	if answers == nil {
		answers = matching.SurveyAnswers{}
	}
	return response_models.SurveyResponseRecord{
		ID:        r.ID.String(),
		SessionID: r.SessionID,
		UserID:    userID,
		Answers:   answers,
		CreatedAt: r.CreatedAt,
	}
}
