package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shipgate/site-api/internal/domain"
	"github.com/shipgate/site-api/internal/events"
	"github.com/shipgate/site-api/internal/pocketbase"
	"github.com/shipgate/site-api/internal/scoring"
	apperrors "github.com/shipgate/site-api/pkg/util"
)

// ScorecardService scores quiz submissions and persists the results.
type ScorecardService struct {
	store      pocketbase.Store
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewScorecardService creates the service.
func NewScorecardService(store pocketbase.Store, dispatcher events.Dispatcher, logger *zap.Logger) *ScorecardService {
	return &ScorecardService{store: store, dispatcher: dispatcher, logger: logger}
}

// ScorecardInput is a quiz submission before validation.
type ScorecardInput struct {
	Email       string
	FullName    string
	CompanyName string
	Answers     []int
	CreatedAt   string
	PageURL     string
	UserAgent   string
}

// ScorecardResult is the authoritative server-side outcome.
type ScorecardResult struct {
	TotalScore int
	Tier       scoring.Tier
	Content    scoring.TierResult
}

// SubmitScorecard validates the submission, recomputes the score and
// tier server-side, and persists the record. The caller always gets
// their score once validation passes: persistence and notification
// failures are logged, not surfaced.
func (s *ScorecardService) SubmitScorecard(ctx context.Context, input ScorecardInput) (*ScorecardResult, error) {
	fullName := strings.TrimSpace(input.FullName)
	companyName := strings.TrimSpace(input.CompanyName)
	email := strings.TrimSpace(input.Email)

	if fullName == "" {
		return nil, apperrors.NewMissingField("fullName", "Your name is required.")
	}
	if companyName == "" {
		return nil, apperrors.NewMissingField("companyName", "Company name is required.")
	}
	if !isValidEmail(email) {
		return nil, apperrors.NewInvalidEmail("A valid email is required.")
	}

	total, tier, err := scoring.Score(input.Answers)
	if err != nil {
		return nil, err
	}

	record := &domain.ScorecardInquiry{
		Email:       normalizeEmail(email),
		FullName:    fullName,
		CompanyName: companyName,
		ScoreTotal:  total,
		Tier:        tier.Slug(),
		Answers:     input.Answers,
		PageURL:     input.PageURL,
		UserAgent:   input.UserAgent,
	}

	created, err := s.store.CreateScorecardInquiry(ctx, record)
	if err != nil {
		s.logger.Error("create scorecard inquiry failed (score still returned)",
			zap.Error(err),
			zap.Int("score_total", total),
			zap.String("tier", tier.Slug()))
		created = record
	} else {
		s.mirrorLegacySubmission(ctx, created)
	}

	_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventScorecardSubmitted, events.ScorecardSubmittedPayload{
		Record:     *created,
		TierLabel:  string(tier),
		ScoreTotal: total,
	}))

	return &ScorecardResult{
		TotalScore: total,
		Tier:       tier,
		Content:    scoring.ResultFor(tier),
	}, nil
}

// mirrorLegacySubmission writes the old scorecard_submissions shape so
// the historical collection keeps filling. Best-effort.
func (s *ScorecardService) mirrorLegacySubmission(ctx context.Context, record *domain.ScorecardInquiry) {
	legacy := &domain.ScorecardSubmission{
		Email:      record.Email,
		ScoreTotal: record.ScoreTotal,
		Tier:       record.Tier,
		Answers:    record.Answers,
		UserAgent:  record.UserAgent,
		PageURL:    record.PageURL,
	}

	mirrorCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.store.CreateScorecardSubmission(mirrorCtx, legacy); err != nil {
		s.logger.Warn("legacy scorecard mirror failed", zap.Error(err))
	}
}
