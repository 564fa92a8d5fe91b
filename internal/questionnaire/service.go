package questionnaire

import (
	"context"
	"errors"

	"fedventura-backend/internal/advisor"
	"fedventura-backend/internal/shared/metrics"
	"fedventura-backend/internal/shared/telemetry"
)

// NoticeSaveFailed is shown when results were generated but not persisted.
const NoticeSaveFailed = "We couldn't save your results. Please try again."

type Service struct {
	Advisor *advisor.Service
	Repo    Repo
}

func NewService(adv *advisor.Service, repo Repo) *Service {
	return &Service{Advisor: adv, Repo: repo}
}

// Submit generates three recommendations for answers and saves them. sub is
// the caller's submission and may be nil. A save failure is reported as a
// notice and never hides the recommendations.
func (s *Service) Submit(ctx context.Context, userID string, answers advisor.Answers, sub *advisor.Submission) (Result, error) {
	if s == nil || s.Advisor == nil || s.Repo == nil {
		return Result{}, errors.New("questionnaire service not configured")
	}
	answers = answers.Normalize()
	outcome, err := s.Advisor.Recommend(ctx, userID, answers, sub)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Recommendations: outcome.Value,
		State:           outcome.State,
		Saved:           true,
	}
	if outcome.Notice != "" {
		result.Notices = append(result.Notices, outcome.Notice)
	}

	if err := s.Repo.SaveSubmission(ctx, userID, answers, outcome.Value); err != nil {
		metrics.IncPersistenceFailure("save_submission")
		telemetry.Error("questionnaire.save_failed", map[string]any{
			"user_id":    userID,
			"error":      err,
			"request_id": telemetry.RequestIDFromContext(ctx),
		})
		result.Saved = false
		result.Notices = append(result.Notices, NoticeSaveFailed)
	}
	return result, nil
}

// Latest returns the user's saved submission.
func (s *Service) Latest(ctx context.Context, userID string) (Saved, error) {
	if s == nil || s.Repo == nil {
		return Saved{}, errors.New("questionnaire service not configured")
	}
	return s.Repo.Latest(ctx, userID)
}
