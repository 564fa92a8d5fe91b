package questionnaire

import (
	"context"
	"errors"

	"fedventura-backend/internal/advisor"
)

var ErrNotFound = errors.New("questionnaire response not found")

type Repo interface {
	// SaveSubmission upserts the answers row and replaces the user's
	// recommendations in one unit.
	SaveSubmission(ctx context.Context, userID string, answers advisor.Answers, recs []advisor.BusinessRecommendation) error
	Latest(ctx context.Context, userID string) (Saved, error)
}
