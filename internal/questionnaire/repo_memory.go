package questionnaire

import (
	"context"
	"sync"
	"time"

	"fedventura-backend/internal/advisor"
)

type MemoryRepo struct {
	mu    sync.RWMutex
	saved map[string]Saved
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{saved: make(map[string]Saved)}
}

func (r *MemoryRepo) SaveSubmission(ctx context.Context, userID string, answers advisor.Answers, recs []advisor.BusinessRecommendation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	copied := make(advisor.Answers, len(answers))
	for k, v := range answers {
		copied[k] = v
	}
	r.mu.Lock()
	r.saved[userID] = Saved{
		Answers:         copied,
		Recommendations: append([]advisor.BusinessRecommendation(nil), recs...),
		UpdatedAt:       time.Now().UTC(),
	}
	r.mu.Unlock()
	return nil
}

func (r *MemoryRepo) Latest(ctx context.Context, userID string) (Saved, error) {
	if err := ctx.Err(); err != nil {
		return Saved{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.saved[userID]
	if !ok {
		return Saved{}, ErrNotFound
	}
	return s, nil
}
