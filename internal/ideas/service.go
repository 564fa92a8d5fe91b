package ideas

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fedventura-backend/internal/advisor"
	"fedventura-backend/internal/shared/metrics"
	"fedventura-backend/internal/shared/storage/cache"
	"fedventura-backend/internal/shared/telemetry"
	"fedventura-backend/internal/shared/util"
)

const maxTitleLength = 200

var ErrInvalidIdea = errors.New("invalid business idea")

// CoursesResult is the course listing for one idea.
type CoursesResult struct {
	Idea    advisor.BusinessIdea          `json:"idea"`
	Courses advisor.CourseRecommendations `json:"courses"`
	State   advisor.State                 `json:"state"`
	Notice  string                        `json:"notice,omitempty"`
	Cached  bool                          `json:"cached"`
}

type Service struct {
	Advisor *advisor.Service
	Cache   cache.Store
	TTL     time.Duration
}

func NewService(adv *advisor.Service, store cache.Store, ttl time.Duration) *Service {
	return &Service{Advisor: adv, Cache: store, TTL: ttl}
}

// List returns the business idea catalog.
func (s *Service) List() []advisor.BusinessIdea {
	return advisor.Ideas()
}

// Courses returns course tiers for idea, driving sub (which may be nil).
// Model results are cached per idea; fallback results are never cached.
func (s *Service) Courses(ctx context.Context, owner string, idea advisor.BusinessIdea, sub *advisor.Submission) (CoursesResult, error) {
	idea.Title = strings.TrimSpace(idea.Title)
	if idea.Title == "" || len([]rune(idea.Title)) > maxTitleLength {
		return CoursesResult{}, fmt.Errorf("%w: title must be 1-%d characters", ErrInvalidIdea, maxTitleLength)
	}

	if sub == nil {
		sub = advisor.NewSubmission()
	}
	key := cacheKey(idea)
	if s.Cache != nil && sub.State() == advisor.StateIdle {
		var cached advisor.CourseRecommendations
		ok, err := cache.GetJSON(ctx, s.Cache, key, &cached)
		if err != nil {
			telemetry.Warn("courses.cache_get_failed", map[string]any{"error": err, "key": key})
		}
		metrics.ObserveCacheLookup(ok)
		if ok && sub.Complete(advisor.StateSuccess) == nil {
			return CoursesResult{Idea: idea, Courses: cached, State: advisor.StateSuccess, Cached: true}, nil
		}
	}

	out := s.Advisor.RecommendCourses(ctx, owner, idea, sub)
	if s.Cache != nil && out.State == advisor.StateSuccess {
		if err := cache.SetJSON(ctx, s.Cache, key, out.Value, s.TTL); err != nil {
			telemetry.Warn("courses.cache_set_failed", map[string]any{"error": err, "key": key})
		}
	}
	return CoursesResult{Idea: idea, Courses: out.Value, State: out.State, Notice: out.Notice}, nil
}

func cacheKey(idea advisor.BusinessIdea) string {
	parts := append([]string{idea.Title, idea.Description}, idea.SkillsNeeded...)
	return "courses:v2:" + util.HashKey(parts...)
}
