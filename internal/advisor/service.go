package advisor

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/singleflight"

	"fedventura-backend/internal/llm"
	"fedventura-backend/internal/shared/util"
)

// Service runs the advisor pipelines against a configured model. Identical
// submissions in flight for the same owner share one model call.
type Service struct {
	LLM   llm.Client
	group singleflight.Group
}

// NewService constructs a Service. A nil client behaves like a missing credential.
func NewService(client llm.Client) *Service {
	return &Service{LLM: client}
}

// Recommend validates answers and returns three business recommendations,
// driving sub through generation. A nil sub gets a fresh one. The only error
// is ErrInvalidAnswers; every other failure yields a fallback outcome.
func (s *Service) Recommend(ctx context.Context, owner string, answers Answers, sub *Submission) (Outcome[[]BusinessRecommendation], error) {
	answers = answers.Normalize()
	if err := answers.Validate(); err != nil {
		return Outcome[[]BusinessRecommendation]{}, err
	}
	if sub == nil {
		sub = NewSubmission()
	}
	if err := sub.Transition(StateGenerating); err != nil {
		return rejected[Answers, []BusinessRecommendation](ctx, RecommendationPipeline, answers, err), nil
	}
	key := flightKey(PipelineRecommendations, owner, answers.Ordered())
	v, _, _ := s.group.Do(key, func() (any, error) {
		return generate(context.WithoutCancel(ctx), s.LLM, RecommendationPipeline, answers), nil
	})
	out := v.(Outcome[[]BusinessRecommendation])
	out.Value = append([]BusinessRecommendation(nil), out.Value...)
	return settle(ctx, sub, out), nil
}

// RecommendCourses returns three tiers of courses for idea, driving sub
// through generation.
func (s *Service) RecommendCourses(ctx context.Context, owner string, idea BusinessIdea, sub *Submission) Outcome[CourseRecommendations] {
	if sub == nil {
		sub = NewSubmission()
	}
	if err := sub.Transition(StateGenerating); err != nil {
		return rejected[BusinessIdea, CourseRecommendations](ctx, CoursePipeline, idea, err)
	}
	key := flightKey(PipelineCourses, owner, idea)
	v, _, _ := s.group.Do(key, func() (any, error) {
		return generate(context.WithoutCancel(ctx), s.LLM, CoursePipeline, idea), nil
	})
	return settle(ctx, sub, v.(Outcome[CourseRecommendations]))
}

func flightKey(pipeline, owner string, input any) string {
	data, _ := json.Marshal(input)
	return pipeline + "|" + owner + "|" + util.HashKey(string(data))
}
