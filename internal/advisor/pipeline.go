package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/xeipuuv/gojsonschema"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"fedventura-backend/internal/llm"
	"fedventura-backend/internal/shared/metrics"
	"fedventura-backend/internal/shared/telemetry"
)

const (
	PipelineRecommendations = "recommendations"
	PipelineCourses         = "courses"

	NoticeRecommendations = "Unable to generate personalized recommendations. Using general suggestions."
	NoticeCourses         = "Unable to generate course recommendations. Showing general suggestions."
)

// Fallback reasons.
const (
	ReasonPrompt            = "prompt_error"
	ReasonMissingCredential = "missing_credential"
	ReasonModel             = "model_error"
	ReasonNoJSON            = "no_json"
	ReasonShape             = "shape_mismatch"
	ReasonIllegalState      = "illegal_state"
)

var tracer = otel.Tracer("fedventura/advisor")

// Pipeline describes one prompt-to-structure flow. Every failure routes to Fallback.
type Pipeline[In, Out any] struct {
	Name     string
	Notice   string
	Prompt   func(In) (string, error)
	Schema   *gojsonschema.Schema
	Decode   func(json.RawMessage) (Out, error)
	Fallback func(In) Out
}

// Outcome is the result of running a pipeline. Value is always shape-valid.
type Outcome[Out any] struct {
	Value  Out
	State  State
	Reason string
	Notice string
	Err    error
}

// Fellback reports whether the value came from the fallback generator.
func (o Outcome[Out]) Fellback() bool {
	return o.State == StateFallback
}

// Run executes the pipeline and always yields a value: either the normalized
// model output or the deterministic fallback. sub must be idle; a submission
// that has already run gets the fallback without a model call.
func Run[In, Out any](ctx context.Context, client llm.Client, p Pipeline[In, Out], in In, sub *Submission) Outcome[Out] {
	if sub == nil {
		sub = NewSubmission()
	}
	if err := sub.Transition(StateGenerating); err != nil {
		return rejected(ctx, p, in, err)
	}
	return settle(ctx, sub, generate(ctx, client, p, in))
}

// generate calls the model once without touching any submission.
func generate[In, Out any](ctx context.Context, client llm.Client, p Pipeline[In, Out], in In) Outcome[Out] {
	ctx, span := tracer.Start(ctx, "advisor."+p.Name)
	defer span.End()
	start := time.Now()

	value, reason, err := attempt(ctx, client, p, in)

	out := Outcome[Out]{Value: value, State: StateSuccess}
	if err != nil {
		out = Outcome[Out]{
			Value:  p.Fallback(in),
			State:  StateFallback,
			Reason: reason,
			Notice: p.Notice,
			Err:    err,
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, reason)
		telemetry.Warn("advisor.fallback", map[string]any{
			"pipeline":   p.Name,
			"reason":     reason,
			"error":      err,
			"request_id": telemetry.RequestIDFromContext(ctx),
		})
	}

	span.SetAttributes(
		attribute.String("advisor.pipeline", p.Name),
		attribute.String("advisor.state", string(out.State)),
	)
	metrics.ObserveGeneration(p.Name, string(out.State), out.Reason, time.Since(start))
	return out
}

// settle moves sub from generating to the outcome's state.
func settle[Out any](ctx context.Context, sub *Submission, out Outcome[Out]) Outcome[Out] {
	if err := sub.Transition(out.State); err != nil {
		telemetry.Error("advisor.transition_failed", map[string]any{
			"error":      err,
			"request_id": telemetry.RequestIDFromContext(ctx),
		})
		return out
	}
	out.State = sub.State()
	return out
}

func rejected[In, Out any](ctx context.Context, p Pipeline[In, Out], in In, err error) Outcome[Out] {
	telemetry.Warn("advisor.fallback", map[string]any{
		"pipeline":   p.Name,
		"reason":     ReasonIllegalState,
		"error":      err,
		"request_id": telemetry.RequestIDFromContext(ctx),
	})
	metrics.ObserveGeneration(p.Name, string(StateFallback), ReasonIllegalState, 0)
	return Outcome[Out]{
		Value:  p.Fallback(in),
		State:  StateFallback,
		Reason: ReasonIllegalState,
		Notice: p.Notice,
		Err:    err,
	}
}

func attempt[In, Out any](ctx context.Context, client llm.Client, p Pipeline[In, Out], in In) (Out, string, error) {
	var zero Out
	prompt, err := p.Prompt(in)
	if err != nil {
		return zero, ReasonPrompt, err
	}
	if client == nil {
		return zero, ReasonMissingCredential, llm.ErrMissingCredential
	}
	text, err := client.Complete(ctx, prompt)
	if err != nil {
		if errors.Is(err, llm.ErrMissingCredential) {
			return zero, ReasonMissingCredential, err
		}
		return zero, ReasonModel, err
	}
	raw, err := ExtractJSON(text)
	if err != nil {
		return zero, ReasonNoJSON, err
	}
	if p.Schema != nil {
		if err := checkShape(p.Schema, raw); err != nil {
			return zero, ReasonShape, err
		}
	}
	value, err := p.Decode(raw)
	if err != nil {
		return zero, ReasonShape, err
	}
	return value, "", nil
}

// RecommendationPipeline asks for three business recommendations.
var RecommendationPipeline = Pipeline[Answers, []BusinessRecommendation]{
	Name:     PipelineRecommendations,
	Notice:   NoticeRecommendations,
	Prompt:   BuildRecommendationPrompt,
	Schema:   recommendationsSchema,
	Decode:   decodeRecommendations,
	Fallback: FallbackRecommendations,
}

// CoursePipeline asks for three tiers of courses for a business idea.
var CoursePipeline = Pipeline[BusinessIdea, CourseRecommendations]{
	Name:     PipelineCourses,
	Notice:   NoticeCourses,
	Prompt:   BuildCoursePrompt,
	Schema:   coursesSchema,
	Decode:   decodeCourses,
	Fallback: func(idea BusinessIdea) CourseRecommendations { return FallbackCourses(idea.Title) },
}

func decodeRecommendations(raw json.RawMessage) ([]BusinessRecommendation, error) {
	var set RecommendationSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, errors.Join(ErrShapeMismatch, err)
	}
	if len(set.Recommendations) < recommendationCount {
		return nil, ErrShapeMismatch
	}
	return set.Recommendations[:recommendationCount], nil
}

func decodeCourses(raw json.RawMessage) (CourseRecommendations, error) {
	var out CourseRecommendations
	if err := json.Unmarshal(raw, &out); err != nil {
		return CourseRecommendations{}, errors.Join(ErrShapeMismatch, err)
	}
	return out, nil
}
