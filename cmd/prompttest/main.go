package main

// Run one advisor pipeline against the configured model:
//   go run ./cmd/prompttest -pipeline recommendations -answers answers.json
//   go run ./cmd/prompttest -pipeline courses -idea 1

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"fedventura-backend/internal/advisor"
	"fedventura-backend/internal/bootstrap"
	"fedventura-backend/internal/shared/config"
	"fedventura-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()

	pipeline := flag.String("pipeline", advisor.PipelineRecommendations, "recommendations or courses")
	answersPath := flag.String("answers", "", "Path to a JSON object of questionnaire answers (recommendations)")
	ideaIndex := flag.Int("idea", 0, "Business idea index (courses)")
	ideaTitle := flag.String("title", "", "Custom idea title (courses, overrides -idea)")
	showPrompt := flag.Bool("show-prompt", false, "Print the prompt before calling the model")
	provider := flag.String("provider", cfg.LLMProvider, "LLM provider")
	model := flag.String("model", cfg.LLMModel, "LLM model")
	flag.Parse()

	cfg.LLMProvider = strings.TrimSpace(*provider)
	cfg.LLMModel = strings.TrimSpace(*model)
	telemetry.Init(cfg.LogLevel)
	defer telemetry.Sync()

	ctx := context.Background()
	client, err := bootstrap.BuildLLM(ctx, cfg)
	if err != nil {
		exitErr(fmt.Sprintf("build llm client: %v", err))
	}

	var (
		value  any
		state  advisor.State
		reason string
		prompt string
	)
	switch *pipeline {
	case advisor.PipelineRecommendations:
		answers, err := readAnswers(*answersPath)
		if err != nil {
			exitErr(err.Error())
		}
		answers = answers.Normalize()
		if err := answers.Validate(); err != nil {
			exitErr(err.Error())
		}
		if prompt, err = advisor.BuildRecommendationPrompt(answers); err != nil {
			exitErr(fmt.Sprintf("build prompt: %v", err))
		}
		out := advisor.Run(ctx, client, advisor.RecommendationPipeline, answers, nil)
		value, state, reason = out.Value, out.State, out.Reason
	case advisor.PipelineCourses:
		idea, _ := advisor.IdeaAt(*ideaIndex)
		if t := strings.TrimSpace(*ideaTitle); t != "" {
			idea = advisor.BusinessIdea{Title: t}
		}
		if prompt, err = advisor.BuildCoursePrompt(idea); err != nil {
			exitErr(fmt.Sprintf("build prompt: %v", err))
		}
		out := advisor.Run(ctx, client, advisor.CoursePipeline, idea, nil)
		value, state, reason = out.Value, out.State, out.Reason
	default:
		exitErr(fmt.Sprintf("unsupported pipeline: %s", *pipeline))
	}

	if *showPrompt {
		fmt.Println(prompt)
		fmt.Println("---")
	}
	raw, err := json.Marshal(value)
	if err != nil {
		exitErr(fmt.Sprintf("encode result: %v", err))
	}
	pretty, err := prettyJSON(raw)
	if err != nil {
		exitErr(fmt.Sprintf("format json: %v", err))
	}
	fmt.Println(string(pretty))
	if reason != "" {
		fmt.Fprintf(os.Stderr, "state=%s reason=%s\n", state, reason)
		return
	}
	fmt.Fprintf(os.Stderr, "state=%s\n", state)
}

func readAnswers(path string) (advisor.Answers, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("answers path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}
	var answers advisor.Answers
	if err := json.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("invalid answers json: %w", err)
	}
	return answers, nil
}

func prettyJSON(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exitErr(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
