package llm

import (
	"context"
	"errors"
)

// Client abstracts text-generation providers. One prompt in, one completion out.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrMissingCredential is returned before any outbound call when no API key is configured.
var ErrMissingCredential = errors.New("llm api key not configured")

// ErrEmptyResponse is returned when the provider answers without any text.
var ErrEmptyResponse = errors.New("llm response empty")

// PlaceholderClient stands in when no provider credential is configured.
type PlaceholderClient struct {
	Provider string
}

// Complete returns ErrMissingCredential.
func (p PlaceholderClient) Complete(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrMissingCredential
}

// ClientFunc adapts a function to Client.
type ClientFunc func(ctx context.Context, prompt string) (string, error)

// Complete calls f.
func (f ClientFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
