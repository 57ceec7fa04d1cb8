package llm

import (
	"context"
	"errors"
)

// Client abstracts a hosted generative model that turns a prompt into text.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
	Model() string
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm provider not configured")

// PlaceholderClient stands in for a provider whose API key is missing.
type PlaceholderClient struct {
	Provider  string
	ModelName string
}

// Generate returns ErrNotConfigured.
func (PlaceholderClient) Generate(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}

func (p PlaceholderClient) Name() string  { return p.Provider }
func (p PlaceholderClient) Model() string { return p.ModelName }
