package demo

import (
	"context"
	"time"

	"legallens/internal/analysis"
	"legallens/internal/shared/telemetry"
)

// DefaultDelay matches the processing time a real analysis usually shows.
const DefaultDelay = 2 * time.Second

// Summary is returned for every demo analysis.
const Summary = "This is a demonstration of the AI analysis feature. In real mode with a Google Gemini API key, this section would contain:\n\n" +
	"• A comprehensive plain-English summary of your legal document\n" +
	"• Clear explanations of complex legal terms and clauses\n" +
	"• Important implications and what they mean for you\n\n" +
	"The actual AI would analyze the specific content of your document and provide personalized insights about rights, obligations, deadlines, and key terms."

// KeyPoints returns the canned demo key points. The slice is fresh on every
// call so callers may keep it.
func KeyPoints() []string {
	return []string{
		"Demo Mode: This is a simulated analysis to showcase the interface",
		"Real Mode: Connect Google Gemini API for actual AI-powered legal document analysis",
		"Privacy: With API key, your documents are analyzed securely with PII masking",
		"Audio: Text-to-speech works in both demo and real modes for accessibility",
	}
}

// Simulator produces a canned analysis without any provider or network call.
type Simulator struct {
	Delay time.Duration
	// After defaults to time.After. Tests swap it to control the delay.
	After func(time.Duration) <-chan time.Time
}

// NewSimulator returns a Simulator using DefaultDelay.
func NewSimulator() *Simulator {
	return &Simulator{Delay: DefaultDelay, After: time.After}
}

// Analyze waits for the configured delay and returns the canned summary with
// the regex-masked content.
func (s *Simulator) Analyze(ctx context.Context, content string) (analysis.Result, error) {
	after := s.After
	if after == nil {
		after = time.After
	}
	select {
	case <-ctx.Done():
		return analysis.Result{}, ctx.Err()
	case <-after(s.Delay):
	}

	masked := Mask(content)
	telemetry.Info("demo.analysis", map[string]any{
		"content_length": len(content),
		"masked_length":  len(masked),
	})
	return analysis.Result{
		SimplifiedText: Summary,
		KeyPoints:      KeyPoints(),
		MaskedText:     masked,
	}, nil
}
