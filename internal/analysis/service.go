package analysis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"legallens/internal/llm"
	"legallens/internal/shared/metrics"
	"legallens/internal/shared/server/middleware"
	"legallens/internal/shared/telemetry"
)

// Service runs the summarization and masking calls for one document.
type Service struct {
	LLM llm.Client
	// ConfigErr is set when the provider cannot be used, typically a missing
	// API key. Analyze refuses to run while it is non-nil.
	ConfigErr error

	now func() time.Time
}

// NewService constructs a Service. configErr may be nil.
func NewService(client llm.Client, configErr error) *Service {
	return &Service{LLM: client, ConfigErr: configErr, now: time.Now}
}

// Ready reports the configuration error, if any.
func (s *Service) Ready() error {
	if s.ConfigErr != nil {
		return s.ConfigErr
	}
	if s.LLM == nil {
		return ErrNotConfigured
	}
	return nil
}

// Analyze issues the summarization call and then the masking call. The calls
// run one after the other; either failing fails the analysis.
func (s *Service) Analyze(ctx context.Context, content string) (Outcome, error) {
	if err := s.Ready(); err != nil {
		return Outcome{}, fmt.Errorf("%w: %v", ErrNotConfigured, err)
	}
	if strings.TrimSpace(content) == "" {
		return Outcome{}, ErrEmptyContent
	}

	start := s.clock()
	metrics.IncAnalysisStarted()
	fields := map[string]any{
		"request_id":     middleware.RequestIDFrom(ctx),
		"provider":       s.LLM.Name(),
		"model":          s.LLM.Model(),
		"content_length": len(content),
	}

	rawSummary, err := s.generate(ctx, StageSummarize, llm.SummaryPrompt(content))
	if err != nil {
		s.fail(fields, start, err)
		return Outcome{}, err
	}
	summary, reason := ParseSummary(rawSummary)
	if reason != "" {
		metrics.IncParseFallback()
		telemetry.Warn("analysis.parse_fallback", map[string]any{
			"request_id":   fields["request_id"],
			"reason":       reason,
			"reply_length": len(rawSummary),
		})
	}

	masked, err := s.generate(ctx, StageMask, llm.MaskingPrompt(content))
	if err != nil {
		s.fail(fields, start, err)
		return Outcome{}, err
	}

	elapsed := s.since(start)
	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(elapsed)
	fields["duration_ms"] = elapsed
	fields["parse_fallback"] = reason != ""
	fields["key_points"] = len(summary.KeyPoints)
	telemetry.Info("analysis.complete", fields)

	return Outcome{
		Result: Result{
			SimplifiedText: summary.SimplifiedText,
			KeyPoints:      summary.KeyPoints,
			MaskedText:     masked,
		},
		Fallback:       reason != "",
		FallbackReason: reason,
	}, nil
}

func (s *Service) generate(ctx context.Context, stage, prompt string) (string, error) {
	metrics.IncProviderCall()
	text, err := s.LLM.Generate(ctx, prompt)
	if err != nil {
		return "", &ProviderError{Stage: stage, Err: err}
	}
	return text, nil
}

func (s *Service) fail(fields map[string]any, start time.Time, err error) {
	metrics.IncAnalysisFailed()
	fields["duration_ms"] = s.since(start)
	fields["err"] = err.Error()
	if pe, ok := err.(*ProviderError); ok {
		fields["stage"] = pe.Stage
	}
	telemetry.Error("analysis.failed", fields)
}

func (s *Service) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

func (s *Service) since(start time.Time) float64 {
	return float64(s.clock().Sub(start).Microseconds()) / 1000.0
}
