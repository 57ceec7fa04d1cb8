package analysis

import (
	"context"
	"errors"
	"strings"
	"sync"
)

type fakeLLM struct {
	mu      sync.Mutex
	replies map[string]string
	errs    map[string]error
	prompts []string
}

func newFakeLLM(summary, masked string) *fakeLLM {
	return &fakeLLM{
		replies: map[string]string{StageSummarize: summary, StageMask: masked},
		errs:    map[string]error{},
	}
}

// stageOf tells the two prompts apart by their opening words.
func stageOf(prompt string) string {
	if strings.HasPrefix(prompt, "Mask all personally identifiable information") {
		return StageMask
	}
	return StageSummarize
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	stage := stageOf(prompt)
	if err := f.errs[stage]; err != nil {
		return "", err
	}
	return f.replies[stage], nil
}

func (f *fakeLLM) Name() string  { return "fake" }
func (f *fakeLLM) Model() string { return "fake-1" }

func (f *fakeLLM) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.prompts))
	for _, p := range f.prompts {
		out = append(out, stageOf(p))
	}
	return out
}

type emptyError struct{}

func (emptyError) Error() string { return "" }

var errQuota = errors.New("[429 Too Many Requests] You exceeded your current quota")
