package analysis

import "errors"

var (
	ErrNotConfigured = errors.New("analysis provider not configured")
	ErrEmptyContent  = errors.New("content is required")
)

const (
	StageSummarize = "summarize"
	StageMask      = "mask"

	emptyContentMessage = "No content provided"
	invalidBodyMessage  = "Invalid request body"
	tooLargeMessage     = "Document is too large"

	// GenericFailureMessage is returned when a provider error carries no text.
	GenericFailureMessage = "Failed to analyze document. Please check that your API key is valid and the provider API is enabled."
)

// ProviderError wraps a failed model call. Its message is the provider's own
// so callers can match on it.
type ProviderError struct {
	Stage string
	Err   error
}

func (e *ProviderError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ProviderError) Unwrap() error { return e.Err }
