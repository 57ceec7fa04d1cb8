package health

// Status is the payload served at /api/health.
type Status struct {
	OK         bool   `json:"ok"`
	Provider   string `json:"provider"`
	Model      string `json:"model"`
	Configured bool   `json:"configured"`
}

// Service encapsulates health-related checks.
type Service struct {
	provider   string
	model      string
	configured bool
}

// NewService constructs a new health service. configured reports whether the
// provider has an API key.
func NewService(provider, model string, configured bool) *Service {
	return &Service{provider: provider, model: model, configured: configured}
}

// Status returns the health payload. The process is healthy without an API
// key; configured tells the caller whether analyses can succeed.
func (s *Service) Status() Status {
	return Status{
		OK:         true,
		Provider:   s.provider,
		Model:      s.model,
		Configured: s.configured,
	}
}
