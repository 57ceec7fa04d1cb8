package bootstrap

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"legallens/internal/analysis"
	"legallens/internal/llm"
	"legallens/internal/llm/gemini"
	"legallens/internal/llm/openai"
	"legallens/internal/services/health"
	"legallens/internal/shared/config"
	"legallens/internal/shared/server"
	"legallens/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	LLM             llm.Client
	AnalysisService *analysis.Service
	AnalysisHandler *analysis.Handler
	HealthService   *health.Service
}

// Build wires the provider client, services and router. A missing API key is
// not an error: the service reports it on every analysis request.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	var (
		client    llm.Client
		configErr error
	)
	if strings.TrimSpace(cfg.APIKey()) == "" {
		missing := cfg.MissingKeyError()
		telemetry.Warn("bootstrap.api_key_missing", map[string]any{
			"provider": cfg.LLMProvider,
			"field":    missing.Field,
		})
		client = llm.PlaceholderClient{Provider: cfg.LLMProvider, ModelName: cfg.Model()}
		configErr = missing
	} else {
		built, err := buildLLM(cfg)
		if err != nil {
			return nil, err
		}
		client = built
	}

	svc := analysis.NewService(client, configErr)
	app := &App{
		Config:          cfg,
		LLM:             client,
		AnalysisService: svc,
		AnalysisHandler: analysis.NewHandler(svc),
		HealthService:   health.NewService(client.Name(), client.Model(), configErr == nil),
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		AnalysisHandler: app.AnalysisHandler,
		Health:          app.HealthService,
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":        cfg.Env,
		"provider":   client.Name(),
		"model":      client.Model(),
		"configured": configErr == nil,
	})
	return app, nil
}

// buildLLM returns the client for the selected provider.
func buildLLM(cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		client, err := openai.NewClient(openai.Config{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
			Timeout: cfg.LLMTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("openai client: %w", err)
		}
		return client, nil
	default:
		client, err := gemini.NewClient(gemini.Config{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
			Timeout: cfg.LLMTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("gemini client: %w", err)
		}
		return client, nil
	}
}
