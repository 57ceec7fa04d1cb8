package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	defaultGeminiModel     = "gemini-2.5-flash"
	defaultOpenAIModel     = "gpt-4o-mini"
	defaultTimeoutSeconds  = 120
	defaultMaxContentBytes = 1 << 20
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string

	LLMProvider   string
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
	LLMTimeout    time.Duration

	MaxContentBytes int64
}

// Load reads configuration from environment variables with sensible defaults.
// A missing API key is not an error here; requests report it.
func Load() Config {
	// Best-effort load of local env files for dev convenience. Variables
	// already present in the environment win.
	for _, path := range []string{".env", "cmd/.env"} {
		_ = godotenv.Load(path)
	}
	return FromEnv()
}

// FromEnv reads configuration from the current process environment only.
func FromEnv() Config {
	timeout := getEnvInt("LLM_TIMEOUT_SECONDS", defaultTimeoutSeconds)
	if timeout <= 0 {
		timeout = defaultTimeoutSeconds
	}
	maxBytes := int64(getEnvInt("MAX_CONTENT_BYTES", defaultMaxContentBytes))
	if maxBytes <= 0 {
		maxBytes = defaultMaxContentBytes
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		LLMProvider:     normalizeProvider(getEnv("LLM_PROVIDER", ProviderGemini)),
		GeminiAPIKey:    firstEnv("GOOGLE_GENERATIVE_AI_API_KEY", "GEMINI_API_KEY"),
		GeminiModel:     getEnv("GEMINI_MODEL", defaultGeminiModel),
		GeminiBaseURL:   getEnv("GEMINI_BASE_URL", ""),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:     getEnv("LLM_MODEL", defaultOpenAIModel),
		OpenAIBaseURL:   getEnv("OPENAI_BASE_URL", ""),
		LLMTimeout:      time.Duration(timeout) * time.Second,
		MaxContentBytes: maxBytes,
	}
}

// APIKey returns the key for the selected provider.
func (c Config) APIKey() string {
	if c.LLMProvider == ProviderOpenAI {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

// Model returns the model name for the selected provider.
func (c Config) Model() string {
	if c.LLMProvider == ProviderOpenAI {
		return c.OpenAIModel
	}
	return c.GeminiModel
}

// MissingKeyError describes the absent API key for the selected provider.
func (c Config) MissingKeyError() *Error {
	if c.LLMProvider == ProviderOpenAI {
		return &Error{
			Field:   "OPENAI_API_KEY",
			Message: "Missing OpenAI API Key. Please add OPENAI_API_KEY to your environment variables.",
		}
	}
	return &Error{
		Field:   "GOOGLE_GENERATIVE_AI_API_KEY",
		Message: "Missing Google Gemini API Key. Please add GOOGLE_GENERATIVE_AI_API_KEY to your environment variables.",
	}
}

// Error names a configuration field that is missing or invalid.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func getEnv(key, def string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return def
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if val := getEnv(key, ""); val != "" {
			return val
		}
	}
	return ""
}

func getEnvInt(key string, def int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return parsed
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	default:
		return "dev"
	}
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case ProviderOpenAI:
		return ProviderOpenAI
	default:
		return ProviderGemini
	}
}
