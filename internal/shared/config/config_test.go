package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ENV", "CORS_ALLOW_ORIGINS", "LLM_PROVIDER", "GOOGLE_GENERATIVE_AI_API_KEY",
		"GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_BASE_URL", "OPENAI_API_KEY", "LLM_MODEL",
		"OPENAI_BASE_URL", "LLM_TIMEOUT_SECONDS", "MAX_CONTENT_BYTES",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg := FromEnv()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowOrigin)
	assert.Equal(t, ProviderGemini, cfg.LLMProvider)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model())
	assert.Equal(t, "", cfg.APIKey())
	assert.Equal(t, 120*time.Second, cfg.LLMTimeout)
	assert.Equal(t, int64(1<<20), cfg.MaxContentBytes)
}

func TestFromEnvGeminiKeyFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "fallback-key")

	assert.Equal(t, "fallback-key", FromEnv().APIKey())

	t.Setenv("GOOGLE_GENERATIVE_AI_API_KEY", "primary-key")
	assert.Equal(t, "primary-key", FromEnv().APIKey())
}

func TestFromEnvOpenAI(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", " OpenAI ")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("LLM_MODEL", "gpt-4.1-mini")
	t.Setenv("LLM_TIMEOUT_SECONDS", "-3")

	cfg := FromEnv()

	assert.Equal(t, ProviderOpenAI, cfg.LLMProvider)
	assert.Equal(t, "sk-test", cfg.APIKey())
	assert.Equal(t, "gpt-4.1-mini", cfg.Model())
	assert.Equal(t, 120*time.Second, cfg.LLMTimeout)
	assert.Equal(t, "OPENAI_API_KEY", cfg.MissingKeyError().Field)
}

func TestMissingKeyErrorMentionsAPIKey(t *testing.T) {
	clearEnv(t)

	err := FromEnv().MissingKeyError()

	assert.Equal(t, "GOOGLE_GENERATIVE_AI_API_KEY", err.Field)
	assert.Contains(t, err.Error(), "API Key")
	assert.Contains(t, err.Error(), "GOOGLE_GENERATIVE_AI_API_KEY")
}

func TestLoadReadsDotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.Unsetenv("GEMINI_MODEL"))

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GEMINI_MODEL=gemini-from-dotenv\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		_ = os.Unsetenv("GEMINI_MODEL")
	})

	assert.Equal(t, "gemini-from-dotenv", Load().GeminiModel)
}
