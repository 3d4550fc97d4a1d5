package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/saulo-duarte/roadmap-lambda/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "ROADMAP_PROVIDER", "GEMINI_MODEL", "OPENAI_MODEL",
		"TTS_MODEL", "TTS_VOICE", "ROADMAP_TIMEOUT", "CORS_ALLOWED_ORIGINS",
		"OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_SERVICE_NAME",
	} {
		t.Setenv(key, "")
	}

	cfg := config.Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, "tts-1", cfg.Speech.Model)
	assert.Equal(t, "alloy", cfg.Speech.Voice)
	assert.Equal(t, 60*time.Second, cfg.GenerateTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.OTel.Enabled())
	assert.Equal(t, "roadmap", cfg.OTel.ServiceName)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("ROADMAP_PROVIDER", "OpenAI")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("ROADMAP_TIMEOUT", "15")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://collector:4318")

	cfg := config.Load()

	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "gemini-key", cfg.Gemini.APIKey)
	assert.Equal(t, 15*time.Second, cfg.GenerateTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.OTel.Enabled())

	t.Run("GoogleKeyWins", func(t *testing.T) {
		t.Setenv("GOOGLE_API_KEY", "google-key")
		assert.Equal(t, "google-key", config.Load().Gemini.APIKey)
	})

	t.Run("InvalidTimeoutFallsBack", func(t *testing.T) {
		t.Setenv("ROADMAP_TIMEOUT", "soon")
		assert.Equal(t, 60*time.Second, config.Load().GenerateTimeout)
	})
}
