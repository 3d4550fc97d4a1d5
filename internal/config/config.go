package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	Port     string
	LogLevel string

	Provider string
	Gemini   GeminiConfig
	OpenAI   OpenAIConfig
	Speech   SpeechConfig

	GenerateTimeout time.Duration

	DatabaseDSN  string
	CryptoKey    string
	JWTSecret    string
	CookieDomain string

	CORSAllowedOrigins []string
	OTel               OTelConfig
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type SpeechConfig struct {
	Model string
	Voice string
}

type OTelConfig struct {
	Endpoint    string
	Headers     string
	ServiceName string
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from the environment. Outside production a .env
// file in the working directory is loaded first; variables already present in
// the environment win.
func Load() *Config {
	if getEnv("APP_ENV", "development") != "production" {
		_ = godotenv.Load()
	}

	geminiKey := os.Getenv("GOOGLE_API_KEY")
	if geminiKey == "" {
		geminiKey = os.Getenv("GEMINI_API_KEY")
	}

	return &Config{
		Env:      getEnv("APP_ENV", "development"),
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		Provider: strings.ToLower(getEnv("ROADMAP_PROVIDER", "gemini")),
		Gemini: GeminiConfig{
			APIKey: geminiKey,
			Model:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		},
		OpenAI: OpenAIConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			BaseURL: os.Getenv("OPENAI_BASE_URL"),
			Model:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		},
		Speech: SpeechConfig{
			Model: getEnv("TTS_MODEL", "tts-1"),
			Voice: getEnv("TTS_VOICE", "alloy"),
		},

		GenerateTimeout: getEnvDuration("ROADMAP_TIMEOUT", 60*time.Second),

		DatabaseDSN:  os.Getenv("DATABASE_DSN"),
		CryptoKey:    os.Getenv("CRYPTO_KEY"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		CookieDomain: os.Getenv("COOKIE_DOMAIN"),

		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		OTel: OTelConfig{
			Endpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
			Headers:     os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "roadmap"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	// bare numbers are seconds
	if n, err := strconv.Atoi(v); err == nil && n >= 0 {
		return time.Duration(n) * time.Second
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
