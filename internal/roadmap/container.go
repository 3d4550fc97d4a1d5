package roadmap

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/roadmap-lambda/internal/archive"
	"github.com/saulo-duarte/roadmap-lambda/internal/config"
	"github.com/saulo-duarte/roadmap-lambda/internal/document"
	"github.com/saulo-duarte/roadmap-lambda/internal/speech"
)

type RoadmapContainer struct {
	Handler *Handler
	Service Service
}

func NewRoadmapContainer(ctx context.Context, cfg *config.Config, archived archive.Service) (*RoadmapContainer, error) {
	provider, err := NewProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var synthesizer speech.Synthesizer
	if cfg.OpenAI.APIKey != "" {
		synthesizer = speech.NewOpenAISynthesizer(speech.Options{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.Speech.Model,
			Voice:   cfg.Speech.Voice,
		})
	} else {
		config.Log.Warn("OPENAI_API_KEY not set, audio output disabled")
	}

	service := NewService(provider, synthesizer, document.NewPDFRenderer(), cfg.GenerateTimeout)
	handler := NewHandler(service, archived)

	return &RoadmapContainer{
		Handler: handler,
		Service: service,
	}, nil
}

// NewProvider picks the text generation backend named by cfg.Provider.
func NewProvider(ctx context.Context, cfg *config.Config) (Provider, error) {
	switch cfg.Provider {
	case "", "gemini":
		return NewGeminiProvider(ctx, cfg.Gemini, nil)
	case "openai":
		return NewOpenAIProvider(cfg.OpenAI)
	}
	return nil, fmt.Errorf("unknown roadmap provider %q", cfg.Provider)
}
