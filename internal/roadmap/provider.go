package roadmap

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/saulo-duarte/roadmap-lambda/internal/config"
)

var ErrMissingAPIKey = errors.New("missing API key for text generation provider")

type Provider interface {
	Generate(ctx context.Context, prompt string) (*Completion, error)
	Model() string
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, cfg config.GeminiConfig, httpOpts *genai.HTTPOptions) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if httpOpts != nil {
		clientCfg.HTTPOptions = *httpOpts
	}
	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &geminiProvider{client: client, model: cfg.Model}, nil
}

func (p *geminiProvider) Model() string {
	return p.model
}

func (p *geminiProvider) Generate(ctx context.Context, prompt string) (*Completion, error) {
	log := config.WithContext(ctx)

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}

	completion := &Completion{Model: p.model}
	if resp.ModelVersion != "" {
		completion.Model = resp.ModelVersion
	}
	for _, cand := range resp.Candidates {
		completion.Candidates = append(completion.Candidates, candidateText(cand))
	}

	log.Debugf("[ROADMAP] Gemini returned %d candidates", len(completion.Candidates))
	return completion, nil
}

func candidateText(cand *genai.Candidate) string {
	if cand == nil || cand.Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range cand.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String()
}
