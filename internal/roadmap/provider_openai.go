package roadmap

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/saulo-duarte/roadmap-lambda/internal/config"
)

type openaiProvider struct {
	client openai.Client
	model  string
}

func NewOpenAIProvider(cfg config.OpenAIConfig, reqOpts ...option.RequestOption) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	opts = append(opts, reqOpts...)

	return &openaiProvider{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
	}, nil
}

func (p *openaiProvider) Model() string {
	return p.model
}

func (p *openaiProvider) Generate(ctx context.Context, prompt string) (*Completion, error) {
	log := config.WithContext(ctx)

	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: p.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat completion: %w", err)
	}

	completion := &Completion{Model: p.model}
	if resp.Model != "" {
		completion.Model = resp.Model
	}
	for _, choice := range resp.Choices {
		completion.Candidates = append(completion.Candidates, choice.Message.Content)
	}

	log.Debugf("[ROADMAP] OpenAI returned %d choices", len(completion.Candidates))
	return completion, nil
}
