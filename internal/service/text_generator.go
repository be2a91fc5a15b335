package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"google.golang.org/genai"

	"github.com/rllL1/portfolio/config"
	"github.com/rllL1/portfolio/internal/domain"
)

const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

// GeneratorOptions are used by tests to point the SDKs at a fake server
type GeneratorOptions struct {
	HTTPClient *http.Client
	BaseURL    string
}

// NewTextGenerator builds the generator of the configured provider.
// It returns nil, nil when the provider credential is missing.
func NewTextGenerator(ctx context.Context, cfg config.ChatConfig, opts GeneratorOptions) (domain.TextGenerator, error) {
	apiKey := cfg.ChatAPIKey()
	if apiKey == "" {
		return nil, nil
	}

	model := cfg.Model
	if model == "" {
		model = config.DefaultChatModel(cfg.Provider)
	}

	switch cfg.Provider {
	case ProviderAnthropic:
		return NewAnthropicGenerator(apiKey, model, cfg.MaxTokens, opts), nil
	case ProviderGemini, "":
		g, err := NewGeminiGenerator(ctx, apiKey, model, cfg.MaxTokens, opts)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unknown chat provider: %s", cfg.Provider)
	}
}

// GeminiGenerator calls generateContent on the Gemini API
type GeminiGenerator struct {
	client    *genai.Client
	model     string
	maxTokens int
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string, maxTokens int, opts GeneratorOptions) (*GeminiGenerator, error) {
	cc := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
	}
	if opts.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model, maxTokens: maxTokens}, nil
}

func (g *GeminiGenerator) Provider() string {
	return ProviderGemini
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	var genConfig *genai.GenerateContentConfig
	if g.maxTokens > 0 {
		genConfig = &genai.GenerateContentConfig{MaxOutputTokens: int32(g.maxTokens)}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), genConfig)
	if err != nil {
		return "", &domain.ErrUpstreamFailed{Provider: ProviderGemini, Err: err}
	}

	text := resp.Text()
	if text == "" {
		return "", &domain.ErrUpstreamFailed{Provider: ProviderGemini, Err: errors.New("empty response")}
	}
	return text, nil
}

// AnthropicGenerator calls the Messages API
type AnthropicGenerator struct {
	client    anthropic.Client
	model     string
	maxTokens int
}

func NewAnthropicGenerator(apiKey, model string, maxTokens int, opts GeneratorOptions) *AnthropicGenerator {
	options := []option.RequestOption{option.WithAPIKey(apiKey)}
	if opts.HTTPClient != nil {
		options = append(options, option.WithHTTPClient(opts.HTTPClient))
	}
	if opts.BaseURL != "" {
		options = append(options, option.WithBaseURL(opts.BaseURL))
	}
	if maxTokens <= 0 {
		maxTokens = 512
	}

	return &AnthropicGenerator{
		client:    anthropic.NewClient(options...),
		model:     model,
		maxTokens: maxTokens,
	}
}

func (g *AnthropicGenerator) Provider() string {
	return ProviderAnthropic
}

func (g *AnthropicGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	message, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: int64(g.maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", &domain.ErrUpstreamFailed{Provider: ProviderAnthropic, Err: err}
	}

	var b strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", &domain.ErrUpstreamFailed{Provider: ProviderAnthropic, Err: errors.New("empty response")}
	}
	return b.String(), nil
}
