package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rllL1/portfolio/config"
	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/pkg/liquid"
	"github.com/rllL1/portfolio/pkg/logger"
	"github.com/rllL1/portfolio/pkg/tracing"
)

const assistantPromptTemplate = "assistant_prompt"

const assistantPrompt = `You are {{ owner.name }}'s AI assistant on the portfolio website. You're friendly, professional, and knowledgeable about {{ owner.name }}'s work.

{{ owner.name }} is a {{ owner.role }}{% if skills.size > 0 %} who specializes in:
{% for skill in skills %}- {{ skill }}
{% endfor %}{% else %}.
{% endif %}{% if projects.size > 0 %}
Featured projects include:
{% for project in projects %}- {{ project }}
{% endfor %}{% endif %}
{% if owner.contact != "" %}Contact: {{ owner.contact }}
{% endif %}{% if owner.github != "" %}GitHub: {{ owner.github }}
{% endif %}{% if owner.location != "" %}Location: {{ owner.location }}
{% endif %}
Answer the user's question in a helpful, concise way (2-3 sentences max). If asked about contacting {{ owner.name }}, provide the email. If you don't know something specific, politely say so and encourage them to email {{ owner.name }} directly.

User question: {{ message }}

Your response:`

// AssistantService places the visitor message in a fixed prompt and relays the first model answer
type AssistantService struct {
	generator domain.TextGenerator
	renderer  *liquid.Renderer
	owner     config.OwnerProfile
	logger    logger.Logger
}

// NewAssistantService accepts a nil generator; Ask then reports ErrUpstreamUnavailable
func NewAssistantService(generator domain.TextGenerator, owner config.OwnerProfile, logger logger.Logger) *AssistantService {
	renderer := liquid.NewRenderer()
	if err := renderer.Register(assistantPromptTemplate, assistantPrompt); err != nil {
		panic(fmt.Sprintf("invalid assistant prompt template: %v", err))
	}
	return &AssistantService{
		generator: generator,
		renderer:  renderer,
		owner:     owner,
		logger:    logger,
	}
}

func (s *AssistantService) Ask(ctx context.Context, message string) (_ string, err error) {
	ctx, span := tracing.StartServiceSpan(ctx, "AssistantService", "Ask")
	defer func() { tracing.EndSpan(span, err) }()

	if s.generator == nil {
		s.logger.Error("Text generation API key not configured")
		return "", domain.ErrUpstreamUnavailable
	}

	prompt, err := s.BuildPrompt(ctx, message)
	if err != nil {
		return "", err
	}

	provider := s.generator.Provider()
	tracing.AddAttribute(ctx, "chat.provider", provider)

	start := time.Now()
	reply, err := s.generator.Generate(ctx, prompt)
	tracing.RecordChatCompletion(ctx, provider, err, time.Since(start))
	if err != nil {
		s.logger.WithFields(map[string]interface{}{
			"provider": provider,
			"error":    err.Error(),
		}).Error("Failed to generate assistant reply")

		var upstream *domain.ErrUpstreamFailed
		if errors.As(err, &upstream) {
			return "", err
		}
		return "", &domain.ErrUpstreamFailed{Provider: provider, Err: err}
	}

	return reply, nil
}

// BuildPrompt renders the owner profile and the visitor message into the prompt text
func (s *AssistantService) BuildPrompt(ctx context.Context, message string) (string, error) {
	prompt, err := s.renderer.Render(ctx, assistantPromptTemplate, map[string]interface{}{
		"owner": map[string]interface{}{
			"name":     s.owner.Name,
			"role":     s.owner.Role,
			"contact":  s.owner.Contact,
			"github":   s.owner.GitHub,
			"location": s.owner.Location,
		},
		"skills":   splitProfileList(s.owner.Skills),
		"projects": splitProfileList(s.owner.Projects),
		"message":  message,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render assistant prompt: %w", err)
	}
	return prompt, nil
}

// splitProfileList splits a ';' separated config value
func splitProfileList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ";") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
