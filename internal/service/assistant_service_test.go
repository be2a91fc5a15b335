package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opencensus.io/trace"

	"github.com/rllL1/portfolio/config"
	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/internal/domain/mocks"
	"github.com/rllL1/portfolio/pkg/logger"
)

func testOwner() config.OwnerProfile {
	return config.OwnerProfile{
		Name:     "Ron Hezykiel Arbois",
		Role:     "Full-Stack Developer",
		Skills:   "Frontend: React, Next.js; Backend: PHP, Laravel",
		Projects: "Library Management System (PHP, MySQL)",
		Contact:  "ron@example.com",
		GitHub:   "https://github.com/rllL1",
		Location: "Philippines",
	}
}

func TestAssistantService_BuildPrompt(t *testing.T) {
	service := NewAssistantService(nil, testOwner(), logger.NewTestLogger(t))

	prompt, err := service.BuildPrompt(context.Background(), "What does Ron build?")
	require.NoError(t, err)

	assert.Contains(t, prompt, "You are Ron Hezykiel Arbois's AI assistant")
	assert.Contains(t, prompt, "- Frontend: React, Next.js\n- Backend: PHP, Laravel\n")
	assert.Contains(t, prompt, "- Library Management System (PHP, MySQL)")
	assert.Contains(t, prompt, "Contact: ron@example.com")
	assert.Contains(t, prompt, "User question: What does Ron build?\n\nYour response:")
}

func TestAssistantService_BuildPromptWithoutLists(t *testing.T) {
	owner := testOwner()
	owner.Skills = ""
	owner.Projects = ""
	owner.Contact = ""
	service := NewAssistantService(nil, owner, logger.NewTestLogger(t))

	prompt, err := service.BuildPrompt(context.Background(), "hi")
	require.NoError(t, err)
	assert.Contains(t, prompt, "is a Full-Stack Developer.")
	assert.NotContains(t, prompt, "Featured projects")
	assert.NotContains(t, prompt, "Contact:")
}

func TestAssistantService_Ask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("missing credential", func(t *testing.T) {
		service := NewAssistantService(nil, testOwner(), logger.NewTestLogger(t))

		_, err := service.Ask(ctx, "hello")
		assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	})

	t.Run("returns upstream text verbatim", func(t *testing.T) {
		generator := mocks.NewMockTextGenerator(ctrl)
		service := NewAssistantService(generator, testOwner(), logger.NewTestLogger(t))

		generator.EXPECT().Provider().Return("gemini").AnyTimes()
		generator.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, prompt string) (string, error) {
			assert.Contains(t, prompt, "User question: hello")
			return "  Ron builds web apps.\n", nil
		})

		reply, err := service.Ask(ctx, "hello")
		require.NoError(t, err)
		assert.Equal(t, "  Ron builds web apps.\n", reply)
	})

	t.Run("upstream failure is typed", func(t *testing.T) {
		generator := mocks.NewMockTextGenerator(ctrl)
		service := NewAssistantService(generator, testOwner(), logger.NewTestLogger(t))

		generator.EXPECT().Provider().Return("anthropic").AnyTimes()
		generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("quota exceeded"))

		_, err := service.Ask(ctx, "hello")
		var upstream *domain.ErrUpstreamFailed
		require.ErrorAs(t, err, &upstream)
		assert.Equal(t, "anthropic", upstream.Provider)
		assert.Contains(t, err.Error(), "quota exceeded")
	})
}

func TestSplitProfileList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitProfileList(" a ;; b;"))
	assert.Equal(t, []string{}, splitProfileList(""))
}

type spanCollector struct {
	mu    sync.Mutex
	spans []*trace.SpanData
}

func (c *spanCollector) ExportSpan(s *trace.SpanData) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.spans = append(c.spans, s)
}

func (c *spanCollector) named(name string) *trace.SpanData {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range c.spans {
		if s.Name == name {
			return s
		}
	}
	return nil
}

func TestAssistantService_AskRecordsSpanStatus(t *testing.T) {
	collector := &spanCollector{}
	trace.RegisterExporter(collector)
	defer trace.UnregisterExporter(collector)

	ctx, parent := trace.StartSpan(context.Background(), "test", trace.WithSampler(trace.AlwaysSample()))
	service := NewAssistantService(nil, testOwner(), logger.NewTestLogger(t))
	_, err := service.Ask(ctx, "hello")
	parent.End()
	require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)

	span := collector.named("AssistantService.Ask")
	require.NotNil(t, span)
	assert.Equal(t, int32(trace.StatusCodeUnknown), span.Status.Code)
	assert.Equal(t, domain.ErrUpstreamUnavailable.Error(), span.Status.Message)
}
