package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/pkg/logger"
	"github.com/rllL1/portfolio/pkg/mailer"
	"github.com/rllL1/portfolio/pkg/tracing"
)

// LiveChatService stores widget messages and answers on behalf of an offline admin
type LiveChatService struct {
	repo          domain.ChatMessageRepository
	assistant     domain.AssistantService
	presence      domain.PresenceTracker
	mailer        mailer.Mailer
	notifyTo      string
	fallbackReply string
	logger        logger.Logger
}

type LiveChatServiceConfig struct {
	Repo          domain.ChatMessageRepository
	Assistant     domain.AssistantService
	Presence      domain.PresenceTracker
	Mailer        mailer.Mailer
	NotifyTo      string
	FallbackReply string
	Logger        logger.Logger
}

func NewLiveChatService(cfg LiveChatServiceConfig) *LiveChatService {
	return &LiveChatService{
		repo:          cfg.Repo,
		assistant:     cfg.Assistant,
		presence:      cfg.Presence,
		mailer:        cfg.Mailer,
		notifyTo:      cfg.NotifyTo,
		fallbackReply: cfg.FallbackReply,
		logger:        cfg.Logger,
	}
}

// Send stores the visitor message. With no admin online it stores and returns an assistant
// answer, or the configured auto reply when the assistant fails.
func (s *LiveChatService) Send(ctx context.Context, msg *domain.ChatMessage) (_ *domain.SendLiveChatResult, err error) {
	ctx, span := tracing.StartServiceSpan(ctx, "LiveChatService", "Send")
	defer func() { tracing.EndSpan(span, err) }()

	msg.ID = uuid.New().String()
	msg.SenderKind = domain.SenderVisitor

	if err := s.repo.Create(ctx, msg); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to save chat message: %v", err))
		return nil, fmt.Errorf("failed to save chat message: %w", err)
	}

	result := &domain.SendLiveChatResult{Message: msg}
	if s.presence.AnyOnline() {
		result.AdminOnline = true
		tracing.AddAttribute(ctx, "livechat.admin_online", true)
		return result, nil
	}

	s.notifyOwner(ctx, msg)

	reply := &domain.ChatMessage{
		ID:         uuid.New().String(),
		SenderName: domain.AssistantDisplayName,
		SenderKind: domain.SenderAssistant,
	}

	answer, err := s.assistant.Ask(ctx, msg.Message)
	if err != nil {
		s.logger.WithField("error", err.Error()).Warn("Assistant unavailable, sending auto reply")
		reply.SenderName = domain.AutoReplyDisplayName
		reply.SenderKind = domain.SenderAutoReply
		reply.Message = s.fallbackReply
	} else {
		reply.Message = answer
	}
	tracing.AddAttribute(ctx, "livechat.reply_kind", string(reply.SenderKind))

	if err := s.repo.Create(ctx, reply); err != nil {
		s.logger.WithField("reply_kind", string(reply.SenderKind)).Error(fmt.Sprintf("Failed to save chat reply: %v", err))
	}

	result.Reply = reply
	return result, nil
}

func (s *LiveChatService) notifyOwner(ctx context.Context, msg *domain.ChatMessage) {
	if s.mailer == nil || s.notifyTo == "" {
		return
	}

	notification := mailer.LiveChatNotification{
		SenderName: msg.SenderName,
		Message:    msg.Message,
		ReceivedAt: msg.CreatedAt,
	}
	if msg.SenderEmail != nil {
		notification.SenderEmail = *msg.SenderEmail
	}

	if err := s.mailer.SendLiveChatNotification(ctx, s.notifyTo, notification); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"message_id": msg.ID,
			"error":      err.Error(),
		}).Warn("Failed to send live chat notification email")
	}
}

func (s *LiveChatService) ListMessages(ctx context.Context) ([]*domain.ChatMessage, error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list chat messages: %v", err))
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	return messages, nil
}

func (s *LiveChatService) Reply(ctx context.Context, msg *domain.ChatMessage) (*domain.ChatMessage, error) {
	msg.ID = uuid.New().String()
	msg.SenderName = domain.AdminDisplayName
	msg.SenderKind = domain.SenderAdmin

	if err := s.repo.Create(ctx, msg); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to save admin reply: %v", err))
		return nil, fmt.Errorf("failed to save admin reply: %w", err)
	}
	return msg, nil
}

func (s *LiveChatService) DeleteMessage(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		s.logger.WithField("message_id", id).Error(fmt.Sprintf("Failed to delete chat message: %v", err))
		return fmt.Errorf("failed to delete chat message: %w", err)
	}
	return nil
}

func (s *LiveChatService) AdminOnline(_ context.Context) bool {
	return s.presence.AnyOnline()
}
