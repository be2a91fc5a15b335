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

type ContactMessageService struct {
	repo     domain.ContactMessageRepository
	mailer   mailer.Mailer
	notifyTo string
	logger   logger.Logger
}

// NewContactMessageService sends a notification to notifyTo for every submission; an empty notifyTo disables it
func NewContactMessageService(repo domain.ContactMessageRepository, m mailer.Mailer, notifyTo string, logger logger.Logger) *ContactMessageService {
	return &ContactMessageService{
		repo:     repo,
		mailer:   m,
		notifyTo: notifyTo,
		logger:   logger,
	}
}

// Submit stores the message; a failed notification email is logged and does not fail the submission
func (s *ContactMessageService) Submit(ctx context.Context, msg *domain.ContactMessage) (_ *domain.ContactMessage, err error) {
	ctx, span := tracing.StartServiceSpan(ctx, "ContactMessageService", "Submit")
	defer func() { tracing.EndSpan(span, err) }()

	msg.ID = uuid.New().String()
	msg.Read = false

	if err := s.repo.Create(ctx, msg); err != nil {
		s.logger.WithField("email", msg.Email).Error(fmt.Sprintf("Failed to save contact message: %v", err))
		tracing.AddAttribute(ctx, "contact.error", err.Error())
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}

	if s.mailer == nil || s.notifyTo == "" {
		return msg, nil
	}

	notification := mailer.ContactNotification{
		Name:       msg.Name,
		Email:      msg.Email,
		Message:    msg.Message,
		ReceivedAt: msg.CreatedAt,
	}
	if msg.Subject != nil {
		notification.Subject = *msg.Subject
	}

	if err := s.mailer.SendContactNotification(ctx, s.notifyTo, notification); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"message_id": msg.ID,
			"error":      err.Error(),
		}).Warn("Failed to send contact notification email")
		tracing.AddAttribute(ctx, "contact.notification_sent", false)
		return msg, nil
	}

	tracing.AddAttribute(ctx, "contact.notification_sent", true)
	return msg, nil
}

func (s *ContactMessageService) ListMessages(ctx context.Context) ([]*domain.ContactMessage, error) {
	messages, err := s.repo.List(ctx, 0)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list contact messages: %v", err))
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return messages, nil
}

func (s *ContactMessageService) MarkRead(ctx context.Context, id string) error {
	if err := s.repo.MarkRead(ctx, id); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		s.logger.WithField("message_id", id).Error(fmt.Sprintf("Failed to mark message as read: %v", err))
		return fmt.Errorf("failed to mark message as read: %w", err)
	}
	return nil
}

func (s *ContactMessageService) DeleteMessage(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		s.logger.WithField("message_id", id).Error(fmt.Sprintf("Failed to delete message: %v", err))
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}
