package domain

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_live_chat_service.go -package mocks github.com/rllL1/portfolio/internal/domain LiveChatService
//go:generate mockgen -destination mocks/mock_chat_message_repository.go -package mocks github.com/rllL1/portfolio/internal/domain ChatMessageRepository
//go:generate mockgen -destination mocks/mock_assistant_service.go -package mocks github.com/rllL1/portfolio/internal/domain AssistantService
//go:generate mockgen -destination mocks/mock_text_generator.go -package mocks github.com/rllL1/portfolio/internal/domain TextGenerator

// SenderKind tells who wrote a live chat message
type SenderKind string

const (
	SenderVisitor   SenderKind = "visitor"
	SenderAdmin     SenderKind = "admin"
	SenderAssistant SenderKind = "assistant"
	SenderAutoReply SenderKind = "auto_reply"
)

// Display names stored alongside the kind
const (
	VisitorDisplayName   = "Visitor"
	AdminDisplayName     = "Admin"
	AssistantDisplayName = "AI Assistant"
	AutoReplyDisplayName = "Auto Reply"
)

func ParseSenderKind(s string) (SenderKind, error) {
	switch k := SenderKind(s); k {
	case SenderVisitor, SenderAdmin, SenderAssistant, SenderAutoReply:
		return k, nil
	}
	return "", NewValidationError(fmt.Sprintf("invalid sender kind: %q", s))
}

// FromSite reports whether the message was sent on behalf of the site owner
func (k SenderKind) FromSite() bool {
	return k != SenderVisitor
}

type ChatMessage struct {
	ID          string     `json:"id"`
	SenderName  string     `json:"sender_name"`
	SenderEmail *string    `json:"sender_email"`
	Message     string     `json:"message"`
	SenderKind  SenderKind `json:"sender_kind"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ScanChatMessage scans a message and rejects unknown sender kinds
func ScanChatMessage(scanner Scanner) (*ChatMessage, error) {
	var (
		m     ChatMessage
		kind  string
		email sql.NullString
	)
	if err := scanner.Scan(
		&m.ID,
		&m.SenderName,
		&email,
		&m.Message,
		&kind,
		&m.CreatedAt,
	); err != nil {
		return nil, err
	}
	k, err := ParseSenderKind(kind)
	if err != nil {
		return nil, fmt.Errorf("chat message %s: %w", m.ID, err)
	}
	m.SenderKind = k
	m.SenderEmail = fromNullString(email)
	return &m, nil
}

const maxChatMessageLength = 2000

func validateChatText(message string) (string, error) {
	text := strings.TrimSpace(message)
	if text == "" {
		return "", NewValidationError("message is required")
	}
	if utf8.RuneCountInString(text) > maxChatMessageLength {
		return "", NewValidationError(fmt.Sprintf("message must be at most %d characters", maxChatMessageLength))
	}
	return text, nil
}

// SendLiveChatRequest is posted by the floating widget
type SendLiveChatRequest struct {
	Message     string  `json:"message"`
	SenderName  string  `json:"sender_name,omitempty"`
	SenderEmail *string `json:"sender_email,omitempty"`
}

func (r *SendLiveChatRequest) Validate() (*ChatMessage, error) {
	text, err := validateChatText(r.Message)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(r.SenderName)
	if name == "" {
		name = VisitorDisplayName
	}
	if utf8.RuneCountInString(name) > 100 {
		return nil, NewValidationError("sender_name must be at most 100 characters")
	}

	email := OptionalString(r.SenderEmail)
	if email != nil && !govalidator.IsEmail(*email) {
		return nil, NewValidationError("sender_email is invalid")
	}

	return &ChatMessage{
		SenderName:  name,
		SenderEmail: email,
		Message:     text,
		SenderKind:  SenderVisitor,
	}, nil
}

// AdminReplyRequest is posted from the admin chat screen
type AdminReplyRequest struct {
	Message string `json:"message"`
}

func (r *AdminReplyRequest) Validate() (*ChatMessage, error) {
	text, err := validateChatText(r.Message)
	if err != nil {
		return nil, err
	}
	return &ChatMessage{
		SenderName: AdminDisplayName,
		Message:    text,
		SenderKind: SenderAdmin,
	}, nil
}

// SendLiveChatResult is returned to the widget. Reply is nil when an admin is online.
type SendLiveChatResult struct {
	Message     *ChatMessage `json:"message"`
	Reply       *ChatMessage `json:"reply,omitempty"`
	AdminOnline bool         `json:"admin_online"`
}

type LiveChatService interface {
	Send(ctx context.Context, msg *ChatMessage) (*SendLiveChatResult, error)
	ListMessages(ctx context.Context) ([]*ChatMessage, error)
	Reply(ctx context.Context, msg *ChatMessage) (*ChatMessage, error)
	DeleteMessage(ctx context.Context, id string) error
	AdminOnline(ctx context.Context) bool
}

type ChatMessageRepository interface {
	Create(ctx context.Context, msg *ChatMessage) error
	// List returns messages oldest first
	List(ctx context.Context) ([]*ChatMessage, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// AssistantRequest is the body of POST /api/chat
type AssistantRequest struct {
	Message string `json:"message"`
}

func (r *AssistantRequest) Validate() (string, error) {
	if strings.TrimSpace(r.Message) == "" {
		return "", NewValidationError("Message is required")
	}
	if utf8.RuneCountInString(r.Message) > maxChatMessageLength {
		return "", NewValidationError(fmt.Sprintf("Message must be at most %d characters", maxChatMessageLength))
	}
	return r.Message, nil
}

type AssistantResponse struct {
	Reply string `json:"reply"`
}

// TextGenerator sends one prompt to a hosted model and returns the text of the first candidate
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Provider() string
}

// AssistantService answers visitor questions about the site owner
type AssistantService interface {
	Ask(ctx context.Context, message string) (string, error)
}
