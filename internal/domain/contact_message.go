package domain

import (
	"context"
	"database/sql"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_contact_message_service.go -package mocks github.com/rllL1/portfolio/internal/domain ContactMessageService
//go:generate mockgen -destination mocks/mock_contact_message_repository.go -package mocks github.com/rllL1/portfolio/internal/domain ContactMessageRepository

// ContactMessage is a submission of the public contact form
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   *string   `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func ScanContactMessage(scanner Scanner) (*ContactMessage, error) {
	var (
		m       ContactMessage
		subject sql.NullString
	)
	if err := scanner.Scan(
		&m.ID,
		&m.Name,
		&m.Email,
		&subject,
		&m.Message,
		&m.Read,
		&m.CreatedAt,
	); err != nil {
		return nil, err
	}
	m.Subject = fromNullString(subject)
	return &m, nil
}

type SubmitContactRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Subject *string `json:"subject"`
	Message string  `json:"message"`
}

func (r *SubmitContactRequest) Validate() (*ContactMessage, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return nil, NewValidationError("name is required")
	}
	if utf8.RuneCountInString(name) > 255 {
		return nil, NewValidationError("name length must be between 1 and 255")
	}

	email := strings.TrimSpace(r.Email)
	if email == "" {
		return nil, NewValidationError("email is required")
	}
	if !govalidator.IsEmail(email) {
		return nil, NewValidationError("email is invalid")
	}

	message := strings.TrimSpace(r.Message)
	if message == "" {
		return nil, NewValidationError("message is required")
	}
	if utf8.RuneCountInString(message) > 5000 {
		return nil, NewValidationError("message must be at most 5000 characters")
	}

	return &ContactMessage{
		Name:    name,
		Email:   email,
		Subject: OptionalString(r.Subject),
		Message: message,
	}, nil
}

type ContactMessageService interface {
	Submit(ctx context.Context, msg *ContactMessage) (*ContactMessage, error)
	ListMessages(ctx context.Context) ([]*ContactMessage, error)
	MarkRead(ctx context.Context, id string) error
	DeleteMessage(ctx context.Context, id string) error
}

type ContactMessageRepository interface {
	Create(ctx context.Context, msg *ContactMessage) error
	// List returns messages newest first; limit <= 0 means no limit
	List(ctx context.Context, limit int) ([]*ContactMessage, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, unreadOnly bool) (int, error)
}
