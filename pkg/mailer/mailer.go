package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/rllL1/portfolio/pkg/liquid"
	"github.com/rllL1/portfolio/pkg/logger"
	"github.com/rllL1/portfolio/pkg/mjml"
)

//go:generate mockgen -destination=../../internal/domain/mocks/mock_mailer.go -package=mocks github.com/rllL1/portfolio/pkg/mailer Mailer

// Mailer sends the site owner notifications
type Mailer interface {
	// SendContactNotification tells the owner a contact form was submitted
	SendContactNotification(ctx context.Context, to string, n ContactNotification) error
	// SendLiveChatNotification tells the owner a visitor wrote in live chat while nobody was online
	SendLiveChatNotification(ctx context.Context, to string, n LiveChatNotification) error
}

type ContactNotification struct {
	Name       string
	Email      string
	Subject    string
	Message    string
	ReceivedAt time.Time
}

type LiveChatNotification struct {
	SenderName  string
	SenderEmail string
	Message     string
	ReceivedAt  time.Time
}

// Config holds the configuration for the mailer
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
	APIEndpoint  string
}

// SMTPMailer implements the Mailer interface using SMTP
type SMTPMailer struct {
	config   *Config
	logger   logger.Logger
	renderer *liquid.Renderer
	testMode bool
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(config *Config, log logger.Logger) *SMTPMailer {
	return &SMTPMailer{
		config:   config,
		logger:   log,
		renderer: newTemplateRenderer(),
		testMode: false,
	}
}

// NewTestSMTPMailer creates a new SMTP mailer in test mode (won't connect to SMTP server)
func NewTestSMTPMailer(config *Config, log logger.Logger) *SMTPMailer {
	m := NewSMTPMailer(config, log)
	m.testMode = true
	return m
}

func newTemplateRenderer() *liquid.Renderer {
	r := liquid.NewRenderer()
	for name, src := range map[string]string{
		templateContactHTML:  contactMJML,
		templateContactText:  contactText,
		templateLiveChatHTML: liveChatMJML,
		templateLiveChatText: liveChatText,
	} {
		if err := r.Register(name, src); err != nil {
			panic(fmt.Sprintf("mailer: invalid built-in template %s: %v", name, err))
		}
	}
	return r
}

// SendContactNotification renders and sends the contact form notification
func (m *SMTPMailer) SendContactNotification(ctx context.Context, to string, n ContactNotification) error {
	data := map[string]interface{}{
		"name":          n.Name,
		"email":         n.Email,
		"subject":       n.Subject,
		"message":       n.Message,
		"received_at":   formatTime(n.ReceivedAt),
		"dashboard_url": m.dashboardURL("messages"),
	}

	subject := fmt.Sprintf("New message from %s", n.Name)
	if n.Subject != "" {
		subject = fmt.Sprintf("%s: %s", subject, n.Subject)
	}

	return m.send(ctx, to, n.Email, subject, templateContactHTML, templateContactText, data)
}

// SendLiveChatNotification renders and sends the live chat notification
func (m *SMTPMailer) SendLiveChatNotification(ctx context.Context, to string, n LiveChatNotification) error {
	data := map[string]interface{}{
		"sender_name":   n.SenderName,
		"sender_email":  n.SenderEmail,
		"message":       n.Message,
		"received_at":   formatTime(n.ReceivedAt),
		"dashboard_url": m.dashboardURL("chat"),
	}

	subject := fmt.Sprintf("Live chat: %s is waiting", n.SenderName)
	return m.send(ctx, to, n.SenderEmail, subject, templateLiveChatHTML, templateLiveChatText, data)
}

func (m *SMTPMailer) send(ctx context.Context, to, replyTo, subject, htmlTemplate, textTemplate string, data map[string]interface{}) error {
	if to == "" {
		return fmt.Errorf("notification recipient is not configured")
	}

	htmlBody, textBody, err := m.renderBodies(ctx, htmlTemplate, textTemplate, data)
	if err != nil {
		return err
	}

	msg := mail.NewMsg(mail.WithNoDefaultUserAgent())

	if err := msg.FromFormat(m.config.FromName, m.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set email from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("failed to set email recipient: %w", err)
	}
	if replyTo != "" {
		if err := msg.ReplyTo(replyTo); err != nil {
			m.logger.WithField("reply_to", replyTo).Warn("Ignoring invalid reply-to address")
		}
	}

	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)
	msg.AddAlternativeString(mail.TypeTextPlain, textBody)

	client, err := m.createSMTPClient()
	if err != nil {
		return err
	}

	// Test mode: log instead of sending
	if client == nil {
		m.logger.WithFields(map[string]interface{}{
			"to":      to,
			"from":    m.config.FromEmail,
			"subject": subject,
		}).Info("Notification email rendered (test mode, not sent)")
		return nil
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}

	return nil
}

// renderBodies fills the Liquid templates and compiles the MJML one to HTML
func (m *SMTPMailer) renderBodies(ctx context.Context, htmlTemplate, textTemplate string, data map[string]interface{}) (string, string, error) {
	mjmlSource, err := m.renderer.Render(ctx, htmlTemplate, data)
	if err != nil {
		return "", "", fmt.Errorf("failed to render email template: %w", err)
	}

	htmlBody, err := mjml.ToHTML(ctx, mjmlSource)
	if err != nil {
		return "", "", err
	}

	textBody, err := m.renderer.Render(ctx, textTemplate, data)
	if err != nil {
		return "", "", fmt.Errorf("failed to render text template: %w", err)
	}

	return htmlBody, strings.TrimSpace(textBody), nil
}

func (m *SMTPMailer) dashboardURL(section string) string {
	if m.config.APIEndpoint == "" {
		return ""
	}
	return strings.TrimRight(m.config.APIEndpoint, "/") + "/admin/" + section
}

// createSMTPClient creates and configures a new SMTP client
func (m *SMTPMailer) createSMTPClient() (*mail.Client, error) {
	// In test mode, return nil client to avoid SMTP connections
	if m.testMode {
		return nil, nil
	}

	clientOptions := []mail.Option{
		mail.WithPort(m.config.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(10 * time.Second),
	}

	// Unauthenticated relays are allowed
	if m.config.SMTPUsername != "" && m.config.SMTPPassword != "" {
		clientOptions = append(clientOptions,
			mail.WithUsername(m.config.SMTPUsername),
			mail.WithPassword(m.config.SMTPPassword),
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
		)
	}

	client, err := mail.NewClient(m.config.SMTPHost, clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return client, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format("Jan 2, 2006 15:04 MST")
}

// ConsoleMailer is a development implementation that just prints emails
type ConsoleMailer struct{}

// NewConsoleMailer creates a new console mailer for development
func NewConsoleMailer() *ConsoleMailer {
	return &ConsoleMailer{}
}

// SendContactNotification prints the contact notification to stdout
func (m *ConsoleMailer) SendContactNotification(_ context.Context, to string, n ContactNotification) error {
	fmt.Println("==============================================================")
	fmt.Println("                 CONTACT MESSAGE NOTIFICATION                 ")
	fmt.Println("==============================================================")
	fmt.Printf("To: %s\n", to)
	fmt.Printf("From: %s <%s>\n", n.Name, n.Email)
	if n.Subject != "" {
		fmt.Printf("Subject: %s\n", n.Subject)
	}
	fmt.Printf("\n%s\n\n", n.Message)
	fmt.Println("==============================================================")

	return nil
}

// SendLiveChatNotification prints the live chat notification to stdout
func (m *ConsoleMailer) SendLiveChatNotification(_ context.Context, to string, n LiveChatNotification) error {
	fmt.Println("==============================================================")
	fmt.Println("                 LIVE CHAT NOTIFICATION                       ")
	fmt.Println("==============================================================")
	fmt.Printf("To: %s\n", to)
	fmt.Printf("From: %s\n", n.SenderName)
	fmt.Printf("\n%s\n\n", n.Message)
	fmt.Println("==============================================================")

	return nil
}
