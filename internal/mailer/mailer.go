// Package mailer sends contact-form notification emails over authenticated
// STARTTLS SMTP. Delivery is best-effort and runs off the request path:
// failures are logged and never surfaced to the submitter, and an in-flight
// send may be cut short by process exit.
package mailer

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"strings"
	"time"

	"github.com/wneessen/go-mail"
)

const sendTimeout = 30 * time.Second

// ContactNotification carries the contact-form fields of a single submission.
type ContactNotification struct {
	Name        string
	Email       string
	Phone       string
	Message     string
	SubmittedAt time.Time
}

// Config holds the SMTP relay settings.
type Config struct {
	Host     string
	Port     int
	Email    string
	Password string
	// NotifyTo receives the notifications; falls back to Email when empty.
	NotifyTo string
}

// Mailer formats and delivers contact notifications.
type Mailer struct {
	cfg Config
}

// New creates a Mailer. An unconfigured relay (missing email or password) is
// allowed; sends are then skipped.
func New(cfg Config) *Mailer {
	if cfg.NotifyTo == "" {
		cfg.NotifyTo = cfg.Email
	}
	return &Mailer{cfg: cfg}
}

// Configured reports whether relay credentials are present.
func (m *Mailer) Configured() bool {
	return m.cfg.Email != "" && m.cfg.Password != ""
}

// NotifyAsync delivers the notification on a detached goroutine and returns
// immediately. The goroutine is not tracked; the caller never observes the
// outcome.
func (m *Mailer) NotifyAsync(n ContactNotification) {
	if !m.Configured() {
		slog.Debug("email not configured, skipping contact notification")
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		if err := m.send(ctx, n); err != nil {
			slog.Error("failed to send contact notification", "error", err, "to", m.cfg.NotifyTo)
			return
		}
		slog.Info("contact notification sent", "to", m.cfg.NotifyTo)
	}()
}

func (m *Mailer) send(ctx context.Context, n ContactNotification) error {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.Email); err != nil {
		return fmt.Errorf("setting sender: %w", err)
	}
	if err := msg.To(m.cfg.NotifyTo); err != nil {
		return fmt.Errorf("setting recipient: %w", err)
	}

	msg.Subject(fmt.Sprintf("🚀 New Contact: %s - DevForge", n.Name))
	msg.SetBodyString(mail.TypeTextPlain, textBody(n))

	html, err := htmlBody(n)
	if err != nil {
		return fmt.Errorf("rendering html body: %w", err)
	}
	msg.AddAlternativeString(mail.TypeTextHTML, html)

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Email),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTimeout(sendTimeout),
	)
	if err != nil {
		return fmt.Errorf("creating smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("delivering notification: %w", err)
	}

	return nil
}

func textBody(n ContactNotification) string {
	phone := n.Phone
	if phone == "" {
		phone = "Not provided"
	}

	var b strings.Builder
	b.WriteString("New Contact Form Submission\n")
	b.WriteString("===========================\n\n")
	fmt.Fprintf(&b, "Name: %s\n", n.Name)
	fmt.Fprintf(&b, "Email: %s\n", n.Email)
	fmt.Fprintf(&b, "Phone: %s\n\n", phone)
	fmt.Fprintf(&b, "Message:\n%s\n\n", n.Message)
	b.WriteString("---\n")
	fmt.Fprintf(&b, "Submitted at: %s\n", n.SubmittedAt.Format("2006-01-02 15:04:05"))
	return b.String()
}

var htmlTemplate = template.Must(template.New("notification").Parse(`<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #3b82f6 0%, #8b5cf6 100%); color: white; padding: 30px; border-radius: 12px 12px 0 0; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { background: #f8fafc; padding: 30px; border: 1px solid #e2e8f0; border-top: none; border-radius: 0 0 12px 12px; }
        .field { margin-bottom: 20px; }
        .field-label { font-size: 12px; font-weight: 600; color: #64748b; text-transform: uppercase; letter-spacing: 0.5px; margin-bottom: 5px; }
        .field-value { font-size: 16px; color: #1e293b; }
        .message-box { background: white; padding: 20px; border-radius: 8px; border: 1px solid #e2e8f0; white-space: pre-wrap; }
        .footer { text-align: center; margin-top: 20px; font-size: 12px; color: #94a3b8; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🚀 New Contact Form Submission</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="field-label">Name</div>
                <div class="field-value">{{.Name}}</div>
            </div>
            <div class="field">
                <div class="field-label">Email</div>
                <div class="field-value"><a href="mailto:{{.Email}}">{{.Email}}</a></div>
            </div>
            <div class="field">
                <div class="field-label">Phone</div>
                <div class="field-value">{{.Phone}}</div>
            </div>
            <div class="field">
                <div class="field-label">Message</div>
                <div class="message-box">{{.Message}}</div>
            </div>
        </div>
        <div class="footer">
            Submitted on {{.Timestamp}} via DevForge Contact Form
        </div>
    </div>
</body>
</html>`))

func htmlBody(n ContactNotification) (string, error) {
	phone := n.Phone
	if phone == "" {
		phone = "Not provided"
	}

	var b strings.Builder
	err := htmlTemplate.Execute(&b, struct {
		Name, Email, Phone, Message, Timestamp string
	}{
		Name:      n.Name,
		Email:     n.Email,
		Phone:     phone,
		Message:   n.Message,
		Timestamp: n.SubmittedAt.Format("2006-01-02 15:04:05"),
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
