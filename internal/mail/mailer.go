package mail

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"eats-marketplace/internal/config"
	"eats-marketplace/internal/logger"
)

// Mailgun sends transactional mail through the Mailgun HTTP API
type Mailgun struct {
	apiKey string
	domain string
	from   string
	client *http.Client
	logger *logger.Logger
}

// NewMailgun creates a Mailgun mailer from configuration
func NewMailgun(cfg *config.Config, log *logger.Logger) *Mailgun {
	return &Mailgun{
		apiKey: cfg.Mailgun.APIKey,
		domain: cfg.Mailgun.Domain,
		from:   cfg.Mailgun.FromEmail,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: log,
	}
}

// SendVerificationEmail sends the account verification code
func (m *Mailgun) SendVerificationEmail(ctx context.Context, email, code string) error {
	subject := "Verify Your Email"
	content := fmt.Sprintf("Please verify your account with code: %s", code)
	return m.sendEmail(ctx, email, subject, content)
}

func (m *Mailgun) sendEmail(ctx context.Context, to, subject, content string) error {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	from := m.from
	if from == "" {
		from = fmt.Sprintf("Eats Marketplace <no-reply@%s>", m.domain)
	}
	form.WriteField("from", from)
	form.WriteField("to", to)
	form.WriteField("subject", subject)
	form.WriteField("text", content)
	if err := form.Close(); err != nil {
		return fmt.Errorf("failed to build mail form: %w", err)
	}

	url := fmt.Sprintf("https://api.mailgun.net/v3/%s/messages", m.domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return fmt.Errorf("failed to build mail request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("api:"+m.apiKey)))

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("mailgun returned status %d", resp.StatusCode)
	}

	m.logger.Debug("mail_sent", fmt.Sprintf("Sent %q to %s", subject, to), "", map[string]interface{}{
		"to": to,
	})
	return nil
}
