package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"github.com/shipgate/site-api/internal/config"
)

// Mailer sends plain-text notification emails over SMTP. When SMTP is
// not configured, sends become log lines instead of failures.
type Mailer struct {
	cfg    config.MailConfig
	logger *zap.Logger
}

// New creates the mailer.
func New(cfg config.MailConfig, logger *zap.Logger) *Mailer {
	return &Mailer{cfg: cfg, logger: logger}
}

// Enabled reports whether real delivery is possible.
func (m *Mailer) Enabled() bool {
	return m.cfg.Configured()
}

// Send delivers one message to the configured notification address.
func (m *Mailer) Send(subject, body, replyTo string) error {
	if !m.Enabled() {
		m.logger.Info("smtp not configured, logging notification instead",
			zap.String("subject", subject),
			zap.String("body", body))
		return nil
	}

	headers := []string{
		"From: " + m.cfg.From,
		"To: " + m.cfg.To,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="UTF-8"`,
	}
	if replyTo != "" {
		headers = append(headers, "Reply-To: "+replyTo)
	}
	message := strings.Join(headers, "\r\n") + "\r\n\r\n" + body

	addr := fmt.Sprintf("%s:%s", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{m.cfg.To}, []byte(message)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
