// Package mailer sends transactional plain-text email over SMTP. When the
// transport is not configured the Nop implementation logs a warning per send
// so message creation never fails on outbound mail.
package mailer

import (
	"fmt"
	"net/smtp"

	"go.uber.org/zap"

	"github.com/portfolio-studio/backend/pkg/config"
)

type Mailer interface {
	Send(to, subject, body string) error
}

// SMTP sends through a plain-auth SMTP relay.
type SMTP struct {
	addr string
	auth smtp.Auth
	from string
}

func NewSMTP(cfg *config.Config) *SMTP {
	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	}
	return &SMTP{
		addr: fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		auth: auth,
		from: cfg.EmailFrom,
	}
}

func (m *SMTP) Send(to, subject, body string) error {
	msg := "From: " + m.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		body
	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// Nop is used when SMTP settings are absent.
type Nop struct {
	log *zap.Logger
}

func NewNop(log *zap.Logger) *Nop {
	return &Nop{log: log}
}

func (m *Nop) Send(to, subject, _ string) error {
	m.log.Warn("smtp not configured, skipping email send",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}
