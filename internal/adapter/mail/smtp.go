package mail

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"blog-service/internal/config"
)

// Mailer defines the interface for outbound mail delivery.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer implements Mailer over plain SMTP with optional auth.
type SMTPMailer struct {
	cfg config.MailConfig
	log *zap.Logger
}

// NewSMTPMailer creates a new SMTP-backed mailer.
func NewSMTPMailer(cfg config.MailConfig, log *zap.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, log: log}
}

// Send delivers a plain-text message. It fails fast when the mail
// configuration is incomplete.
func (m *SMTPMailer) Send(to, subject, body string) error {
	from := strings.TrimSpace(m.cfg.From)
	if m.cfg.Host == "" || m.cfg.Port == 0 || from == "" {
		return errors.New("mail configuration incomplete")
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	msg := []byte("From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" + body)

	if err := smtp.SendMail(addr, auth, from, []string{to}, msg); err != nil {
		m.log.Error("failed to send mail", zap.String("to", to), zap.Error(err))
		return err
	}

	m.log.Info("mail sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
