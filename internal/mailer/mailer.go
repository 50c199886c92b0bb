// Package mailer provides the password-reset mail collaborators: a plain
// SMTP sender and a log-only fallback for environments without mail.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	applog "github.com/Royal-dudy99/SwiftBooks18/internal/log"
)

type SMTPMailer struct {
	addr string
	from string
}

func NewSMTPMailer(addr, from string) *SMTPMailer {
	return &SMTPMailer{addr: addr, from: from}
}

func (m *SMTPMailer) SendPasswordReset(_ context.Context, to, resetLink string) error {
	body := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Password reset\r\n\r\n"+
		"A password reset was requested for your account.\r\n\r\n"+
		"Reset link (valid for one hour): %s\r\n\r\n"+
		"If you did not request this, you can ignore this email.\r\n",
		m.from, to, resetLink)

	return smtp.SendMail(m.addr, nil, m.from, []string{to}, []byte(body))
}

// LogMailer writes the reset link to the log instead of delivering it.
// Default when SMTP_ADDR is unset.
type LogMailer struct {
	log *applog.Logger
}

func NewLogMailer(logger *applog.Logger) *LogMailer {
	return &LogMailer{log: logger.WithComponent("mailer")}
}

func (m *LogMailer) SendPasswordReset(_ context.Context, to, resetLink string) error {
	m.log.Info("password reset requested", "to", to, "link", resetLink)
	return nil
}
