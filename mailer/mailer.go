// Package mailer delivers outbound mail for background jobs.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"agenda.link/configs"
)

type Message struct {
	To      string
	ToName  string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer sends plain-text mail over SMTP. Auth is skipped when no
// user is configured (local relay, mailhog).
type SMTPMailer struct {
	addr string
	host string
	from string
	auth smtp.Auth
}

func NewSMTPMailer(cfg *configs.Config) *SMTPMailer {
	m := &SMTPMailer{
		addr: fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		host: cfg.SMTPHost,
		from: cfg.MailFrom,
	}
	if cfg.SMTPUser != "" {
		m.auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	}
	return m
}

func (m *SMTPMailer) Send(_ context.Context, msg Message) error {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s <%s>\r\n", msg.ToName, msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)

	return smtp.SendMail(m.addr, m.auth, m.from, []string{msg.To}, []byte(b.String()))
}

var _ Mailer = (*SMTPMailer)(nil)
