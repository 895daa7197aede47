package mailer

import (
	"errors"
	"fmt"

	mail "gopkg.in/mail.v2"
)

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
}

type SMTPMailer struct {
	dialer    *mail.Dialer
	fromEmail string
}

func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	if cfg.Host == "" {
		return nil, errors.New("smtp host is required")
	}
	if cfg.FromEmail == "" {
		return nil, errors.New("from email is required")
	}

	d := mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.StartTLSPolicy = mail.OpportunisticStartTLS

	return &SMTPMailer{dialer: d, fromEmail: cfg.FromEmail}, nil
}

func (m *SMTPMailer) Send(templateFile string, env Envelope, data any) error {
	if env.ToEmail == "" {
		return errors.New("recipient email is empty")
	}

	r, err := render(templateFile, data)
	if err != nil {
		return err
	}

	msg := mail.NewMessage()
	msg.SetAddressHeader("From", m.fromEmail, FromName)
	msg.SetAddressHeader("To", env.ToEmail, env.ToName)
	if env.ReplyTo != "" {
		msg.SetHeader("Reply-To", env.ReplyTo)
	}
	msg.SetHeader("Subject", r.subject)
	msg.SetBody("text/plain", r.plain)
	msg.AddAlternative("text/html", r.html)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
