package config

import (
	"crypto/tls"
	"os"
	"strconv"

	mail "github.com/go-mail/mail/v2"
)

// Mailer wraps the SMTP dialer. It is constructed once at startup and handed
// to every caller that sends mail; a nil *Mailer means SMTP is not configured
// and callers are expected to skip sending.
type Mailer struct {
	dialer *mail.Dialer
	from   string
}

// NewMailerFromEnv builds a Mailer from SMTP_* environment variables. Returns
// nil when the required variables are missing so the service can run without
// a mail transport.
func NewMailerFromEnv() *Mailer {
	host := os.Getenv("SMTP_HOST")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	from := os.Getenv("SMTP_FROM") // e.g. "Admissions <no-reply@college.edu>"

	if host == "" || from == "" {
		return nil
	}

	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}

	d := mail.NewDialer(host, port, user, pass)

	// Mandatory STARTTLS on port 587 (Gmail/Office365 style).
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.TLSConfig = &tls.Config{
		ServerName:         host,
		InsecureSkipVerify: os.Getenv("SMTP_SKIP_TLS_VERIFY") == "1", // dev only
	}

	return &Mailer{dialer: d, from: from}
}

// Send delivers a single HTML message.
func (m *Mailer) Send(to, subject, html string) error {
	msg := mail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	return m.dialer.DialAndSend(msg)
}
