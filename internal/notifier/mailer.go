package notifier

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"campusvoice/backend/internal/config"
	"campusvoice/backend/pkg/logger"
)

// Sender delivers a rendered email to a set of recipients. The worker
// depends on this interface so tests can capture sends without SMTP.
type Sender interface {
	Send(to []string, subject, htmlBody string) error
}

// Mailer is the SMTP-backed Sender. When no SMTP host is configured it
// degrades to a no-op that logs skipped sends, which keeps local
// development working without a mail relay.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	useTLS   bool
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPass,
		from:     cfg.EmailFrom,
		useTLS:   cfg.UseTLS,
	}
}

// Send composes an HTML mail and ships it over SMTP.
func (m *Mailer) Send(to []string, subject, htmlBody string) error {
	if m.host == "" {
		logger.Infof("[mailer] SMTP not configured, skipping %q to %v", subject, to)
		return nil
	}
	if len(to) == 0 {
		return nil
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", strings.Join(to, ","))
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" && m.password != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	var err error
	if m.useTLS {
		err = m.sendTLS(addr, auth, to, msg.String())
	} else {
		err = smtp.SendMail(addr, auth, m.fromAddress(), to, []byte(msg.String()))
	}
	if err != nil {
		return err
	}

	logger.Info().Strs("to", to).Str("subject", subject).Msg("email sent")
	return nil
}

// fromAddress strips an optional display name, e.g.
// `CampusVoice Support <support@x>` -> `support@x`.
func (m *Mailer) fromAddress() string {
	if i := strings.Index(m.from, "<"); i != -1 {
		return strings.TrimRight(m.from[i+1:], ">")
	}
	return m.from
}

func (m *Mailer) sendTLS(addr string, auth smtp.Auth, to []string, message string) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: m.host})
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(m.fromAddress()); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write([]byte(message)); err != nil {
		return err
	}
	return w.Close()
}
