package smtp

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	mail "gopkg.in/mail.v2"

	"github.com/antares2881/outlook-email-sender/pkg/mailer"
)

// ErrConnect is returned when a session with the submission endpoint
// cannot be opened (unreachable host, rejected login).
var ErrConnect = errors.New("smtp: could not open session")

// Config holds the submission endpoint settings and account credentials.
type Config struct {
	Server   string
	Port     int
	UseTLS   bool // negotiate STARTTLS before authenticating
	Username string
	Password string
	FromName string
}

// Transport implements mailer.Transport for one SMTP account.
type Transport struct {
	cfg    Config
	dialer *mail.Dialer
}

// New creates a transport for the configured endpoint. No connection is
// made until Connect.
func New(cfg Config) *Transport {
	d := mail.NewDialer(cfg.Server, cfg.Port, cfg.Username, cfg.Password)
	if cfg.UseTLS {
		d.StartTLSPolicy = mail.MandatoryStartTLS
	} else {
		d.StartTLSPolicy = mail.OpportunisticStartTLS
	}
	return &Transport{cfg: cfg, dialer: d}
}

// Connect dials and authenticates. Outlook accounts with multi-factor
// authentication reject the primary password here; the error says so.
func (t *Transport) Connect(ctx context.Context) (mailer.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sc, err := t.dialer.Dial()
	if err != nil {
		return nil, fmt.Errorf("%w: %v (if multi-factor auth is enabled, use an application password)", ErrConnect, err)
	}
	return &session{cfg: t.cfg, sc: sc}, nil
}

type session struct {
	cfg Config
	sc  mail.SendCloser
}

// Send performs exactly one delivery attempt for one message.
func (s *session) Send(email *mailer.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	m := buildMessage(s.cfg, email)
	if err := mail.Send(s.sc, m); err != nil {
		return fmt.Errorf("%w: %v", mailer.ErrSendFailed, err)
	}
	return nil
}

func (s *session) Close() error {
	return s.sc.Close()
}

// buildMessage assembles the wire message: sender identity, recipient,
// subject, HTML body, and attachment parts.
func buildMessage(cfg Config, email *mailer.Email) *mail.Message {
	m := mail.NewMessage()
	m.SetAddressHeader("From", cfg.Username, cfg.FromName)
	m.SetAddressHeader("To", email.To, email.ToName)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/html", email.HTML)
	for _, a := range email.Attachments {
		settings := []mail.FileSetting{}
		if a.ContentType != "" {
			settings = append(settings, mail.SetHeader(map[string][]string{
				"Content-Type": {a.ContentType},
			}))
		}
		m.AttachReader(a.Filename, bytes.NewReader(a.Content), settings...)
	}
	return m
}
