// Package mail submits notifications to an authenticated SMTP relay.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"secret-santa/domain"
	"secret-santa/notification"

	gomail "github.com/wneessen/go-mail"
)

const (
	// defaultTimeout bounds dialing and every exchange with the relay.
	defaultTimeout = 30 * time.Second
	// implicitTLSPort is the submission port speaking TLS from the first byte.
	implicitTLSPort = 465
)

// Opener dials the relay with STARTTLS and PLAIN authentication.
// It is the only holder of the secret.
type Opener struct {
	log         *slog.Logger
	credentials domain.Credentials
	timeout     time.Duration
}

// NewOpener returns an opener whose sessions give up on the relay after
// timeout, for the dial and for each message. A non-positive timeout falls
// back to defaultTimeout.
func NewOpener(log *slog.Logger, credentials domain.Credentials, timeout time.Duration) *Opener {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Opener{log: log, credentials: credentials, timeout: timeout}
}

func (o *Opener) Open(ctx context.Context) (notification.Session, error) {
	options := []gomail.Option{
		gomail.WithPort(o.credentials.Port),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(o.credentials.Sender),
		gomail.WithPassword(o.credentials.Secret),
		gomail.WithTimeout(o.timeout),
	}
	if o.credentials.Port == implicitTLSPort {
		options = append(options, gomail.WithSSL())
	}
	client, err := gomail.NewClient(o.credentials.Host, options...)
	if err != nil {
		return nil, fmt.Errorf("configuring smtp client: %w", err)
	}
	if err := client.DialWithContext(ctx); err != nil {
		return nil, fmt.Errorf("connecting to %s:%d: %w", o.credentials.Host, o.credentials.Port, err)
	}
	o.log.Debug("SMTP session opened", "relay", o.credentials)
	return &session{client: client, sender: o.credentials.Sender}, nil
}

type session struct {
	client *gomail.Client
	sender string
}

func (s *session) Send(ctx context.Context, message domain.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg, err := NewMessage(s.sender, message)
	if err != nil {
		return err
	}
	return s.client.Send(msg)
}

func (s *session) Close() error {
	return s.client.Close()
}

// NewMessage builds the MIME message for a rendered notification.
func NewMessage(sender string, message domain.Message) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(sender); err != nil {
		return nil, fmt.Errorf("sender %q: %w", sender, err)
	}
	if err := msg.To(message.To); err != nil {
		return nil, fmt.Errorf("recipient %q: %w", message.To, err)
	}
	msg.Subject(message.Subject)
	msg.SetDate()
	msg.SetMessageID()
	msg.SetBodyString(gomail.TypeTextPlain, message.Body)
	return msg, nil
}
