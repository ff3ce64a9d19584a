// Package mail delivers rendered offer documents over SMTP. Failures carry a
// typed reason so callers can tell a bad address from an unreachable server.
package mail

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/textproto"

	"gopkg.in/gomail.v2"
)

// Message is the delivery contract: recipient, subject, HTML body and an
// optional binary attachment.
type Message struct {
	To             string
	Subject        string
	HTMLBody       string
	Attachment     []byte
	AttachmentName string
}

type Sender interface {
	Send(msg Message) error
}

type Reason string

const (
	ReasonInvalidRecipient Reason = "invalid_recipient"
	ReasonAuthRejected     Reason = "auth_rejected"
	ReasonTransientNetwork Reason = "transient_network"
)

// SendError wraps a transport failure with its classified reason.
type SendError struct {
	Reason Reason
	Err    error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("mail send failed (%s): %v", e.Reason, e.Err)
}

func (e *SendError) Unwrap() error { return e.Err }

// Classify maps an SMTP/network error onto a Reason. Unrecognized failures
// count as transient so callers may retry them.
func Classify(err error) Reason {
	var tpErr *textproto.Error
	if errors.As(err, &tpErr) {
		switch tpErr.Code {
		case 530, 534, 535:
			return ReasonAuthRejected
		case 550, 551, 553:
			return ReasonInvalidRecipient
		}
		return ReasonTransientNetwork
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return ReasonTransientNetwork
	}
	return ReasonTransientNetwork
}

// Config holds the outbound mail server settings; supplied from the
// environment, never hardcoded.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	FromName string
}

// SMTPMailer sends messages through a gomail dialer.
type SMTPMailer struct{ cfg Config }

func NewSMTPMailer(cfg Config) *SMTPMailer { return &SMTPMailer{cfg: cfg} }

func (m *SMTPMailer) Send(msg Message) error {
	gm := gomail.NewMessage()
	gm.SetAddressHeader("From", m.cfg.Username, m.cfg.FromName)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/html", msg.HTMLBody)
	if len(msg.Attachment) > 0 {
		name := msg.AttachmentName
		if name == "" {
			name = "attachment.pdf"
		}
		data := msg.Attachment
		gm.Attach(name, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}))
	}
	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := d.DialAndSend(gm); err != nil {
		return &SendError{Reason: Classify(err), Err: err}
	}
	return nil
}
