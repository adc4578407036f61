package mailer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"net/textproto"
	"strconv"

	"github.com/google/uuid"
	"github.com/jordan-wright/email"
)

// Message is a provider-agnostic outgoing email.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// Transport delivers a message and returns the transport-assigned
// message id. Implementations classify failures with *Error.
type Transport interface {
	Send(ctx context.Context, msg *Message) (string, error)
}

// SMTPTransport delivers messages through an authenticated SMTP relay
// such as Gmail.
type SMTPTransport struct {
	host     string
	port     int
	username string
	password string
}

// NewSMTPTransport creates a transport for the given relay and account.
func NewSMTPTransport(host string, port int, username, password string) *SMTPTransport {
	return &SMTPTransport{
		host:     host,
		port:     port,
		username: username,
		password: password,
	}
}

// Send delivers msg over SMTP. The context deadline bounds the attempt;
// a timeout classifies as a terminal delivery failure.
func (t *SMTPTransport) Send(ctx context.Context, msg *Message) (string, error) {
	e := email.NewEmail()
	e.From = msg.From
	e.To = []string{msg.To}
	e.ReplyTo = []string{msg.ReplyTo}
	e.Subject = msg.Subject
	e.HTML = []byte(msg.HTML)
	e.Text = []byte(msg.Text)

	// the relay does not echo an id back, so assign one up front
	id := fmt.Sprintf("<%s@%s>", uuid.NewString(), t.host)
	e.Headers.Set("Message-Id", id)

	addr := net.JoinHostPort(t.host, strconv.Itoa(t.port))
	auth := smtp.PlainAuth("", t.username, t.password, t.host)

	// the email package has no context support; bound it ourselves
	errc := make(chan error, 1)
	go func() {
		errc <- e.Send(addr, auth)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return "", classifySMTP(err)
		}
		return id, nil
	case <-ctx.Done():
		return "", newError(KindDelivery, "mail transport timed out", ctx.Err())
	}
}

// senderRejectedCodes are the SMTP reply codes treated as a refusal of the
// declared sender identity: authentication failures and rejected MAIL FROM.
// Everything else is terminal.
var senderRejectedCodes = map[int]bool{
	530: true, // authentication required
	534: true, // auth mechanism rejected
	535: true, // bad credentials
	538: true, // encryption required for auth
	553: true, // mailbox name not allowed (unverified sender)
}

// classifySMTP maps SMTP protocol errors into the closed error kinds.
func classifySMTP(err error) *Error {
	var tpErr *textproto.Error
	if errors.As(err, &tpErr) && senderRejectedCodes[tpErr.Code] {
		return newError(KindSenderRejected, "sender address rejected by mail provider", err)
	}
	return newError(KindDelivery, "mail transport failed", err)
}
