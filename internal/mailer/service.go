// Package mailer implements the contact-message delivery pipeline: render,
// primary send as the submitter, and a single fallback send as the service
// account when the provider rejects the submitter as sender.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adarshvish/portfolio-api/internal/contact"
	"github.com/adarshvish/portfolio-api/internal/logger"
)

// subject prefixes for the two attempts
const (
	subjectPrefix         = "Portfolio Contact: "
	fallbackSubjectFormat = "Portfolio Contact from %s: %s"
)

// Config holds mail dispatch configuration.
type Config struct {
	// Account is the authenticated sender identity, also used as the
	// fallback "from" address.
	Account string
	// AppPassword is the provider application password or API key.
	AppPassword string
	// Recipient receives every contact message.
	Recipient string
	// SendTimeout bounds each transport attempt.
	SendTimeout time.Duration
}

// DeliveryResult reports the outcome of a successful dispatch.
type DeliveryResult struct {
	MessageID    string `json:"messageId"`
	Timestamp    string `json:"timestamp"`
	UsedFallback bool   `json:"fallback"`
}

// Service dispatches validated contact submissions through a Transport.
// Construct with New, then Initialize once at process start before any
// request handling begins.
type Service struct {
	cfg         Config
	transport   Transport
	log         *logger.Logger
	initialized bool
}

// New creates an uninitialized mail service.
func New(cfg Config, transport Transport, log *logger.Logger) *Service {
	return &Service{
		cfg:       cfg,
		transport: transport,
		log:       log.Component("mailer"),
	}
}

// Initialize validates credentials and marks the service ready. Until it
// succeeds, every send fails fast without touching the network.
func (s *Service) Initialize() error {
	if s.cfg.AppPassword == "" {
		return newError(KindNotConfigured, "mail credentials are not configured", nil)
	}
	if s.cfg.Account == "" {
		return newError(KindNotConfigured, "mail account is not configured", nil)
	}
	if s.cfg.Recipient == "" {
		return newError(KindNotConfigured, "contact recipient is not configured", nil)
	}
	if s.cfg.SendTimeout <= 0 {
		s.cfg.SendTimeout = 15 * time.Second
	}

	s.initialized = true
	s.log.Info().Str("account", s.cfg.Account).Str("recipient", s.cfg.Recipient).Msg("mail service initialized")
	return nil
}

// Healthy reports whether the service can accept sends.
func (s *Service) Healthy() bool { return s.initialized }

// SendContact delivers a validated submission. The primary attempt sends
// as the submitter; when the provider rejects that sender, exactly one
// fallback attempt sends as the service account. At most two transport
// calls are ever made.
func (s *Service) SendContact(ctx context.Context, sub *contact.Submission) (*DeliveryResult, error) {
	if !s.initialized {
		return nil, newError(KindNotConfigured, "mail service not initialized", nil)
	}

	html, text, err := renderBodies(sub, false)
	if err != nil {
		return nil, newError(KindDelivery, "failed to render message", err)
	}

	primary := &Message{
		From:    sub.Email,
		To:      s.cfg.Recipient,
		ReplyTo: sub.Email,
		Subject: subjectPrefix + sub.Subject,
		HTML:    html,
		Text:    text,
	}

	id, sendErr := s.send(ctx, primary)
	if sendErr == nil {
		s.logSuccess(primary, sub, false)
		return s.result(id, false), nil
	}

	var terr *Error
	if !errors.As(sendErr, &terr) || terr.Kind != KindSenderRejected {
		// unrelated fault, a retry with another sender would only mask it
		s.logFailure(primary, sub, sendErr)
		return nil, newError(KindDelivery, "failed to send message, please try again", sendErr)
	}

	s.log.Warn().Err(sendErr).Str("from", sub.Email).Msg("sender rejected, retrying as service account")

	html, text, err = renderBodies(sub, true)
	if err != nil {
		return nil, newError(KindDelivery, "failed to render message", err)
	}

	fallback := &Message{
		From:    s.cfg.Account,
		To:      s.cfg.Recipient,
		ReplyTo: sub.Email,
		Subject: fmt.Sprintf(fallbackSubjectFormat, sub.Email, sub.Subject),
		HTML:    html,
		Text:    text,
	}

	id, sendErr = s.send(ctx, fallback)
	if sendErr != nil {
		s.logFailure(fallback, sub, sendErr)
		return nil, newError(KindDelivery, "failed to send message, please try again", sendErr)
	}

	s.logSuccess(fallback, sub, true)
	return s.result(id, true), nil
}

func (s *Service) send(ctx context.Context, msg *Message) (string, error) {
	sctx, cancel := context.WithTimeout(ctx, s.cfg.SendTimeout)
	defer cancel()
	return s.transport.Send(sctx, msg)
}

func (s *Service) result(id string, usedFallback bool) *DeliveryResult {
	return &DeliveryResult{
		MessageID:    id,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		UsedFallback: usedFallback,
	}
}

func (s *Service) logSuccess(msg *Message, sub *contact.Submission, fallback bool) {
	s.log.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Str("from_name", sub.Name).
		Bool("fallback", fallback).
		Msg("contact email sent")
}

func (s *Service) logFailure(msg *Message, sub *contact.Submission, err error) {
	s.log.Error().
		Err(err).
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Str("from_name", sub.Name).
		Msg("contact email delivery failed")
}
