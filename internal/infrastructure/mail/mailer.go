// Package mail delivers outgoing notification email over SMTP.
//
// Sends are synchronous: a failed delivery is returned to the caller as an
// error and never swallowed.
package mail

import (
	"context"

	"github.com/finvoice/backend/internal/infrastructure/config"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Sender delivers a single plain-text message
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPSender implements Sender using gomail over SMTP
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

// NewSMTPSender creates a sender from SMTP configuration
func NewSMTPSender(cfg config.SMTPConfig, logger *zap.Logger) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		logger: logger.Named("mail"),
	}
}

// Send delivers the message, honoring context cancellation before dialing
func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Error("Failed to send email",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("Email sent",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}
