// Package email sends transactional mail over SMTP.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"campusdesk/internal/shared/config"
	"campusdesk/internal/shared/logger"
)

// SMTPEmailService sends plain-text notification mail. When disabled it
// logs and drops every message, which keeps development environments
// quiet without stubbing the sender.
type SMTPEmailService struct {
	enabled     bool
	fromAddress string
	fromName    string
	dialer      *gomail.Dialer
	logger      logger.Interface
}

func NewSMTPEmailService(cfg config.EmailConfig, logger logger.Interface) *SMTPEmailService {
	return &SMTPEmailService{
		enabled:     cfg.Enabled,
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
		dialer:      gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		logger:      logger,
	}
}

func (s *SMTPEmailService) Send(to, subject, body string) error {
	if !s.enabled {
		s.logger.Infow("email disabled, dropping message", "to", to, "subject", subject)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", s.fromAddress, s.fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
