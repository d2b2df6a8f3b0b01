package email

import (
	"context"
	"log"
)

// ConsoleSender writes outgoing mail to the process log instead of
// delivering it. Used in development and tests.
type ConsoleSender struct{}

func NewConsoleSender() *ConsoleSender {
	return &ConsoleSender{}
}

func (s *ConsoleSender) Send2FACode(ctx context.Context, toEmail, code string) error {
	log.Printf("[email] to=%s 2FA code: %s (expires in 10 minutes)", toEmail, code)
	return nil
}

func (s *ConsoleSender) SendResetLink(ctx context.Context, toEmail, token string) error {
	log.Printf("[email] to=%s password reset token: %s (expires in 30 minutes)", toEmail, token)
	return nil
}
