package email

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridSender delivers 2FA codes and reset links through SendGrid.
type SendGridSender struct {
	client *sendgrid.Client
	from   *mail.Email
}

func NewSendGridSender(apiKey, senderEmail, senderName string) *SendGridSender {
	return &SendGridSender{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail(senderName, senderEmail),
	}
}

func (s *SendGridSender) Send2FACode(ctx context.Context, toEmail, code string) error {
	subject := "Your 2FA Verification Code"
	body := fmt.Sprintf("Your 2FA code is: %s. It expires in 10 minutes.", code)

	return s.send(ctx, toEmail, subject, body)
}

func (s *SendGridSender) SendResetLink(ctx context.Context, toEmail, token string) error {
	subject := "Reset Your Password"
	body := fmt.Sprintf("Use the following token to reset your password: %s. It expires in 30 minutes.", token)

	return s.send(ctx, toEmail, subject, body)
}

func (s *SendGridSender) send(ctx context.Context, toEmail, subject, body string) error {
	msg := mail.NewSingleEmail(s.from, subject, mail.NewEmail("", toEmail), body, body)

	resp, err := s.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected email to %s: status %d: %s", toEmail, resp.StatusCode, resp.Body)
	}

	return nil
}
