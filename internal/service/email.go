package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridSink struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewSendGridSink(apiKey, fromEmail, fromName string) NotificationSink {
	return &sendGridSink{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridSink) Send(ctx context.Context, toEmail, toName, subject, body string) error {
	return s.send(ctx, toEmail, toName, subject, body, "")
}

func (s *sendGridSink) SendWithReplyTo(ctx context.Context, toEmail, toName, subject, body, replyTo string) error {
	return s.send(ctx, toEmail, toName, subject, body, replyTo)
}

func (s *sendGridSink) send(ctx context.Context, toEmail, toName, subject, body, replyTo string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, toEmail)

	message := mail.NewSingleEmailPlainText(from, subject, recipient, body)
	if replyTo != "" {
		message.SetReplyTo(mail.NewEmail("", replyTo))
	}

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
