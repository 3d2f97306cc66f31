package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// EmailService sends transactional billing emails through Resend.
type EmailService struct {
	client    *resend.Client
	logger    *zap.Logger
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey string, fromEmail string, fromName string, logger *zap.Logger) *EmailService {
	client := resend.NewClient(apiKey)

	return &EmailService{
		client:    client,
		logger:    logger,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// InvoiceIssuedParams is the data for an invoice-issued notification.
type InvoiceIssuedParams struct {
	ClientName    string
	ClientEmail   string
	InvoiceNumber string
	TotalCents    int64
	DueDate       time.Time
	PublicID      uuid.UUID
}

// SendInvoiceIssued notifies a client that a new invoice was issued. Sending
// happens after the invoice transaction has committed; failures here are the
// caller's to log, never to roll back.
func (s *EmailService) SendInvoiceIssued(ctx context.Context, data InvoiceIssuedParams) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	subject := fmt.Sprintf("Invoice %s", data.InvoiceNumber)

	html := fmt.Sprintf(
		`<p>Hi %s,</p><p>A new invoice <strong>%s</strong> for %s has been issued to you. It is due on %s.</p>`,
		data.ClientName,
		data.InvoiceNumber,
		FormatCents(data.TotalCents),
		data.DueDate.Format("January 2, 2006"),
	)
	text := fmt.Sprintf(
		"Hi %s,\n\nA new invoice %s for %s has been issued to you. It is due on %s.\n",
		data.ClientName,
		data.InvoiceNumber,
		FormatCents(data.TotalCents),
		data.DueDate.Format("January 2, 2006"),
	)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{data.ClientEmail},
		Subject: subject,
		Html:    html,
		Text:    text,
		Headers: map[string]string{
			"X-Entity-Ref-ID": data.PublicID.String(),
		},
		Tags: []resend.Tag{
			{Name: "category", Value: "invoice_issued"},
		},
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Error("failed to send invoice email",
			zap.Error(err),
			zap.String("to", data.ClientEmail),
			zap.String("invoice_number", data.InvoiceNumber))
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("invoice email sent",
		zap.String("email_id", sent.Id),
		zap.String("to", data.ClientEmail),
		zap.String("invoice_number", data.InvoiceNumber))

	return nil
}

// FormatCents renders integer cents as a dollar string, e.g. 2700 -> "$27.00".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
