package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/facturio/facturio-api/internal/db"
	"github.com/facturio/facturio-api/internal/helpers"
	"github.com/facturio/facturio-api/internal/metrics"
)

// RecurringInvoiceService generates concrete invoices from due recurring
// templates. Each template is processed in its own transaction: the invoice
// header, its line-item snapshots, the totals and the template's next due
// date all land together or not at all.
type RecurringInvoiceService struct {
	queries   db.Querier
	txRunner  db.TxRunner
	allocator *InvoiceNumberAllocator
	email     *EmailService
	clock     Clock
	logger    *zap.Logger
}

// NewRecurringInvoiceService wires the generator. email may be nil, in which
// case issued-invoice notifications are skipped.
func NewRecurringInvoiceService(
	queries db.Querier,
	txRunner db.TxRunner,
	allocator *InvoiceNumberAllocator,
	email *EmailService,
	clock Clock,
	logger *zap.Logger,
) *RecurringInvoiceService {
	return &RecurringInvoiceService{
		queries:   queries,
		txRunner:  txRunner,
		allocator: allocator,
		email:     email,
		clock:     clock,
		logger:    logger,
	}
}

// GenerationResult holds the outcome counts of one generation pass.
type GenerationResult struct {
	Due       int
	Generated int
	Failed    int
}

// GenerateDue creates one invoice for every active template whose next due
// date is on or before asOf (date-only comparison). A failed template is
// rolled back, logged and skipped; it stays due and is retried on the next
// run without blocking the others.
func (s *RecurringInvoiceService) GenerateDue(ctx context.Context, asOf time.Time) (GenerationResult, error) {
	result := GenerationResult{}
	cutoff := helpers.TruncateToDay(asOf)

	templates, err := s.queries.ListDueRecurringInvoices(ctx, cutoff)
	if err != nil {
		return result, fmt.Errorf("failed to list due recurring invoices: %w", err)
	}
	result.Due = len(templates)

	for _, tmpl := range templates {
		invoice, err := s.generate(ctx, tmpl, cutoff)
		if err != nil {
			s.logger.Error("Failed to generate invoice from template",
				zap.Int64("recurring_invoice_id", tmpl.ID),
				zap.Error(err),
			)
			metrics.GenerationFailures.Inc()
			result.Failed++
			continue
		}

		metrics.InvoicesGenerated.Inc()
		result.Generated++
		s.logger.Info("Generated invoice from template",
			zap.Int64("recurring_invoice_id", tmpl.ID),
			zap.Int64("invoice_id", invoice.ID),
			zap.String("invoice_number", invoice.InvoiceNumber),
			zap.Int64("total_cents", invoice.TotalCents),
		)

		s.notifyInvoiceIssued(ctx, tmpl.ClientID, *invoice)
	}

	s.logger.Info("Recurring generation finished",
		zap.Time("as_of", cutoff),
		zap.Int("due", result.Due),
		zap.Int("generated", result.Generated),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

// GenerateOne runs the generation unit for a single template, the operator
// generate-now path. The template must be active, not deleted and due; a
// template that is not yet due is refused rather than having its next due
// date pushed backwards.
func (s *RecurringInvoiceService) GenerateOne(ctx context.Context, templateID int64) (*db.Invoice, error) {
	asOf := helpers.TruncateToDay(s.clock.Now())

	tmpl, err := s.queries.GetRecurringInvoice(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recurring invoice %d: %w", templateID, err)
	}
	if !tmpl.Active || tmpl.DeletedAt.Valid {
		return nil, fmt.Errorf("recurring invoice %d is not active", templateID)
	}
	if helpers.TruncateToDay(tmpl.NextDueDate).After(asOf) {
		return nil, fmt.Errorf("recurring invoice %d is not due until %s",
			templateID, tmpl.NextDueDate.Format("2006-01-02"))
	}

	invoice, err := s.generate(ctx, tmpl, asOf)
	if err != nil {
		metrics.GenerationFailures.Inc()
		return nil, err
	}

	metrics.InvoicesGenerated.Inc()
	s.notifyInvoiceIssued(ctx, tmpl.ClientID, *invoice)
	return invoice, nil
}

// generate is the per-template transactional unit: allocate a number, create
// the header, snapshot the line items from their products, write the totals
// and advance the template's next due date.
func (s *RecurringInvoiceService) generate(ctx context.Context, tmpl db.RecurringInvoice, asOf time.Time) (*db.Invoice, error) {
	if !tmpl.Pattern.Valid() {
		return nil, fmt.Errorf("recurring invoice %d has unknown pattern %q", tmpl.ID, tmpl.Pattern)
	}

	var created db.Invoice
	err := s.txRunner.InTx(ctx, func(q db.Querier) error {
		now := s.clock.Now()

		number, err := s.allocator.Allocate(ctx, q, tmpl.UserID, tmpl.ClientID, now)
		if err != nil {
			return err
		}

		invoice, err := q.CreateInvoice(ctx, db.CreateInvoiceParams{
			PublicID:           uuid.New(),
			UserID:             tmpl.UserID,
			ClientID:           tmpl.ClientID,
			InvoiceNumber:      number,
			IssueDate:          helpers.TruncateToDay(now),
			DueDate:            helpers.TruncateToDay(helpers.NextDueDate(now, tmpl.Pattern)),
			Status:             db.InvoiceStatusPending,
			RecurringInvoiceID: pgtype.Int8{Int64: tmpl.ID, Valid: true},
		})
		if err != nil {
			return fmt.Errorf("failed to create invoice header: %w", err)
		}

		items, err := q.ListRecurringInvoiceItems(ctx, tmpl.ID)
		if err != nil {
			return fmt.Errorf("failed to list template items: %w", err)
		}
		if len(items) == 0 {
			return fmt.Errorf("recurring invoice %d has no line items", tmpl.ID)
		}

		var subtotal, tax int64
		for _, item := range items {
			product, err := q.GetProduct(ctx, item.ProductID)
			if err != nil {
				return fmt.Errorf("failed to get product %d: %w", item.ProductID, err)
			}

			description := product.Name
			if item.Description.Valid && item.Description.String != "" {
				description = item.Description.String
			}

			amount := int64(item.Quantity) * product.UnitPriceCents
			var lineTax int64
			if product.TaxRateBps.Valid {
				lineTax = taxCents(amount, product.TaxRateBps.Int32)
			}

			if _, err := q.CreateInvoiceItem(ctx, db.CreateInvoiceItemParams{
				InvoiceID:      invoice.ID,
				ProductID:      product.ID,
				Description:    description,
				Quantity:       item.Quantity,
				UnitPriceCents: product.UnitPriceCents,
				TaxRateBps:     product.TaxRateBps,
				TaxCents:       lineTax,
				AmountCents:    amount,
			}); err != nil {
				return fmt.Errorf("failed to create line item for product %d: %w", product.ID, err)
			}

			subtotal += amount
			tax += lineTax
		}

		invoice, err = q.UpdateInvoiceTotals(ctx, db.UpdateInvoiceTotalsParams{
			ID:            invoice.ID,
			SubtotalCents: subtotal,
			TaxCents:      tax,
		})
		if err != nil {
			return fmt.Errorf("failed to update invoice totals: %w", err)
		}

		// The next due date advances from asOf, not from the stored date:
		// a template that missed several firings generates one catch-up
		// invoice and resumes its cadence from today.
		if err := q.UpdateRecurringInvoiceNextDueDate(ctx, db.UpdateRecurringInvoiceNextDueDateParams{
			ID:          tmpl.ID,
			NextDueDate: helpers.TruncateToDay(helpers.NextDueDate(asOf, tmpl.Pattern)),
		}); err != nil {
			return fmt.Errorf("failed to advance next due date: %w", err)
		}

		created = invoice
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// notifyInvoiceIssued sends the issued-invoice email after the transaction
// has committed. Failures are logged and swallowed; the invoice stands.
func (s *RecurringInvoiceService) notifyInvoiceIssued(ctx context.Context, clientID int64, invoice db.Invoice) {
	if s.email == nil {
		return
	}

	client, err := s.queries.GetClient(ctx, clientID)
	if err != nil {
		s.logger.Warn("Skipping invoice email, failed to load client",
			zap.Int64("client_id", clientID),
			zap.String("invoice_number", invoice.InvoiceNumber),
			zap.Error(err),
		)
		return
	}
	if !client.Email.Valid || client.Email.String == "" {
		return
	}

	if err := s.email.SendInvoiceIssued(ctx, InvoiceIssuedParams{
		ClientName:    client.Name,
		ClientEmail:   client.Email.String,
		InvoiceNumber: invoice.InvoiceNumber,
		TotalCents:    invoice.TotalCents,
		DueDate:       invoice.DueDate,
		PublicID:      invoice.PublicID,
	}); err != nil {
		s.logger.Warn("Invoice email failed",
			zap.String("invoice_number", invoice.InvoiceNumber),
			zap.Error(err),
		)
	}
}

// taxCents computes line tax from an amount and a rate in basis points,
// rounding half up.
func taxCents(amountCents int64, rateBps int32) int64 {
	return (amountCents*int64(rateBps) + 5000) / 10000
}
