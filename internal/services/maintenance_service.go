package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/facturio/facturio-api/internal/db"
	"github.com/facturio/facturio-api/internal/helpers"
	"github.com/facturio/facturio-api/internal/metrics"
)

// MaintenanceService owns the overdue sweep: pending and partial invoices
// whose due date has passed are moved to overdue.
type MaintenanceService struct {
	queries db.Querier
	logger  *zap.Logger
}

func NewMaintenanceService(queries db.Querier, logger *zap.Logger) *MaintenanceService {
	return &MaintenanceService{
		queries: queries,
		logger:  logger,
	}
}

// SweepResult holds the outcome counts of one sweep pass.
type SweepResult struct {
	Candidates int
	Swept      int
	Failed     int
}

// SweepOverdue transitions every non-deleted pending or partial invoice whose
// due date is strictly before asOf (date-only comparison) to overdue. Each
// invoice is updated independently, so a failure or crash mid-sweep leaves
// the remainder to the next run; re-running is always safe.
func (s *MaintenanceService) SweepOverdue(ctx context.Context, asOf time.Time) (SweepResult, error) {
	result := SweepResult{}
	cutoff := helpers.TruncateToDay(asOf)

	invoices, err := s.queries.ListSweepableInvoices(ctx, cutoff)
	if err != nil {
		return result, fmt.Errorf("failed to list sweepable invoices: %w", err)
	}
	result.Candidates = len(invoices)

	for _, invoice := range invoices {
		if err := s.queries.MarkInvoiceOverdue(ctx, invoice.ID); err != nil {
			s.logger.Error("Failed to mark invoice overdue",
				zap.Int64("invoice_id", invoice.ID),
				zap.String("invoice_number", invoice.InvoiceNumber),
				zap.Error(err),
			)
			result.Failed++
			continue
		}
		result.Swept++
	}

	metrics.InvoicesSwept.Add(float64(result.Swept))

	s.logger.Info("Overdue sweep finished",
		zap.Time("as_of", cutoff),
		zap.Int("candidates", result.Candidates),
		zap.Int("swept", result.Swept),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}
