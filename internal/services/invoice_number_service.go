package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/facturio/facturio-api/internal/db"
)

// maxAllocationAttempts caps the re-check retry loop. Contention on a single
// (issuer, client, month) scope is rare; hitting the cap means something is
// persistently racing us and the enclosing transaction must fail.
const maxAllocationAttempts = 5

// ErrNumberAllocationExhausted is returned when an unused invoice number could
// not be found within the attempt cap.
var ErrNumberAllocationExhausted = errors.New("invoice number allocation attempts exhausted")

// InvoiceNumberAllocator mints invoice numbers of the form
// INV-U{issuer}-C{client}-{year}-{month}-{seq}, with seq a 4-digit counter
// scoped to the (issuer, client, year, month) quadruple.
type InvoiceNumberAllocator struct {
	maxAttempts int
}

func NewInvoiceNumberAllocator() *InvoiceNumberAllocator {
	return &InvoiceNumberAllocator{maxAttempts: maxAllocationAttempts}
}

// Allocate returns the next unused invoice number for the scope at time at.
// It runs on the caller's Querier, which inside a generation transaction is
// the transaction-scoped one; the unique constraint on invoice_number
// backstops any race the existence re-check misses.
func (a *InvoiceNumberAllocator) Allocate(ctx context.Context, q db.Querier, issuerID, clientID int64, at time.Time) (string, error) {
	prefix := fmt.Sprintf("INV-U%d-C%d-%d-%02d-", issuerID, clientID, at.Year(), int(at.Month()))

	seq, err := a.nextSequence(ctx, q, prefix)
	if err != nil {
		return "", err
	}

	for attempt := 0; attempt < a.maxAttempts; attempt++ {
		candidate := fmt.Sprintf("%s%04d", prefix, seq)

		exists, err := q.InvoiceNumberExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to re-check invoice number %s: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
		seq++
	}

	return "", fmt.Errorf("%w for prefix %s", ErrNumberAllocationExhausted, prefix)
}

// nextSequence reads the last allocated number in the scope and returns the
// following sequence value, starting at 1 for a fresh scope.
func (a *InvoiceNumberAllocator) nextSequence(ctx context.Context, q db.Querier, prefix string) (int, error) {
	last, err := q.GetLastInvoiceNumberWithPrefix(ctx, prefix)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 1, nil
		}
		return 0, fmt.Errorf("failed to read last invoice number for prefix %s: %w", prefix, err)
	}

	seq, err := strconv.Atoi(strings.TrimPrefix(last, prefix))
	if err != nil {
		return 0, fmt.Errorf("malformed invoice number %q in scope %s: %w", last, prefix, err)
	}
	return seq + 1, nil
}
