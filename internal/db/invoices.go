package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const invoiceColumns = `id, public_id, user_id, client_id, invoice_number, issue_date, due_date,
	status, subtotal_cents, tax_cents, total_cents, recurring_invoice_id, deleted_at, created_at, updated_at`

func scanInvoice(row interface {
	Scan(dest ...interface{}) error
}) (Invoice, error) {
	var i Invoice
	err := row.Scan(
		&i.ID,
		&i.PublicID,
		&i.UserID,
		&i.ClientID,
		&i.InvoiceNumber,
		&i.IssueDate,
		&i.DueDate,
		&i.Status,
		&i.SubtotalCents,
		&i.TaxCents,
		&i.TotalCents,
		&i.RecurringInvoiceID,
		&i.DeletedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

// CreateInvoiceParams holds the fields set at invoice creation. Totals start
// at zero and are written separately once line items exist.
type CreateInvoiceParams struct {
	PublicID           uuid.UUID
	UserID             int64
	ClientID           int64
	InvoiceNumber      string
	IssueDate          time.Time
	DueDate            time.Time
	Status             InvoiceStatus
	RecurringInvoiceID pgtype.Int8
}

const createInvoice = `
INSERT INTO invoices (public_id, user_id, client_id, invoice_number, issue_date, due_date,
	status, subtotal_cents, tax_cents, total_cents, recurring_invoice_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, 0, 0, 0, $8)
RETURNING ` + invoiceColumns

func (q *Queries) CreateInvoice(ctx context.Context, arg CreateInvoiceParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, createInvoice,
		arg.PublicID,
		arg.UserID,
		arg.ClientID,
		arg.InvoiceNumber,
		arg.IssueDate,
		arg.DueDate,
		arg.Status,
		arg.RecurringInvoiceID,
	)
	return scanInvoice(row)
}

// CreateInvoiceItemParams holds a line item snapshot.
type CreateInvoiceItemParams struct {
	InvoiceID      int64
	ProductID      int64
	Description    string
	Quantity       int32
	UnitPriceCents int64
	TaxRateBps     pgtype.Int4
	TaxCents       int64
	AmountCents    int64
}

const createInvoiceItem = `
INSERT INTO invoice_items (invoice_id, product_id, description, quantity, unit_price_cents,
	tax_rate_bps, tax_cents, amount_cents)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, invoice_id, product_id, description, quantity, unit_price_cents, tax_rate_bps,
	tax_cents, amount_cents, created_at`

func (q *Queries) CreateInvoiceItem(ctx context.Context, arg CreateInvoiceItemParams) (InvoiceItem, error) {
	row := q.db.QueryRow(ctx, createInvoiceItem,
		arg.InvoiceID,
		arg.ProductID,
		arg.Description,
		arg.Quantity,
		arg.UnitPriceCents,
		arg.TaxRateBps,
		arg.TaxCents,
		arg.AmountCents,
	)
	var i InvoiceItem
	err := row.Scan(
		&i.ID,
		&i.InvoiceID,
		&i.ProductID,
		&i.Description,
		&i.Quantity,
		&i.UnitPriceCents,
		&i.TaxRateBps,
		&i.TaxCents,
		&i.AmountCents,
		&i.CreatedAt,
	)
	return i, err
}

const getInvoice = `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`

func (q *Queries) GetInvoice(ctx context.Context, id int64) (Invoice, error) {
	return scanInvoice(q.db.QueryRow(ctx, getInvoice, id))
}

const getLastInvoiceNumberWithPrefix = `
SELECT invoice_number FROM invoices
WHERE invoice_number LIKE $1 || '%'
ORDER BY invoice_number DESC
LIMIT 1`

// GetLastInvoiceNumberWithPrefix returns the lexicographically-last invoice
// number starting with prefix, or pgx.ErrNoRows when none exists.
func (q *Queries) GetLastInvoiceNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	var number string
	err := q.db.QueryRow(ctx, getLastInvoiceNumberWithPrefix, prefix).Scan(&number)
	return number, err
}

const invoiceNumberExists = `SELECT EXISTS(SELECT 1 FROM invoices WHERE invoice_number = $1)`

func (q *Queries) InvoiceNumberExists(ctx context.Context, invoiceNumber string) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx, invoiceNumberExists, invoiceNumber).Scan(&exists)
	return exists, err
}

const listSweepableInvoices = `
SELECT ` + invoiceColumns + `
FROM invoices
WHERE deleted_at IS NULL
  AND status IN ('pending', 'partial')
  AND due_date < $1
ORDER BY id`

// ListSweepableInvoices returns non-deleted pending or partial invoices whose
// due date is strictly before dueBefore.
func (q *Queries) ListSweepableInvoices(ctx context.Context, dueBefore time.Time) ([]Invoice, error) {
	rows, err := q.db.Query(ctx, listSweepableInvoices, dueBefore)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []Invoice
	for rows.Next() {
		i, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, i)
	}
	return invoices, rows.Err()
}

const markInvoiceOverdue = `
UPDATE invoices
SET status = 'overdue', updated_at = now()
WHERE id = $1
  AND status IN ('pending', 'partial')
  AND deleted_at IS NULL`

// MarkInvoiceOverdue transitions one invoice to overdue. The status guard in
// the WHERE clause makes the update a no-op for invoices that are already
// overdue, paid, cancelled or deleted.
func (q *Queries) MarkInvoiceOverdue(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, markInvoiceOverdue, id)
	return err
}

// UpdateInvoiceTotalsParams carries the accumulated component amounts; the
// total is derived in SQL so it can never drift from subtotal + tax.
type UpdateInvoiceTotalsParams struct {
	ID            int64
	SubtotalCents int64
	TaxCents      int64
}

const updateInvoiceTotals = `
UPDATE invoices
SET subtotal_cents = $2, tax_cents = $3, total_cents = $2 + $3, updated_at = now()
WHERE id = $1
RETURNING ` + invoiceColumns

func (q *Queries) UpdateInvoiceTotals(ctx context.Context, arg UpdateInvoiceTotalsParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, updateInvoiceTotals, arg.ID, arg.SubtotalCents, arg.TaxCents)
	return scanInvoice(row)
}
