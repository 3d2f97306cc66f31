package db

import (
	"context"
	"time"
)

const recurringInvoiceColumns = `id, user_id, client_id, pattern, next_due_date, active,
	deleted_at, created_at, updated_at`

func scanRecurringInvoice(row interface {
	Scan(dest ...interface{}) error
}) (RecurringInvoice, error) {
	var r RecurringInvoice
	err := row.Scan(
		&r.ID,
		&r.UserID,
		&r.ClientID,
		&r.Pattern,
		&r.NextDueDate,
		&r.Active,
		&r.DeletedAt,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	return r, err
}

const getRecurringInvoice = `SELECT ` + recurringInvoiceColumns + ` FROM recurring_invoices WHERE id = $1`

func (q *Queries) GetRecurringInvoice(ctx context.Context, id int64) (RecurringInvoice, error) {
	return scanRecurringInvoice(q.db.QueryRow(ctx, getRecurringInvoice, id))
}

const listDueRecurringInvoices = `
SELECT ` + recurringInvoiceColumns + `
FROM recurring_invoices
WHERE active = true
  AND deleted_at IS NULL
  AND next_due_date <= $1
ORDER BY id`

// ListDueRecurringInvoices returns active, non-deleted templates whose next
// due date is on or before dueOn.
func (q *Queries) ListDueRecurringInvoices(ctx context.Context, dueOn time.Time) ([]RecurringInvoice, error) {
	rows, err := q.db.Query(ctx, listDueRecurringInvoices, dueOn)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []RecurringInvoice
	for rows.Next() {
		r, err := scanRecurringInvoice(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, r)
	}
	return templates, rows.Err()
}

const listRecurringInvoiceItems = `
SELECT id, recurring_invoice_id, product_id, quantity, description
FROM recurring_invoice_items
WHERE recurring_invoice_id = $1
ORDER BY id`

func (q *Queries) ListRecurringInvoiceItems(ctx context.Context, recurringInvoiceID int64) ([]RecurringInvoiceItem, error) {
	rows, err := q.db.Query(ctx, listRecurringInvoiceItems, recurringInvoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []RecurringInvoiceItem
	for rows.Next() {
		var it RecurringInvoiceItem
		if err := rows.Scan(
			&it.ID,
			&it.RecurringInvoiceID,
			&it.ProductID,
			&it.Quantity,
			&it.Description,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// UpdateRecurringInvoiceNextDueDateParams advances a template's next due
// date. Only the recurring generator writes this field.
type UpdateRecurringInvoiceNextDueDateParams struct {
	ID          int64
	NextDueDate time.Time
}

const updateRecurringInvoiceNextDueDate = `
UPDATE recurring_invoices
SET next_due_date = $2, updated_at = now()
WHERE id = $1`

func (q *Queries) UpdateRecurringInvoiceNextDueDate(ctx context.Context, arg UpdateRecurringInvoiceNextDueDateParams) error {
	_, err := q.db.Exec(ctx, updateRecurringInvoiceNextDueDate, arg.ID, arg.NextDueDate)
	return err
}
