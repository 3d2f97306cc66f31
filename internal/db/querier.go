package db

import (
	"context"
	"time"
)

// Querier is the store interface consumed by the billing engine. It exists so
// services can be constructed against mocks in tests; *Queries is the real
// implementation.
type Querier interface {
	// Invoices
	CreateInvoice(ctx context.Context, arg CreateInvoiceParams) (Invoice, error)
	CreateInvoiceItem(ctx context.Context, arg CreateInvoiceItemParams) (InvoiceItem, error)
	GetInvoice(ctx context.Context, id int64) (Invoice, error)
	GetLastInvoiceNumberWithPrefix(ctx context.Context, prefix string) (string, error)
	InvoiceNumberExists(ctx context.Context, invoiceNumber string) (bool, error)
	ListSweepableInvoices(ctx context.Context, dueBefore time.Time) ([]Invoice, error)
	MarkInvoiceOverdue(ctx context.Context, id int64) error
	UpdateInvoiceTotals(ctx context.Context, arg UpdateInvoiceTotalsParams) (Invoice, error)

	// Recurring invoice templates
	GetRecurringInvoice(ctx context.Context, id int64) (RecurringInvoice, error)
	ListDueRecurringInvoices(ctx context.Context, dueOn time.Time) ([]RecurringInvoice, error)
	ListRecurringInvoiceItems(ctx context.Context, recurringInvoiceID int64) ([]RecurringInvoiceItem, error)
	UpdateRecurringInvoiceNextDueDate(ctx context.Context, arg UpdateRecurringInvoiceNextDueDateParams) error

	// Collaborator records
	GetClient(ctx context.Context, id int64) (Client, error)
	GetProduct(ctx context.Context, id int64) (Product, error)
}

var _ Querier = (*Queries)(nil)
