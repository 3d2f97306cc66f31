package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// InvoiceStatus is the lifecycle state of an invoice. Only pending and
// partial invoices are eligible for the overdue sweep.
type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPartial   InvoiceStatus = "partial"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// Valid reports whether s is a known invoice status.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPartial, InvoiceStatusPaid,
		InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	default:
		return false
	}
}

// RecurrencePattern is the firing interval of a recurring invoice template.
type RecurrencePattern string

const (
	RecurrencePatternWeekly       RecurrencePattern = "weekly"
	RecurrencePatternBiweekly     RecurrencePattern = "biweekly"
	RecurrencePatternMonthly      RecurrencePattern = "monthly"
	RecurrencePatternQuarterly    RecurrencePattern = "quarterly"
	RecurrencePatternSemiannually RecurrencePattern = "semiannually"
	RecurrencePatternAnnually     RecurrencePattern = "annually"
)

// Valid reports whether p is a known recurrence pattern.
func (p RecurrencePattern) Valid() bool {
	switch p {
	case RecurrencePatternWeekly, RecurrencePatternBiweekly, RecurrencePatternMonthly,
		RecurrencePatternQuarterly, RecurrencePatternSemiannually, RecurrencePatternAnnually:
		return true
	default:
		return false
	}
}

// Invoice is an invoice header. Monetary amounts are integer cents;
// total_cents is always subtotal_cents + tax_cents.
type Invoice struct {
	ID                 int64
	PublicID           uuid.UUID
	UserID             int64
	ClientID           int64
	InvoiceNumber      string
	IssueDate          time.Time
	DueDate            time.Time
	Status             InvoiceStatus
	SubtotalCents      int64
	TaxCents           int64
	TotalCents         int64
	RecurringInvoiceID pgtype.Int8
	DeletedAt          pgtype.Timestamptz
	CreatedAt          pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
}

// InvoiceItem is a line on an invoice. Description, unit price and tax rate
// are snapshots taken at generation time, never live product references.
type InvoiceItem struct {
	ID             int64
	InvoiceID      int64
	ProductID      int64
	Description    string
	Quantity       int32
	UnitPriceCents int64
	TaxRateBps     pgtype.Int4
	TaxCents       int64
	AmountCents    int64
	CreatedAt      pgtype.Timestamptz
}

// RecurringInvoice is a template from which concrete invoices are generated.
// NextDueDate is owned by the recurring generator and only moves forward.
type RecurringInvoice struct {
	ID          int64
	UserID      int64
	ClientID    int64
	Pattern     RecurrencePattern
	NextDueDate time.Time
	Active      bool
	DeletedAt   pgtype.Timestamptz
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

// RecurringInvoiceItem is a template line: a product reference plus quantity
// and an optional description override.
type RecurringInvoiceItem struct {
	ID                 int64
	RecurringInvoiceID int64
	ProductID          int64
	Quantity           int32
	Description        pgtype.Text
}

// Product is the read-only pricing source for generated line items.
type Product struct {
	ID             int64
	UserID         int64
	Name           string
	Description    pgtype.Text
	UnitPriceCents int64
	TaxRateBps     pgtype.Int4
	DeletedAt      pgtype.Timestamptz
}

// Client is the billed party; Email, when present, receives invoice notices.
type Client struct {
	ID     int64
	UserID int64
	Name   string
	Email  pgtype.Text
}
