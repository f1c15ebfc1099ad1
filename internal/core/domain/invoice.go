package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the stored lifecycle status of an invoice.
// Overdue is deliberately not a status: it is a read-time projection
// (status != PAID and due date in the past).
type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "PENDING"
	InvoicePartial InvoiceStatus = "PARTIAL"
	InvoicePaid    InvoiceStatus = "PAID"
)

// Invoice represents an amount owed by a client.
// Invariant: Remaining + PaidAmount == OriginalAmount.
type Invoice struct {
	InvoiceID      string          `json:"invoiceID"`
	ClientID       string          `json:"clientID"` // Immutable once created
	Number         string          `json:"number"`
	OriginalAmount decimal.Decimal `json:"originalAmount"`
	PaidAmount     decimal.Decimal `json:"paidAmount"`
	Remaining      decimal.Decimal `json:"remaining"`
	Status         InvoiceStatus   `json:"status"`
	IssueDate      time.Time       `json:"issueDate"`
	DueDate        time.Time       `json:"dueDate"`
	AuditFields
}

// DeriveInvoiceStatus computes the status from paid/remaining amounts.
// Remaining <= 0 means fully paid; any positive paid amount with something
// still owed is partial; otherwise the invoice is untouched.
func DeriveInvoiceStatus(paidAmount, remaining decimal.Decimal) InvoiceStatus {
	switch {
	case remaining.LessThanOrEqual(decimal.Zero):
		return InvoicePaid
	case paidAmount.GreaterThan(decimal.Zero):
		return InvoicePartial
	default:
		return InvoicePending
	}
}

// IsOverdue reports whether the invoice is unpaid past its due date at the given time.
func (i Invoice) IsOverdue(now time.Time) bool {
	return i.Status != InvoicePaid && i.DueDate.Before(now)
}

// DaysOverdue returns the whole number of days elapsed between the due date
// and now, comparing calendar days in UTC. Zero or negative means not overdue.
func DaysOverdue(dueDate, now time.Time) int {
	due := dueDate.UTC().Truncate(24 * time.Hour)
	today := now.UTC().Truncate(24 * time.Hour)
	return int(today.Sub(due).Hours() / 24)
}
