package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents a row in the invoices table.
type Invoice struct {
	InvoiceID      string          `db:"invoice_id"`
	ClientID       string          `db:"client_id"`
	Number         string          `db:"number"`
	OriginalAmount decimal.Decimal `db:"original_amount"`
	PaidAmount     decimal.Decimal `db:"paid_amount"`
	Remaining      decimal.Decimal `db:"remaining"`
	Status         string          `db:"status"`
	IssueDate      time.Time       `db:"issue_date"`
	DueDate        time.Time       `db:"due_date"`
	AuditFields
}
