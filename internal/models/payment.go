package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents a row in the payments table.
// InvoiceID is a pointer for the nullable invoice_id column.
type Payment struct {
	PaymentID   string          `db:"payment_id"`
	ClientID    string          `db:"client_id"`
	InvoiceID   *string         `db:"invoice_id"`
	Amount      decimal.Decimal `db:"amount"`
	Status      string          `db:"status"`
	PaymentDate time.Time       `db:"payment_date"`
	Method      string          `db:"method"`
	Reference   string          `db:"reference"`
	AuditFields
}
