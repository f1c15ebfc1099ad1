package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the lifecycle status of a payment record.
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "COMPLETED"
)

// Payment represents money received from a client, optionally against a
// specific invoice. Unlinked payments only move the client ledger balance.
type Payment struct {
	PaymentID   string          `json:"paymentID"`
	ClientID    string          `json:"clientID"`
	InvoiceID   *string         `json:"invoiceID,omitempty"` // Nullable: client-only payment
	Amount      decimal.Decimal `json:"amount"`
	Status      PaymentStatus   `json:"status"`
	PaymentDate time.Time       `json:"paymentDate"`
	Method      string          `json:"method"`
	Reference   string          `json:"reference"`
	AuditFields
}
