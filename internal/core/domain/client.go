package domain

import (
	"github.com/shopspring/decimal"
)

// ClientStatus is a free-form classification of a debtor client.
// The values below are the conventional ones; reminder rules may set any string.
type ClientStatus string

const (
	ClientNormal   ClientStatus = "NORMAL"
	ClientWatch    ClientStatus = "WATCH"
	ClientCritical ClientStatus = "CRITICAL"
)

// Client represents a debtor within the core domain.
// Balance is the denormalized sum of the remaining amounts of the client's
// invoices; it only ever moves through ledger deltas applied inside the same
// transaction as the invoice/payment mutation that caused them.
type Client struct {
	ClientID      string          `json:"clientID"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Status        ClientStatus    `json:"status"`
	ManagerUserID string          `json:"managerUserID"` // Informational reference only
	Balance       decimal.Decimal `json:"balance"`
	AuditFields
}
