package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClientOutstanding summarizes a client's receivables position.
type ClientOutstanding struct {
	ClientID        string          `json:"clientID"`
	Name            string          `json:"name"`
	Status          ClientStatus    `json:"status"`
	Balance         decimal.Decimal `json:"balance"`
	OverdueInvoices int             `json:"overdueInvoices"`
	OldestDueDate   *time.Time      `json:"oldestDueDate,omitempty"`
}

// DSOReport carries the average number of days between invoice issuance and
// full payment, over invoices paid inside the reporting window.
type DSOReport struct {
	From         time.Time       `json:"from"`
	To           time.Time       `json:"to"`
	InvoicesPaid int             `json:"invoicesPaid"`
	AverageDays  decimal.Decimal `json:"averageDays"`
}
