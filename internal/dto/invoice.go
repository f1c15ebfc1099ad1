package dto

import (
	"time"

	"github.com/pverdier/creance_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest defines the data needed to create a new invoice.
type CreateInvoiceRequest struct {
	ClientID       string          `json:"clientID" binding:"required"`
	Number         string          `json:"number" binding:"required"`
	OriginalAmount decimal.Decimal `json:"originalAmount" binding:"required,dgt0"`
	IssueDate      time.Time       `json:"issueDate" binding:"required"`
	DueDate        time.Time       `json:"dueDate" binding:"required"`
}

// AmendInvoiceRequest defines the data allowed when amending an invoice.
// The client reference is immutable; amounts already paid are untouched.
type AmendInvoiceRequest struct {
	Number         *string          `json:"number"`
	OriginalAmount *decimal.Decimal `json:"originalAmount"`
	DueDate        *time.Time       `json:"dueDate"`
}

// InvoiceResponse defines the data returned for an invoice.
// Mirrors domain.Invoice plus the derived overdue projection.
type InvoiceResponse struct {
	InvoiceID      string          `json:"invoiceID"`
	ClientID       string          `json:"clientID"`
	Number         string          `json:"number"`
	OriginalAmount decimal.Decimal `json:"originalAmount"`
	PaidAmount     decimal.Decimal `json:"paidAmount"`
	Remaining      decimal.Decimal `json:"remaining"`
	Status         string          `json:"status"`
	IssueDate      time.Time       `json:"issueDate"`
	DueDate        time.Time       `json:"dueDate"`
	IsOverdue      bool            `json:"isOverdue"`
	DaysOverdue    int             `json:"daysOverdue"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy  string          `json:"lastUpdatedBy"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO.
// The overdue projection is computed against now.
func ToInvoiceResponse(inv *domain.Invoice, now time.Time) InvoiceResponse {
	days := 0
	if inv.IsOverdue(now) {
		days = domain.DaysOverdue(inv.DueDate, now)
	}
	return InvoiceResponse{
		InvoiceID:      inv.InvoiceID,
		ClientID:       inv.ClientID,
		Number:         inv.Number,
		OriginalAmount: inv.OriginalAmount,
		PaidAmount:     inv.PaidAmount,
		Remaining:      inv.Remaining,
		Status:         string(inv.Status),
		IssueDate:      inv.IssueDate,
		DueDate:        inv.DueDate,
		IsOverdue:      inv.IsOverdue(now),
		DaysOverdue:    days,
		CreatedAt:      inv.CreatedAt,
		CreatedBy:      inv.CreatedBy,
		LastUpdatedAt:  inv.LastUpdatedAt,
		LastUpdatedBy:  inv.LastUpdatedBy,
	}
}

// ToListInvoiceResponse converts a slice of domain.Invoice to a slice of InvoiceResponse DTOs
func ToListInvoiceResponse(invoices []domain.Invoice, now time.Time) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = ToInvoiceResponse(&inv, now)
	}
	return res
}

// ListInvoicesParams defines query parameters for listing a client's invoices.
type ListInvoicesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListInvoicesResponse wraps the list of invoices with the next page token.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	NextToken *string           `json:"nextToken,omitempty"`
}
