package dto

import (
	"time"

	"github.com/pverdier/creance_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest defines the data needed to record a payment.
// InvoiceID is optional: a payment without one only credits the client balance.
type CreatePaymentRequest struct {
	ClientID    string          `json:"clientID" binding:"required"`
	InvoiceID   *string         `json:"invoiceID"`
	Amount      decimal.Decimal `json:"amount" binding:"required,dgt0"`
	PaymentDate time.Time       `json:"paymentDate" binding:"required"`
	Method      string          `json:"method"`
	Reference   string          `json:"reference"`
}

// RecordInvoicePaymentRequest defines the payload of the invoice-scoped
// payment endpoint; the client and invoice come from the path.
type RecordInvoicePaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required,dgt0"`
	PaymentDate time.Time       `json:"paymentDate" binding:"required"`
	Method      string          `json:"method"`
	Reference   string          `json:"reference"`
}

// UpdatePaymentRequest defines the data allowed when amending a payment.
// Only the amount may change; relinking to another invoice is not supported.
type UpdatePaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,dgt0"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID     string          `json:"paymentID"`
	ClientID      string          `json:"clientID"`
	InvoiceID     *string         `json:"invoiceID,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	PaymentDate   time.Time       `json:"paymentDate"`
	Method        string          `json:"method"`
	Reference     string          `json:"reference"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		ClientID:      p.ClientID,
		InvoiceID:     p.InvoiceID,
		Amount:        p.Amount,
		Status:        string(p.Status),
		PaymentDate:   p.PaymentDate,
		Method:        p.Method,
		Reference:     p.Reference,
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
		LastUpdatedAt: p.LastUpdatedAt,
		LastUpdatedBy: p.LastUpdatedBy,
	}
}

// ToListPaymentResponse converts a slice of domain.Payment to a slice of PaymentResponse DTOs
func ToListPaymentResponse(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = ToPaymentResponse(&p)
	}
	return res
}

// ListPaymentsParams defines query parameters for listing a client's payments.
type ListPaymentsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListPaymentsResponse wraps the list of payments.
type ListPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
}
