package services

import (
	"context"
	"time"

	"github.com/pverdier/creance_manager_app/internal/core/domain"
	"github.com/pverdier/creance_manager_app/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoice data
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves a specific invoice by its unique identifier.
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoicesByClient retrieves a token-paginated list of a client's invoices.
	ListInvoicesByClient(ctx context.Context, clientID string, limit int, nextToken *string) ([]domain.Invoice, *string, error)

	// ListOverdueInvoices retrieves all unpaid invoices past their due date.
	ListOverdueInvoices(ctx context.Context, now time.Time) ([]domain.Invoice, error)
}

// InvoiceWriterSvc defines write operations for invoice data.
// Every mutation keeps the owning client's balance in step with the sum of
// invoice remaining amounts.
type InvoiceWriterSvc interface {
	// CreateInvoice persists a new invoice and raises the client balance by
	// the invoice amount.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error)

	// AmendInvoice changes the invoice's number, due date or original amount.
	// An amount change moves the remaining amount and client balance by the
	// same delta; the paid amount is never touched.
	AmendInvoice(ctx context.Context, invoiceID string, req dto.AmendInvoiceRequest, userID string) (*domain.Invoice, error)

	// RecordPayment records a payment against this invoice.
	RecordPayment(ctx context.Context, invoiceID string, req dto.RecordInvoicePaymentRequest, userID string) (*domain.Payment, error)

	// DeleteInvoice removes the invoice and lowers the client balance by the
	// remaining amount. Recorded payments keep their rows with the invoice
	// reference detached.
	DeleteInvoice(ctx context.Context, invoiceID string, userID string) error
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
