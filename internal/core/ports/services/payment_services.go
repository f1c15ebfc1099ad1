package services

import (
	"context"

	"github.com/pverdier/creance_manager_app/internal/core/domain"
	"github.com/pverdier/creance_manager_app/internal/dto"
)

// PaymentReaderSvc defines read operations for payment data
type PaymentReaderSvc interface {
	// GetPaymentByID retrieves a specific payment by its unique identifier.
	GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPaymentsByClient retrieves payments for a client, newest first.
	ListPaymentsByClient(ctx context.Context, clientID string, limit int, offset int) ([]domain.Payment, error)
}

// PaymentWriterSvc defines write operations for payment data.
// Payments move the client ledger and, when linked, the invoice amounts.
type PaymentWriterSvc interface {
	// CreatePayment records a payment. When linked to an invoice it also
	// moves the invoice's paid/remaining amounts and derived status.
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, userID string) (*domain.Payment, error)

	// UpdatePaymentAmount corrects a payment's amount and re-derives the
	// linked invoice amounts and status from the new figure.
	UpdatePaymentAmount(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest, userID string) (*domain.Payment, error)

	// DeletePayment reverses a payment: the client owes the amount again and
	// the linked invoice's paid/remaining amounts are restored.
	DeletePayment(ctx context.Context, paymentID string, userID string) error
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
