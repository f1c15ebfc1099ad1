package repositories

import (
	"context"
	"time"

	"github.com/pverdier/creance_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentByID retrieves a specific payment by its unique identifier.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPaymentsByClient retrieves payments for a client, newest first.
	ListPaymentsByClient(ctx context.Context, clientID string, limit int, offset int) ([]domain.Payment, error)
}

// PaymentWriter defines the transactional write operations for payment data.
// Each method executes the full multi-record unit of work: the payment row,
// the linked invoice (when invoiceUpdate is non-nil) and the client balance
// delta commit together or not at all.
type PaymentWriter interface {
	// SavePayment inserts the payment, optionally rewrites the linked invoice,
	// and applies balanceDelta to the client, atomically.
	SavePayment(ctx context.Context, payment domain.Payment, invoiceUpdate *domain.Invoice, balanceDelta decimal.Decimal) error

	// UpdatePaymentAmount rewrites the payment amount, optionally rewrites the
	// linked invoice, and applies balanceDelta to the client, atomically.
	UpdatePaymentAmount(ctx context.Context, payment domain.Payment, invoiceUpdate *domain.Invoice, balanceDelta decimal.Decimal) error

	// DeletePayment removes the payment, optionally rewrites the linked
	// invoice, and applies balanceDelta to the client, atomically.
	DeletePayment(ctx context.Context, payment domain.Payment, invoiceUpdate *domain.Invoice, balanceDelta decimal.Decimal, userID string, now time.Time) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
