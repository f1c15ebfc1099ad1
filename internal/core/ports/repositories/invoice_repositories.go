package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pverdier/creance_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves a specific invoice by its unique identifier.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoicesByClient retrieves a token-paginated list of invoices for a
	// client, newest due date first. Returns the invoices and a next-page token.
	ListInvoicesByClient(ctx context.Context, clientID string, limit int, nextToken *string) ([]domain.Invoice, *string, error)

	// ListOverdueInvoices retrieves all invoices that are not paid and whose
	// due date is before now, ordered by due date ascending (oldest first).
	ListOverdueInvoices(ctx context.Context, now time.Time) ([]domain.Invoice, error)
}

// InvoiceWriter defines the transactional write operations for invoice data.
// Every method that moves money commits the invoice change and the client
// balance delta as one database transaction.
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice and applies balanceDelta to the
	// owning client within one transaction.
	SaveInvoice(ctx context.Context, invoice domain.Invoice, balanceDelta decimal.Decimal) error

	// UpdateInvoiceAmounts rewrites the invoice's amount fields and status and
	// applies balanceDelta to the owning client within one transaction.
	UpdateInvoiceAmounts(ctx context.Context, invoice domain.Invoice, balanceDelta decimal.Decimal) error

	// DeleteInvoice removes the invoice and applies balanceDelta (the negated
	// remaining amount) to the owning client within one transaction.
	DeleteInvoice(ctx context.Context, invoice domain.Invoice, balanceDelta decimal.Decimal, userID string, now time.Time) error
}

// InvoiceTransactionSupport defines invoice operations usable inside a caller
// owned transaction (the payment processor spans payment+invoice+client).
type InvoiceTransactionSupport interface {
	// UpdateInvoiceAmountsInTx rewrites amount fields and status within the
	// given transaction.
	UpdateInvoiceAmountsInTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
	InvoiceTransactionSupport
}
