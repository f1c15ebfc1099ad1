package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pverdier/creance_manager_app/internal/apperrors"
	"github.com/pverdier/creance_manager_app/internal/core/domain"
	portsrepo "github.com/pverdier/creance_manager_app/internal/core/ports/repositories"
	portssvc "github.com/pverdier/creance_manager_app/internal/core/ports/services"
	"github.com/pverdier/creance_manager_app/internal/dto"
	"github.com/pverdier/creance_manager_app/internal/middleware"
	"github.com/shopspring/decimal"
)

type invoiceService struct {
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	clientRepo  portsrepo.ClientReader
	paymentSvc  portssvc.PaymentSvcFacade
}

// NewInvoiceService creates a new invoice service. The payment service
// dependency backs the invoice-scoped payment endpoint.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, clientRepo portsrepo.ClientReader, paymentSvc portssvc.PaymentSvcFacade) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		paymentSvc:  paymentSvc,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// CreateInvoice persists a new invoice. The full amount is owed on creation,
// so the client balance rises by the invoice amount in the same transaction.
func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.OriginalAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: invoice amount must be positive", apperrors.ErrValidation)
	}
	if req.DueDate.Before(req.IssueDate) {
		return nil, fmt.Errorf("%w: due date cannot precede issue date", apperrors.ErrValidation)
	}

	if _, err := s.clientRepo.FindClientByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: client %s", apperrors.ErrNotFound, req.ClientID)
		}
		return nil, err
	}

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID:      uuid.NewString(),
		ClientID:       req.ClientID,
		Number:         req.Number,
		OriginalAmount: req.OriginalAmount,
		PaidAmount:     decimal.Zero,
		Remaining:      req.OriginalAmount,
		Status:         domain.InvoicePending,
		IssueDate:      req.IssueDate,
		DueDate:        req.DueDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice, invoice.OriginalAmount); err != nil {
		logger.Error("Failed to save invoice in repository", slog.String("error", err.Error()), slog.String("invoice_id", invoice.InvoiceID))
		return nil, err
	}

	logger.Info("Invoice created", slog.String("invoice_id", invoice.InvoiceID), slog.String("client_id", invoice.ClientID), slog.String("amount", invoice.OriginalAmount.String()))
	return &invoice, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find invoice by ID in repository", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) ListInvoicesByClient(ctx context.Context, clientID string, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoices, next, err := s.invoiceRepo.ListInvoicesByClient(ctx, clientID, limit, nextToken)
	if err != nil {
		logger.Error("Failed to list invoices from repository", slog.String("error", err.Error()), slog.String("client_id", clientID))
		return nil, nil, err
	}
	if invoices == nil {
		invoices = []domain.Invoice{}
	}
	return invoices, next, nil
}

func (s *invoiceService) ListOverdueInvoices(ctx context.Context, now time.Time) ([]domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoices, err := s.invoiceRepo.ListOverdueInvoices(ctx, now)
	if err != nil {
		logger.Error("Failed to list overdue invoices from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list overdue invoices: %w", err)
	}
	if invoices == nil {
		return []domain.Invoice{}, nil
	}
	return invoices, nil
}

// AmendInvoice changes the invoice's number, due date or original amount.
// Changing the amount moves the remaining amount and the client balance by
// the same delta; amounts already paid never move. The amount cannot drop
// below what has been paid.
func (s *invoiceService) AmendInvoice(ctx context.Context, invoiceID string, req dto.AmendInvoiceRequest, userID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	balanceDelta := decimal.Zero

	if req.Number != nil {
		if *req.Number == "" {
			return nil, fmt.Errorf("%w: invoice number cannot be empty", apperrors.ErrValidation)
		}
		invoice.Number = *req.Number
	}
	if req.DueDate != nil {
		if req.DueDate.Before(invoice.IssueDate) {
			return nil, fmt.Errorf("%w: due date cannot precede issue date", apperrors.ErrValidation)
		}
		invoice.DueDate = *req.DueDate
	}
	if req.OriginalAmount != nil {
		newAmount := *req.OriginalAmount
		if newAmount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: invoice amount must be positive", apperrors.ErrValidation)
		}
		if newAmount.LessThan(invoice.PaidAmount) {
			return nil, fmt.Errorf("%w: invoice amount cannot drop below the %s already paid", apperrors.ErrValidation, invoice.PaidAmount.String())
		}
		newRemaining := newAmount.Sub(invoice.PaidAmount)
		balanceDelta = newRemaining.Sub(invoice.Remaining)
		invoice.OriginalAmount = newAmount
		invoice.Remaining = newRemaining
		invoice.Status = domain.DeriveInvoiceStatus(invoice.PaidAmount, newRemaining)
	}

	invoice.LastUpdatedAt = time.Now()
	invoice.LastUpdatedBy = userID

	if err := s.invoiceRepo.UpdateInvoiceAmounts(ctx, *invoice, balanceDelta); err != nil {
		logger.Error("Failed to amend invoice in repository", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		return nil, err
	}

	logger.Info("Invoice amended", slog.String("invoice_id", invoiceID), slog.String("balance_delta", balanceDelta.String()))
	return invoice, nil
}

// RecordPayment records a payment against this invoice via the payment service.
func (s *invoiceService) RecordPayment(ctx context.Context, invoiceID string, req dto.RecordInvoicePaymentRequest, userID string) (*domain.Payment, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	return s.paymentSvc.CreatePayment(ctx, dto.CreatePaymentRequest{
		ClientID:    invoice.ClientID,
		InvoiceID:   &invoice.InvoiceID,
		Amount:      req.Amount,
		PaymentDate: req.PaymentDate,
		Method:      req.Method,
		Reference:   req.Reference,
	}, userID)
}

// DeleteInvoice removes an invoice. The client balance drops by the remaining
// amount in the same transaction; recorded payments keep their rows with the
// invoice reference detached.
func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return err
	}

	if err := s.invoiceRepo.DeleteInvoice(ctx, *invoice, invoice.Remaining.Neg(), userID, time.Now()); err != nil {
		logger.Error("Failed to delete invoice in repository", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		return err
	}

	logger.Info("Invoice deleted", slog.String("invoice_id", invoiceID), slog.String("client_id", invoice.ClientID))
	return nil
}
