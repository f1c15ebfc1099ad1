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

type paymentService struct {
	paymentRepo portsrepo.PaymentRepositoryFacade
	invoiceRepo portsrepo.InvoiceReader
	clientRepo  portsrepo.ClientReader
}

// NewPaymentService creates a new payment service.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, invoiceRepo portsrepo.InvoiceReader, clientRepo portsrepo.ClientReader) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo: paymentRepo,
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find payment by ID in repository", slog.String("error", err.Error()), slog.String("payment_id", paymentID))
		}
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) ListPaymentsByClient(ctx context.Context, clientID string, limit int, offset int) ([]domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	payments, err := s.paymentRepo.ListPaymentsByClient(ctx, clientID, limit, offset)
	if err != nil {
		logger.Error("Failed to list payments from repository", slog.String("error", err.Error()), slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	if payments == nil {
		return []domain.Payment{}, nil
	}
	return payments, nil
}

// CreatePayment records money received from a client. The client balance
// drops by the amount. When the payment targets an invoice, the invoice's
// paid/remaining amounts move by the same figure and its status is derived
// from the new amounts.
func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, userID string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	if _, err := s.clientRepo.FindClientByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: client %s", apperrors.ErrNotFound, req.ClientID)
		}
		return nil, err
	}

	now := time.Now()
	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		ClientID:    req.ClientID,
		InvoiceID:   req.InvoiceID,
		Amount:      req.Amount,
		Status:      domain.PaymentCompleted,
		PaymentDate: req.PaymentDate,
		Method:      req.Method,
		Reference:   req.Reference,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	var invoiceUpdate *domain.Invoice
	if req.InvoiceID != nil {
		invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, *req.InvoiceID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, *req.InvoiceID)
			}
			return nil, err
		}
		if invoice.ClientID != req.ClientID {
			return nil, fmt.Errorf("%w: invoice %s does not belong to client %s", apperrors.ErrValidation, *req.InvoiceID, req.ClientID)
		}

		invoice.PaidAmount = invoice.PaidAmount.Add(req.Amount)
		invoice.Remaining = invoice.OriginalAmount.Sub(invoice.PaidAmount)
		invoice.Status = domain.DeriveInvoiceStatus(invoice.PaidAmount, invoice.Remaining)
		invoice.LastUpdatedAt = now
		invoice.LastUpdatedBy = userID
		invoiceUpdate = invoice
	}

	if err := s.paymentRepo.SavePayment(ctx, payment, invoiceUpdate, req.Amount.Neg()); err != nil {
		logger.Error("Failed to save payment in repository", slog.String("error", err.Error()), slog.String("payment_id", payment.PaymentID))
		return nil, err
	}

	logger.Info("Payment recorded", slog.String("payment_id", payment.PaymentID), slog.String("client_id", payment.ClientID), slog.String("amount", payment.Amount.String()))
	return &payment, nil
}

// UpdatePaymentAmount corrects a payment's amount. The client balance and the
// linked invoice amounts move by the difference, and the invoice status is
// re-derived: dropping the only payment's amount to cover nothing brings the
// invoice back to PENDING.
func (s *paymentService) UpdatePaymentAmount(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest, userID string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	diff := req.Amount.Sub(payment.Amount)
	if diff.IsZero() {
		return payment, nil
	}

	now := time.Now()
	payment.Amount = req.Amount
	payment.LastUpdatedAt = now
	payment.LastUpdatedBy = userID

	var invoiceUpdate *domain.Invoice
	if payment.InvoiceID != nil {
		invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, *payment.InvoiceID)
		if err != nil {
			return nil, err
		}

		invoice.PaidAmount = invoice.PaidAmount.Add(diff)
		invoice.Remaining = invoice.OriginalAmount.Sub(invoice.PaidAmount)
		invoice.Status = domain.DeriveInvoiceStatus(invoice.PaidAmount, invoice.Remaining)
		invoice.LastUpdatedAt = now
		invoice.LastUpdatedBy = userID
		invoiceUpdate = invoice
	}

	// The client owes less when the payment grows, more when it shrinks.
	if err := s.paymentRepo.UpdatePaymentAmount(ctx, *payment, invoiceUpdate, diff.Neg()); err != nil {
		logger.Error("Failed to update payment in repository", slog.String("error", err.Error()), slog.String("payment_id", paymentID))
		return nil, err
	}

	logger.Info("Payment amount updated", slog.String("payment_id", paymentID), slog.String("amount", payment.Amount.String()))
	return payment, nil
}

// DeletePayment reverses a payment: the client owes the amount again and the
// linked invoice's paid/remaining amounts are restored. The invoice never
// lands back on PAID: either nothing remains paid (PENDING) or some other
// payment still covers part of it (PARTIAL).
func (s *paymentService) DeletePayment(ctx context.Context, paymentID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return err
	}

	now := time.Now()

	var invoiceUpdate *domain.Invoice
	if payment.InvoiceID != nil {
		invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, *payment.InvoiceID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		// The invoice may have been deleted since; the payment row then
		// carries a dangling reference and only the ledger moves.
		if err == nil {
			invoice.PaidAmount = invoice.PaidAmount.Sub(payment.Amount)
			invoice.Remaining = invoice.OriginalAmount.Sub(invoice.PaidAmount)
			if invoice.PaidAmount.LessThanOrEqual(decimal.Zero) {
				invoice.PaidAmount = decimal.Zero
				invoice.Remaining = invoice.OriginalAmount
				invoice.Status = domain.InvoicePending
			} else {
				invoice.Status = domain.InvoicePartial
			}
			invoice.LastUpdatedAt = now
			invoice.LastUpdatedBy = userID
			invoiceUpdate = invoice
		}
	}

	if err := s.paymentRepo.DeletePayment(ctx, *payment, invoiceUpdate, payment.Amount, userID, now); err != nil {
		logger.Error("Failed to delete payment in repository", slog.String("error", err.Error()), slog.String("payment_id", paymentID))
		return err
	}

	logger.Info("Payment deleted", slog.String("payment_id", paymentID), slog.String("client_id", payment.ClientID), slog.String("amount", payment.Amount.String()))
	return nil
}
