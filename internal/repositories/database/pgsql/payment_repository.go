package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pverdier/creance_manager_app/internal/apperrors"
	"github.com/pverdier/creance_manager_app/internal/core/domain"
	portsrepo "github.com/pverdier/creance_manager_app/internal/core/ports/repositories"
	"github.com/pverdier/creance_manager_app/internal/models"
	"github.com/pverdier/creance_manager_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type PgxPaymentRepository struct {
	BaseRepository
	clientRepo  portsrepo.ClientLedgerSupport
	invoiceRepo portsrepo.InvoiceTransactionSupport
}

// newPgxPaymentRepository creates a new repository for payment data.
// Payments span three tables: the payment row, the optional linked invoice
// and the client balance, all written inside one transaction.
func newPgxPaymentRepository(pool *pgxpool.Pool, clientRepo portsrepo.ClientLedgerSupport, invoiceRepo portsrepo.InvoiceTransactionSupport) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
		clientRepo:     clientRepo,
		invoiceRepo:    invoiceRepo,
	}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

const paymentColumns = `payment_id, client_id, invoice_id, amount, status, payment_date, method, reference, created_at, created_by, last_updated_at, last_updated_by`

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.ClientID,
		&m.InvoiceID,
		&m.Amount,
		&m.Status,
		&m.PaymentDate,
		&m.Method,
		&m.Reference,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindPaymentByID retrieves a payment by its ID.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1;`

	m, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment by ID %s: %w", paymentID, err)
	}

	d := mapping.ToDomainPayment(m)
	return &d, nil
}

// ListPaymentsByClient retrieves payments for a client, newest first.
func (r *PgxPaymentRepository) ListPaymentsByClient(ctx context.Context, clientID string, limit int, offset int) ([]domain.Payment, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE client_id = $1
		ORDER BY payment_date DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`

	rows, err := r.Pool.Query(ctx, query, clientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for client %s: %w", clientID, err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row for client %s: %w", clientID, err)
		}
		payments = append(payments, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payment rows for client %s: %w", clientID, rows.Err())
	}

	return mapping.ToDomainPaymentSlice(payments), nil
}

// SavePayment inserts the payment, rewrites the linked invoice when present,
// and applies the balance delta, all in one transaction.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment, invoiceUpdate *domain.Invoice, balanceDelta decimal.Decimal) error {
	m := mapping.ToModelPayment(payment)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := r.clientRepo.FindClientByIDForUpdate(ctx, tx, m.ClientID); err != nil {
		return err
	}

	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, query,
		m.PaymentID,
		m.ClientID,
		m.InvoiceID,
		m.Amount,
		m.Status,
		m.PaymentDate,
		m.Method,
		m.Reference,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return fmt.Errorf("%w: payment with ID %s already exists", apperrors.ErrDuplicate, m.PaymentID)
			case "23503":
				return fmt.Errorf("%w: linked invoice not found for payment %s", apperrors.ErrNotFound, m.PaymentID)
			}
		}
		return fmt.Errorf("failed to insert payment %s: %w", m.PaymentID, err)
	}

	if invoiceUpdate != nil {
		if err := r.invoiceRepo.UpdateInvoiceAmountsInTx(ctx, tx, *invoiceUpdate); err != nil {
			return err
		}
	}

	if err := r.clientRepo.ApplyBalanceDeltaInTx(ctx, tx, m.ClientID, balanceDelta, m.CreatedBy, m.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdatePaymentAmount rewrites the payment amount, the linked invoice when
// present, and the client balance, all in one transaction.
func (r *PgxPaymentRepository) UpdatePaymentAmount(ctx context.Context, payment domain.Payment, invoiceUpdate *domain.Invoice, balanceDelta decimal.Decimal) error {
	m := mapping.ToModelPayment(payment)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := r.clientRepo.FindClientByIDForUpdate(ctx, tx, m.ClientID); err != nil {
		return err
	}

	query := `
		UPDATE payments
		SET amount = $2, last_updated_at = $3, last_updated_by = $4
		WHERE payment_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, m.PaymentID, m.Amount, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update payment %s: %w", m.PaymentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if invoiceUpdate != nil {
		if err := r.invoiceRepo.UpdateInvoiceAmountsInTx(ctx, tx, *invoiceUpdate); err != nil {
			return err
		}
	}

	if err := r.clientRepo.ApplyBalanceDeltaInTx(ctx, tx, m.ClientID, balanceDelta, m.LastUpdatedBy, m.LastUpdatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeletePayment removes the payment row, restores the linked invoice when
// present, and applies the balance delta, all in one transaction.
func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, payment domain.Payment, invoiceUpdate *domain.Invoice, balanceDelta decimal.Decimal, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := r.clientRepo.FindClientByIDForUpdate(ctx, tx, payment.ClientID); err != nil {
		return err
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM payments WHERE payment_id = $1;`, payment.PaymentID)
	if err != nil {
		return fmt.Errorf("failed to delete payment %s: %w", payment.PaymentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if invoiceUpdate != nil {
		if err := r.invoiceRepo.UpdateInvoiceAmountsInTx(ctx, tx, *invoiceUpdate); err != nil {
			return err
		}
	}

	if err := r.clientRepo.ApplyBalanceDeltaInTx(ctx, tx, payment.ClientID, balanceDelta, userID, now); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
