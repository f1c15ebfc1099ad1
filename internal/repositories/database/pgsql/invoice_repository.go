package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pverdier/creance_manager_app/internal/apperrors"
	"github.com/pverdier/creance_manager_app/internal/core/domain"
	portsrepo "github.com/pverdier/creance_manager_app/internal/core/ports/repositories"
	"github.com/pverdier/creance_manager_app/internal/models"
	"github.com/pverdier/creance_manager_app/internal/utils/mapping"
	"github.com/pverdier/creance_manager_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

type PgxInvoiceRepository struct {
	BaseRepository
	clientRepo portsrepo.ClientLedgerSupport
}

// newPgxInvoiceRepository creates a new repository for invoice data.
// The client ledger dependency is used to lock and adjust client balances
// inside invoice transactions.
func newPgxInvoiceRepository(pool *pgxpool.Pool, clientRepo portsrepo.ClientLedgerSupport) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
		clientRepo:     clientRepo,
	}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, client_id, number, original_amount, paid_amount, remaining, status, issue_date, due_date, created_at, created_by, last_updated_at, last_updated_by`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.ClientID,
		&m.Number,
		&m.OriginalAmount,
		&m.PaidAmount,
		&m.Remaining,
		&m.Status,
		&m.IssueDate,
		&m.DueDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveInvoice inserts a new invoice and applies the balance delta to the
// owning client in a single transaction.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice, balanceDelta decimal.Decimal) error {
	m := mapping.ToModelInvoice(invoice)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	// Lock the client row first so concurrent ledger writes serialize.
	if _, err := r.clientRepo.FindClientByIDForUpdate(ctx, tx, m.ClientID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: client %s", apperrors.ErrNotFound, m.ClientID)
		}
		return err
	}

	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, query,
		m.InvoiceID,
		m.ClientID,
		m.Number,
		m.OriginalAmount,
		m.PaidAmount,
		m.Remaining,
		m.Status,
		m.IssueDate,
		m.DueDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: invoice number %s already exists for client %s", apperrors.ErrDuplicate, m.Number, m.ClientID)
		}
		return fmt.Errorf("failed to insert invoice %s: %w", m.InvoiceID, err)
	}

	if err := r.clientRepo.ApplyBalanceDeltaInTx(ctx, tx, m.ClientID, balanceDelta, m.CreatedBy, m.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindInvoiceByID retrieves an invoice by its ID.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`

	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}

	d := mapping.ToDomainInvoice(m)
	return &d, nil
}

// ListInvoicesByClient retrieves a token-paginated list of a client's
// invoices, newest due date first.
func (r *PgxInvoiceRepository) ListInvoicesByClient(ctx context.Context, clientID string, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE client_id = $1
	`
	orderByClause := `ORDER BY due_date DESC, created_at DESC`

	args := []interface{}{clientID}
	query := baseQuery

	if nextToken != nil && *nextToken != "" {
		lastDueDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (due_date, created_at) < ($2, $3)`
		args = append(args, lastDueDate, lastCreatedAt)
	}

	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query invoices for client "+clientID, err)
	}
	defer rows.Close()

	fetched := make([]models.Invoice, 0, fetchLimit)
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan invoice row for client "+clientID, err)
		}
		fetched = append(fetched, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating invoice rows for client "+clientID, err)
	}

	var nextTokenVal *string
	results := fetched
	if len(fetched) > limit {
		last := fetched[limit-1]
		token := pagination.EncodeToken(last.DueDate, last.CreatedAt)
		nextTokenVal = &token
		results = fetched[:limit]
	}

	return mapping.ToDomainInvoiceSlice(results), nextTokenVal, nil
}

// ListOverdueInvoices retrieves all unpaid invoices past their due date,
// oldest due date first.
func (r *PgxInvoiceRepository) ListOverdueInvoices(ctx context.Context, now time.Time) ([]domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE status != 'PAID' AND due_date < $1
		ORDER BY due_date ASC, created_at ASC;
	`

	rows, err := r.Pool.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to query overdue invoices: %w", err)
	}
	defer rows.Close()

	invoices := []models.Invoice{}
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overdue invoice row: %w", err)
		}
		invoices = append(invoices, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating overdue invoice rows: %w", rows.Err())
	}

	return mapping.ToDomainInvoiceSlice(invoices), nil
}

// UpdateInvoiceAmounts rewrites the invoice's amount fields and applies the
// balance delta to the owning client in a single transaction.
func (r *PgxInvoiceRepository) UpdateInvoiceAmounts(ctx context.Context, invoice domain.Invoice, balanceDelta decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := r.clientRepo.FindClientByIDForUpdate(ctx, tx, invoice.ClientID); err != nil {
		return err
	}

	if err := r.UpdateInvoiceAmountsInTx(ctx, tx, invoice); err != nil {
		return err
	}

	if err := r.clientRepo.ApplyBalanceDeltaInTx(ctx, tx, invoice.ClientID, balanceDelta, invoice.LastUpdatedBy, invoice.LastUpdatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateInvoiceAmountsInTx rewrites the invoice's mutable fields within the
// given transaction.
func (r *PgxInvoiceRepository) UpdateInvoiceAmountsInTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)

	query := `
		UPDATE invoices
		SET number = $2, original_amount = $3, paid_amount = $4, remaining = $5, status = $6, due_date = $7, last_updated_at = $8, last_updated_by = $9
		WHERE invoice_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.InvoiceID,
		m.Number,
		m.OriginalAmount,
		m.PaidAmount,
		m.Remaining,
		m.Status,
		m.DueDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: invoice number %s already exists for client %s", apperrors.ErrDuplicate, m.Number, m.ClientID)
		}
		return fmt.Errorf("failed to update invoice %s: %w", m.InvoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteInvoice removes the invoice and applies the balance delta to the
// owning client in a single transaction. Linked payments keep their rows;
// the invoice_id column is set NULL by the foreign key.
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoice domain.Invoice, balanceDelta decimal.Decimal, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := r.clientRepo.FindClientByIDForUpdate(ctx, tx, invoice.ClientID); err != nil {
		return err
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1;`, invoice.InvoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoice.InvoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := r.clientRepo.ApplyBalanceDeltaInTx(ctx, tx, invoice.ClientID, balanceDelta, userID, now); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
