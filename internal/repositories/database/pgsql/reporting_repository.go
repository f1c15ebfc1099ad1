package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pverdier/creance_manager_app/internal/core/domain"
	portsrepo "github.com/pverdier/creance_manager_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the reporting queries.
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepositoryFacade = (*reportingRepository)(nil)

// GetOutstandingSummary retrieves the receivables position of every client
// with a non-zero balance, largest balance first.
func (r *reportingRepository) GetOutstandingSummary(ctx context.Context, now time.Time) ([]domain.ClientOutstanding, error) {
	query := `
		SELECT
			c.client_id,
			c.name,
			c.status,
			c.balance,
			COUNT(i.invoice_id) FILTER (WHERE i.status != 'PAID' AND i.due_date < $1) AS overdue_invoices,
			MIN(i.due_date) FILTER (WHERE i.status != 'PAID' AND i.due_date < $1) AS oldest_due_date
		FROM clients c
		LEFT JOIN invoices i ON i.client_id = c.client_id
		WHERE c.balance != 0
		GROUP BY c.client_id, c.name, c.status, c.balance
		ORDER BY c.balance DESC
	`

	rows, err := r.Pool.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("error querying outstanding summary: %w", err)
	}
	defer rows.Close()

	var result []domain.ClientOutstanding
	for rows.Next() {
		var row domain.ClientOutstanding
		var status string

		if err := rows.Scan(
			&row.ClientID,
			&row.Name,
			&status,
			&row.Balance,
			&row.OverdueInvoices,
			&row.OldestDueDate,
		); err != nil {
			return nil, fmt.Errorf("error scanning outstanding summary row: %w", err)
		}

		row.Status = domain.ClientStatus(status)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating outstanding summary rows: %w", err)
	}

	if len(result) == 0 {
		return []domain.ClientOutstanding{}, nil
	}

	return result, nil
}

// GetDSO computes the average days between invoice issuance and full payment
// over invoices fully paid inside the window. The payment completing the
// invoice is the latest payment linked to it.
func (r *reportingRepository) GetDSO(ctx context.Context, from time.Time, to time.Time) (*domain.DSOReport, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(AVG(days_to_pay), 0)
		FROM (
			SELECT EXTRACT(EPOCH FROM (MAX(p.payment_date) - i.issue_date)) / 86400 AS days_to_pay
			FROM invoices i
			JOIN payments p ON p.invoice_id = i.invoice_id
			WHERE i.status = 'PAID'
			GROUP BY i.invoice_id, i.issue_date
			HAVING MAX(p.payment_date) >= $1 AND MAX(p.payment_date) <= $2
		) paid
	`

	var count int
	var averageDays decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, from, to).Scan(&count, &averageDays); err != nil {
		return nil, fmt.Errorf("error querying DSO data: %w", err)
	}

	return &domain.DSOReport{
		From:         from,
		To:           to,
		InvoicesPaid: count,
		AverageDays:  averageDays.Round(2),
	}, nil
}
