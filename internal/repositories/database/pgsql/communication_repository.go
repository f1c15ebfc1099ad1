package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pverdier/creance_manager_app/internal/apperrors"
	"github.com/pverdier/creance_manager_app/internal/core/domain"
	portsrepo "github.com/pverdier/creance_manager_app/internal/core/ports/repositories"
	"github.com/pverdier/creance_manager_app/internal/models"
	"github.com/pverdier/creance_manager_app/internal/utils/mapping"
)

type PgxCommunicationRepository struct {
	pool *pgxpool.Pool
}

// newPgxCommunicationRepository creates a new repository for communication records.
func newPgxCommunicationRepository(pool *pgxpool.Pool) portsrepo.CommunicationRepositoryFacade {
	return &PgxCommunicationRepository{pool: pool}
}

var _ portsrepo.CommunicationRepositoryFacade = (*PgxCommunicationRepository)(nil)

const communicationColumns = `communication_id, client_id, type, subject, content, status, sent_at, scheduled_at, metadata, created_at, created_by, last_updated_at, last_updated_by`

func scanCommunication(row pgx.Row) (models.Communication, error) {
	var m models.Communication
	err := row.Scan(
		&m.CommunicationID,
		&m.ClientID,
		&m.Type,
		&m.Subject,
		&m.Content,
		&m.Status,
		&m.SentAt,
		&m.ScheduledAt,
		&m.Metadata,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveCommunication inserts a new communication record.
func (r *PgxCommunicationRepository) SaveCommunication(ctx context.Context, communication domain.Communication) error {
	m := mapping.ToModelCommunication(communication)

	query := `
		INSERT INTO communications (` + communicationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.pool.Exec(ctx, query,
		m.CommunicationID,
		m.ClientID,
		m.Type,
		m.Subject,
		m.Content,
		m.Status,
		m.SentAt,
		m.ScheduledAt,
		m.Metadata,
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
				return fmt.Errorf("%w: communication with ID %s already exists", apperrors.ErrDuplicate, m.CommunicationID)
			case "23503":
				return fmt.Errorf("%w: client not found for communication %s", apperrors.ErrNotFound, m.CommunicationID)
			}
		}
		return fmt.Errorf("failed to save communication %s: %w", m.CommunicationID, err)
	}
	return nil
}

// FindCommunicationByID retrieves a communication record by its ID.
func (r *PgxCommunicationRepository) FindCommunicationByID(ctx context.Context, communicationID string) (*domain.Communication, error) {
	query := `SELECT ` + communicationColumns + ` FROM communications WHERE communication_id = $1;`

	m, err := scanCommunication(r.pool.QueryRow(ctx, query, communicationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find communication by ID %s: %w", communicationID, err)
	}

	d := mapping.ToDomainCommunication(m)
	return &d, nil
}

// ListCommunicationsByClient retrieves communications for a client, newest first.
func (r *PgxCommunicationRepository) ListCommunicationsByClient(ctx context.Context, clientID string, limit int, offset int) ([]domain.Communication, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + communicationColumns + `
		FROM communications
		WHERE client_id = $1
		ORDER BY created_at DESC, communication_id DESC
		LIMIT $2 OFFSET $3;
	`

	rows, err := r.pool.Query(ctx, query, clientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query communications for client %s: %w", clientID, err)
	}
	defer rows.Close()

	comms := []models.Communication{}
	for rows.Next() {
		m, err := scanCommunication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan communication row for client %s: %w", clientID, err)
		}
		comms = append(comms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating communication rows for client %s: %w", clientID, rows.Err())
	}

	return mapping.ToDomainCommunicationSlice(comms), nil
}

// ExistsForRuleAndInvoice reports whether a communication already records the
// given rule/invoice pair. The metadata jsonb column carries both keys for
// every rule-generated record.
func (r *PgxCommunicationRepository) ExistsForRuleAndInvoice(ctx context.Context, ruleID string, invoiceID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM communications
			WHERE metadata->>'rule_id' = $1 AND metadata->>'invoice_id' = $2
		);
	`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, ruleID, invoiceID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check communication for rule %s invoice %s: %w", ruleID, invoiceID, err)
	}
	return exists, nil
}
