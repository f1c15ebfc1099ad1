package pgsql

import (
	"context"
	"database/sql"
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

type PgxClientRepository struct {
	pool *pgxpool.Pool
}

// newPgxClientRepository creates a new repository for client data.
func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{pool: pool}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

const clientColumns = `client_id, name, email, phone, status, manager_user_id, balance, created_at, created_by, last_updated_at, last_updated_by`

// scanClient scans one client row into a model, handling the nullable
// manager_user_id column.
func scanClient(row pgx.Row) (models.Client, error) {
	var m models.Client
	var managerID sql.NullString
	err := row.Scan(
		&m.ClientID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.Status,
		&managerID,
		&m.Balance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return models.Client{}, err
	}
	if managerID.Valid {
		m.ManagerUserID = managerID.String
	}
	return m, nil
}

// SaveClient inserts a new client.
func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)

	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	var managerID sql.NullString
	if m.ManagerUserID != "" {
		managerID = sql.NullString{String: m.ManagerUserID, Valid: true}
	}

	_, err := r.pool.Exec(ctx, query,
		m.ClientID,
		m.Name,
		m.Email,
		m.Phone,
		m.Status,
		managerID,
		m.Balance,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: client with ID %s already exists", apperrors.ErrDuplicate, m.ClientID)
		}
		return fmt.Errorf("failed to save client %s: %w", m.ClientID, err)
	}
	return nil
}

// FindClientByID retrieves a client by its ID.
func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1;`

	m, err := scanClient(r.pool.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by ID %s: %w", clientID, err)
	}

	d := mapping.ToDomainClient(m)
	return &d, nil
}

// ListClients retrieves a paginated list of clients ordered by name.
func (r *PgxClientRepository) ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + clientColumns + `
		FROM clients
		ORDER BY name
		LIMIT $1 OFFSET $2;
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		m, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		clients = append(clients, mapping.ToDomainClient(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", rows.Err())
	}

	return clients, nil
}

// UpdateClient updates a client's contact details. The balance column is out
// of scope here: it only moves via ApplyBalanceDeltaInTx.
func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)

	query := `
		UPDATE clients
		SET name = $2, email = $3, phone = $4, manager_user_id = $5, last_updated_at = $6, last_updated_by = $7
		WHERE client_id = $1;
	`
	var managerID sql.NullString
	if m.ManagerUserID != "" {
		managerID = sql.NullString{String: m.ManagerUserID, Valid: true}
	}

	cmdTag, err := r.pool.Exec(ctx, query,
		m.ClientID,
		m.Name,
		m.Email,
		m.Phone,
		managerID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update client %s: %w", m.ClientID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateClientStatus sets the status classification of a client.
func (r *PgxClientRepository) UpdateClientStatus(ctx context.Context, clientID string, status domain.ClientStatus, userID string, now time.Time) error {
	query := `
		UPDATE clients
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE client_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query, clientID, string(status), now, userID)
	if err != nil {
		return fmt.Errorf("failed to execute update client status %s: %w", clientID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindClientByIDForUpdate retrieves a client by ID and locks the row for update.
// Must be called within a transaction.
func (r *PgxClientRepository) FindClientByIDForUpdate(ctx context.Context, tx pgx.Tx, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1 FOR UPDATE;`

	m, err := scanClient(tx.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock client %s for update: %w", clientID, err)
	}

	d := mapping.ToDomainClient(m)
	return &d, nil
}

// ApplyBalanceDeltaInTx adds delta to a client's balance within a transaction.
// Use COALESCE to handle potential NULL balances if the default wasn't set correctly.
func (r *PgxClientRepository) ApplyBalanceDeltaInTx(ctx context.Context, tx pgx.Tx, clientID string, delta decimal.Decimal, userID string, now time.Time) error {
	if delta.IsZero() {
		return nil
	}

	query := `
		UPDATE clients
		SET balance = COALESCE(balance, 0) + $2, last_updated_at = $3, last_updated_by = $4
		WHERE client_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, clientID, delta, now, userID)
	if err != nil {
		return fmt.Errorf("failed to apply balance delta for client %s: %w", clientID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: client %s not found during balance update", apperrors.ErrNotFound, clientID)
	}
	return nil
}
