package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pverdier/creance_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByID retrieves a specific client by its unique identifier.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves a paginated list of clients ordered by name.
	ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient updates an existing client's details (not its balance).
	UpdateClient(ctx context.Context, client domain.Client) error

	// UpdateClientStatus sets the free-form status classification of a client.
	UpdateClientStatus(ctx context.Context, clientID string, status domain.ClientStatus, userID string, now time.Time) error
}

// ClientLedgerSupport defines the ledger operations used inside multi-record
// transactions. Balance deltas are only ever applied through these methods.
type ClientLedgerSupport interface {
	// FindClientByIDForUpdate selects a client and locks its row for update
	// within a transaction, serializing concurrent balance changes.
	FindClientByIDForUpdate(ctx context.Context, tx pgx.Tx, clientID string) (*domain.Client, error)

	// ApplyBalanceDeltaInTx adds delta to the client's balance within the given
	// transaction. Positive means the client owes more.
	ApplyBalanceDeltaInTx(ctx context.Context, tx pgx.Tx, clientID string, delta decimal.Decimal, userID string, now time.Time) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
	ClientLedgerSupport
}
