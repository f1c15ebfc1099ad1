package repositories

import (
	"context"

	"github.com/pverdier/creance_manager_app/internal/core/domain"
)

// CommunicationReader defines read operations for communication records
type CommunicationReader interface {
	// FindCommunicationByID retrieves a specific communication by its identifier.
	FindCommunicationByID(ctx context.Context, communicationID string) (*domain.Communication, error)

	// ListCommunicationsByClient retrieves a paginated list of communications
	// for a client, newest first.
	ListCommunicationsByClient(ctx context.Context, clientID string, limit int, offset int) ([]domain.Communication, error)

	// ExistsForRuleAndInvoice reports whether a communication already records
	// the given rule/invoice pair in its metadata.
	ExistsForRuleAndInvoice(ctx context.Context, ruleID string, invoiceID string) (bool, error)
}

// CommunicationWriter defines write operations for communication records
type CommunicationWriter interface {
	// SaveCommunication persists a new communication record.
	SaveCommunication(ctx context.Context, communication domain.Communication) error
}

// CommunicationRepositoryFacade combines communication repository interfaces
type CommunicationRepositoryFacade interface {
	CommunicationReader
	CommunicationWriter
}
