package services

import (
	"context"

	"github.com/pverdier/creance_manager_app/internal/core/domain"
	"github.com/pverdier/creance_manager_app/internal/dto"
)

// CommunicationReaderSvc defines read operations for communication records
type CommunicationReaderSvc interface {
	// GetCommunicationByID retrieves a specific communication record.
	GetCommunicationByID(ctx context.Context, communicationID string) (*domain.Communication, error)

	// ListCommunicationsByClient retrieves a paginated list of a client's
	// communications, newest first.
	ListCommunicationsByClient(ctx context.Context, clientID string, limit int, offset int) ([]domain.Communication, error)
}

// CommunicationWriterSvc defines write operations for communication records
type CommunicationWriterSvc interface {
	// CreateCommunication records a manual communication. A future
	// ScheduledAt marks it SCHEDULED, otherwise it is SENT now.
	CreateCommunication(ctx context.Context, req dto.CreateCommunicationRequest, userID string) (*domain.Communication, error)
}

// CommunicationSvcFacade combines communication service interfaces
type CommunicationSvcFacade interface {
	CommunicationReaderSvc
	CommunicationWriterSvc
}
