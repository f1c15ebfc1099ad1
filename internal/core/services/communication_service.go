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
)

type communicationService struct {
	communicationRepo portsrepo.CommunicationRepositoryFacade
	clientRepo        portsrepo.ClientReader
}

// NewCommunicationService creates a new communication service.
func NewCommunicationService(communicationRepo portsrepo.CommunicationRepositoryFacade, clientRepo portsrepo.ClientReader) portssvc.CommunicationSvcFacade {
	return &communicationService{
		communicationRepo: communicationRepo,
		clientRepo:        clientRepo,
	}
}

var _ portssvc.CommunicationSvcFacade = (*communicationService)(nil)

// CreateCommunication records a manually sent or scheduled message. Records
// only: delivery itself happens outside the system.
func (s *communicationService) CreateCommunication(ctx context.Context, req dto.CreateCommunicationRequest, userID string) (*domain.Communication, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.clientRepo.FindClientByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: client %s", apperrors.ErrNotFound, req.ClientID)
		}
		return nil, err
	}

	now := time.Now()
	communication := domain.Communication{
		CommunicationID: uuid.NewString(),
		ClientID:        req.ClientID,
		Type:            domain.CommunicationType(req.Type),
		Subject:         req.Subject,
		Content:         req.Content,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if req.ScheduledAt != nil && req.ScheduledAt.After(now) {
		communication.Status = domain.CommunicationScheduled
		communication.ScheduledAt = req.ScheduledAt
	} else {
		sentAt := now
		communication.Status = domain.CommunicationSent
		communication.SentAt = &sentAt
	}

	if err := s.communicationRepo.SaveCommunication(ctx, communication); err != nil {
		logger.Error("Failed to save communication in repository", slog.String("error", err.Error()), slog.String("communication_id", communication.CommunicationID))
		return nil, err
	}

	logger.Info("Communication recorded", slog.String("communication_id", communication.CommunicationID), slog.String("client_id", communication.ClientID), slog.String("status", string(communication.Status)))
	return &communication, nil
}

func (s *communicationService) GetCommunicationByID(ctx context.Context, communicationID string) (*domain.Communication, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	communication, err := s.communicationRepo.FindCommunicationByID(ctx, communicationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find communication by ID in repository", slog.String("error", err.Error()), slog.String("communication_id", communicationID))
		}
		return nil, err
	}
	return communication, nil
}

func (s *communicationService) ListCommunicationsByClient(ctx context.Context, clientID string, limit int, offset int) ([]domain.Communication, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	comms, err := s.communicationRepo.ListCommunicationsByClient(ctx, clientID, limit, offset)
	if err != nil {
		logger.Error("Failed to list communications from repository", slog.String("error", err.Error()), slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to list communications: %w", err)
	}
	if comms == nil {
		return []domain.Communication{}, nil
	}
	return comms, nil
}
