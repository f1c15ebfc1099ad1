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

type clientService struct {
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new client service.
func NewClientService(repo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: repo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// CreateClient persists a new client. Balance always starts at zero; it only
// moves through invoice and payment operations afterwards.
func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, userID string) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	client := domain.Client{
		ClientID:      uuid.NewString(),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Status:        domain.ClientNormal,
		ManagerUserID: req.ManagerUserID,
		Balance:       decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		logger.Error("Failed to save client in repository", slog.String("error", err.Error()), slog.String("client_id", client.ClientID))
		return nil, err
	}

	logger.Info("Client created", slog.String("client_id", client.ClientID))
	return &client, nil
}

func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find client by ID in repository", slog.String("error", err.Error()), slog.String("client_id", clientID))
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	clients, err := s.clientRepo.ListClients(ctx, limit, offset)
	if err != nil {
		logger.Error("Failed to list clients from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

// UpdateClient updates a client's contact details. Balance and status have
// their own paths and are never touched here.
func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, userID string) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: client name cannot be empty", apperrors.ErrValidation)
		}
		client.Name = *req.Name
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.ManagerUserID != nil {
		client.ManagerUserID = *req.ManagerUserID
	}
	client.LastUpdatedAt = time.Now()
	client.LastUpdatedBy = userID

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		logger.Error("Failed to update client in repository", slog.String("error", err.Error()), slog.String("client_id", clientID))
		return nil, err
	}

	logger.Info("Client updated", slog.String("client_id", clientID))
	return client, nil
}

// UpdateClientStatus sets the client's risk classification.
func (s *clientService) UpdateClientStatus(ctx context.Context, clientID string, status domain.ClientStatus, userID string) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if status == "" {
		return nil, fmt.Errorf("%w: status cannot be empty", apperrors.ErrValidation)
	}

	now := time.Now()
	if err := s.clientRepo.UpdateClientStatus(ctx, clientID, status, userID, now); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to update client status in repository", slog.String("error", err.Error()), slog.String("client_id", clientID))
		}
		return nil, err
	}

	logger.Info("Client status updated", slog.String("client_id", clientID), slog.String("status", string(status)))
	return s.clientRepo.FindClientByID(ctx, clientID)
}
