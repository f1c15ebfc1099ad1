package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pverdier/creance_manager_app/internal/apperrors"
	"github.com/pverdier/creance_manager_app/internal/core/domain"
	portsrepo "github.com/pverdier/creance_manager_app/internal/core/ports/repositories"
	portssvc "github.com/pverdier/creance_manager_app/internal/core/ports/services"
	"github.com/pverdier/creance_manager_app/internal/middleware"
)

type reportingService struct {
	reportingRepo portsrepo.ReportingRepositoryFacade
}

// NewReportingService creates a new reporting service.
func NewReportingService(repo portsrepo.ReportingRepositoryFacade) portssvc.ReportingService {
	return &reportingService{reportingRepo: repo}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// OutstandingSummary reports every client with a non-zero balance as of now.
func (s *reportingService) OutstandingSummary(ctx context.Context, now time.Time) ([]domain.ClientOutstanding, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rows, err := s.reportingRepo.GetOutstandingSummary(ctx, now)
	if err != nil {
		logger.Error("Failed to build outstanding summary", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to build outstanding summary: %w", err)
	}
	return rows, nil
}

// DSO computes the average days-to-payment over invoices paid in the window.
func (s *reportingService) DSO(ctx context.Context, from, to time.Time) (*domain.DSOReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if to.Before(from) {
		return nil, fmt.Errorf("%w: report window end precedes start", apperrors.ErrValidation)
	}

	report, err := s.reportingRepo.GetDSO(ctx, from, to)
	if err != nil {
		logger.Error("Failed to compute DSO", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to compute DSO: %w", err)
	}
	return report, nil
}
