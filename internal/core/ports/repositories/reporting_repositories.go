package repositories

import (
	"context"
	"time"

	"github.com/pverdier/creance_manager_app/internal/core/domain"
)

// ReportingReader defines the read-only aggregation queries used by reports.
type ReportingReader interface {
	// GetOutstandingSummary returns the receivables position of every client
	// with a non-zero balance, largest balance first.
	GetOutstandingSummary(ctx context.Context, now time.Time) ([]domain.ClientOutstanding, error)

	// GetDSO computes the average days between issue date and full payment for
	// invoices paid inside the window.
	GetDSO(ctx context.Context, from time.Time, to time.Time) (*domain.DSOReport, error)
}

// ReportingRepositoryFacade is the facade for reporting queries.
type ReportingRepositoryFacade interface {
	ReportingReader
}
