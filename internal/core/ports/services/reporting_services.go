package services

import (
	"context"
	"time"

	"github.com/pverdier/creance_manager_app/internal/core/domain"
)

// ReportingService defines operations for generating receivables reports
type ReportingService interface {
	// OutstandingSummary reports every client with a non-zero balance,
	// with overdue invoice counts, as of now.
	OutstandingSummary(ctx context.Context, now time.Time) ([]domain.ClientOutstanding, error)

	// DSO computes the average days between invoice issuance and full
	// payment over invoices paid inside the window.
	DSO(ctx context.Context, from, to time.Time) (*domain.DSOReport, error)
}
