package dto

import (
	"time"

	"github.com/pverdier/creance_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OutstandingRowResponse is one client line of the outstanding report.
type OutstandingRowResponse struct {
	ClientID        string          `json:"clientID"`
	Name            string          `json:"name"`
	Status          string          `json:"status"`
	Balance         decimal.Decimal `json:"balance"`
	OverdueInvoices int             `json:"overdueInvoices"`
	OldestDueDate   *time.Time      `json:"oldestDueDate,omitempty"`
}

// OutstandingReportResponse is the full outstanding receivables report.
type OutstandingReportResponse struct {
	AsOf    time.Time                `json:"asOf"`
	Total   decimal.Decimal          `json:"total"`
	Clients []OutstandingRowResponse `json:"clients"`
}

// ToOutstandingReportResponse builds the report DTO from domain rows.
func ToOutstandingReportResponse(rows []domain.ClientOutstanding, asOf time.Time) OutstandingReportResponse {
	res := OutstandingReportResponse{
		AsOf:    asOf,
		Total:   decimal.Zero,
		Clients: make([]OutstandingRowResponse, len(rows)),
	}
	for i, row := range rows {
		res.Total = res.Total.Add(row.Balance)
		res.Clients[i] = OutstandingRowResponse{
			ClientID:        row.ClientID,
			Name:            row.Name,
			Status:          string(row.Status),
			Balance:         row.Balance,
			OverdueInvoices: row.OverdueInvoices,
			OldestDueDate:   row.OldestDueDate,
		}
	}
	return res
}

// DSOReportParams defines query parameters for the DSO report window.
type DSOReportParams struct {
	From time.Time `form:"from" time_format:"2006-01-02" binding:"required"`
	To   time.Time `form:"to" time_format:"2006-01-02" binding:"required"`
}

// DSOReportResponse carries the days-sales-outstanding figure for a window.
type DSOReportResponse struct {
	From         time.Time       `json:"from"`
	To           time.Time       `json:"to"`
	InvoicesPaid int             `json:"invoicesPaid"`
	AverageDays  decimal.Decimal `json:"averageDays"`
}

// ToDSOReportResponse converts a domain.DSOReport to its DTO
func ToDSOReportResponse(r *domain.DSOReport) DSOReportResponse {
	return DSOReportResponse{
		From:         r.From,
		To:           r.To,
		InvoicesPaid: r.InvoicesPaid,
		AverageDays:  r.AverageDays,
	}
}
