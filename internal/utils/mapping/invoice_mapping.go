package mapping

import (
	"github.com/pverdier/creance_manager_app/internal/core/domain"
	"github.com/pverdier/creance_manager_app/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:      d.InvoiceID,
		ClientID:       d.ClientID,
		Number:         d.Number,
		OriginalAmount: d.OriginalAmount,
		PaidAmount:     d.PaidAmount,
		Remaining:      d.Remaining,
		Status:         string(d.Status),
		IssueDate:      d.IssueDate,
		DueDate:        d.DueDate,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:      m.InvoiceID,
		ClientID:       m.ClientID,
		Number:         m.Number,
		OriginalAmount: m.OriginalAmount,
		PaidAmount:     m.PaidAmount,
		Remaining:      m.Remaining,
		Status:         domain.InvoiceStatus(m.Status),
		IssueDate:      m.IssueDate,
		DueDate:        m.DueDate,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInvoiceSlice converts a slice of model Invoices to domain Invoices
func ToDomainInvoiceSlice(ms []models.Invoice) []domain.Invoice {
	ds := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoice(m)
	}
	return ds
}
