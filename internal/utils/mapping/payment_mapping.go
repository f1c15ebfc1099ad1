package mapping

import (
	"github.com/pverdier/creance_manager_app/internal/core/domain"
	"github.com/pverdier/creance_manager_app/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:   d.PaymentID,
		ClientID:    d.ClientID,
		InvoiceID:   d.InvoiceID,
		Amount:      d.Amount,
		Status:      string(d.Status),
		PaymentDate: d.PaymentDate,
		Method:      d.Method,
		Reference:   d.Reference,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:   m.PaymentID,
		ClientID:    m.ClientID,
		InvoiceID:   m.InvoiceID,
		Amount:      m.Amount,
		Status:      domain.PaymentStatus(m.Status),
		PaymentDate: m.PaymentDate,
		Method:      m.Method,
		Reference:   m.Reference,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
