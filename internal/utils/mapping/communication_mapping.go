package mapping

import (
	"github.com/pverdier/creance_manager_app/internal/core/domain"
	"github.com/pverdier/creance_manager_app/internal/models"
)

// ToModelCommunication converts a domain Communication to its model
func ToModelCommunication(d domain.Communication) models.Communication {
	return models.Communication{
		CommunicationID: d.CommunicationID,
		ClientID:        d.ClientID,
		Type:            string(d.Type),
		Subject:         d.Subject,
		Content:         d.Content,
		Status:          string(d.Status),
		SentAt:          d.SentAt,
		ScheduledAt:     d.ScheduledAt,
		Metadata:        d.Metadata,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCommunication converts a model Communication to its domain type
func ToDomainCommunication(m models.Communication) domain.Communication {
	return domain.Communication{
		CommunicationID: m.CommunicationID,
		ClientID:        m.ClientID,
		Type:            domain.CommunicationType(m.Type),
		Subject:         m.Subject,
		Content:         m.Content,
		Status:          domain.CommunicationStatus(m.Status),
		SentAt:          m.SentAt,
		ScheduledAt:     m.ScheduledAt,
		Metadata:        m.Metadata,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCommunicationSlice converts a slice of model Communications to domain
func ToDomainCommunicationSlice(ms []models.Communication) []domain.Communication {
	ds := make([]domain.Communication, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCommunication(m)
	}
	return ds
}
