package mapping

import (
	"github.com/pverdier/creance_manager_app/internal/core/domain"
	"github.com/pverdier/creance_manager_app/internal/models"
)

// ToModelRelanceTemplate converts a domain RelanceTemplate to its model
func ToModelRelanceTemplate(d domain.RelanceTemplate) models.RelanceTemplate {
	return models.RelanceTemplate{
		TemplateID:  d.TemplateID,
		Name:        d.Name,
		Type:        string(d.Type),
		Subject:     d.Subject,
		Content:     d.Content,
		Variables:   d.Variables,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRelanceTemplate converts a model RelanceTemplate to its domain type
func ToDomainRelanceTemplate(m models.RelanceTemplate) domain.RelanceTemplate {
	return domain.RelanceTemplate{
		TemplateID:  m.TemplateID,
		Name:        m.Name,
		Type:        domain.TemplateType(m.Type),
		Subject:     m.Subject,
		Content:     m.Content,
		Variables:   m.Variables,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelRelanceRule converts a domain RelanceRule to its model
func ToModelRelanceRule(d domain.RelanceRule) models.RelanceRule {
	var newStatus *string
	if d.NewStatus != nil {
		s := string(*d.NewStatus)
		newStatus = &s
	}
	return models.RelanceRule{
		RuleID:      d.RuleID,
		Name:        d.Name,
		TriggerDays: d.TriggerDays,
		Action:      string(d.Action),
		TemplateID:  d.TemplateID,
		NewStatus:   newStatus,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRelanceRule converts a model RelanceRule to its domain type
func ToDomainRelanceRule(m models.RelanceRule) domain.RelanceRule {
	var newStatus *domain.ClientStatus
	if m.NewStatus != nil {
		s := domain.ClientStatus(*m.NewStatus)
		newStatus = &s
	}
	return domain.RelanceRule{
		RuleID:      m.RuleID,
		Name:        m.Name,
		TriggerDays: m.TriggerDays,
		Action:      domain.RelanceAction(m.Action),
		TemplateID:  m.TemplateID,
		NewStatus:   newStatus,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRelanceRuleSlice converts a slice of model rules to domain rules
func ToDomainRelanceRuleSlice(ms []models.RelanceRule) []domain.RelanceRule {
	ds := make([]domain.RelanceRule, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRelanceRule(m)
	}
	return ds
}
