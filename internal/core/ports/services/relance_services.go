package services

import (
	"context"
	"time"

	"github.com/pverdier/creance_manager_app/internal/core/domain"
	"github.com/pverdier/creance_manager_app/internal/dto"
)

// RelanceTemplateSvc defines operations for managing reminder templates
type RelanceTemplateSvc interface {
	// CreateTemplate persists a new reminder template.
	CreateTemplate(ctx context.Context, req dto.CreateTemplateRequest, userID string) (*domain.RelanceTemplate, error)

	// GetTemplateByID retrieves a specific template.
	GetTemplateByID(ctx context.Context, templateID string) (*domain.RelanceTemplate, error)

	// ListTemplates retrieves all templates.
	ListTemplates(ctx context.Context) ([]domain.RelanceTemplate, error)

	// UpdateTemplate updates an existing template.
	UpdateTemplate(ctx context.Context, templateID string, req dto.UpdateTemplateRequest, userID string) (*domain.RelanceTemplate, error)

	// DeleteTemplate removes a template unless a rule still references it.
	DeleteTemplate(ctx context.Context, templateID string, userID string) error
}

// RelanceRuleSvc defines operations for managing reminder rules
type RelanceRuleSvc interface {
	// CreateRule persists a new reminder rule.
	CreateRule(ctx context.Context, req dto.CreateRuleRequest, userID string) (*domain.RelanceRule, error)

	// GetRuleByID retrieves a specific rule.
	GetRuleByID(ctx context.Context, ruleID string) (*domain.RelanceRule, error)

	// ListRules retrieves all rules ordered by trigger days.
	ListRules(ctx context.Context) ([]domain.RelanceRule, error)

	// UpdateRule updates an existing rule.
	UpdateRule(ctx context.Context, ruleID string, req dto.UpdateRuleRequest, userID string) (*domain.RelanceRule, error)

	// DeleteRule removes a rule.
	DeleteRule(ctx context.Context, ruleID string, userID string) error
}

// RelanceRunnerSvc runs the reminder engine over the overdue invoices.
type RelanceRunnerSvc interface {
	// ProcessReminders scans overdue invoices, fires every active rule whose
	// trigger day matches exactly, and returns the run summary. Failures on
	// one invoice are recorded and do not abort the scan.
	ProcessReminders(ctx context.Context, now time.Time) (*domain.RelanceRunResult, error)
}

// RelanceSvcFacade combines all reminder-related service interfaces
type RelanceSvcFacade interface {
	RelanceTemplateSvc
	RelanceRuleSvc
	RelanceRunnerSvc
}
