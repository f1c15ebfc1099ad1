package repositories

import (
	"context"

	"github.com/pverdier/creance_manager_app/internal/core/domain"
)

// RelanceTemplateReader defines read operations for reminder templates
type RelanceTemplateReader interface {
	// FindTemplateByID retrieves a specific template by its unique identifier.
	FindTemplateByID(ctx context.Context, templateID string) (*domain.RelanceTemplate, error)

	// ListTemplates retrieves all templates ordered by name.
	ListTemplates(ctx context.Context) ([]domain.RelanceTemplate, error)

	// CountRulesReferencingTemplate returns how many rules reference the template.
	CountRulesReferencingTemplate(ctx context.Context, templateID string) (int, error)
}

// RelanceTemplateWriter defines write operations for reminder templates
type RelanceTemplateWriter interface {
	// SaveTemplate persists a new template.
	SaveTemplate(ctx context.Context, template domain.RelanceTemplate) error

	// UpdateTemplate updates an existing template.
	UpdateTemplate(ctx context.Context, template domain.RelanceTemplate) error

	// DeleteTemplate removes a template. Callers must first check it is not
	// referenced by any rule.
	DeleteTemplate(ctx context.Context, templateID string) error
}

// RelanceTemplateRepositoryFacade combines template repository interfaces
type RelanceTemplateRepositoryFacade interface {
	RelanceTemplateReader
	RelanceTemplateWriter
}

// RelanceRuleReader defines read operations for reminder rules
type RelanceRuleReader interface {
	// FindRuleByID retrieves a specific rule by its unique identifier.
	FindRuleByID(ctx context.Context, ruleID string) (*domain.RelanceRule, error)

	// ListRules retrieves all rules ordered by trigger days.
	ListRules(ctx context.Context) ([]domain.RelanceRule, error)

	// ListActiveRules retrieves active rules ordered by trigger days.
	ListActiveRules(ctx context.Context) ([]domain.RelanceRule, error)
}

// RelanceRuleWriter defines write operations for reminder rules
type RelanceRuleWriter interface {
	// SaveRule persists a new rule.
	SaveRule(ctx context.Context, rule domain.RelanceRule) error

	// UpdateRule updates an existing rule.
	UpdateRule(ctx context.Context, rule domain.RelanceRule) error

	// DeleteRule removes a rule.
	DeleteRule(ctx context.Context, ruleID string) error
}

// RelanceRuleRepositoryFacade combines rule repository interfaces
type RelanceRuleRepositoryFacade interface {
	RelanceRuleReader
	RelanceRuleWriter
}
