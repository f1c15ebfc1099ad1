package models

// RelanceTemplate represents a row in the relance_templates table.
// Variables is stored as a text[] column.
type RelanceTemplate struct {
	TemplateID string   `db:"template_id"`
	Name       string   `db:"name"`
	Type       string   `db:"type"`
	Subject    string   `db:"subject"`
	Content    string   `db:"content"`
	Variables  []string `db:"variables"`
	IsActive   bool     `db:"is_active"`
	AuditFields
}

// RelanceRule represents a row in the relance_rules table.
type RelanceRule struct {
	RuleID      string  `db:"rule_id"`
	Name        string  `db:"name"`
	TriggerDays int     `db:"trigger_days"`
	Action      string  `db:"action"`
	TemplateID  *string `db:"template_id"` // Nullable
	NewStatus   *string `db:"new_status"`  // Nullable
	IsActive    bool    `db:"is_active"`
	AuditFields
}
