package domain

// TemplateType is the communication channel a template is written for.
type TemplateType string

const (
	TemplateEmail TemplateType = "EMAIL"
	TemplateSMS   TemplateType = "SMS"
)

// RelanceTemplate holds the subject/content of a reminder message with
// {{variable}} placeholders. Templates referenced by a rule cannot be deleted.
type RelanceTemplate struct {
	TemplateID string       `json:"templateID"`
	Name       string       `json:"name"`
	Type       TemplateType `json:"type"`
	Subject    string       `json:"subject"`
	Content    string       `json:"content"`
	Variables  []string     `json:"variables"` // Declared placeholder names
	IsActive   bool         `json:"isActive"`
	AuditFields
}

// RelanceAction is what a rule does when it fires.
type RelanceAction string

const (
	ActionEmail        RelanceAction = "EMAIL"
	ActionSMS          RelanceAction = "SMS"
	ActionStatusChange RelanceAction = "STATUS_CHANGE"
)

// RelanceRule fires on the single day an invoice is exactly TriggerDays
// overdue. Email/SMS rules reference a template; status-change rules carry
// the new client status.
type RelanceRule struct {
	RuleID      string        `json:"ruleID"`
	Name        string        `json:"name"`
	TriggerDays int           `json:"triggerDays"`
	Action      RelanceAction `json:"action"`
	TemplateID  *string       `json:"templateID,omitempty"` // Required for EMAIL/SMS
	NewStatus   *ClientStatus `json:"newStatus,omitempty"`  // Required for STATUS_CHANGE
	IsActive    bool          `json:"isActive"`
	AuditFields
}
