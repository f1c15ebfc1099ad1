package dto

import (
	"time"

	"github.com/pverdier/creance_manager_app/internal/core/domain"
)

// CreateTemplateRequest defines the data needed to create a reminder template.
type CreateTemplateRequest struct {
	Name      string   `json:"name" binding:"required"`
	Type      string   `json:"type" binding:"required,oneof=EMAIL SMS"`
	Subject   string   `json:"subject"`
	Content   string   `json:"content" binding:"required"`
	Variables []string `json:"variables"`
}

// UpdateTemplateRequest defines the data allowed for updating a template.
type UpdateTemplateRequest struct {
	Name      *string   `json:"name"`
	Subject   *string   `json:"subject"`
	Content   *string   `json:"content"`
	Variables *[]string `json:"variables"`
	IsActive  *bool     `json:"isActive"`
}

// TemplateResponse defines the data returned for a reminder template.
type TemplateResponse struct {
	TemplateID    string    `json:"templateID"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Subject       string    `json:"subject"`
	Content       string    `json:"content"`
	Variables     []string  `json:"variables"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToTemplateResponse converts a domain.RelanceTemplate to TemplateResponse DTO
func ToTemplateResponse(t *domain.RelanceTemplate) TemplateResponse {
	return TemplateResponse{
		TemplateID:    t.TemplateID,
		Name:          t.Name,
		Type:          string(t.Type),
		Subject:       t.Subject,
		Content:       t.Content,
		Variables:     t.Variables,
		IsActive:      t.IsActive,
		CreatedAt:     t.CreatedAt,
		CreatedBy:     t.CreatedBy,
		LastUpdatedAt: t.LastUpdatedAt,
		LastUpdatedBy: t.LastUpdatedBy,
	}
}

// ToListTemplateResponse converts a slice of domain.RelanceTemplate to DTOs
func ToListTemplateResponse(templates []domain.RelanceTemplate) []TemplateResponse {
	res := make([]TemplateResponse, len(templates))
	for i, t := range templates {
		res[i] = ToTemplateResponse(&t)
	}
	return res
}

// CreateRuleRequest defines the data needed to create a reminder rule.
// TemplateID is required for EMAIL/SMS actions, NewStatus for STATUS_CHANGE.
type CreateRuleRequest struct {
	Name        string  `json:"name" binding:"required"`
	TriggerDays int     `json:"triggerDays" binding:"required,min=1"`
	Action      string  `json:"action" binding:"required,oneof=EMAIL SMS STATUS_CHANGE"`
	TemplateID  *string `json:"templateID"`
	NewStatus   *string `json:"newStatus"`
	IsActive    *bool   `json:"isActive"` // Defaults to true when omitted
}

// UpdateRuleRequest defines the data allowed for updating a rule.
type UpdateRuleRequest struct {
	Name        *string `json:"name"`
	TriggerDays *int    `json:"triggerDays" binding:"omitempty,min=1"`
	TemplateID  *string `json:"templateID"`
	NewStatus   *string `json:"newStatus"`
	IsActive    *bool   `json:"isActive"`
}

// RuleResponse defines the data returned for a reminder rule.
type RuleResponse struct {
	RuleID        string    `json:"ruleID"`
	Name          string    `json:"name"`
	TriggerDays   int       `json:"triggerDays"`
	Action        string    `json:"action"`
	TemplateID    *string   `json:"templateID,omitempty"`
	NewStatus     *string   `json:"newStatus,omitempty"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToRuleResponse converts a domain.RelanceRule to RuleResponse DTO
func ToRuleResponse(r *domain.RelanceRule) RuleResponse {
	var newStatus *string
	if r.NewStatus != nil {
		s := string(*r.NewStatus)
		newStatus = &s
	}
	return RuleResponse{
		RuleID:        r.RuleID,
		Name:          r.Name,
		TriggerDays:   r.TriggerDays,
		Action:        string(r.Action),
		TemplateID:    r.TemplateID,
		NewStatus:     newStatus,
		IsActive:      r.IsActive,
		CreatedAt:     r.CreatedAt,
		CreatedBy:     r.CreatedBy,
		LastUpdatedAt: r.LastUpdatedAt,
		LastUpdatedBy: r.LastUpdatedBy,
	}
}

// ToListRuleResponse converts a slice of domain.RelanceRule to DTOs
func ToListRuleResponse(rules []domain.RelanceRule) []RuleResponse {
	res := make([]RuleResponse, len(rules))
	for i, r := range rules {
		res[i] = ToRuleResponse(&r)
	}
	return res
}

// RelanceRunResponse summarizes one reminder engine run.
type RelanceRunResponse struct {
	Processed      int                      `json:"processed"`
	RulesEvaluated int                      `json:"rulesEvaluated"`
	EmailsSent     int                      `json:"emailsSent"`
	SMSSent        int                      `json:"smsSent"`
	StatusChanges  int                      `json:"statusChanges"`
	Skipped        int                      `json:"skipped"`
	Errors         []domain.RelanceRunError `json:"errors,omitempty"`
}

// ToRelanceRunResponse converts a domain.RelanceRunResult to its DTO
func ToRelanceRunResponse(r *domain.RelanceRunResult) RelanceRunResponse {
	return RelanceRunResponse{
		Processed:      r.Processed,
		RulesEvaluated: r.RulesEvaluated,
		EmailsSent:     r.EmailsSent,
		SMSSent:        r.SMSSent,
		StatusChanges:  r.StatusChanges,
		Skipped:        r.Skipped,
		Errors:         r.Errors,
	}
}
