package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pverdier/creance_manager_app/internal/apperrors"
	"github.com/pverdier/creance_manager_app/internal/core/domain"
	portsrepo "github.com/pverdier/creance_manager_app/internal/core/ports/repositories"
	portssvc "github.com/pverdier/creance_manager_app/internal/core/ports/services"
	"github.com/pverdier/creance_manager_app/internal/dto"
	"github.com/pverdier/creance_manager_app/internal/middleware"
	"github.com/pverdier/creance_manager_app/internal/utils/templating"
)

type relanceService struct {
	templateRepo      portsrepo.RelanceTemplateRepositoryFacade
	ruleRepo          portsrepo.RelanceRuleRepositoryFacade
	invoiceRepo       portsrepo.InvoiceReader
	clientRepo        portsrepo.ClientRepositoryFacade
	communicationRepo portsrepo.CommunicationRepositoryFacade
}

// NewRelanceService creates the reminder engine service.
func NewRelanceService(
	templateRepo portsrepo.RelanceTemplateRepositoryFacade,
	ruleRepo portsrepo.RelanceRuleRepositoryFacade,
	invoiceRepo portsrepo.InvoiceReader,
	clientRepo portsrepo.ClientRepositoryFacade,
	communicationRepo portsrepo.CommunicationRepositoryFacade,
) portssvc.RelanceSvcFacade {
	return &relanceService{
		templateRepo:      templateRepo,
		ruleRepo:          ruleRepo,
		invoiceRepo:       invoiceRepo,
		clientRepo:        clientRepo,
		communicationRepo: communicationRepo,
	}
}

var _ portssvc.RelanceSvcFacade = (*relanceService)(nil)

// --- Templates ---

func (s *relanceService) CreateTemplate(ctx context.Context, req dto.CreateTemplateRequest, userID string) (*domain.RelanceTemplate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	template := domain.RelanceTemplate{
		TemplateID: uuid.NewString(),
		Name:       req.Name,
		Type:       domain.TemplateType(req.Type),
		Subject:    req.Subject,
		Content:    req.Content,
		Variables:  req.Variables,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.templateRepo.SaveTemplate(ctx, template); err != nil {
		logger.Error("Failed to save template in repository", slog.String("error", err.Error()), slog.String("template_id", template.TemplateID))
		return nil, err
	}

	logger.Info("Reminder template created", slog.String("template_id", template.TemplateID), slog.String("type", req.Type))
	return &template, nil
}

func (s *relanceService) GetTemplateByID(ctx context.Context, templateID string) (*domain.RelanceTemplate, error) {
	return s.templateRepo.FindTemplateByID(ctx, templateID)
}

func (s *relanceService) ListTemplates(ctx context.Context) ([]domain.RelanceTemplate, error) {
	templates, err := s.templateRepo.ListTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	if templates == nil {
		return []domain.RelanceTemplate{}, nil
	}
	return templates, nil
}

func (s *relanceService) UpdateTemplate(ctx context.Context, templateID string, req dto.UpdateTemplateRequest, userID string) (*domain.RelanceTemplate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	template, err := s.templateRepo.FindTemplateByID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: template name cannot be empty", apperrors.ErrValidation)
		}
		template.Name = *req.Name
	}
	if req.Subject != nil {
		template.Subject = *req.Subject
	}
	if req.Content != nil {
		if *req.Content == "" {
			return nil, fmt.Errorf("%w: template content cannot be empty", apperrors.ErrValidation)
		}
		template.Content = *req.Content
	}
	if req.Variables != nil {
		template.Variables = *req.Variables
	}
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}
	template.LastUpdatedAt = time.Now()
	template.LastUpdatedBy = userID

	if err := s.templateRepo.UpdateTemplate(ctx, *template); err != nil {
		logger.Error("Failed to update template in repository", slog.String("error", err.Error()), slog.String("template_id", templateID))
		return nil, err
	}

	return template, nil
}

// DeleteTemplate removes a template unless a rule still references it.
func (s *relanceService) DeleteTemplate(ctx context.Context, templateID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	count, err := s.templateRepo.CountRulesReferencingTemplate(ctx, templateID)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: template %s is referenced by %d rule(s)", apperrors.ErrValidation, templateID, count)
	}

	if err := s.templateRepo.DeleteTemplate(ctx, templateID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete template in repository", slog.String("error", err.Error()), slog.String("template_id", templateID))
		}
		return err
	}

	logger.Info("Reminder template deleted", slog.String("template_id", templateID))
	return nil
}

// --- Rules ---

// validateRuleTarget checks the action-specific reference of a rule: EMAIL
// and SMS need a template of the matching channel, STATUS_CHANGE needs the
// new status.
func (s *relanceService) validateRuleTarget(ctx context.Context, action domain.RelanceAction, templateID *string, newStatus *domain.ClientStatus) error {
	switch action {
	case domain.ActionEmail, domain.ActionSMS:
		if templateID == nil || *templateID == "" {
			return fmt.Errorf("%w: %s rules require a template", apperrors.ErrValidation, action)
		}
		template, err := s.templateRepo.FindTemplateByID(ctx, *templateID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: template %s", apperrors.ErrNotFound, *templateID)
			}
			return err
		}
		if string(template.Type) != string(action) {
			return fmt.Errorf("%w: template %s is a %s template, rule action is %s", apperrors.ErrValidation, *templateID, template.Type, action)
		}
	case domain.ActionStatusChange:
		if newStatus == nil || *newStatus == "" {
			return fmt.Errorf("%w: STATUS_CHANGE rules require a new status", apperrors.ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown rule action %s", apperrors.ErrValidation, action)
	}
	return nil
}

func (s *relanceService) CreateRule(ctx context.Context, req dto.CreateRuleRequest, userID string) (*domain.RelanceRule, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.TriggerDays < 1 {
		return nil, fmt.Errorf("%w: trigger days must be at least 1", apperrors.ErrValidation)
	}

	action := domain.RelanceAction(req.Action)
	var newStatus *domain.ClientStatus
	if req.NewStatus != nil {
		st := domain.ClientStatus(*req.NewStatus)
		newStatus = &st
	}
	if err := s.validateRuleTarget(ctx, action, req.TemplateID, newStatus); err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	rule := domain.RelanceRule{
		RuleID:      uuid.NewString(),
		Name:        req.Name,
		TriggerDays: req.TriggerDays,
		Action:      action,
		TemplateID:  req.TemplateID,
		NewStatus:   newStatus,
		IsActive:    isActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.ruleRepo.SaveRule(ctx, rule); err != nil {
		logger.Error("Failed to save rule in repository", slog.String("error", err.Error()), slog.String("rule_id", rule.RuleID))
		return nil, err
	}

	logger.Info("Reminder rule created", slog.String("rule_id", rule.RuleID), slog.Int("trigger_days", rule.TriggerDays), slog.String("action", req.Action))
	return &rule, nil
}

func (s *relanceService) GetRuleByID(ctx context.Context, ruleID string) (*domain.RelanceRule, error) {
	return s.ruleRepo.FindRuleByID(ctx, ruleID)
}

func (s *relanceService) ListRules(ctx context.Context) ([]domain.RelanceRule, error) {
	rules, err := s.ruleRepo.ListRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}
	if rules == nil {
		return []domain.RelanceRule{}, nil
	}
	return rules, nil
}

func (s *relanceService) UpdateRule(ctx context.Context, ruleID string, req dto.UpdateRuleRequest, userID string) (*domain.RelanceRule, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rule, err := s.ruleRepo.FindRuleByID(ctx, ruleID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: rule name cannot be empty", apperrors.ErrValidation)
		}
		rule.Name = *req.Name
	}
	if req.TriggerDays != nil {
		if *req.TriggerDays < 1 {
			return nil, fmt.Errorf("%w: trigger days must be at least 1", apperrors.ErrValidation)
		}
		rule.TriggerDays = *req.TriggerDays
	}
	if req.TemplateID != nil {
		rule.TemplateID = req.TemplateID
	}
	if req.NewStatus != nil {
		st := domain.ClientStatus(*req.NewStatus)
		rule.NewStatus = &st
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}

	if err := s.validateRuleTarget(ctx, rule.Action, rule.TemplateID, rule.NewStatus); err != nil {
		return nil, err
	}

	rule.LastUpdatedAt = time.Now()
	rule.LastUpdatedBy = userID

	if err := s.ruleRepo.UpdateRule(ctx, *rule); err != nil {
		logger.Error("Failed to update rule in repository", slog.String("error", err.Error()), slog.String("rule_id", ruleID))
		return nil, err
	}

	return rule, nil
}

func (s *relanceService) DeleteRule(ctx context.Context, ruleID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.ruleRepo.DeleteRule(ctx, ruleID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete rule in repository", slog.String("error", err.Error()), slog.String("rule_id", ruleID))
		}
		return err
	}

	logger.Info("Reminder rule deleted", slog.String("rule_id", ruleID))
	return nil
}

// --- Engine ---

// ProcessReminders scans every overdue invoice and fires each active rule
// whose trigger matches the invoice's days overdue exactly. A rule fires at
// most once per invoice: pairs already recorded in a communication's metadata
// are skipped, so re-running the same day cannot double-send. Failures are
// collected per invoice/rule and never abort the scan.
func (s *relanceService) ProcessReminders(ctx context.Context, now time.Time) (*domain.RelanceRunResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rules, err := s.ruleRepo.ListActiveRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active rules: %w", err)
	}

	invoices, err := s.invoiceRepo.ListOverdueInvoices(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load overdue invoices: %w", err)
	}

	result := &domain.RelanceRunResult{Processed: len(invoices)}

	templates := make(map[string]*domain.RelanceTemplate)
	clients := make(map[string]*domain.Client)

	for _, invoice := range invoices {
		// Communications already created stand; the next run picks up the rest.
		if err := ctx.Err(); err != nil {
			return result, err
		}

		daysOverdue := domain.DaysOverdue(invoice.DueDate, now)

		for _, rule := range rules {
			if rule.TriggerDays != daysOverdue {
				continue
			}
			result.RulesEvaluated++

			if err := s.fireRule(ctx, rule, invoice, daysOverdue, now, templates, clients, result); err != nil {
				logger.Warn("Reminder rule failed for invoice",
					slog.String("rule_id", rule.RuleID),
					slog.String("invoice_id", invoice.InvoiceID),
					slog.String("error", err.Error()),
				)
				result.Errors = append(result.Errors, domain.RelanceRunError{
					InvoiceID: invoice.InvoiceID,
					RuleID:    rule.RuleID,
					Error:     err.Error(),
				})
			}
		}
	}

	logger.Info("Reminder run completed",
		slog.Int("processed", result.Processed),
		slog.Int("emails_sent", result.EmailsSent),
		slog.Int("sms_sent", result.SMSSent),
		slog.Int("status_changes", result.StatusChanges),
		slog.Int("skipped", result.Skipped),
		slog.Int("errors", len(result.Errors)),
	)
	return result, nil
}

// fireRule applies one matching rule to one invoice, updating the run counters.
func (s *relanceService) fireRule(
	ctx context.Context,
	rule domain.RelanceRule,
	invoice domain.Invoice,
	daysOverdue int,
	now time.Time,
	templates map[string]*domain.RelanceTemplate,
	clients map[string]*domain.Client,
	result *domain.RelanceRunResult,
) error {
	client, ok := clients[invoice.ClientID]
	if !ok {
		var err error
		client, err = s.clientRepo.FindClientByID(ctx, invoice.ClientID)
		if err != nil {
			return fmt.Errorf("client %s: %w", invoice.ClientID, err)
		}
		clients[invoice.ClientID] = client
	}

	switch rule.Action {
	case domain.ActionEmail, domain.ActionSMS:
		exists, err := s.communicationRepo.ExistsForRuleAndInvoice(ctx, rule.RuleID, invoice.InvoiceID)
		if err != nil {
			return err
		}
		if exists {
			result.Skipped++
			return nil
		}

		template, ok := templates[*rule.TemplateID]
		if !ok {
			template, err = s.templateRepo.FindTemplateByID(ctx, *rule.TemplateID)
			if err != nil {
				return fmt.Errorf("template %s: %w", *rule.TemplateID, err)
			}
			templates[*rule.TemplateID] = template
		}
		if !template.IsActive {
			return fmt.Errorf("%w: template %s is inactive", apperrors.ErrConflict, template.TemplateID)
		}

		vars := map[string]string{
			"client_name":    client.Name,
			"invoice_number": invoice.Number,
			"amount":         invoice.Remaining.StringFixed(2),
			"days_overdue":   fmt.Sprintf("%d", daysOverdue),
		}
		// SMS templates are too short to carry the date
		if rule.Action == domain.ActionEmail {
			vars["due_date"] = invoice.DueDate.Format("02/01/2006")
		}

		sentAt := now
		communication := domain.Communication{
			CommunicationID: uuid.NewString(),
			ClientID:        client.ClientID,
			Type:            domain.CommunicationType(rule.Action),
			Subject:         templating.Render(template.Subject, vars),
			Content:         templating.Render(template.Content, vars),
			Status:          domain.CommunicationSent,
			SentAt:          &sentAt,
			Metadata: map[string]string{
				domain.MetadataRuleID:     rule.RuleID,
				domain.MetadataInvoiceID:  invoice.InvoiceID,
				domain.MetadataTemplateID: template.TemplateID,
			},
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     domain.SystemUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: domain.SystemUserID,
			},
		}

		if err := s.communicationRepo.SaveCommunication(ctx, communication); err != nil {
			return err
		}

		if rule.Action == domain.ActionEmail {
			result.EmailsSent++
		} else {
			result.SMSSent++
		}
		return nil

	case domain.ActionStatusChange:
		// Setting the same status twice is harmless, so there is no dedup
		// guard here: exact day matching already limits the rule to one day
		// per invoice.
		if client.Status == *rule.NewStatus {
			result.Skipped++
			return nil
		}
		if err := s.clientRepo.UpdateClientStatus(ctx, client.ClientID, *rule.NewStatus, domain.SystemUserID, now); err != nil {
			return err
		}
		client.Status = *rule.NewStatus
		result.StatusChanges++
		return nil

	default:
		return fmt.Errorf("%w: unknown rule action %s", apperrors.ErrValidation, rule.Action)
	}
}
