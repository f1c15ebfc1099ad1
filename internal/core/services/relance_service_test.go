package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pverdier/creance_manager_app/internal/apperrors"
	"github.com/pverdier/creance_manager_app/internal/core/domain"
	portssvc "github.com/pverdier/creance_manager_app/internal/core/ports/services"
	"github.com/pverdier/creance_manager_app/internal/core/services"
	"github.com/pverdier/creance_manager_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RelanceServiceTestSuite struct {
	suite.Suite
	mockTemplateRepo      *MockRelanceTemplateRepository
	mockRuleRepo          *MockRelanceRuleRepository
	mockInvoiceRepo       *MockInvoiceRepository
	mockClientRepo        *MockClientRepository
	mockCommunicationRepo *MockCommunicationRepository
	service               portssvc.RelanceSvcFacade
}

func (suite *RelanceServiceTestSuite) SetupTest() {
	suite.mockTemplateRepo = new(MockRelanceTemplateRepository)
	suite.mockRuleRepo = new(MockRelanceRuleRepository)
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockCommunicationRepo = new(MockCommunicationRepository)
	suite.service = services.NewRelanceService(
		suite.mockTemplateRepo,
		suite.mockRuleRepo,
		suite.mockInvoiceRepo,
		suite.mockClientRepo,
		suite.mockCommunicationRepo,
	)
}

// overdueInvoice builds an invoice whose due date sits exactly daysOverdue
// calendar days before now.
func overdueInvoice(clientID string, daysOverdue int, now time.Time) domain.Invoice {
	return domain.Invoice{
		InvoiceID:      uuid.NewString(),
		ClientID:       clientID,
		Number:         "INV-2025-042",
		OriginalAmount: decimal.NewFromInt(200),
		PaidAmount:     decimal.NewFromInt(50),
		Remaining:      decimal.NewFromInt(150),
		Status:         domain.InvoicePartial,
		DueDate:        now.AddDate(0, 0, -daysOverdue),
	}
}

func (suite *RelanceServiceTestSuite) TestProcessReminders_EmailRuleFiresOnExactDay() {
	ctx := context.Background()
	now := time.Date(2025, 3, 17, 9, 0, 0, 0, time.UTC)
	clientID := uuid.NewString()
	templateID := uuid.NewString()
	invoice := overdueInvoice(clientID, 7, now)
	rule := domain.RelanceRule{
		RuleID:      uuid.NewString(),
		Name:        "First reminder",
		TriggerDays: 7,
		Action:      domain.ActionEmail,
		TemplateID:  &templateID,
		IsActive:    true,
	}
	template := &domain.RelanceTemplate{
		TemplateID: templateID,
		Type:       domain.TemplateEmail,
		Subject:    "Reminder for {{invoice_number}}",
		Content:    "Dear {{client_name}}, invoice {{invoice_number}} for {{amount}} was due {{due_date}} and is {{days_overdue}} days overdue.",
		IsActive:   true,
	}

	suite.mockRuleRepo.On("ListActiveRules", ctx).Return([]domain.RelanceRule{rule}, nil).Once()
	suite.mockInvoiceRepo.On("ListOverdueInvoices", ctx, now).Return([]domain.Invoice{invoice}, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(&domain.Client{ClientID: clientID, Name: "Acme SARL"}, nil).Once()
	suite.mockCommunicationRepo.On("ExistsForRuleAndInvoice", ctx, rule.RuleID, invoice.InvoiceID).Return(false, nil).Once()
	suite.mockTemplateRepo.On("FindTemplateByID", ctx, templateID).Return(template, nil).Once()
	suite.mockCommunicationRepo.On("SaveCommunication", ctx, mock.MatchedBy(func(c domain.Communication) bool {
		return c.ClientID == clientID &&
			c.Type == domain.CommunicationEmail &&
			c.Subject == "Reminder for INV-2025-042" &&
			c.Content == "Dear Acme SARL, invoice INV-2025-042 for 150.00 was due 10/03/2025 and is 7 days overdue." &&
			c.CreatedBy == domain.SystemUserID &&
			c.Metadata[domain.MetadataRuleID] == rule.RuleID &&
			c.Metadata[domain.MetadataInvoiceID] == invoice.InvoiceID &&
			c.Metadata[domain.MetadataTemplateID] == templateID
	})).Return(nil).Once()

	result, err := suite.service.ProcessReminders(ctx, now)

	suite.Require().NoError(err)
	suite.Equal(1, result.Processed)
	suite.Equal(1, result.RulesEvaluated)
	suite.Equal(1, result.EmailsSent)
	suite.Equal(0, result.Skipped)
	suite.Empty(result.Errors)
	suite.mockCommunicationRepo.AssertExpectations(suite.T())
}

func (suite *RelanceServiceTestSuite) TestProcessReminders_NonMatchingDayDoesNotFire() {
	ctx := context.Background()
	now := time.Date(2025, 3, 17, 9, 0, 0, 0, time.UTC)
	templateID := uuid.NewString()
	invoice := overdueInvoice(uuid.NewString(), 5, now)
	rule := domain.RelanceRule{
		RuleID:      uuid.NewString(),
		TriggerDays: 7,
		Action:      domain.ActionEmail,
		TemplateID:  &templateID,
		IsActive:    true,
	}

	suite.mockRuleRepo.On("ListActiveRules", ctx).Return([]domain.RelanceRule{rule}, nil).Once()
	suite.mockInvoiceRepo.On("ListOverdueInvoices", ctx, now).Return([]domain.Invoice{invoice}, nil).Once()

	result, err := suite.service.ProcessReminders(ctx, now)

	suite.Require().NoError(err)
	suite.Equal(1, result.Processed)
	suite.Equal(0, result.RulesEvaluated)
	suite.Equal(0, result.EmailsSent)
	suite.mockCommunicationRepo.AssertNotCalled(suite.T(), "SaveCommunication")
}

func (suite *RelanceServiceTestSuite) TestProcessReminders_AlreadySentIsSkipped() {
	ctx := context.Background()
	now := time.Date(2025, 3, 17, 9, 0, 0, 0, time.UTC)
	clientID := uuid.NewString()
	templateID := uuid.NewString()
	invoice := overdueInvoice(clientID, 7, now)
	rule := domain.RelanceRule{
		RuleID:      uuid.NewString(),
		TriggerDays: 7,
		Action:      domain.ActionEmail,
		TemplateID:  &templateID,
		IsActive:    true,
	}

	suite.mockRuleRepo.On("ListActiveRules", ctx).Return([]domain.RelanceRule{rule}, nil).Once()
	suite.mockInvoiceRepo.On("ListOverdueInvoices", ctx, now).Return([]domain.Invoice{invoice}, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(&domain.Client{ClientID: clientID}, nil).Once()
	suite.mockCommunicationRepo.On("ExistsForRuleAndInvoice", ctx, rule.RuleID, invoice.InvoiceID).Return(true, nil).Once()

	result, err := suite.service.ProcessReminders(ctx, now)

	suite.Require().NoError(err)
	suite.Equal(1, result.Skipped)
	suite.Equal(0, result.EmailsSent)
	suite.mockCommunicationRepo.AssertNotCalled(suite.T(), "SaveCommunication")
}

func (suite *RelanceServiceTestSuite) TestProcessReminders_StatusChangeRule() {
	ctx := context.Background()
	now := time.Date(2025, 3, 17, 9, 0, 0, 0, time.UTC)
	clientID := uuid.NewString()
	invoice := overdueInvoice(clientID, 30, now)
	newStatus := domain.ClientCritical
	rule := domain.RelanceRule{
		RuleID:      uuid.NewString(),
		TriggerDays: 30,
		Action:      domain.ActionStatusChange,
		NewStatus:   &newStatus,
		IsActive:    true,
	}

	suite.mockRuleRepo.On("ListActiveRules", ctx).Return([]domain.RelanceRule{rule}, nil).Once()
	suite.mockInvoiceRepo.On("ListOverdueInvoices", ctx, now).Return([]domain.Invoice{invoice}, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(&domain.Client{ClientID: clientID, Status: domain.ClientWatch}, nil).Once()
	suite.mockClientRepo.On("UpdateClientStatus", ctx, clientID, domain.ClientCritical, domain.SystemUserID, now).Return(nil).Once()

	result, err := suite.service.ProcessReminders(ctx, now)

	suite.Require().NoError(err)
	suite.Equal(1, result.StatusChanges)
	suite.Equal(0, result.Skipped)
	suite.mockClientRepo.AssertExpectations(suite.T())
}

func (suite *RelanceServiceTestSuite) TestProcessReminders_StatusAlreadySetIsSkipped() {
	ctx := context.Background()
	now := time.Date(2025, 3, 17, 9, 0, 0, 0, time.UTC)
	clientID := uuid.NewString()
	invoice := overdueInvoice(clientID, 30, now)
	newStatus := domain.ClientCritical
	rule := domain.RelanceRule{
		RuleID:      uuid.NewString(),
		TriggerDays: 30,
		Action:      domain.ActionStatusChange,
		NewStatus:   &newStatus,
		IsActive:    true,
	}

	suite.mockRuleRepo.On("ListActiveRules", ctx).Return([]domain.RelanceRule{rule}, nil).Once()
	suite.mockInvoiceRepo.On("ListOverdueInvoices", ctx, now).Return([]domain.Invoice{invoice}, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(&domain.Client{ClientID: clientID, Status: domain.ClientCritical}, nil).Once()

	result, err := suite.service.ProcessReminders(ctx, now)

	suite.Require().NoError(err)
	suite.Equal(0, result.StatusChanges)
	suite.Equal(1, result.Skipped)
	suite.mockClientRepo.AssertNotCalled(suite.T(), "UpdateClientStatus")
}

func (suite *RelanceServiceTestSuite) TestProcessReminders_FailureIsIsolatedPerInvoice() {
	ctx := context.Background()
	now := time.Date(2025, 3, 17, 9, 0, 0, 0, time.UTC)
	brokenClientID := uuid.NewString()
	goodClientID := uuid.NewString()
	templateID := uuid.NewString()
	brokenInvoice := overdueInvoice(brokenClientID, 7, now)
	goodInvoice := overdueInvoice(goodClientID, 7, now)
	rule := domain.RelanceRule{
		RuleID:      uuid.NewString(),
		TriggerDays: 7,
		Action:      domain.ActionEmail,
		TemplateID:  &templateID,
		IsActive:    true,
	}
	template := &domain.RelanceTemplate{
		TemplateID: templateID,
		Type:       domain.TemplateEmail,
		Subject:    "Reminder",
		Content:    "Please pay.",
		IsActive:   true,
	}

	suite.mockRuleRepo.On("ListActiveRules", ctx).Return([]domain.RelanceRule{rule}, nil).Once()
	suite.mockInvoiceRepo.On("ListOverdueInvoices", ctx, now).Return([]domain.Invoice{brokenInvoice, goodInvoice}, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, brokenClientID).Return(nil, errors.New("connection reset")).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, goodClientID).Return(&domain.Client{ClientID: goodClientID, Name: "Bon Payeur"}, nil).Once()
	suite.mockCommunicationRepo.On("ExistsForRuleAndInvoice", ctx, rule.RuleID, goodInvoice.InvoiceID).Return(false, nil).Once()
	suite.mockTemplateRepo.On("FindTemplateByID", ctx, templateID).Return(template, nil).Once()
	suite.mockCommunicationRepo.On("SaveCommunication", ctx, mock.AnythingOfType("domain.Communication")).Return(nil).Once()

	result, err := suite.service.ProcessReminders(ctx, now)

	suite.Require().NoError(err)
	suite.Equal(2, result.Processed)
	suite.Equal(1, result.EmailsSent)
	suite.Require().Len(result.Errors, 1)
	suite.Equal(brokenInvoice.InvoiceID, result.Errors[0].InvoiceID)
	suite.Equal(rule.RuleID, result.Errors[0].RuleID)
	suite.mockCommunicationRepo.AssertExpectations(suite.T())
}

func (suite *RelanceServiceTestSuite) TestCreateRule_EmailWithoutTemplate() {
	ctx := context.Background()
	req := dto.CreateRuleRequest{
		Name:        "No template",
		TriggerDays: 7,
		Action:      "EMAIL",
	}

	_, err := suite.service.CreateRule(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRuleRepo.AssertNotCalled(suite.T(), "SaveRule")
}

func (suite *RelanceServiceTestSuite) TestCreateRule_TemplateChannelMismatch() {
	ctx := context.Background()
	templateID := uuid.NewString()
	req := dto.CreateRuleRequest{
		Name:        "Mismatch",
		TriggerDays: 7,
		Action:      "EMAIL",
		TemplateID:  &templateID,
	}

	suite.mockTemplateRepo.On("FindTemplateByID", ctx, templateID).Return(&domain.RelanceTemplate{
		TemplateID: templateID,
		Type:       domain.TemplateSMS,
	}, nil).Once()

	_, err := suite.service.CreateRule(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRuleRepo.AssertNotCalled(suite.T(), "SaveRule")
}

func (suite *RelanceServiceTestSuite) TestCreateRule_MissingTemplateNotFound() {
	ctx := context.Background()
	templateID := uuid.NewString()
	req := dto.CreateRuleRequest{
		Name:        "Dangling",
		TriggerDays: 7,
		Action:      "EMAIL",
		TemplateID:  &templateID,
	}

	suite.mockTemplateRepo.On("FindTemplateByID", ctx, templateID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateRule(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *RelanceServiceTestSuite) TestCreateRule_StatusChangeWithoutNewStatus() {
	ctx := context.Background()
	req := dto.CreateRuleRequest{
		Name:        "No status",
		TriggerDays: 30,
		Action:      "STATUS_CHANGE",
	}

	_, err := suite.service.CreateRule(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRuleRepo.AssertNotCalled(suite.T(), "SaveRule")
}

func (suite *RelanceServiceTestSuite) TestDeleteTemplate_RefusedWhenReferenced() {
	ctx := context.Background()
	templateID := uuid.NewString()

	suite.mockTemplateRepo.On("CountRulesReferencingTemplate", ctx, templateID).Return(2, nil).Once()

	err := suite.service.DeleteTemplate(ctx, templateID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTemplateRepo.AssertNotCalled(suite.T(), "DeleteTemplate")
}

func (suite *RelanceServiceTestSuite) TestDeleteTemplate_Success() {
	ctx := context.Background()
	templateID := uuid.NewString()

	suite.mockTemplateRepo.On("CountRulesReferencingTemplate", ctx, templateID).Return(0, nil).Once()
	suite.mockTemplateRepo.On("DeleteTemplate", ctx, templateID).Return(nil).Once()

	err := suite.service.DeleteTemplate(ctx, templateID, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockTemplateRepo.AssertExpectations(suite.T())
}

func TestRelanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RelanceServiceTestSuite))
}
