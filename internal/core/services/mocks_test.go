package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pverdier/creance_manager_app/internal/core/domain"
	"github.com/pverdier/creance_manager_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockClientRepository is a mock type for the ClientRepositoryFacade interface
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateClientStatus(ctx context.Context, clientID string, status domain.ClientStatus, userID string, now time.Time) error {
	args := m.Called(ctx, clientID, status, userID, now)
	return args.Error(0)
}

func (m *MockClientRepository) FindClientByIDForUpdate(ctx context.Context, tx pgx.Tx, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, tx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ApplyBalanceDeltaInTx(ctx context.Context, tx pgx.Tx, clientID string, delta decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tx, clientID, delta, userID, now)
	return args.Error(0)
}

// MockInvoiceRepository is a mock type for the InvoiceRepositoryFacade interface
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoicesByClient(ctx context.Context, clientID string, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	args := m.Called(ctx, clientID, limit, nextToken)
	var invoices []domain.Invoice
	if args.Get(0) != nil {
		invoices = args.Get(0).([]domain.Invoice)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return invoices, next, args.Error(2)
}

func (m *MockInvoiceRepository) ListOverdueInvoices(ctx context.Context, now time.Time) ([]domain.Invoice, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice, balanceDelta decimal.Decimal) error {
	args := m.Called(ctx, invoice, balanceDelta)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoiceAmounts(ctx context.Context, invoice domain.Invoice, balanceDelta decimal.Decimal) error {
	args := m.Called(ctx, invoice, balanceDelta)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, invoice domain.Invoice, balanceDelta decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, invoice, balanceDelta, userID, now)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoiceAmountsInTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error {
	args := m.Called(ctx, tx, invoice)
	return args.Error(0)
}

// MockPaymentRepository is a mock type for the PaymentRepositoryFacade interface
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByClient(ctx context.Context, clientID string, limit int, offset int) ([]domain.Payment, error) {
	args := m.Called(ctx, clientID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment, invoiceUpdate *domain.Invoice, balanceDelta decimal.Decimal) error {
	args := m.Called(ctx, payment, invoiceUpdate, balanceDelta)
	return args.Error(0)
}

func (m *MockPaymentRepository) UpdatePaymentAmount(ctx context.Context, payment domain.Payment, invoiceUpdate *domain.Invoice, balanceDelta decimal.Decimal) error {
	args := m.Called(ctx, payment, invoiceUpdate, balanceDelta)
	return args.Error(0)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, payment domain.Payment, invoiceUpdate *domain.Invoice, balanceDelta decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, payment, invoiceUpdate, balanceDelta, userID, now)
	return args.Error(0)
}

// MockRelanceTemplateRepository is a mock type for the RelanceTemplateRepositoryFacade interface
type MockRelanceTemplateRepository struct {
	mock.Mock
}

func (m *MockRelanceTemplateRepository) FindTemplateByID(ctx context.Context, templateID string) (*domain.RelanceTemplate, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RelanceTemplate), args.Error(1)
}

func (m *MockRelanceTemplateRepository) ListTemplates(ctx context.Context) ([]domain.RelanceTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RelanceTemplate), args.Error(1)
}

func (m *MockRelanceTemplateRepository) CountRulesReferencingTemplate(ctx context.Context, templateID string) (int, error) {
	args := m.Called(ctx, templateID)
	return args.Int(0), args.Error(1)
}

func (m *MockRelanceTemplateRepository) SaveTemplate(ctx context.Context, template domain.RelanceTemplate) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func (m *MockRelanceTemplateRepository) UpdateTemplate(ctx context.Context, template domain.RelanceTemplate) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func (m *MockRelanceTemplateRepository) DeleteTemplate(ctx context.Context, templateID string) error {
	args := m.Called(ctx, templateID)
	return args.Error(0)
}

// MockRelanceRuleRepository is a mock type for the RelanceRuleRepositoryFacade interface
type MockRelanceRuleRepository struct {
	mock.Mock
}

func (m *MockRelanceRuleRepository) FindRuleByID(ctx context.Context, ruleID string) (*domain.RelanceRule, error) {
	args := m.Called(ctx, ruleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RelanceRule), args.Error(1)
}

func (m *MockRelanceRuleRepository) ListRules(ctx context.Context) ([]domain.RelanceRule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RelanceRule), args.Error(1)
}

func (m *MockRelanceRuleRepository) ListActiveRules(ctx context.Context) ([]domain.RelanceRule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RelanceRule), args.Error(1)
}

func (m *MockRelanceRuleRepository) SaveRule(ctx context.Context, rule domain.RelanceRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockRelanceRuleRepository) UpdateRule(ctx context.Context, rule domain.RelanceRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockRelanceRuleRepository) DeleteRule(ctx context.Context, ruleID string) error {
	args := m.Called(ctx, ruleID)
	return args.Error(0)
}

// MockCommunicationRepository is a mock type for the CommunicationRepositoryFacade interface
type MockCommunicationRepository struct {
	mock.Mock
}

func (m *MockCommunicationRepository) FindCommunicationByID(ctx context.Context, communicationID string) (*domain.Communication, error) {
	args := m.Called(ctx, communicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Communication), args.Error(1)
}

func (m *MockCommunicationRepository) ListCommunicationsByClient(ctx context.Context, clientID string, limit int, offset int) ([]domain.Communication, error) {
	args := m.Called(ctx, clientID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Communication), args.Error(1)
}

func (m *MockCommunicationRepository) ExistsForRuleAndInvoice(ctx context.Context, ruleID string, invoiceID string) (bool, error) {
	args := m.Called(ctx, ruleID, invoiceID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommunicationRepository) SaveCommunication(ctx context.Context, communication domain.Communication) error {
	args := m.Called(ctx, communication)
	return args.Error(0)
}

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockReportingRepository is a mock type for the ReportingRepositoryFacade interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetOutstandingSummary(ctx context.Context, now time.Time) ([]domain.ClientOutstanding, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClientOutstanding), args.Error(1)
}

func (m *MockReportingRepository) GetDSO(ctx context.Context, from time.Time, to time.Time) (*domain.DSOReport, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DSOReport), args.Error(1)
}

// MockPaymentService is a mock type for the PaymentSvcFacade interface
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) ListPaymentsByClient(ctx context.Context, clientID string, limit int, offset int) ([]domain.Payment, error) {
	args := m.Called(ctx, clientID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, userID string) (*domain.Payment, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) UpdatePaymentAmount(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest, userID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) DeletePayment(ctx context.Context, paymentID string, userID string) error {
	args := m.Called(ctx, paymentID, userID)
	return args.Error(0)
}
