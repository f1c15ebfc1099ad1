package services_test

import (
	"context"
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

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo *MockInvoiceRepository
	mockClientRepo  *MockClientRepository
	mockPaymentSvc  *MockPaymentService
	service         portssvc.InvoiceSvcFacade
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockPaymentSvc = new(MockPaymentService)
	suite.service = services.NewInvoiceService(suite.mockInvoiceRepo, suite.mockClientRepo, suite.mockPaymentSvc)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	clientID := uuid.NewString()
	req := dto.CreateInvoiceRequest{
		ClientID:       clientID,
		Number:         "INV-2025-001",
		OriginalAmount: decimal.NewFromInt(150),
		IssueDate:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:        time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(&domain.Client{ClientID: clientID}, nil).Once()
	// The client balance rises by the full invoice amount on creation
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice"), req.OriginalAmount).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.NotEmpty(invoice.InvoiceID)
	suite.Equal(domain.InvoicePending, invoice.Status)
	suite.True(invoice.PaidAmount.IsZero())
	suite.True(invoice.Remaining.Equal(req.OriginalAmount))
	suite.Equal(userID, invoice.CreatedBy)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockClientRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		ClientID:       uuid.NewString(),
		Number:         "INV-2025-002",
		OriginalAmount: decimal.Zero,
		IssueDate:      time.Now(),
		DueDate:        time.Now().AddDate(0, 1, 0),
	}

	invoice, err := suite.service.CreateInvoice(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(invoice)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice")
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_DueDateBeforeIssueDate() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		ClientID:       uuid.NewString(),
		Number:         "INV-2025-003",
		OriginalAmount: decimal.NewFromInt(50),
		IssueDate:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		DueDate:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	_, err := suite.service.CreateInvoice(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ClientNotFound() {
	ctx := context.Background()
	clientID := uuid.NewString()
	req := dto.CreateInvoiceRequest{
		ClientID:       clientID,
		Number:         "INV-2025-004",
		OriginalAmount: decimal.NewFromInt(50),
		IssueDate:      time.Now(),
		DueDate:        time.Now().AddDate(0, 1, 0),
	}

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateInvoice(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice")
}

func (suite *InvoiceServiceTestSuite) TestAmendInvoice_AmountChangeMovesRemainingAndBalance() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	existing := &domain.Invoice{
		InvoiceID:      invoiceID,
		ClientID:       uuid.NewString(),
		Number:         "INV-2025-010",
		OriginalAmount: decimal.NewFromInt(100),
		PaidAmount:     decimal.NewFromInt(40),
		Remaining:      decimal.NewFromInt(60),
		Status:         domain.InvoicePartial,
		IssueDate:      time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		DueDate:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	newAmount := decimal.NewFromInt(150)

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()
	// Remaining goes from 60 to 110, so the balance delta is +50
	suite.mockInvoiceRepo.On("UpdateInvoiceAmounts", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.OriginalAmount.Equal(newAmount) &&
			inv.PaidAmount.Equal(decimal.NewFromInt(40)) &&
			inv.Remaining.Equal(decimal.NewFromInt(110)) &&
			inv.Status == domain.InvoicePartial
	}), decimal.NewFromInt(50)).Return(nil).Once()

	amended, err := suite.service.AmendInvoice(ctx, invoiceID, dto.AmendInvoiceRequest{OriginalAmount: &newAmount}, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(amended.Remaining.Equal(decimal.NewFromInt(110)))
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestAmendInvoice_AmountCannotDropBelowPaid() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	existing := &domain.Invoice{
		InvoiceID:      invoiceID,
		ClientID:       uuid.NewString(),
		OriginalAmount: decimal.NewFromInt(100),
		PaidAmount:     decimal.NewFromInt(70),
		Remaining:      decimal.NewFromInt(30),
		Status:         domain.InvoicePartial,
	}
	newAmount := decimal.NewFromInt(50)

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()

	_, err := suite.service.AmendInvoice(ctx, invoiceID, dto.AmendInvoiceRequest{OriginalAmount: &newAmount}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "UpdateInvoiceAmounts")
}

func (suite *InvoiceServiceTestSuite) TestAmendInvoice_AmountEqualToPaidBecomesPaid() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	existing := &domain.Invoice{
		InvoiceID:      invoiceID,
		ClientID:       uuid.NewString(),
		OriginalAmount: decimal.NewFromInt(100),
		PaidAmount:     decimal.NewFromInt(70),
		Remaining:      decimal.NewFromInt(30),
		Status:         domain.InvoicePartial,
	}
	newAmount := decimal.NewFromInt(70)

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoiceAmounts", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.Remaining.IsZero() && inv.Status == domain.InvoicePaid
	}), decimal.NewFromInt(-30)).Return(nil).Once()

	amended, err := suite.service.AmendInvoice(ctx, invoiceID, dto.AmendInvoiceRequest{OriginalAmount: &newAmount}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.InvoicePaid, amended.Status)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_WithPaymentsDropsRemainingOnly() {
	ctx := context.Background()
	userID := uuid.NewString()
	invoiceID := uuid.NewString()
	existing := &domain.Invoice{
		InvoiceID:      invoiceID,
		ClientID:       uuid.NewString(),
		OriginalAmount: decimal.NewFromInt(100),
		PaidAmount:     decimal.NewFromInt(40),
		Remaining:      decimal.NewFromInt(60),
		Status:         domain.InvoicePartial,
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()
	// Payments stay on the books, so only the unpaid 60 leaves the balance
	suite.mockInvoiceRepo.On("DeleteInvoice", ctx, *existing, decimal.NewFromInt(-60), userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeleteInvoice(ctx, invoiceID, userID)

	suite.Require().NoError(err)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	invoiceID := uuid.NewString()
	existing := &domain.Invoice{
		InvoiceID:      invoiceID,
		ClientID:       uuid.NewString(),
		OriginalAmount: decimal.NewFromInt(100),
		PaidAmount:     decimal.Zero,
		Remaining:      decimal.NewFromInt(100),
		Status:         domain.InvoicePending,
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()
	// The client stops owing the remaining amount
	suite.mockInvoiceRepo.On("DeleteInvoice", ctx, *existing, decimal.NewFromInt(-100), userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeleteInvoice(ctx, invoiceID, userID)

	suite.Require().NoError(err)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestRecordPayment_DelegatesToPaymentService() {
	ctx := context.Background()
	userID := uuid.NewString()
	invoiceID := uuid.NewString()
	clientID := uuid.NewString()
	existing := &domain.Invoice{
		InvoiceID: invoiceID,
		ClientID:  clientID,
	}
	req := dto.RecordInvoicePaymentRequest{
		Amount:      decimal.NewFromInt(25),
		PaymentDate: time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
		Method:      "TRANSFER",
	}
	expected := &domain.Payment{PaymentID: uuid.NewString(), ClientID: clientID}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()
	suite.mockPaymentSvc.On("CreatePayment", ctx, mock.MatchedBy(func(r dto.CreatePaymentRequest) bool {
		return r.ClientID == clientID && r.InvoiceID != nil && *r.InvoiceID == invoiceID && r.Amount.Equal(req.Amount)
	}), userID).Return(expected, nil).Once()

	payment, err := suite.service.RecordPayment(ctx, invoiceID, req, userID)

	suite.Require().NoError(err)
	suite.Equal(expected, payment)
	suite.mockPaymentSvc.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestListInvoicesByClient_PassesToken() {
	ctx := context.Background()
	clientID := uuid.NewString()
	token := "sometoken"
	next := "nexttoken"
	expected := []domain.Invoice{{InvoiceID: uuid.NewString(), ClientID: clientID}}

	suite.mockInvoiceRepo.On("ListInvoicesByClient", ctx, clientID, 10, &token).Return(expected, &next, nil).Once()

	invoices, nextToken, err := suite.service.ListInvoicesByClient(ctx, clientID, 10, &token)

	suite.Require().NoError(err)
	suite.Equal(expected, invoices)
	suite.Require().NotNil(nextToken)
	suite.Equal(next, *nextToken)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
