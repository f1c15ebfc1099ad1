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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
}

func (suite *ReportingServiceTestSuite) TestOutstandingSummary() {
	ctx := context.Background()
	now := time.Date(2025, 3, 17, 9, 0, 0, 0, time.UTC)
	oldest := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	rows := []domain.ClientOutstanding{
		{
			ClientID:        uuid.NewString(),
			Name:            "Acme SARL",
			Status:          domain.ClientWatch,
			Balance:         decimal.NewFromInt(1200),
			OverdueInvoices: 3,
			OldestDueDate:   &oldest,
		},
	}

	suite.mockRepo.On("GetOutstandingSummary", ctx, now).Return(rows, nil).Once()

	got, err := suite.service.OutstandingSummary(ctx, now)

	suite.Require().NoError(err)
	suite.Equal(rows, got)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestDSO() {
	ctx := context.Background()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	report := &domain.DSOReport{
		From:         from,
		To:           to,
		InvoicesPaid: 14,
		AverageDays:  decimal.NewFromFloat(32.5),
	}

	suite.mockRepo.On("GetDSO", ctx, from, to).Return(report, nil).Once()

	got, err := suite.service.DSO(ctx, from, to)

	suite.Require().NoError(err)
	suite.Equal(report, got)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestDSO_WindowEndBeforeStart() {
	ctx := context.Background()
	from := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := suite.service.DSO(ctx, from, to)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "GetDSO")
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
