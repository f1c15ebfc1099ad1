package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pverdier/creance_manager_app/internal/apperrors"
	"github.com/pverdier/creance_manager_app/internal/core/domain"
	portssvc "github.com/pverdier/creance_manager_app/internal/core/ports/services"
	"github.com/pverdier/creance_manager_app/internal/core/services"
	"github.com/pverdier/creance_manager_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ClientServiceTestSuite struct {
	suite.Suite
	mockRepo *MockClientRepository
	service  portssvc.ClientSvcFacade
}

func (suite *ClientServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockClientRepository)
	suite.service = services.NewClientService(suite.mockRepo)
}

func (suite *ClientServiceTestSuite) TestCreateClient_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateClientRequest{
		Name:  "Acme SARL",
		Email: "compta@acme.example",
		Phone: "+33 1 23 45 67 89",
	}

	suite.mockRepo.On("SaveClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.Name == req.Name &&
			c.Status == domain.ClientNormal &&
			c.Balance.IsZero() &&
			c.CreatedBy == userID
	})).Return(nil).Once()

	client, err := suite.service.CreateClient(ctx, req, userID)

	suite.Require().NoError(err)
	suite.NotEmpty(client.ClientID)
	suite.Equal(domain.ClientNormal, client.Status)
	suite.True(client.Balance.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestGetClientByID_NotFound() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockRepo.On("FindClientByID", ctx, clientID).Return(nil, apperrors.ErrNotFound).Once()

	client, err := suite.service.GetClientByID(ctx, clientID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(client)
}

func (suite *ClientServiceTestSuite) TestListClients_EmptyResult() {
	ctx := context.Background()

	suite.mockRepo.On("ListClients", ctx, 20, 0).Return(nil, nil).Once()

	clients, err := suite.service.ListClients(ctx, 20, 0)

	suite.Require().NoError(err)
	suite.NotNil(clients)
	suite.Empty(clients)
}

func (suite *ClientServiceTestSuite) TestUpdateClient_ContactDetailsOnly() {
	ctx := context.Background()
	userID := uuid.NewString()
	clientID := uuid.NewString()
	existing := &domain.Client{
		ClientID: clientID,
		Name:     "Acme SARL",
		Email:    "old@acme.example",
		Status:   domain.ClientWatch,
	}
	newEmail := "new@acme.example"

	suite.mockRepo.On("FindClientByID", ctx, clientID).Return(existing, nil).Once()
	// Status and balance stay untouched on this path
	suite.mockRepo.On("UpdateClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.Email == newEmail && c.Status == domain.ClientWatch && c.LastUpdatedBy == userID
	})).Return(nil).Once()

	client, err := suite.service.UpdateClient(ctx, clientID, dto.UpdateClientRequest{Email: &newEmail}, userID)

	suite.Require().NoError(err)
	suite.Equal(newEmail, client.Email)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestUpdateClient_EmptyNameRejected() {
	ctx := context.Background()
	clientID := uuid.NewString()
	empty := ""

	suite.mockRepo.On("FindClientByID", ctx, clientID).Return(&domain.Client{ClientID: clientID}, nil).Once()

	_, err := suite.service.UpdateClient(ctx, clientID, dto.UpdateClientRequest{Name: &empty}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateClient")
}

func (suite *ClientServiceTestSuite) TestUpdateClientStatus_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	clientID := uuid.NewString()

	suite.mockRepo.On("UpdateClientStatus", ctx, clientID, domain.ClientCritical, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockRepo.On("FindClientByID", ctx, clientID).Return(&domain.Client{ClientID: clientID, Status: domain.ClientCritical}, nil).Once()

	client, err := suite.service.UpdateClientStatus(ctx, clientID, domain.ClientCritical, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.ClientCritical, client.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestUpdateClientStatus_EmptyStatusRejected() {
	ctx := context.Background()

	_, err := suite.service.UpdateClientStatus(ctx, uuid.NewString(), "", uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateClientStatus")
}

func TestClientServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
