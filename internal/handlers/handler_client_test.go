package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pverdier/creance_manager_app/internal/apperrors"
	"github.com/pverdier/creance_manager_app/internal/core/domain"
	portssvc "github.com/pverdier/creance_manager_app/internal/core/ports/services"
	"github.com/pverdier/creance_manager_app/internal/dto"
	"github.com/pverdier/creance_manager_app/internal/handlers"
	"github.com/pverdier/creance_manager_app/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ClientService ---
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, userID string) (*domain.Client, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}
func (m *MockClientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, userID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) UpdateClientStatus(ctx context.Context, clientID string, status domain.ClientStatus, userID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID, status, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

var _ portssvc.ClientSvcFacade = (*MockClientService)(nil)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) ListInvoicesByClient(ctx context.Context, clientID string, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
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
func (m *MockInvoiceService) ListOverdueInvoices(ctx context.Context, now time.Time) ([]domain.Invoice, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) AmendInvoice(ctx context.Context, invoiceID string, req dto.AmendInvoiceRequest, userID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) RecordPayment(ctx context.Context, invoiceID string, req dto.RecordInvoicePaymentRequest, userID string) (*domain.Payment, error) {
	args := m.Called(ctx, invoiceID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockInvoiceService) DeleteInvoice(ctx context.Context, invoiceID string, userID string) error {
	args := m.Called(ctx, invoiceID, userID)
	return args.Error(0)
}

var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

// --- Mock PaymentService ---
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

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

// --- Mock CommunicationService ---
type MockCommunicationService struct {
	mock.Mock
}

func (m *MockCommunicationService) CreateCommunication(ctx context.Context, req dto.CreateCommunicationRequest, userID string) (*domain.Communication, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Communication), args.Error(1)
}
func (m *MockCommunicationService) GetCommunicationByID(ctx context.Context, communicationID string) (*domain.Communication, error) {
	args := m.Called(ctx, communicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Communication), args.Error(1)
}
func (m *MockCommunicationService) ListCommunicationsByClient(ctx context.Context, clientID string, limit int, offset int) ([]domain.Communication, error) {
	args := m.Called(ctx, clientID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Communication), args.Error(1)
}

var _ portssvc.CommunicationSvcFacade = (*MockCommunicationService)(nil)

// --- Test Suite ---
type ClientHandlerTestSuite struct {
	suite.Suite
	router                   *gin.Engine
	mockClientService        *MockClientService
	mockInvoiceService       *MockInvoiceService
	mockPaymentService       *MockPaymentService
	mockCommunicationService *MockCommunicationService
	jwtSecret                string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *ClientHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "cma-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ClientHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockClientService = new(MockClientService)
	suite.mockInvoiceService = new(MockInvoiceService)
	suite.mockPaymentService = new(MockPaymentService)
	suite.mockCommunicationService = new(MockCommunicationService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterClientRoutes(v1, suite.mockClientService, suite.mockInvoiceService, suite.mockPaymentService, suite.mockCommunicationService)
}

// --- Test Cases ---

func (suite *ClientHandlerTestSuite) TestGetClient_Success() {
	clientID := uuid.NewString()
	requestingUserID := uuid.NewString()
	expected := &domain.Client{
		ClientID: clientID,
		Name:     "Acme SARL",
		Status:   domain.ClientNormal,
		Balance:  decimal.NewFromInt(350),
	}

	suite.mockClientService.On("GetClientByID", mock.Anything, clientID).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/clients/"+clientID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(requestingUserID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.ClientResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(clientID, body.ClientID)
	suite.Equal("Acme SARL", body.Name)
	suite.True(body.Balance.Equal(decimal.NewFromInt(350)))
	suite.mockClientService.AssertExpectations(suite.T())
}

func (suite *ClientHandlerTestSuite) TestGetClient_NotFound() {
	clientID := uuid.NewString()

	suite.mockClientService.On("GetClientByID", mock.Anything, clientID).Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/clients/"+clientID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockClientService.AssertExpectations(suite.T())
}

func (suite *ClientHandlerTestSuite) TestGetClient_MissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/clients/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockClientService.AssertNotCalled(suite.T(), "GetClientByID")
}

func (suite *ClientHandlerTestSuite) TestCreateClient_Success() {
	requestingUserID := uuid.NewString()
	created := &domain.Client{
		ClientID: uuid.NewString(),
		Name:     "Acme SARL",
		Status:   domain.ClientNormal,
		Balance:  decimal.Zero,
	}

	suite.mockClientService.On("CreateClient", mock.Anything, mock.MatchedBy(func(r dto.CreateClientRequest) bool {
		return r.Name == "Acme SARL"
	}), requestingUserID).Return(created, nil).Once()

	payload := `{"name":"Acme SARL","email":"compta@acme.example"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/clients", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(requestingUserID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockClientService.AssertExpectations(suite.T())
}

func (suite *ClientHandlerTestSuite) TestCreateClient_MissingName() {
	payload := `{"email":"compta@acme.example"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/clients", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockClientService.AssertNotCalled(suite.T(), "CreateClient")
}

func (suite *ClientHandlerTestSuite) TestListClientInvoices_Success() {
	clientID := uuid.NewString()
	limit := 10
	next := "opaque-token"
	invoices := []domain.Invoice{
		{
			InvoiceID:      uuid.NewString(),
			ClientID:       clientID,
			Number:         "INV-2025-001",
			OriginalAmount: decimal.NewFromInt(100),
			Remaining:      decimal.NewFromInt(100),
			Status:         domain.InvoicePending,
			DueDate:        time.Now().AddDate(0, 0, -5),
		},
	}

	suite.mockInvoiceService.On("ListInvoicesByClient", mock.Anything, clientID, limit, (*string)(nil)).Return(invoices, &next, nil).Once()

	url := fmt.Sprintf("/api/v1/clients/%s/invoices?limit=%d", clientID, limit)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.ListInvoicesResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Invoices, 1)
	suite.Equal(invoices[0].InvoiceID, body.Invoices[0].InvoiceID)
	suite.Require().NotNil(body.NextToken)
	suite.Equal(next, *body.NextToken)
	suite.mockInvoiceService.AssertExpectations(suite.T())
	suite.mockPaymentService.AssertNotCalled(suite.T(), "ListPaymentsByClient")
}

func (suite *ClientHandlerTestSuite) TestUpdateClientStatus_Success() {
	clientID := uuid.NewString()
	requestingUserID := uuid.NewString()
	updated := &domain.Client{
		ClientID: clientID,
		Name:     "Acme SARL",
		Status:   domain.ClientCritical,
	}

	suite.mockClientService.On("UpdateClientStatus", mock.Anything, clientID, domain.ClientCritical, requestingUserID).Return(updated, nil).Once()

	payload := `{"status":"CRITICAL"}`
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/clients/"+clientID+"/status", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(requestingUserID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.ClientResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("CRITICAL", body.Status)
	suite.mockClientService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestClientHandler(t *testing.T) {
	suite.Run(t, new(ClientHandlerTestSuite))
}
