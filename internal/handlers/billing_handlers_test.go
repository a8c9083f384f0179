package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"seatbill/internal/billing"
	"seatbill/internal/common"
	"seatbill/internal/models"
	"seatbill/internal/repositories"
	"seatbill/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BillingHandlersTestSuite struct {
	suite.Suite
	echo        *echo.Echo
	mockService *MockBillingService
	customerID  uuid.UUID
}

func (suite *BillingHandlersTestSuite) SetupTest() {
	suite.echo = echo.New()
	suite.mockService = &MockBillingService{}
	suite.mockService.Test(suite.T())
	suite.customerID = uuid.New()

	NewBillingHandlers(suite.mockService).Register(suite.echo.Group("/v1/customers/:customer_id"))
}

func (suite *BillingHandlersTestSuite) TearDownTest() {
	suite.mockService.AssertExpectations(suite.T())
}

func TestBillingHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(BillingHandlersTestSuite))
}

func (suite *BillingHandlersTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	return rec
}

func (suite *BillingHandlersTestSuite) path(suffix string) string {
	return fmt.Sprintf("/v1/customers/%s%s", suite.customerID, suffix)
}

func (suite *BillingHandlersTestSuite) TestGetCharge_Success() {
	suite.mockService.On("MonthlyCharge", mock.Anything, suite.customerID, "2022-04").Return(int64(74000), nil)

	rec := suite.do(http.MethodGet, suite.path("/charges?month=2022-04"), "")

	suite.Equal(http.StatusOK, rec.Code)
	var resp ChargeResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Equal(ChargeResponse{CustomerID: suite.customerID.String(), Month: "2022-04", AmountCents: 74000}, resp)
}

func (suite *BillingHandlersTestSuite) TestGetCharge_InvalidMonth() {
	suite.mockService.On("MonthlyCharge", mock.Anything, suite.customerID, "2022-4").
		Return(int64(0), fmt.Errorf("%w: bad", billing.ErrInvalidMonth))

	rec := suite.do(http.MethodGet, suite.path("/charges?month=2022-4"), "")

	suite.Equal(http.StatusBadRequest, rec.Code)
	var resp common.ErrorResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Equal("VALIDATION_ERROR", resp.Error.Code)
	suite.Contains(resp.Error.Details, "month")
}

func (suite *BillingHandlersTestSuite) TestGetCharge_InvalidCustomerID() {
	rec := suite.do(http.MethodGet, "/v1/customers/not-a-uuid/charges?month=2022-04", "")

	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *BillingHandlersTestSuite) TestGetCharge_ServiceFailure() {
	suite.mockService.On("MonthlyCharge", mock.Anything, suite.customerID, "2022-04").
		Return(int64(0), errors.New("database down"))

	rec := suite.do(http.MethodGet, suite.path("/charges?month=2022-04"), "")

	suite.Equal(http.StatusInternalServerError, rec.Code)
	suite.NotContains(rec.Body.String(), "database down")
}

func (suite *BillingHandlersTestSuite) TestGetStatement() {
	statement := &billing.Statement{CustomerID: suite.customerID, Lines: []billing.Line{}, TotalCents: 0}
	suite.mockService.On("Statement", mock.Anything, suite.customerID, "2022-03").Return(statement, nil)

	rec := suite.do(http.MethodGet, suite.path("/statements?month=2022-03"), "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), `"total_cents":0`)
}

func (suite *BillingHandlersTestSuite) TestIssueInvoice_Created() {
	invoice := &models.Invoice{ID: uuid.New(), CustomerID: suite.customerID, Month: "2022-04", AmountCents: 74000}
	suite.mockService.On("IssueInvoice", mock.Anything, suite.customerID, "2022-04").Return(invoice, nil)

	rec := suite.do(http.MethodPost, suite.path("/invoices"), `{"month":"2022-04"}`)

	suite.Equal(http.StatusCreated, rec.Code)
	suite.Contains(rec.Body.String(), `"amount_cents":74000`)
}

func (suite *BillingHandlersTestSuite) TestIssueInvoice_NoSubscription() {
	suite.mockService.On("IssueInvoice", mock.Anything, suite.customerID, "2022-04").Return(nil, services.ErrNoSubscription)

	rec := suite.do(http.MethodPost, suite.path("/invoices"), `{"month":"2022-04"}`)

	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *BillingHandlersTestSuite) TestIssueInvoice_BadBody() {
	rec := suite.do(http.MethodPost, suite.path("/invoices"), `{"month":`)

	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *BillingHandlersTestSuite) TestListInvoices_DefaultPage() {
	suite.mockService.On("ListInvoices", mock.Anything, suite.customerID, 12, 0).Return([]*models.Invoice{}, nil)

	rec := suite.do(http.MethodGet, suite.path("/invoices"), "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), `"limit":12`)
}

func (suite *BillingHandlersTestSuite) TestUpdateInvoiceStatus() {
	suite.mockService.On("MarkInvoice", mock.Anything, suite.customerID, "2022-04", "paid").Return(nil)

	rec := suite.do(http.MethodPut, suite.path("/invoices/2022-04/status"), `{"status":"paid"}`)

	suite.Equal(http.StatusOK, rec.Code)
}

func (suite *BillingHandlersTestSuite) TestUpdateInvoiceStatus_NotFound() {
	suite.mockService.On("MarkInvoice", mock.Anything, suite.customerID, "2022-04", "void").Return(repositories.ErrNotFound)

	rec := suite.do(http.MethodPut, suite.path("/invoices/2022-04/status"), `{"status":"void"}`)

	suite.Equal(http.StatusNotFound, rec.Code)
	suite.Contains(rec.Body.String(), "Invoice not found")
}

func (suite *BillingHandlersTestSuite) TestGetStatementLink() {
	suite.mockService.On("StatementURL", mock.Anything, suite.customerID, "2022-04").Return("https://minio.local/signed", nil)

	rec := suite.do(http.MethodGet, suite.path("/invoices/2022-04/statement"), "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`{"url":"https://minio.local/signed"}`, rec.Body.String())
}

func (suite *BillingHandlersTestSuite) TestGetStatementLink_NoInvoice() {
	suite.mockService.On("StatementURL", mock.Anything, suite.customerID, "2022-05").Return("", repositories.ErrNotFound)

	rec := suite.do(http.MethodGet, suite.path("/invoices/2022-05/statement"), "")

	suite.Equal(http.StatusNotFound, rec.Code)
}
