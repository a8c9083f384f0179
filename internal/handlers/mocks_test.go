package handlers

import (
	"context"

	"seatbill/internal/billing"
	"seatbill/internal/models"
	"seatbill/internal/services"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockBillingService struct {
	mock.Mock
}

func (m *MockBillingService) MonthlyCharge(ctx context.Context, customerID uuid.UUID, month string) (int64, error) {
	args := m.Called(ctx, customerID, month)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBillingService) Statement(ctx context.Context, customerID uuid.UUID, month string) (*billing.Statement, error) {
	args := m.Called(ctx, customerID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Statement), args.Error(1)
}

func (m *MockBillingService) IssueInvoice(ctx context.Context, customerID uuid.UUID, month string) (*models.Invoice, error) {
	args := m.Called(ctx, customerID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockBillingService) InvoiceAll(ctx context.Context, month billing.Month) (*services.InvoiceRunResult, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.InvoiceRunResult), args.Error(1)
}

func (m *MockBillingService) ListInvoices(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*models.Invoice, error) {
	args := m.Called(ctx, customerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Invoice), args.Error(1)
}

func (m *MockBillingService) MarkInvoice(ctx context.Context, customerID uuid.UUID, month, status string) error {
	args := m.Called(ctx, customerID, month, status)
	return args.Error(0)
}

func (m *MockBillingService) StatementURL(ctx context.Context, customerID uuid.UUID, month string) (string, error) {
	args := m.Called(ctx, customerID, month)
	return args.String(0), args.Error(1)
}

type MockSubscriptionService struct {
	mock.Mock
}

func (m *MockSubscriptionService) Create(ctx context.Context, customerID uuid.UUID, priceCents int64) (*models.Subscription, error) {
	args := m.Called(ctx, customerID, priceCents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) Get(ctx context.Context, customerID uuid.UUID) (*models.Subscription, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) UpdatePrice(ctx context.Context, customerID uuid.UUID, priceCents int64) (*models.Subscription, error) {
	args := m.Called(ctx, customerID, priceCents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) Cancel(ctx context.Context, customerID uuid.UUID) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Activate(ctx context.Context, customerID uuid.UUID, req services.ActivateUserRequest) (*models.User, error) {
	args := m.Called(ctx, customerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Deactivate(ctx context.Context, customerID, userID uuid.UUID, on civil.Date) (*models.User, error) {
	args := m.Called(ctx, customerID, userID, on)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, customerID, userID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, customerID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, customerID uuid.UUID) ([]models.User, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
