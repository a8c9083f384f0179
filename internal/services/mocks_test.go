package services

import (
	"context"
	"time"

	"seatbill/internal/billing"
	"seatbill/internal/models"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, subscription *models.Subscription) error {
	args := m.Called(ctx, subscription)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) GetByCustomerID(ctx context.Context, customerID uuid.UUID) (*models.Subscription, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) UpdatePrice(ctx context.Context, customerID uuid.UUID, priceCents int64) error {
	args := m.Called(ctx, customerID, priceCents)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) Delete(ctx context.Context, customerID uuid.UUID) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) ListCustomerIDs(ctx context.Context) ([]uuid.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, customerID, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, customerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Deactivate(ctx context.Context, customerID, id uuid.UUID, on civil.Date) error {
	args := m.Called(ctx, customerID, id, on)
	return args.Error(0)
}

func (m *MockUserRepository) ListByCustomerID(ctx context.Context, customerID uuid.UUID) ([]models.User, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) ListActiveInRange(ctx context.Context, customerID uuid.UUID, start, end civil.Date) ([]models.User, error) {
	args := m.Called(ctx, customerID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) Upsert(ctx context.Context, invoice *models.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) GetByCustomerMonth(ctx context.Context, customerID uuid.UUID, month string) (*models.Invoice, error) {
	args := m.Called(ctx, customerID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*models.Invoice, error) {
	args := m.Called(ctx, customerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateStatus(ctx context.Context, customerID uuid.UUID, month, status string) error {
	args := m.Called(ctx, customerID, month, status)
	return args.Error(0)
}

type MockChargeCache struct {
	mock.Mock
}

func (m *MockChargeCache) Generation(ctx context.Context, customerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockChargeCache) GetCharge(ctx context.Context, customerID uuid.UUID, generation int64, month string) (int64, bool, error) {
	args := m.Called(ctx, customerID, generation, month)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *MockChargeCache) SetCharge(ctx context.Context, customerID uuid.UUID, generation int64, month string, cents int64, ttl time.Duration) error {
	args := m.Called(ctx, customerID, generation, month, cents, ttl)
	return args.Error(0)
}

func (m *MockChargeCache) InvalidateCustomer(ctx context.Context, customerID uuid.UUID) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

func (m *MockChargeCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockStatementStore struct {
	mock.Mock
}

func (m *MockStatementStore) EnsureBucket(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStatementStore) PutStatement(ctx context.Context, customerID uuid.UUID, statement *billing.Statement) (string, error) {
	args := m.Called(ctx, customerID, statement)
	return args.String(0), args.Error(1)
}

func (m *MockStatementStore) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, key, expiry)
	return args.String(0), args.Error(1)
}
