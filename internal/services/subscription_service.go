package services

import (
	"context"
	"errors"

	"seatbill/internal/caching"
	"seatbill/internal/models"
	"seatbill/internal/repositories"

	"github.com/google/uuid"
)

// SubscriptionService manages a customer's seat plan
type SubscriptionService interface {
	Create(ctx context.Context, customerID uuid.UUID, priceCents int64) (*models.Subscription, error)
	Get(ctx context.Context, customerID uuid.UUID) (*models.Subscription, error)
	UpdatePrice(ctx context.Context, customerID uuid.UUID, priceCents int64) (*models.Subscription, error)
	Cancel(ctx context.Context, customerID uuid.UUID) error
}

type subscriptionService struct {
	subscriptionRepo repositories.SubscriptionRepository
	cache            caching.ChargeCache
}

// NewSubscriptionService creates a new SubscriptionService instance
func NewSubscriptionService(subscriptionRepo repositories.SubscriptionRepository, cache caching.ChargeCache) SubscriptionService {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		cache:            cache,
	}
}

func validatePrice(priceCents int64) error {
	if priceCents < 0 {
		return validationErrorf("monthly price cannot be negative")
	}
	return nil
}

// Create creates the customer's subscription. A customer holds at most one.
func (s *subscriptionService) Create(ctx context.Context, customerID uuid.UUID, priceCents int64) (*models.Subscription, error) {
	if err := validatePrice(priceCents); err != nil {
		return nil, err
	}

	subscription := &models.Subscription{
		ID:                  uuid.New(),
		CustomerID:          customerID,
		MonthlyPriceInCents: priceCents,
	}
	if err := s.subscriptionRepo.Create(ctx, subscription); err != nil {
		return nil, err
	}

	invalidateCharges(ctx, s.cache, customerID)
	return subscription, nil
}

// Get returns the customer's subscription
func (s *subscriptionService) Get(ctx context.Context, customerID uuid.UUID) (*models.Subscription, error) {
	return s.subscriptionRepo.GetByCustomerID(ctx, customerID)
}

// UpdatePrice changes the per-day seat price
func (s *subscriptionService) UpdatePrice(ctx context.Context, customerID uuid.UUID, priceCents int64) (*models.Subscription, error) {
	if err := validatePrice(priceCents); err != nil {
		return nil, err
	}
	if err := s.subscriptionRepo.UpdatePrice(ctx, customerID, priceCents); err != nil {
		return nil, err
	}

	invalidateCharges(ctx, s.cache, customerID)
	return s.subscriptionRepo.GetByCustomerID(ctx, customerID)
}

// Cancel deletes the subscription. Every month, past ones included, is then charged nothing
// and can no longer be invoiced; invoices already issued are kept.
func (s *subscriptionService) Cancel(ctx context.Context, customerID uuid.UUID) error {
	err := s.subscriptionRepo.Delete(ctx, customerID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return err
	}
	invalidateCharges(ctx, s.cache, customerID)
	return err
}
