package services

import (
	"context"
	"testing"
	"time"

	"seatbill/internal/caching"
	"seatbill/internal/models"
	"seatbill/testhelpers"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// A seat activated while a charge is being computed must not leave the older total in the cache.
func TestMonthlyCharge_ActivationDuringLoadIsNotMaskedByCache(t *testing.T) {
	ctx := context.Background()
	server := miniredis.RunT(t)
	cache := caching.NewRedisChargeCache(caching.NewRedisClient("redis://"+server.Addr(), "", 0))

	subscriptionRepo := &MockSubscriptionRepository{}
	userRepo := &MockUserRepository{}
	subscriptionRepo.Test(t)
	userRepo.Test(t)

	sub := testhelpers.NewSubscription(100)
	customerID := sub.CustomerID
	existing := testhelpers.NewUser(customerID, "Employee #1", "2022-01-01", "")
	joiner := testhelpers.NewUser(customerID, "Employee #2", "2022-01-01", "")

	billingSvc := NewBillingService(subscriptionRepo, userRepo, &MockInvoiceRepository{}, cache, &MockStatementStore{}, time.Hour)
	userSvc := NewUserService(userRepo, cache)

	subscriptionRepo.On("GetByCustomerID", ctx, customerID).Return(sub, nil)
	userRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(nil)
	userRepo.On("ListActiveInRange", ctx, customerID, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			_, err := userSvc.Activate(ctx, customerID, ActivateUserRequest{
				Name:        joiner.Name,
				ActivatedOn: joiner.ActivatedOn,
			})
			require.NoError(t, err)
		}).
		Return([]models.User{existing}, nil).Once()
	userRepo.On("ListActiveInRange", ctx, customerID, mock.Anything, mock.Anything).
		Return([]models.User{existing, joiner}, nil).Once()

	first, err := billingSvc.MonthlyCharge(ctx, customerID, "2022-04")
	require.NoError(t, err)
	assert.Equal(t, int64(30*100), first)

	second, err := billingSvc.MonthlyCharge(ctx, customerID, "2022-04")
	require.NoError(t, err)
	assert.Equal(t, int64(2*30*100), second)

	third, err := billingSvc.MonthlyCharge(ctx, customerID, "2022-04")
	require.NoError(t, err)
	assert.Equal(t, second, third)

	subscriptionRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}
