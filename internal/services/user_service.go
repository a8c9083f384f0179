package services

import (
	"context"
	"strings"

	"seatbill/internal/caching"
	"seatbill/internal/models"
	"seatbill/internal/repositories"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
)

// ActivateUserRequest describes a new seat
type ActivateUserRequest struct {
	Name          string
	ActivatedOn   civil.Date
	DeactivatedOn *civil.Date
}

// UserService manages billable users
type UserService interface {
	Activate(ctx context.Context, customerID uuid.UUID, req ActivateUserRequest) (*models.User, error)
	Deactivate(ctx context.Context, customerID, userID uuid.UUID, on civil.Date) (*models.User, error)
	Get(ctx context.Context, customerID, userID uuid.UUID) (*models.User, error)
	List(ctx context.Context, customerID uuid.UUID) ([]models.User, error)
}

type userService struct {
	userRepo repositories.UserRepository
	cache    caching.ChargeCache
}

// NewUserService creates a new UserService instance
func NewUserService(userRepo repositories.UserRepository, cache caching.ChargeCache) UserService {
	return &userService{
		userRepo: userRepo,
		cache:    cache,
	}
}

// Activate adds a user to the customer's account
func (s *userService) Activate(ctx context.Context, customerID uuid.UUID, req ActivateUserRequest) (*models.User, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationErrorf("name is required")
	}
	if !req.ActivatedOn.IsValid() {
		return nil, validationErrorf("activation date is invalid")
	}
	if req.DeactivatedOn != nil && req.DeactivatedOn.Before(req.ActivatedOn) {
		return nil, validationErrorf("deactivation date cannot be before activation date")
	}

	user := &models.User{
		ID:            uuid.New(),
		CustomerID:    customerID,
		Name:          name,
		ActivatedOn:   req.ActivatedOn,
		DeactivatedOn: req.DeactivatedOn,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	invalidateCharges(ctx, s.cache, customerID)
	return user, nil
}

// Deactivate records the last day the user had access
func (s *userService) Deactivate(ctx context.Context, customerID, userID uuid.UUID, on civil.Date) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, customerID, userID)
	if err != nil {
		return nil, err
	}
	if on.Before(user.ActivatedOn) {
		return nil, validationErrorf("deactivation date %s is before activation date %s", on, user.ActivatedOn)
	}

	if err := s.userRepo.Deactivate(ctx, customerID, userID, on); err != nil {
		return nil, err
	}
	user.DeactivatedOn = &on

	invalidateCharges(ctx, s.cache, customerID)
	return user, nil
}

func (s *userService) Get(ctx context.Context, customerID, userID uuid.UUID) (*models.User, error) {
	return s.userRepo.GetByID(ctx, customerID, userID)
}

func (s *userService) List(ctx context.Context, customerID uuid.UUID) ([]models.User, error) {
	return s.userRepo.ListByCustomerID(ctx, customerID)
}
