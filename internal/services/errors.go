package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"seatbill/internal/caching"

	"github.com/google/uuid"
)

var (
	// ErrValidation marks request data the service refused.
	ErrValidation = errors.New("validation failed")
	// ErrNoSubscription is returned when a customer without a plan is invoiced.
	ErrNoSubscription = errors.New("customer has no subscription")
)

func validationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// invalidateCharges drops cached charges after seat or plan changes. Failures are logged only;
// cached values expire on their own.
func invalidateCharges(ctx context.Context, cache caching.ChargeCache, customerID uuid.UUID) {
	if err := cache.InvalidateCustomer(ctx, customerID); err != nil {
		log.Printf("WARN: failed to invalidate cached charges for customer %s: %v", customerID, err)
	}
}
