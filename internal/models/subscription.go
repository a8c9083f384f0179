package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is a customer's seat plan. The price is charged per active user per day.
type Subscription struct {
	ID                  uuid.UUID `json:"id" db:"id"`
	CustomerID          uuid.UUID `json:"customer_id" db:"customer_id"`
	MonthlyPriceInCents int64     `json:"monthly_price_in_cents" db:"monthly_price_in_cents"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}
