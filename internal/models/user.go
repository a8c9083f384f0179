package models

import (
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
)

// User is a billable seat on a customer account.
type User struct {
	ID         uuid.UUID `json:"id" db:"id"`
	CustomerID uuid.UUID `json:"customer_id" db:"customer_id"`
	Name       string    `json:"name" db:"name"`
	// First day the user had access.
	ActivatedOn civil.Date `json:"activated_on" db:"activated_on"`
	// Last day the user had access, inclusive. Nil while the user is still active.
	DeactivatedOn *civil.Date `json:"deactivated_on" db:"deactivated_on"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at" db:"updated_at"`
}

// IsOpenEnded reports whether the user has not been deactivated.
func (u User) IsOpenEnded() bool {
	return u.DeactivatedOn == nil
}
