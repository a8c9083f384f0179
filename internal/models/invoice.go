package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	InvoiceStatusIssued = "issued"
	InvoiceStatusPaid   = "paid"
	InvoiceStatusVoid   = "void"
)

// Invoice records the charge issued to a customer for one month.
type Invoice struct {
	ID             uuid.UUID `json:"id" db:"id"`
	CustomerID     uuid.UUID `json:"customer_id" db:"customer_id"`
	SubscriptionID uuid.UUID `json:"subscription_id" db:"subscription_id"`
	Month          string    `json:"month" db:"month"` // YYYY-MM
	AmountCents    int64     `json:"amount_cents" db:"amount_cents"`
	BilledUsers    int       `json:"billed_users" db:"billed_users"`
	Status         string    `json:"status" db:"status"`
	StatementKey   *string   `json:"statement_key" db:"statement_key"`
	IssuedAt       time.Time `json:"issued_at" db:"issued_at"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
