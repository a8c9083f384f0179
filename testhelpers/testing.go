package testhelpers

import (
	"context"
	"os"
	"testing"
	"time"

	"seatbill/internal/models"
	"seatbill/pkg/database"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MustDate parses a YYYY-MM-DD date and panics on bad input. Test fixtures only.
func MustDate(s string) civil.Date {
	d, err := civil.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DatePtr is MustDate returning a pointer; an empty string yields nil.
func DatePtr(s string) *civil.Date {
	if s == "" {
		return nil
	}
	d := MustDate(s)
	return &d
}

// NewSubscription builds a subscription for a fresh customer.
func NewSubscription(priceCents int64) *models.Subscription {
	return &models.Subscription{
		ID:                  uuid.New(),
		CustomerID:          uuid.New(),
		MonthlyPriceInCents: priceCents,
	}
}

// NewUser builds a user active from activated through deactivated ("" for still active).
func NewUser(customerID uuid.UUID, name, activated, deactivated string) models.User {
	return models.User{
		ID:            uuid.New(),
		CustomerID:    customerID,
		Name:          name,
		ActivatedOn:   MustDate(activated),
		DeactivatedOn: DatePtr(deactivated),
	}
}

// TestDB holds the database connection for testing
type TestDB struct {
	Pool    *pgxpool.Pool
	Cleanup func() error
}

// SetupTestDB connects to TEST_DATABASE_URL and applies the schema.
// The test is skipped when no database is configured or in short mode.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, connString, 4)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := database.EnsureSchema(ctx, pool); err != nil {
		t.Fatalf("Failed to apply schema: %v", err)
	}

	return &TestDB{
		Pool: pool,
		Cleanup: func() error {
			pool.Close()
			return nil
		},
	}
}

// CleanupCustomer removes everything stored for a customer
func CleanupCustomer(t *testing.T, db *TestDB, customerID uuid.UUID) {
	t.Helper()

	ctx := context.Background()
	for _, table := range []string{"invoices", "users", "subscriptions"} {
		if _, err := db.Pool.Exec(ctx, "DELETE FROM "+table+" WHERE customer_id = $1", customerID); err != nil {
			t.Fatalf("Failed to clean %s: %v", table, err)
		}
	}
}
