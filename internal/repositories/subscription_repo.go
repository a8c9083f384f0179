package repositories

import (
	"context"

	"seatbill/internal/models"

	"github.com/google/uuid"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *models.Subscription) error
	GetByCustomerID(ctx context.Context, customerID uuid.UUID) (*models.Subscription, error)
	UpdatePrice(ctx context.Context, customerID uuid.UUID, priceCents int64) error
	Delete(ctx context.Context, customerID uuid.UUID) error
	ListCustomerIDs(ctx context.Context) ([]uuid.UUID, error)
}

type subscriptionRepo struct {
	db DBTX
}

func NewSubscriptionRepo(db DBTX) SubscriptionRepository {
	return &subscriptionRepo{db: db}
}

func (r *subscriptionRepo) Create(ctx context.Context, subscription *models.Subscription) error {
	query := `
		INSERT INTO subscriptions (id, customer_id, monthly_price_in_cents, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, subscription.ID, subscription.CustomerID, subscription.MonthlyPriceInCents).
		Scan(&subscription.CreatedAt, &subscription.UpdatedAt)
	return mapError(err)
}

func (r *subscriptionRepo) GetByCustomerID(ctx context.Context, customerID uuid.UUID) (*models.Subscription, error) {
	subscription := &models.Subscription{}
	query := `
		SELECT id, customer_id, monthly_price_in_cents, created_at, updated_at
		FROM subscriptions
		WHERE customer_id = $1
	`
	err := r.db.QueryRow(ctx, query, customerID).Scan(&subscription.ID, &subscription.CustomerID, &subscription.MonthlyPriceInCents, &subscription.CreatedAt, &subscription.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return subscription, nil
}

func (r *subscriptionRepo) UpdatePrice(ctx context.Context, customerID uuid.UUID, priceCents int64) error {
	query := `
		UPDATE subscriptions
		SET monthly_price_in_cents = $1, updated_at = NOW()
		WHERE customer_id = $2
	`
	tag, err := r.db.Exec(ctx, query, priceCents, customerID)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *subscriptionRepo) Delete(ctx context.Context, customerID uuid.UUID) error {
	query := `DELETE FROM subscriptions WHERE customer_id = $1`
	tag, err := r.db.Exec(ctx, query, customerID)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *subscriptionRepo) ListCustomerIDs(ctx context.Context) ([]uuid.UUID, error) {
	query := `SELECT customer_id FROM subscriptions ORDER BY customer_id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
