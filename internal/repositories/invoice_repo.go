package repositories

import (
	"context"

	"seatbill/internal/models"

	"github.com/google/uuid"
)

type InvoiceRepository interface {
	// Upsert stores the invoice for (customer, month), replacing a previous issue of the same month.
	Upsert(ctx context.Context, invoice *models.Invoice) error
	GetByCustomerMonth(ctx context.Context, customerID uuid.UUID, month string) (*models.Invoice, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*models.Invoice, error)
	UpdateStatus(ctx context.Context, customerID uuid.UUID, month, status string) error
}

type invoiceRepo struct {
	db DBTX
}

func NewInvoiceRepo(db DBTX) InvoiceRepository {
	return &invoiceRepo{db: db}
}

const invoiceColumns = `id, customer_id, subscription_id, month, amount_cents, billed_users, status, statement_key, issued_at, created_at, updated_at`

func (r *invoiceRepo) Upsert(ctx context.Context, invoice *models.Invoice) error {
	query := `
		INSERT INTO invoices (id, customer_id, subscription_id, month, amount_cents, billed_users, status, statement_key, issued_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		ON CONFLICT (customer_id, month) DO UPDATE
		SET subscription_id = EXCLUDED.subscription_id,
		    amount_cents = EXCLUDED.amount_cents,
		    billed_users = EXCLUDED.billed_users,
		    status = EXCLUDED.status,
		    statement_key = EXCLUDED.statement_key,
		    issued_at = EXCLUDED.issued_at,
		    updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		invoice.ID, invoice.CustomerID, invoice.SubscriptionID, invoice.Month, invoice.AmountCents,
		invoice.BilledUsers, invoice.Status, invoice.StatementKey, invoice.IssuedAt,
	).Scan(&invoice.ID, &invoice.CreatedAt, &invoice.UpdatedAt)
	return mapError(err)
}

func (r *invoiceRepo) GetByCustomerMonth(ctx context.Context, customerID uuid.UUID, month string) (*models.Invoice, error) {
	invoice := &models.Invoice{}
	query := `SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE customer_id = $1 AND month = $2
	`
	err := r.db.QueryRow(ctx, query, customerID, month).Scan(
		&invoice.ID, &invoice.CustomerID, &invoice.SubscriptionID, &invoice.Month, &invoice.AmountCents,
		&invoice.BilledUsers, &invoice.Status, &invoice.StatementKey, &invoice.IssuedAt, &invoice.CreatedAt, &invoice.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return invoice, nil
}

func (r *invoiceRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*models.Invoice, error) {
	query := `SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE customer_id = $1
		ORDER BY month DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, customerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := []*models.Invoice{}
	for rows.Next() {
		invoice := &models.Invoice{}
		if err := rows.Scan(
			&invoice.ID, &invoice.CustomerID, &invoice.SubscriptionID, &invoice.Month, &invoice.AmountCents,
			&invoice.BilledUsers, &invoice.Status, &invoice.StatementKey, &invoice.IssuedAt, &invoice.CreatedAt, &invoice.UpdatedAt,
		); err != nil {
			return nil, err
		}
		invoices = append(invoices, invoice)
	}
	return invoices, rows.Err()
}

func (r *invoiceRepo) UpdateStatus(ctx context.Context, customerID uuid.UUID, month, status string) error {
	query := `
		UPDATE invoices
		SET status = $1, updated_at = NOW()
		WHERE customer_id = $2 AND month = $3
	`
	tag, err := r.db.Exec(ctx, query, status, customerID, month)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
