package repositories

import (
	"context"

	"seatbill/internal/models"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, customerID, id uuid.UUID) (*models.User, error)
	Deactivate(ctx context.Context, customerID, id uuid.UUID, on civil.Date) error
	ListByCustomerID(ctx context.Context, customerID uuid.UUID) ([]models.User, error)
	// ListActiveInRange returns the customer's users with access on at least one day in [start, end].
	ListActiveInRange(ctx context.Context, customerID uuid.UUID, start, end civil.Date) ([]models.User, error)
}

type userRepo struct {
	db DBTX
}

func NewUserRepo(db DBTX) UserRepository {
	return &userRepo{db: db}
}

const userColumns = `id, customer_id, name, activated_on, deactivated_on, created_at, updated_at`

func scanUser(row pgx.Row) (models.User, error) {
	var (
		u           models.User
		activated   pgtype.Date
		deactivated pgtype.Date
	)
	if err := row.Scan(&u.ID, &u.CustomerID, &u.Name, &activated, &deactivated, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return models.User{}, err
	}
	u.ActivatedOn = civil.DateOf(activated.Time)
	u.DeactivatedOn = fromPgNullDate(deactivated)
	return u, nil
}

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, customer_id, name, activated_on, deactivated_on, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, user.ID, user.CustomerID, user.Name, toPgDate(user.ActivatedOn), toPgNullDate(user.DeactivatedOn)).
		Scan(&user.CreatedAt, &user.UpdatedAt)
	return mapError(err)
}

func (r *userRepo) GetByID(ctx context.Context, customerID, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE customer_id = $1 AND id = $2
	`
	u, err := scanUser(r.db.QueryRow(ctx, query, customerID, id))
	if err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

func (r *userRepo) Deactivate(ctx context.Context, customerID, id uuid.UUID, on civil.Date) error {
	query := `
		UPDATE users
		SET deactivated_on = $1, updated_at = NOW()
		WHERE customer_id = $2 AND id = $3
	`
	tag, err := r.db.Exec(ctx, query, toPgDate(on), customerID, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepo) ListByCustomerID(ctx context.Context, customerID uuid.UUID) ([]models.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE customer_id = $1
		ORDER BY activated_on, name
	`
	return r.list(ctx, query, customerID)
}

func (r *userRepo) ListActiveInRange(ctx context.Context, customerID uuid.UUID, start, end civil.Date) ([]models.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE customer_id = $1
		  AND activated_on <= $3
		  AND (deactivated_on IS NULL OR deactivated_on >= $2)
		ORDER BY activated_on, name
	`
	return r.list(ctx, query, customerID, toPgDate(start), toPgDate(end))
}

func (r *userRepo) list(ctx context.Context, query string, args ...any) ([]models.User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
