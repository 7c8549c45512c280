package repository

import (
	"context"
	"log/slog"
	"time"

	"resort-engine/internal/domain/customer"
	"resort-engine/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CustomerRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewCustomerRepository(dbtx db.DBTX, logger *slog.Logger) *CustomerRepository {
	return &CustomerRepository{db: dbtx, logger: logger}
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO customers (id, email, first_name, last_name, locale, verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID(), c.Email().Value(), c.FirstName(), c.LastName(), c.Locale().String(), c.IsVerified(), c.CreatedAt(), c.UpdatedAt(),
	)
	return classify(r.logger, "failed to create customer", err)
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, email, first_name, last_name, locale, verified, created_at, updated_at
		FROM customers WHERE id = $1`, id)
	if err != nil {
		return nil, classify(r.logger, "failed to query customer", err)
	}
	c, err := pgx.CollectExactlyOneRow(rows, func(row pgx.CollectableRow) (*customer.Customer, error) {
		var (
			cid                  uuid.UUID
			email, first, last   string
			locale               string
			verified             bool
			createdAt, updatedAt time.Time
		)
		if err := row.Scan(&cid, &email, &first, &last, &locale, &verified, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		addr, err := customer.NewEmail(email)
		if err != nil {
			return nil, err
		}
		return customer.Reconstruct(cid, addr, first, last, customer.Locale(locale), verified, createdAt, updatedAt), nil
	})
	if err != nil {
		return nil, classify(r.logger, "customer not found", err)
	}
	return c, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE customers SET first_name = $2, last_name = $3, locale = $4, verified = $5, updated_at = $6
		WHERE id = $1`,
		c.ID(), c.FirstName(), c.LastName(), c.Locale().String(), c.IsVerified(), c.UpdatedAt(),
	)
	if err != nil {
		return classify(r.logger, "failed to update customer", err)
	}
	if tag.RowsAffected() == 0 {
		return classify(r.logger, "customer not found", pgx.ErrNoRows)
	}
	return nil
}

type VerificationCodeRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewVerificationCodeRepository(dbtx db.DBTX, logger *slog.Logger) *VerificationCodeRepository {
	return &VerificationCodeRepository{db: dbtx, logger: logger}
}

func (r *VerificationCodeRepository) Upsert(ctx context.Context, code *customer.VerificationCode) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO verification_codes (customer_id, code_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (customer_id) DO UPDATE
		SET code_hash = EXCLUDED.code_hash, expires_at = EXCLUDED.expires_at, created_at = EXCLUDED.created_at`,
		code.CustomerID(), code.CodeHash(), code.ExpiresAt(), code.CreatedAt(),
	)
	return classify(r.logger, "failed to store verification code", err)
}

func (r *VerificationCodeRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) (*customer.VerificationCode, error) {
	var (
		hash                 string
		expiresAt, createdAt time.Time
	)
	err := r.db.QueryRow(ctx, `
		SELECT code_hash, expires_at, created_at FROM verification_codes WHERE customer_id = $1`,
		customerID).Scan(&hash, &expiresAt, &createdAt)
	if err != nil {
		return nil, classify(r.logger, "verification code not found", err)
	}
	return customer.ReconstructCode(customerID, hash, expiresAt, createdAt), nil
}

func (r *VerificationCodeRepository) Delete(ctx context.Context, customerID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM verification_codes WHERE customer_id = $1`, customerID)
	return classify(r.logger, "failed to delete verification code", err)
}

func (r *VerificationCodeRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM verification_codes WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, classify(r.logger, "failed to purge verification codes", err)
	}
	return tag.RowsAffected(), nil
}
