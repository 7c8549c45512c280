package repository

import (
	"context"
	"log/slog"
	"time"

	"resort-engine/internal/domain/billing"
	"resort-engine/internal/domain/shared/money"
	"resort-engine/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PaymentRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewPaymentRepository(dbtx db.DBTX, logger *slog.Logger) *PaymentRepository {
	return &PaymentRepository{db: dbtx, logger: logger}
}

func (r *PaymentRepository) Create(ctx context.Context, p *billing.Payment) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO payments (id, customer_id, invoice_id, invoice_type, amount_cents, method, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID(), p.CustomerID(), p.InvoiceID(), p.InvoiceType().String(), p.Amount().Cents(), p.Method().String(), p.PaidAt(),
	)
	return classify(r.logger, "failed to record payment", err)
}

func (r *PaymentRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*billing.Payment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, customer_id, invoice_id, invoice_type, amount_cents, method, paid_at
		FROM payments
		WHERE customer_id = $1
		ORDER BY paid_at DESC, id`, customerID)
	if err != nil {
		return nil, classify(r.logger, "failed to query payments", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*billing.Payment, error) {
		var (
			id, custID, invoiceID uuid.UUID
			invoiceType, method   string
			cents                 int64
			paidAt                time.Time
		)
		if err := row.Scan(&id, &custID, &invoiceID, &invoiceType, &cents, &method, &paidAt); err != nil {
			return nil, err
		}
		return billing.ReconstructPayment(id, custID, invoiceID, billing.InvoiceType(invoiceType),
			money.FromCents(cents), billing.Method(method), paidAt), nil
	})
	if err != nil {
		return nil, classify(r.logger, "failed to scan payments", err)
	}
	return list, nil
}
