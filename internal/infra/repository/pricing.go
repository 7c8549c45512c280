package repository

import (
	"context"
	"log/slog"
	"time"

	"resort-engine/internal/domain/resource"
	"resort-engine/internal/domain/shared/money"
	"resort-engine/internal/infra/db"
	"resort-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// PricingRepository stores weekly rates and override windows. Override
// dates are calendar dates in loc.
type PricingRepository struct {
	db     db.DBTX
	loc    *time.Location
	logger *slog.Logger
}

func NewPricingRepository(dbtx db.DBTX, loc *time.Location, logger *slog.Logger) *PricingRepository {
	if loc == nil {
		loc = time.UTC
	}
	return &PricingRepository{db: dbtx, loc: loc, logger: logger}
}

func (r *PricingRepository) WeeklyRates(ctx context.Context, resourceID uuid.UUID) (resource.WeeklyRates, error) {
	rows, err := r.db.Query(ctx, `SELECT weekday, price_cents FROM weekly_rates WHERE resource_id = $1`, resourceID)
	if err != nil {
		return nil, classify(r.logger, "failed to query weekly rates", err)
	}
	defer rows.Close()

	rates := resource.WeeklyRates{}
	for rows.Next() {
		var (
			day   int16
			cents int64
		)
		if err := rows.Scan(&day, &cents); err != nil {
			return nil, classify(r.logger, "failed to scan weekly rate", err)
		}
		rates[time.Weekday(day)] = money.FromCents(cents)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(r.logger, "failed to read weekly rates", err)
	}
	return rates, nil
}

func (r *PricingRepository) SetWeeklyRate(ctx context.Context, resourceID uuid.UUID, day time.Weekday, price money.Money) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO weekly_rates (resource_id, weekday, price_cents)
		VALUES ($1, $2, $3)
		ON CONFLICT (resource_id, weekday) DO UPDATE SET price_cents = EXCLUDED.price_cents`,
		resourceID, int16(day), price.Cents(),
	)
	return classify(r.logger, "failed to set weekly rate", err)
}

func (r *PricingRepository) Overrides(ctx context.Context, resourceID uuid.UUID) ([]resource.Override, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, resource_id, start_date, end_date, price_cents, created_at
		FROM rate_overrides
		WHERE resource_id = $1
		ORDER BY start_date`, resourceID)
	if err != nil {
		return nil, classify(r.logger, "failed to query overrides", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (resource.Override, error) {
		var (
			id, resID  uuid.UUID
			start, end pgtype.Date
			cents      int64
			createdAt  time.Time
		)
		if err := row.Scan(&id, &resID, &start, &end, &cents, &createdAt); err != nil {
			return resource.Override{}, err
		}
		return resource.ReconstructOverride(id, resID,
			pgconv.DateFromPgtype(start, r.loc), pgconv.DateFromPgtype(end, r.loc),
			money.FromCents(cents), createdAt), nil
	})
	if err != nil {
		return nil, classify(r.logger, "failed to scan overrides", err)
	}
	return list, nil
}

// AddOverride relies on the rate_overrides_no_overlap constraint when two
// writers race past the domain check.
func (r *PricingRepository) AddOverride(ctx context.Context, o resource.Override) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO rate_overrides (id, resource_id, start_date, end_date, price_cents, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		o.ID(), o.ResourceID(), pgconv.DateToPgtype(o.StartDate().In(r.loc)), pgconv.DateToPgtype(o.EndDate().In(r.loc)),
		o.Price().Cents(), o.CreatedAt(),
	)
	return classify(r.logger, "failed to add override", err)
}
