package repository

import (
	"context"
	"log/slog"
	"time"

	"resort-engine/internal/domain/reservation"
	"resort-engine/internal/domain/shared/interval"
	"resort-engine/internal/domain/shared/money"
	"resort-engine/internal/infra"
	"resort-engine/internal/infra/db"
	"resort-engine/internal/pkg/pgconv"
	"resort-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, kind, customer_id, resource_id, start_at, end_at, occupancy, status,
	total_price_cents, duration_hours, payed, walk_in, note, deleted, version, created_at, updated_at`

// Shared WHERE clause of List and CountDistinctCustomers, parameters $1..$7.
const reservationFilterClause = `
	WHERE NOT deleted
	  AND ($1::text IS NULL OR kind = $1)
	  AND ($2::text IS NULL OR status = $2)
	  AND ($3::boolean IS NULL OR payed = $3)
	  AND ($4::uuid IS NULL OR resource_id = $4)
	  AND ($5::uuid IS NULL OR customer_id = $5)
	  AND ($6::timestamptz IS NULL OR start_at >= $6)
	  AND ($7::timestamptz IS NULL OR start_at < $7)`

type ReservationRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewReservationRepository(dbtx db.DBTX, logger *slog.Logger) *ReservationRepository {
	return &ReservationRepository{db: dbtx, logger: logger}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	s := res.Snapshot()
	_, err := r.db.Exec(ctx, `
		INSERT INTO reservations (`+reservationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		s.ID, s.Kind.String(), s.CustomerID, s.ResourceID, s.Start, pgconv.TimePtrToPgtype(s.End), s.Occupancy,
		s.Status.String(), s.TotalPrice.Cents(), s.DurationHours, s.Payed, s.WalkIn, s.Note, s.Deleted,
		s.Version, s.CreatedAt, s.UpdatedAt,
	)
	return classify(r.logger, "failed to create reservation", err)
}

func (r *ReservationRepository) Get(ctx context.Context, kind reservation.Kind, id uuid.UUID) (*reservation.Reservation, error) {
	return r.one(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1 AND kind = $2 AND NOT deleted`, id, kind.String())
}

func (r *ReservationRepository) GetForUpdate(ctx context.Context, kind reservation.Kind, id uuid.UUID) (*reservation.Reservation, error) {
	return r.one(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1 AND kind = $2 AND NOT deleted FOR UPDATE`, id, kind.String())
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	s := res.Snapshot()
	tag, err := r.db.Exec(ctx, `
		UPDATE reservations
		SET start_at = $2, end_at = $3, occupancy = $4, status = $5, total_price_cents = $6,
		    duration_hours = $7, payed = $8, note = $9, deleted = $10, updated_at = $11,
		    version = version + 1
		WHERE id = $1 AND version = $12`,
		s.ID, s.Start, pgconv.TimePtrToPgtype(s.End), s.Occupancy, s.Status.String(), s.TotalPrice.Cents(),
		s.DurationHours, s.Payed, s.Note, s.Deleted, s.UpdatedAt, s.Version,
	)
	if err != nil {
		return classify(r.logger, "failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindStaleVersion, "reservation changed concurrently", nil)
	}
	res.Bump()
	return nil
}

func (r *ReservationRepository) Occupying(ctx context.Context, resourceID uuid.UUID, statuses []reservation.Status, window interval.Interval) ([]*reservation.Reservation, error) {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = s.String()
	}
	return r.many(ctx, `
		SELECT `+reservationColumns+` FROM reservations
		WHERE resource_id = $1
		  AND NOT deleted
		  AND status = ANY($2)
		  AND start_at < $3
		  AND COALESCE(end_at, start_at) >= $4
		ORDER BY start_at, id`,
		resourceID, names, window.End(), window.Start())
}

func (r *ReservationRepository) List(ctx context.Context, filter shared.ReservationFilter) ([]*reservation.Reservation, error) {
	args := filterArgs(filter)
	var afterAt pgtype.Timestamptz
	var afterID pgtype.UUID
	if filter.After != nil {
		afterAt = pgconv.TimeToPgtype(filter.After.CreatedAt)
		afterID = pgconv.UUIDToPgtype(filter.After.ID)
	}
	var limit pgtype.Int8
	if filter.Limit > 0 {
		limit = pgtype.Int8{Int64: int64(filter.Limit), Valid: true}
	}
	args = append(args, afterAt, afterID, limit)

	return r.many(ctx, `
		SELECT `+reservationColumns+` FROM reservations`+reservationFilterClause+`
		  AND ($8::timestamptz IS NULL OR (created_at, id) < ($8, $9::uuid))
		ORDER BY created_at DESC, id DESC
		LIMIT $10`, args...)
}

func (r *ReservationRepository) CountDistinctCustomers(ctx context.Context, filter shared.ReservationFilter) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(DISTINCT customer_id) FROM reservations`+reservationFilterClause, filterArgs(filter)...).Scan(&n)
	if err != nil {
		return 0, classify(r.logger, "failed to count customers", err)
	}
	return n, nil
}

func (r *ReservationRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, payed bool) ([]*reservation.Reservation, error) {
	return r.many(ctx, `
		SELECT `+reservationColumns+` FROM reservations
		WHERE customer_id = $1 AND payed = $2 AND NOT deleted
		ORDER BY created_at DESC, id DESC`, customerID, payed)
}

func filterArgs(f shared.ReservationFilter) []any {
	var kind, status pgtype.Text
	if f.Kind != nil {
		kind = pgtype.Text{String: f.Kind.String(), Valid: true}
	}
	if f.Status != nil {
		status = pgtype.Text{String: f.Status.String(), Valid: true}
	}
	var payed pgtype.Bool
	if f.Payed != nil {
		payed = pgtype.Bool{Bool: *f.Payed, Valid: true}
	}
	return []any{
		kind, status, payed,
		pgconv.UUIDPtrToPgtype(f.ResourceID), pgconv.UUIDPtrToPgtype(f.CustomerID),
		pgconv.TimePtrToPgtype(f.StartFrom), pgconv.TimePtrToPgtype(f.StartBefore),
	}
}

func (r *ReservationRepository) one(ctx context.Context, query string, args ...any) (*reservation.Reservation, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, classify(r.logger, "failed to query reservation", err)
	}
	res, err := pgx.CollectExactlyOneRow(rows, scanReservation)
	if err != nil {
		return nil, classify(r.logger, "reservation not found", err)
	}
	return res, nil
}

func (r *ReservationRepository) many(ctx context.Context, query string, args ...any) ([]*reservation.Reservation, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, classify(r.logger, "failed to query reservations", err)
	}
	list, err := pgx.CollectRows(rows, scanReservation)
	if err != nil {
		return nil, classify(r.logger, "failed to scan reservations", err)
	}
	return list, nil
}

func scanReservation(row pgx.CollectableRow) (*reservation.Reservation, error) {
	var (
		s          reservation.Snapshot
		kind       string
		status     string
		end        pgtype.Timestamptz
		priceCents int64
		start      time.Time
	)
	err := row.Scan(&s.ID, &kind, &s.CustomerID, &s.ResourceID, &start, &end, &s.Occupancy, &status,
		&priceCents, &s.DurationHours, &s.Payed, &s.WalkIn, &s.Note, &s.Deleted, &s.Version, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.Kind = reservation.Kind(kind)
	s.Status = reservation.Status(status)
	s.Start = start
	s.End = pgconv.TimePtrFromPgtype(end)
	s.TotalPrice = money.FromCents(priceCents)
	return reservation.Reconstruct(s), nil
}
