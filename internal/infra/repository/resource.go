package repository

import (
	"context"
	"log/slog"
	"time"

	"resort-engine/internal/domain/resource"
	"resort-engine/internal/domain/shared/money"
	"resort-engine/internal/infra/db"
	"resort-engine/internal/pkg/pgconv"
	"resort-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const resourceColumns = `id, kind, name, room_type_id, capacity, status, hourly_rate_cents, deleted, created_at, updated_at`

type ResourceRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewResourceRepository(dbtx db.DBTX, logger *slog.Logger) *ResourceRepository {
	return &ResourceRepository{db: dbtx, logger: logger}
}

func (r *ResourceRepository) Create(ctx context.Context, res *resource.Resource) error {
	s := res.Snapshot()
	_, err := r.db.Exec(ctx, `
		INSERT INTO resources (`+resourceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		s.ID, s.Kind.String(), s.Name, pgconv.UUIDToPgtype(s.RoomTypeID), s.Capacity, s.Status.String(),
		s.HourlyRate.Cents(), s.Deleted, s.CreatedAt, s.UpdatedAt,
	)
	return classify(r.logger, "failed to create resource", err)
}

func (r *ResourceRepository) Update(ctx context.Context, res *resource.Resource) error {
	s := res.Snapshot()
	tag, err := r.db.Exec(ctx, `
		UPDATE resources
		SET name = $2, capacity = $3, status = $4, hourly_rate_cents = $5, deleted = $6, updated_at = $7
		WHERE id = $1`,
		s.ID, s.Name, s.Capacity, s.Status.String(), s.HourlyRate.Cents(), s.Deleted, s.UpdatedAt,
	)
	if err != nil {
		return classify(r.logger, "failed to update resource", err)
	}
	if tag.RowsAffected() == 0 {
		return classify(r.logger, "resource not found", pgx.ErrNoRows)
	}
	return nil
}

func (r *ResourceRepository) FindByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	return r.one(ctx, `SELECT `+resourceColumns+` FROM resources WHERE id = $1 AND NOT deleted`, id)
}

func (r *ResourceRepository) LockByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	return r.one(ctx, `SELECT `+resourceColumns+` FROM resources WHERE id = $1 AND NOT deleted FOR UPDATE`, id)
}

// LockByRoomType locks in id order so concurrent bookings of one type never deadlock.
func (r *ResourceRepository) LockByRoomType(ctx context.Context, roomTypeID uuid.UUID) ([]*resource.Resource, error) {
	return r.many(ctx, `
		SELECT `+resourceColumns+` FROM resources
		WHERE kind = 'room' AND room_type_id = $1 AND NOT deleted
		ORDER BY id
		FOR UPDATE`, roomTypeID)
}

func (r *ResourceRepository) List(ctx context.Context, filter shared.ResourceFilter) ([]*resource.Resource, error) {
	var kind pgtype.Text
	if filter.Kind != nil {
		kind = pgtype.Text{String: filter.Kind.String(), Valid: true}
	}
	return r.many(ctx, `
		SELECT `+resourceColumns+` FROM resources
		WHERE NOT deleted
		  AND ($1::text IS NULL OR kind = $1)
		  AND ($2::uuid IS NULL OR room_type_id = $2)
		ORDER BY kind, name, id`, kind, pgconv.UUIDPtrToPgtype(filter.RoomTypeID))
}

func (r *ResourceRepository) one(ctx context.Context, query string, args ...any) (*resource.Resource, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, classify(r.logger, "failed to query resource", err)
	}
	res, err := pgx.CollectExactlyOneRow(rows, scanResource)
	if err != nil {
		return nil, classify(r.logger, "resource not found", err)
	}
	return res, nil
}

func (r *ResourceRepository) many(ctx context.Context, query string, args ...any) ([]*resource.Resource, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, classify(r.logger, "failed to query resources", err)
	}
	list, err := pgx.CollectRows(rows, scanResource)
	if err != nil {
		return nil, classify(r.logger, "failed to scan resources", err)
	}
	return list, nil
}

func scanResource(row pgx.CollectableRow) (*resource.Resource, error) {
	var (
		s          resource.Snapshot
		kind       string
		status     string
		roomTypeID pgtype.UUID
		rateCents  int64
		createdAt  time.Time
		updatedAt  time.Time
	)
	if err := row.Scan(&s.ID, &kind, &s.Name, &roomTypeID, &s.Capacity, &status, &rateCents, &s.Deleted, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	s.Kind = resource.Kind(kind)
	s.Status = resource.Status(status)
	s.RoomTypeID = pgconv.UUIDFromPgtype(roomTypeID)
	s.HourlyRate = money.FromCents(rateCents)
	s.CreatedAt = createdAt
	s.UpdatedAt = updatedAt
	return resource.Reconstruct(s), nil
}
