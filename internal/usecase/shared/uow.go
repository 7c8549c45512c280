package shared

import (
	"context"
	"time"

	"resort-engine/internal/domain/billing"
	"resort-engine/internal/domain/customer"
	"resort-engine/internal/domain/reservation"
	"resort-engine/internal/domain/resource"
	"resort-engine/internal/domain/shared/interval"
	"resort-engine/internal/domain/shared/money"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: read-write transaction; retried on serialization failures and deadlocks
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: consistent snapshot for multi-table reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one transaction.
type Tx interface {
	Resources() ResourceRepository
	Pricing() PricingRepository
	Reservations() ReservationRepository
	Payments() PaymentRepository
	Customers() CustomerRepository
	VerificationCodes() VerificationCodeRepository
}

type ResourceRepository interface {
	Create(ctx context.Context, res *resource.Resource) error
	Update(ctx context.Context, res *resource.Resource) error
	FindByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error)
	// LockByID takes a row lock held until the transaction ends.
	LockByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error)
	// LockByRoomType locks every live room of the type, ordered by id.
	LockByRoomType(ctx context.Context, roomTypeID uuid.UUID) ([]*resource.Resource, error)
	List(ctx context.Context, filter ResourceFilter) ([]*resource.Resource, error)
}

type ResourceFilter struct {
	Kind       *resource.Kind
	RoomTypeID *uuid.UUID
}

type PricingRepository interface {
	WeeklyRates(ctx context.Context, resourceID uuid.UUID) (resource.WeeklyRates, error)
	SetWeeklyRate(ctx context.Context, resourceID uuid.UUID, day time.Weekday, price money.Money) error
	Overrides(ctx context.Context, resourceID uuid.UUID) ([]resource.Override, error)
	AddOverride(ctx context.Context, o resource.Override) error
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	// Get hides soft-deleted rows.
	Get(ctx context.Context, kind reservation.Kind, id uuid.UUID) (*reservation.Reservation, error)
	GetForUpdate(ctx context.Context, kind reservation.Kind, id uuid.UUID) (*reservation.Reservation, error)
	// Update writes r if its stored version still equals r.Version().
	Update(ctx context.Context, r *reservation.Reservation) error
	// Occupying returns live rows of the resource in the given statuses with
	// start < window.End and coalesce(end, start) >= window.Start.
	Occupying(ctx context.Context, resourceID uuid.UUID, statuses []reservation.Status, window interval.Interval) ([]*reservation.Reservation, error)
	List(ctx context.Context, filter ReservationFilter) ([]*reservation.Reservation, error)
	CountDistinctCustomers(ctx context.Context, filter ReservationFilter) (int, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, payed bool) ([]*reservation.Reservation, error)
}

// ReservationFilter selects live reservations newest first. After is a
// keyset position (created_at, id); Limit 0 means unbounded.
type ReservationFilter struct {
	Kind        *reservation.Kind
	Status      *reservation.Status
	Payed       *bool
	ResourceID  *uuid.UUID
	CustomerID  *uuid.UUID
	StartFrom   *time.Time
	StartBefore *time.Time
	After       *Keyset
	Limit       int
}

type Keyset struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

type PaymentRepository interface {
	Create(ctx context.Context, p *billing.Payment) error
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*billing.Payment, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, c *customer.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
	Update(ctx context.Context, c *customer.Customer) error
}

type VerificationCodeRepository interface {
	// Upsert replaces any code already issued to the customer.
	Upsert(ctx context.Context, code *customer.VerificationCode) error
	FindByCustomer(ctx context.Context, customerID uuid.UUID) (*customer.VerificationCode, error)
	Delete(ctx context.Context, customerID uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
