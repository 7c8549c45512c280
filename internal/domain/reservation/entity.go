package reservation

import (
	"time"

	"resort-engine/internal/domain/resource"
	"resort-engine/internal/domain/shared/interval"
	"resort-engine/internal/domain/shared/money"
	"resort-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.NotFound("reservation not found")
	ErrCustomerRequired    = errs.Validation("customer is required")
	ErrInvalidOccupancy    = errs.Validation("occupancy must be at least one guest")
	ErrStartInPast         = errs.Refine(interval.ErrInvalidInterval, errs.KindTemporal, "start is in the past")
	ErrResourceUnavailable = resource.ErrResourceUnavailable
	ErrCapacityExceeded    = errs.Conflict("capacity exceeded")
	ErrReservationConflict = errs.Conflict("reservation conflicts with a concurrent change")
	ErrAlreadyCancelled    = errs.Conflict("reservation is already cancelled")
	ErrInvalidTransition   = errs.Conflict("transition not allowed from current status")
	ErrCheckInTooEarly     = errs.Temporal("check-in is too early")
	ErrCannotCancelLate    = errs.Temporal("too late to cancel")
	ErrAlreadyPaid         = errs.Conflict("invoice already paid")
	ErrAmountMismatch      = errs.Refine(money.ErrInvalidAmount, errs.KindValidation, "amount does not match invoice total")
)

// TransitionInput carries what a transition may need beyond the record.
// The hooks run after the lifecycle guards pass and before r changes.
type TransitionInput struct {
	Now time.Time
	// Price bills a check-out over the span actually held.
	Price func(span interval.Interval, occupancy int) (money.Money, error)
	// Reseat confirms capacity when a check-in moves the start earlier.
	Reseat func(span interval.Interval) error
}

type Reservation struct {
	id            uuid.UUID
	kind          Kind
	customerID    uuid.UUID
	resourceID    uuid.UUID
	start         time.Time
	end           *time.Time
	occupancy     int
	status        Status
	totalPrice    money.Money
	durationHours int64
	payed         bool
	walkIn        bool
	note          Note
	deleted       bool
	version       int64
	createdAt     time.Time
	updatedAt     time.Time
}

func NewReservation(policy *Policy, d Draft, resourceID uuid.UUID, price money.Money, now time.Time) (*Reservation, error) {
	if err := policy.ValidateRequest(d, now); err != nil {
		return nil, err
	}
	if resourceID == uuid.Nil {
		return nil, resource.ErrResourceNotFound
	}

	var end *time.Time
	if d.End != nil && policy.endAllowed {
		e := *d.End
		end = &e
	}

	return &Reservation{
		id:         uuid.New(),
		kind:       policy.kind,
		customerID: d.CustomerID,
		resourceID: resourceID,
		start:      d.Start,
		end:        end,
		occupancy:  d.Occupancy,
		status:     policy.initial,
		totalPrice: price,
		walkIn:     d.WalkIn,
		note:       d.Note,
		version:    1,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// Snapshot is the persisted shape of a reservation.
type Snapshot struct {
	ID            uuid.UUID
	Kind          Kind
	CustomerID    uuid.UUID
	ResourceID    uuid.UUID
	Start         time.Time
	End           *time.Time
	Occupancy     int
	Status        Status
	TotalPrice    money.Money
	DurationHours int64
	Payed         bool
	WalkIn        bool
	Note          string
	Deleted       bool
	Version       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func Reconstruct(s Snapshot) *Reservation {
	var end *time.Time
	if s.End != nil {
		e := *s.End
		end = &e
	}
	return &Reservation{
		id:            s.ID,
		kind:          s.Kind,
		customerID:    s.CustomerID,
		resourceID:    s.ResourceID,
		start:         s.Start,
		end:           end,
		occupancy:     s.Occupancy,
		status:        s.Status,
		totalPrice:    s.TotalPrice,
		durationHours: s.DurationHours,
		payed:         s.Payed,
		walkIn:        s.WalkIn,
		note:          Note{value: s.Note},
		deleted:       s.Deleted,
		version:       s.Version,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
	}
}

func (r *Reservation) Snapshot() Snapshot {
	var end *time.Time
	if r.end != nil {
		e := *r.end
		end = &e
	}
	return Snapshot{
		ID:            r.id,
		Kind:          r.kind,
		CustomerID:    r.customerID,
		ResourceID:    r.resourceID,
		Start:         r.start,
		End:           end,
		Occupancy:     r.occupancy,
		Status:        r.status,
		TotalPrice:    r.totalPrice,
		DurationHours: r.durationHours,
		Payed:         r.payed,
		WalkIn:        r.walkIn,
		Note:          r.note.String(),
		Deleted:       r.deleted,
		Version:       r.version,
		CreatedAt:     r.createdAt,
		UpdatedAt:     r.updatedAt,
	}
}

func (r *Reservation) SoftDelete(now time.Time) error {
	if r.deleted {
		return ErrReservationNotFound
	}
	r.deleted = true
	r.updatedAt = now
	return nil
}

// Settle marks the reservation paid. Externally priced reservations take the
// settled amount as their total.
func (r *Reservation) Settle(amount money.Money, now time.Time) error {
	if r.deleted {
		return ErrReservationNotFound
	}
	if r.payed {
		return ErrAlreadyPaid
	}
	if !amount.IsPositive() {
		return money.ErrInvalidAmount
	}
	if r.kind.ResourceKind().Scheme() == resource.SchemeExternal {
		r.totalPrice = amount
	} else if amount != r.totalPrice {
		return errs.Wrapf(ErrAmountMismatch, "expected %s, got %s", r.totalPrice, amount)
	}
	r.payed = true
	r.updatedAt = now
	return nil
}

func (r *Reservation) OwnedBy(customerID uuid.UUID) bool {
	return r.customerID == customerID
}

// Bump is called by storage after a successful versioned write.
func (r *Reservation) Bump() {
	r.version++
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) Kind() Kind              { return r.kind }
func (r *Reservation) CustomerID() uuid.UUID   { return r.customerID }
func (r *Reservation) ResourceID() uuid.UUID   { return r.resourceID }
func (r *Reservation) Start() time.Time        { return r.start }
func (r *Reservation) End() *time.Time         { return r.end }
func (r *Reservation) Occupancy() int          { return r.occupancy }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) TotalPrice() money.Money { return r.totalPrice }
func (r *Reservation) DurationHours() int64    { return r.durationHours }
func (r *Reservation) IsPayed() bool           { return r.payed }
func (r *Reservation) IsWalkIn() bool          { return r.walkIn }
func (r *Reservation) Note() Note              { return r.note }
func (r *Reservation) IsDeleted() bool         { return r.deleted }
func (r *Reservation) Version() int64          { return r.version }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time    { return r.updatedAt }
