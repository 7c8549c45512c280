package resource

import (
	"strings"
	"time"

	"resort-engine/internal/domain/shared/money"
	"resort-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrResourceNotFound    = errs.NotFound("resource not found")
	ErrResourceUnavailable = errs.Conflict("resource unavailable")
	ErrEmptyResourceName   = errs.Validation("resource name cannot be empty")
	ErrResourceNameTooLong = errs.Validation("resource name is too long (max 255 characters)")
	ErrInvalidCapacity     = errs.Validation("capacity must be positive")
	ErrRoomTypeRequired    = errs.Validation("room type is required for rooms")
	ErrHourlyRateRequired  = errs.Validation("hourly rate must be positive for hourly-priced resources")
)

const MaxResourceNameLength = 255

type Resource struct {
	id         uuid.UUID
	kind       Kind
	name       string
	roomTypeID uuid.UUID
	capacity   int
	status     Status
	hourlyRate money.Money
	deleted    bool
	createdAt  time.Time
	updatedAt  time.Time
}

type Spec struct {
	Kind       Kind
	Name       string
	RoomTypeID uuid.UUID
	Capacity   int
	Status     Status
	HourlyRate money.Money
}

func NewResource(id uuid.UUID, spec Spec, now time.Time) (*Resource, error) {
	if !spec.Kind.IsValid() {
		return nil, ErrUnknownKind
	}
	if err := validateResourceName(spec.Name); err != nil {
		return nil, err
	}
	if spec.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if spec.Kind == KindRoom && spec.RoomTypeID == uuid.Nil {
		return nil, ErrRoomTypeRequired
	}
	if spec.Kind.Scheme() == SchemeHourly && !spec.HourlyRate.IsPositive() {
		return nil, ErrHourlyRateRequired
	}
	status := spec.Status
	if status == "" {
		status = StatusAvailable
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Resource{
		id:         id,
		kind:       spec.Kind,
		name:       strings.TrimSpace(spec.Name),
		roomTypeID: spec.RoomTypeID,
		capacity:   spec.Capacity,
		status:     status,
		hourlyRate: spec.HourlyRate,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

type Snapshot struct {
	ID         uuid.UUID
	Kind       Kind
	Name       string
	RoomTypeID uuid.UUID
	Capacity   int
	Status     Status
	HourlyRate money.Money
	Deleted    bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func Reconstruct(s Snapshot) *Resource {
	return &Resource{
		id:         s.ID,
		kind:       s.Kind,
		name:       s.Name,
		roomTypeID: s.RoomTypeID,
		capacity:   s.Capacity,
		status:     s.Status,
		hourlyRate: s.HourlyRate,
		deleted:    s.Deleted,
		createdAt:  s.CreatedAt,
		updatedAt:  s.UpdatedAt,
	}
}

func (r *Resource) Snapshot() Snapshot {
	return Snapshot{
		ID:         r.id,
		Kind:       r.kind,
		Name:       r.name,
		RoomTypeID: r.roomTypeID,
		Capacity:   r.capacity,
		Status:     r.status,
		HourlyRate: r.hourlyRate,
		Deleted:    r.deleted,
		CreatedAt:  r.createdAt,
		UpdatedAt:  r.updatedAt,
	}
}

// EnsureBookable rejects soft-deleted and out-of-service resources.
func (r *Resource) EnsureBookable() error {
	if r.deleted {
		return ErrResourceNotFound
	}
	if r.status != StatusAvailable {
		return errs.Wrapf(ErrResourceUnavailable, "%s %s is %s", r.kind, r.id, r.status)
	}
	return nil
}

func (r *Resource) Fits(occupancy int) bool {
	return occupancy <= r.capacity
}

func (r *Resource) ChangeStatus(status Status, now time.Time) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	r.status = status
	r.updatedAt = now
	return nil
}

// Revise replaces the mutable attributes. Kind and room type are fixed.
func (r *Resource) Revise(name string, capacity int, status Status, hourlyRate money.Money, now time.Time) error {
	if r.deleted {
		return ErrResourceNotFound
	}
	if err := validateResourceName(name); err != nil {
		return err
	}
	if capacity <= 0 {
		return ErrInvalidCapacity
	}
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	if r.kind.Scheme() == SchemeHourly && !hourlyRate.IsPositive() {
		return ErrHourlyRateRequired
	}
	r.name = strings.TrimSpace(name)
	r.capacity = capacity
	r.status = status
	r.hourlyRate = hourlyRate
	r.updatedAt = now
	return nil
}

func (r *Resource) SoftDelete(now time.Time) error {
	if r.deleted {
		return ErrResourceNotFound
	}
	r.deleted = true
	r.updatedAt = now
	return nil
}

func validateResourceName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}

func (r *Resource) ID() uuid.UUID           { return r.id }
func (r *Resource) Kind() Kind              { return r.kind }
func (r *Resource) Name() string            { return r.name }
func (r *Resource) RoomTypeID() uuid.UUID   { return r.roomTypeID }
func (r *Resource) Capacity() int           { return r.capacity }
func (r *Resource) Status() Status          { return r.status }
func (r *Resource) HourlyRate() money.Money { return r.hourlyRate }
func (r *Resource) IsDeleted() bool         { return r.deleted }
func (r *Resource) CreatedAt() time.Time    { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time    { return r.updatedAt }
