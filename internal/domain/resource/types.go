package resource

import "resort-engine/internal/pkg/errs"

type Kind string

const (
	KindRoom       Kind = "room"
	KindHall       Kind = "hall"
	KindPool       Kind = "pool"
	KindRestaurant Kind = "restaurant"
)

var ErrUnknownKind = errs.Validation("unknown resource kind")

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindRoom, KindHall, KindPool, KindRestaurant:
		return true
	default:
		return false
	}
}

func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", ErrUnknownKind
	}
	return k, nil
}

// Mode is the exclusivity rule of a resource.
type Mode string

const (
	// ModeExclusive: one active reservation occupies the whole resource.
	ModeExclusive Mode = "exclusive"
	// ModePooled: concurrent reservations share a numeric capacity.
	ModePooled Mode = "pooled"
)

func (k Kind) Mode() Mode {
	switch k {
	case KindPool, KindRestaurant:
		return ModePooled
	default:
		return ModeExclusive
	}
}

// Scheme is how a resource is priced.
type Scheme string

const (
	SchemeDaily    Scheme = "daily"
	SchemeHourly   Scheme = "hourly"
	SchemeExternal Scheme = "external"
)

func (k Kind) Scheme() Scheme {
	switch k {
	case KindRoom:
		return SchemeDaily
	case KindHall, KindPool:
		return SchemeHourly
	default:
		return SchemeExternal
	}
}

// PerHead reports whether the hourly price is multiplied by the party size.
func (k Kind) PerHead() bool {
	return k == KindPool
}

type Status string

const (
	StatusAvailable   Status = "available"
	StatusMaintenance Status = "maintenance"
	StatusClosed      Status = "closed"
)

var ErrInvalidStatus = errs.Validation("invalid resource status")

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusMaintenance, StatusClosed:
		return true
	default:
		return false
	}
}
