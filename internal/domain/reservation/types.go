package reservation

import (
	"resort-engine/internal/domain/resource"
	"resort-engine/internal/pkg/errs"
)

// Kind names the four reservable offerings. It doubles as the invoice type.
type Kind string

const (
	KindBooking         Kind = "booking"
	KindHallReservation Kind = "hall_reservation"
	KindPoolVisit       Kind = "pool_visit"
	KindRestaurantVisit Kind = "restaurant_visit"
)

var ErrUnknownKind = errs.Validation("unknown reservation kind")

var kindResources = map[Kind]resource.Kind{
	KindBooking:         resource.KindRoom,
	KindHallReservation: resource.KindHall,
	KindPoolVisit:       resource.KindPool,
	KindRestaurantVisit: resource.KindRestaurant,
}

func AllKinds() []Kind {
	return []Kind{KindBooking, KindPoolVisit, KindRestaurantVisit, KindHallReservation}
}

func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := kindResources[k]; !ok {
		return "", ErrUnknownKind
	}
	return k, nil
}

func KindFor(rk resource.Kind) (Kind, error) {
	for k, r := range kindResources {
		if r == rk {
			return k, nil
		}
	}
	return "", ErrUnknownKind
}

func (k Kind) String() string {
	return string(k)
}

func (k Kind) ResourceKind() resource.Kind {
	return kindResources[k]
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusReserved   Status = "reserved"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
)

var ErrUnknownStatus = errs.Validation("unknown reservation status")

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrUnknownStatus
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusReserved, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	default:
		return false
	}
}

type Action string

const (
	ActionAccept   Action = "accept"
	ActionCancel   Action = "cancel"
	ActionCheckIn  Action = "check_in"
	ActionCheckOut Action = "check_out"
)

var ErrUnknownAction = errs.Validation("unknown transition")

func ParseAction(s string) (Action, error) {
	a := Action(s)
	switch a {
	case ActionAccept, ActionCancel, ActionCheckIn, ActionCheckOut:
		return a, nil
	default:
		return "", ErrUnknownAction
	}
}
