package shared

import (
	"resort-engine/internal/domain/customer"
	"resort-engine/internal/domain/reservation"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of an engine operation.
type Actor struct {
	ID   uuid.UUID
	Role customer.Role
}

func StaffActor(id uuid.UUID) Actor {
	return Actor{ID: id, Role: customer.RoleStaff}
}

func CustomerActor(id uuid.UUID) Actor {
	return Actor{ID: id, Role: customer.RoleCustomer}
}

func (a Actor) IsStaff() bool {
	return a.Role == customer.RoleStaff
}

// CanSee reports whether the actor may read or change r. Customers only see
// their own reservations.
func (a Actor) CanSee(r *reservation.Reservation) bool {
	return a.IsStaff() || r.OwnedBy(a.ID)
}

// OnBehalfOf resolves the customer an operation acts for. Staff may name any
// customer; customers always act for themselves.
func (a Actor) OnBehalfOf(customerID uuid.UUID) uuid.UUID {
	if a.IsStaff() && customerID != uuid.Nil {
		return customerID
	}
	return a.ID
}
