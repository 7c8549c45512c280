package billing

import (
	"time"

	"resort-engine/internal/domain/reservation"
	"resort-engine/internal/domain/shared/money"
	"resort-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvoiceNotFound = errs.NotFound("invoice not found")

type InvoiceRef struct {
	ID   uuid.UUID
	Type InvoiceType
}

// Invoice is the billing projection of a reservation.
type Invoice struct {
	ID      uuid.UUID
	Type    InvoiceType
	Amount  money.Money
	Paid    bool
	Details Details
}

type Details struct {
	ResourceID uuid.UUID
	Status     reservation.Status
	Start      time.Time
	End        *time.Time
	Occupancy  int
	CreatedAt  time.Time
}

func InvoiceOf(r *reservation.Reservation) Invoice {
	return Invoice{
		ID:     r.ID(),
		Type:   InvoiceTypeOf(r.Kind()),
		Amount: r.TotalPrice(),
		Paid:   r.IsPayed(),
		Details: Details{
			ResourceID: r.ResourceID(),
			Status:     r.Status(),
			Start:      r.Start(),
			End:        r.End(),
			Occupancy:  r.Occupancy(),
			CreatedAt:  r.CreatedAt(),
		},
	}
}
