package queries

import (
	"reflect"
	"time"

	"resort-engine/internal/domain/billing"
	"resort-engine/internal/domain/reservation"
	"resort-engine/internal/domain/resource"
	"resort-engine/internal/domain/shared/money"
	"resort-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// ReservationView represents read-optimized reservation data
type ReservationView struct {
	ID            uuid.UUID  `json:"id"`
	Kind          string     `json:"kind"`
	CustomerID    uuid.UUID  `json:"customer_id"`
	ResourceID    uuid.UUID  `json:"resource_id"`
	Start         time.Time  `json:"start"`
	End           *time.Time `json:"end,omitempty"`
	Occupancy     int        `json:"occupancy"`
	Status        string     `json:"status"`
	TotalPrice    string     `json:"total_price"`
	DurationHours int64      `json:"duration_hours,omitempty"`
	Payed         bool       `json:"payed"`
	WalkIn        bool       `json:"walk_in"`
	Note          string     `json:"note,omitempty"`
	Version       int64      `json:"version"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type ReservationPage struct {
	Items []*ReservationView `json:"items"`
	// DistinctCustomers counts customers across the whole filter, not just
	// this page.
	DistinctCustomers int    `json:"distinct_customers"`
	NextCursor        string `json:"next_cursor,omitempty"`
}

// ResourceView represents read-optimized resource data
type ResourceView struct {
	ID         uuid.UUID  `json:"id"`
	Kind       string     `json:"kind"`
	Name       string     `json:"name"`
	RoomTypeID *uuid.UUID `json:"room_type_id,omitempty"`
	Capacity   int        `json:"capacity"`
	Status     string     `json:"status"`
	HourlyRate string     `json:"hourly_rate,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type RateCardView struct {
	ResourceID uuid.UUID         `json:"resource_id"`
	Weekly     map[string]string `json:"weekly,omitempty"`
	Overrides  []OverrideView    `json:"overrides"`
}

type OverrideView struct {
	ID        uuid.UUID `json:"id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Price     string    `json:"price"`
}

type InvoiceView struct {
	InvoiceID   uuid.UUID      `json:"invoice_id"`
	InvoiceType string         `json:"invoice_type"`
	Amount      string         `json:"amount"`
	Paid        bool           `json:"paid"`
	Details     InvoiceDetails `json:"details"`
}

type InvoiceDetails struct {
	ResourceID uuid.UUID  `json:"resource_id"`
	Status     string     `json:"status"`
	Start      time.Time  `json:"start"`
	End        *time.Time `json:"end,omitempty"`
	Occupancy  int        `json:"occupancy"`
	CreatedAt  time.Time  `json:"created_at"`
}

type PaymentView struct {
	ID          uuid.UUID `json:"id"`
	InvoiceID   uuid.UUID `json:"invoice_id"`
	InvoiceType string    `json:"invoice_type"`
	Amount      string    `json:"amount"`
	Method      string    `json:"method"`
	PaidAt      time.Time `json:"paid_at"`
}

var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: money.Money{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				m, ok := src.(money.Money)
				if !ok {
					return nil, errs.New("money converter got " + reflect.TypeOf(src).String())
				}
				return m.String(), nil
			},
		},
	},
}

// project copies the fields of src that dst shares by name.
func project(dst, src any) error {
	if err := copier.CopyWithOption(dst, src, copyOption); err != nil {
		return errs.Wrapf(err, "project %T into %T", src, dst)
	}
	return nil
}

func ToReservationView(r *reservation.Reservation) (*ReservationView, error) {
	v := &ReservationView{}
	if err := project(v, r.Snapshot()); err != nil {
		return nil, err
	}
	return v, nil
}

func ToResourceView(res *resource.Resource) (*ResourceView, error) {
	v := &ResourceView{}
	s := res.Snapshot()
	if err := project(v, s); err != nil {
		return nil, err
	}
	v.RoomTypeID = nil
	if s.RoomTypeID != uuid.Nil {
		id := s.RoomTypeID
		v.RoomTypeID = &id
	}
	if s.Kind.Scheme() != resource.SchemeHourly {
		v.HourlyRate = ""
	}
	return v, nil
}

func ToInvoiceView(inv billing.Invoice) (InvoiceView, error) {
	v := InvoiceView{
		InvoiceID:   inv.ID,
		InvoiceType: inv.Type.String(),
		Amount:      inv.Amount.String(),
		Paid:        inv.Paid,
	}
	if err := project(&v.Details, inv.Details); err != nil {
		return InvoiceView{}, err
	}
	return v, nil
}

func ToPaymentView(p *billing.Payment) PaymentView {
	return PaymentView{
		ID:          p.ID(),
		InvoiceID:   p.InvoiceID(),
		InvoiceType: p.InvoiceType().String(),
		Amount:      p.Amount().String(),
		Method:      p.Method().String(),
		PaidAt:      p.PaidAt(),
	}
}

func ToOverrideView(o resource.Override) OverrideView {
	return OverrideView{
		ID:        o.ID(),
		StartDate: o.StartDate().Format(time.DateOnly),
		EndDate:   o.EndDate().Format(time.DateOnly),
		Price:     o.Price().String(),
	}
}
