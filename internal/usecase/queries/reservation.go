package queries

import (
	"context"
	"time"

	"resort-engine/internal/domain/reservation"
	"resort-engine/internal/infra"
	"resort-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// ReservationListInput filters a reservation listing. Nil fields do not
// filter.
type ReservationListInput struct {
	Kind        *reservation.Kind
	Status      *reservation.Status
	Payed       *bool
	ResourceID  *uuid.UUID
	CustomerID  *uuid.UUID
	StartFrom   *time.Time
	StartBefore *time.Time
	After       string
	Limit       int
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, kind reservation.Kind, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, actor shared.Actor, in ReservationListInput) (*ReservationPage, error)
}

type reservationQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewReservationQueries(uow shared.UnitOfWork) ReservationQueries {
	return &reservationQueriesImpl{uow: uow}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, kind reservation.Kind, id uuid.UUID) (*ReservationView, error) {
	var view *ReservationView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Reservations().Get(ctx, kind, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return reservation.ErrReservationNotFound
			}
			return err
		}
		if !actor.CanSee(r) {
			return reservation.ErrReservationNotFound
		}
		view, err = ToReservationView(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// List pages newest first. Customers only ever see their own reservations.
func (q *reservationQueriesImpl) List(ctx context.Context, actor shared.Actor, in ReservationListInput) (*ReservationPage, error) {
	after, err := DecodeAfterCursor(in.After)
	if err != nil {
		return nil, err
	}
	limit := ValidateLimit(in.Limit)

	filter := shared.ReservationFilter{
		Kind:        in.Kind,
		Status:      in.Status,
		Payed:       in.Payed,
		ResourceID:  in.ResourceID,
		CustomerID:  in.CustomerID,
		StartFrom:   in.StartFrom,
		StartBefore: in.StartBefore,
	}
	if !actor.IsStaff() {
		filter.CustomerID = &actor.ID
	}

	page := &ReservationPage{Items: []*ReservationView{}}
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		distinct, err := tx.Reservations().CountDistinctCustomers(ctx, filter)
		if err != nil {
			return err
		}

		paged := filter
		paged.After = after
		// one extra row tells whether another page exists
		paged.Limit = limit + 1
		rows, err := tx.Reservations().List(ctx, paged)
		if err != nil {
			return err
		}

		if len(rows) > limit {
			rows = rows[:limit]
			last := rows[len(rows)-1]
			page.NextCursor = EncodeAfterCursor(last.CreatedAt(), last.ID())
		}
		for _, r := range rows {
			view, err := ToReservationView(r)
			if err != nil {
				return err
			}
			page.Items = append(page.Items, view)
		}
		page.DistinctCustomers = distinct
		return nil
	})
	if err != nil {
		return nil, err
	}
	return page, nil
}
