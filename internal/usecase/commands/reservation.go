package commands

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"resort-engine/internal/domain/customer"
	"resort-engine/internal/domain/pricing"
	"resort-engine/internal/domain/reservation"
	"resort-engine/internal/domain/resource"
	"resort-engine/internal/domain/shared/interval"
	"resort-engine/internal/domain/shared/money"
	"resort-engine/internal/pkg/clock"
	"resort-engine/internal/pkg/errs"
	"resort-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// ReservationRequest describes a reservation to quote or create.
type ReservationRequest struct {
	Kind       reservation.Kind
	ResourceID uuid.UUID
	// RoomTypeID selects the first fitting room of the type when ResourceID
	// is empty. Bookings only.
	RoomTypeID uuid.UUID
	CustomerID uuid.UUID
	Start      time.Time
	End        *time.Time
	Occupancy  int
	Note       string
	WalkIn     bool
}

type Quote struct {
	Kind       reservation.Kind
	ResourceID uuid.UUID
	Start      time.Time
	End        time.Time
	Occupancy  int
	Price      money.Money
}

type ReservationCommands interface {
	CheckAndPrice(ctx context.Context, actor shared.Actor, req ReservationRequest) (*Quote, error)
	CreateReservation(ctx context.Context, actor shared.Actor, req ReservationRequest) (*reservation.Reservation, error)
	Transition(ctx context.Context, actor shared.Actor, kind reservation.Kind, id uuid.UUID, action reservation.Action) (*reservation.Reservation, error)
	DeleteReservation(ctx context.Context, actor shared.Actor, kind reservation.Kind, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow      shared.UnitOfWork
	policies *reservation.Policies
	resolver *pricing.Resolver
	quotes   shared.QuoteCache
	notifier shared.Notifier
	metrics  shared.Metrics
	clock    clock.Clock
	logger   *slog.Logger
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	policies *reservation.Policies,
	resolver *pricing.Resolver,
	quotes shared.QuoteCache,
	notifier shared.Notifier,
	metrics shared.Metrics,
	clock clock.Clock,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:      uow,
		policies: policies,
		resolver: resolver,
		quotes:   quotes,
		notifier: notifier,
		metrics:  metrics,
		clock:    clock,
		logger:   logger,
	}
}

func (c *reservationCommandsImpl) draft(actor shared.Actor, req ReservationRequest) reservation.Draft {
	return reservation.Draft{
		Kind:       req.Kind,
		CustomerID: actor.OnBehalfOf(req.CustomerID),
		Start:      req.Start,
		End:        req.End,
		Occupancy:  req.Occupancy,
		Note:       reservation.NewNote(req.Note),
		WalkIn:     req.WalkIn,
	}
}

func (c *reservationCommandsImpl) CheckAndPrice(ctx context.Context, actor shared.Actor, req ReservationRequest) (*Quote, error) {
	policy, err := c.policies.For(req.Kind)
	if err != nil {
		return nil, err
	}
	now := stamp(c.clock)
	d := c.draft(actor, req)
	if err := policy.ValidateRequest(d, now); err != nil {
		return nil, err
	}
	span := policy.RequestSpan(d.Start, d.End)

	var quote *Quote
	err = c.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		candidates, err := c.candidates(ctx, tx, policy, req, false)
		if err != nil {
			return err
		}
		chosen, err := policy.FirstFit(candidates, span, d.Occupancy, c.loader(ctx, tx, policy), now)
		if err != nil {
			return err
		}

		key := shared.QuoteKey{ResourceID: chosen.ID(), Span: span, Occupancy: d.Occupancy}
		price, token, hit := c.quotes.Get(ctx, key)
		if !hit {
			price, err = resolvePrice(ctx, tx, c.resolver, chosen, span, d.Occupancy)
			if err != nil {
				return err
			}
			c.quotes.Put(ctx, token, price)
		}

		quote = &Quote{
			Kind:       req.Kind,
			ResourceID: chosen.ID(),
			Start:      span.Start(),
			End:        span.End(),
			Occupancy:  d.Occupancy,
			Price:      price,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return quote, nil
}

// CreateReservation locks the candidate resources, re-checks availability
// against the stored reservations and inserts, all in one transaction. The
// storage exclusion constraint backs the check for exclusive kinds.
func (c *reservationCommandsImpl) CreateReservation(ctx context.Context, actor shared.Actor, req ReservationRequest) (*reservation.Reservation, error) {
	policy, err := c.policies.For(req.Kind)
	if err != nil {
		return nil, err
	}
	now := stamp(c.clock)
	d := c.draft(actor, req)
	if err := policy.ValidateRequest(d, now); err != nil {
		return nil, err
	}
	span := policy.RequestSpan(d.Start, d.End)

	var (
		created *reservation.Reservation
		owner   *customer.Customer
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cust, err := tx.Customers().FindByID(ctx, d.CustomerID)
		if err != nil {
			return translate(err, customer.ErrCustomerNotFound)
		}

		candidates, err := c.candidates(ctx, tx, policy, req, true)
		if err != nil {
			return err
		}
		chosen, err := policy.FirstFit(candidates, span, d.Occupancy, c.loader(ctx, tx, policy), now)
		if err != nil {
			return err
		}

		price, err := resolvePrice(ctx, tx, c.resolver, chosen, span, d.Occupancy)
		if err != nil {
			return err
		}

		r, err := reservation.NewReservation(policy, d, chosen.ID(), price, now)
		if err != nil {
			return err
		}
		if err := tx.Reservations().Create(ctx, r); err != nil {
			return translate(err, nil)
		}
		created, owner = r, cust
		return nil
	})
	if err != nil {
		c.metrics.ReservationRejected(req.Kind.String(), rejectReason(err))
		c.logger.DebugContext(ctx, "reservation rejected",
			"kind", req.Kind,
			"resource_id", req.ResourceID,
			"error", err.Error())
		return nil, err
	}

	c.metrics.ReservationCreated(created.Kind().String())
	c.logger.InfoContext(ctx, "reservation created",
		"kind", created.Kind(),
		"reservation_id", created.ID(),
		"resource_id", created.ResourceID(),
		"customer_id", created.CustomerID())
	c.notifier.Notify(ctx, reservationNotice(shared.TemplateReservationCreated, owner, created))
	return created, nil
}

func (c *reservationCommandsImpl) Transition(ctx context.Context, actor shared.Actor, kind reservation.Kind, id uuid.UUID, action reservation.Action) (*reservation.Reservation, error) {
	policy, err := c.policies.For(kind)
	if err != nil {
		return nil, err
	}
	if action == reservation.ActionAccept && !actor.IsStaff() {
		return nil, ErrStaffOnly
	}
	now := stamp(c.clock)

	var (
		updated *reservation.Reservation
		owner   *customer.Customer
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Reservations().GetForUpdate(ctx, kind, id)
		if err != nil {
			return translate(err, reservation.ErrReservationNotFound)
		}
		if !actor.CanSee(r) {
			return reservation.ErrReservationNotFound
		}

		in := reservation.TransitionInput{
			Now: now,
			Price: func(span interval.Interval, occupancy int) (money.Money, error) {
				res, err := tx.Resources().FindByID(ctx, r.ResourceID())
				if err != nil {
					return money.Zero(), translate(err, resource.ErrResourceNotFound)
				}
				return resolvePrice(ctx, tx, c.resolver, res, span, occupancy)
			},
			Reseat: func(span interval.Interval) error {
				// same lock CreateReservation takes, so seats cannot be sold twice
				res, err := tx.Resources().LockByID(ctx, r.ResourceID())
				if err != nil {
					return translate(err, resource.ErrResourceNotFound)
				}
				existing, err := c.loader(ctx, tx, policy)(res, policy.ScanWindow(span))
				if err != nil {
					return err
				}
				return policy.CheckReseat(r, res, span, existing, now)
			},
		}

		if err := policy.Apply(r, action, in); err != nil {
			return err
		}
		if err := tx.Reservations().Update(ctx, r); err != nil {
			return translate(err, reservation.ErrReservationNotFound)
		}

		// notification only; a missing customer row must not fail the transition
		if cust, err := tx.Customers().FindByID(ctx, r.CustomerID()); err == nil {
			owner = cust
		}
		updated = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.metrics.TransitionApplied(kind.String(), string(action))
	c.logger.InfoContext(ctx, "reservation transition applied",
		"kind", kind,
		"reservation_id", id,
		"action", action,
		"status", updated.Status())
	if owner != nil {
		c.notifier.Notify(ctx, reservationNotice(shared.TemplateReservationUpdated, owner, updated))
	}
	return updated, nil
}

func (c *reservationCommandsImpl) DeleteReservation(ctx context.Context, actor shared.Actor, kind reservation.Kind, id uuid.UUID) error {
	if _, err := c.policies.For(kind); err != nil {
		return err
	}
	now := stamp(c.clock)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Reservations().GetForUpdate(ctx, kind, id)
		if err != nil {
			return translate(err, reservation.ErrReservationNotFound)
		}
		if !actor.CanSee(r) {
			return reservation.ErrReservationNotFound
		}
		if err := r.SoftDelete(now); err != nil {
			return err
		}
		return translate(tx.Reservations().Update(ctx, r), reservation.ErrReservationNotFound)
	})
	if err != nil {
		return err
	}

	c.logger.InfoContext(ctx, "reservation deleted", "kind", kind, "reservation_id", id)
	return nil
}

// candidates returns the resources a request may land on, ordered by id.
// With lock set the rows stay locked until the transaction ends.
func (c *reservationCommandsImpl) candidates(ctx context.Context, tx shared.Tx, policy *reservation.Policy, req ReservationRequest, lock bool) ([]*resource.Resource, error) {
	if req.ResourceID == uuid.Nil && req.RoomTypeID != uuid.Nil && policy.Kind() == reservation.KindBooking {
		var (
			rooms []*resource.Resource
			err   error
		)
		if lock {
			rooms, err = tx.Resources().LockByRoomType(ctx, req.RoomTypeID)
		} else {
			kind := resource.KindRoom
			rooms, err = tx.Resources().List(ctx, shared.ResourceFilter{Kind: &kind, RoomTypeID: &req.RoomTypeID})
			slices.SortFunc(rooms, func(a, b *resource.Resource) int {
				return strings.Compare(a.ID().String(), b.ID().String())
			})
		}
		if err != nil {
			return nil, err
		}
		if len(rooms) == 0 {
			return nil, errs.Wrapf(resource.ErrResourceNotFound, "no rooms of type %s", req.RoomTypeID)
		}
		return rooms, nil
	}

	var (
		res *resource.Resource
		err error
	)
	if lock {
		res, err = tx.Resources().LockByID(ctx, req.ResourceID)
	} else {
		res, err = tx.Resources().FindByID(ctx, req.ResourceID)
	}
	if err != nil {
		return nil, translate(err, resource.ErrResourceNotFound)
	}
	return []*resource.Resource{res}, nil
}

func (c *reservationCommandsImpl) loader(ctx context.Context, tx shared.Tx, policy *reservation.Policy) reservation.Loader {
	statuses := policy.OccupyingStatuses()
	return func(res *resource.Resource, window interval.Interval) ([]*reservation.Reservation, error) {
		return tx.Reservations().Occupying(ctx, res.ID(), statuses, window)
	}
}

func reservationNotice(template string, owner *customer.Customer, r *reservation.Reservation) shared.Notification {
	data := map[string]any{
		"name":           owner.FullName(),
		"reservation_id": r.ID().String(),
		"kind":           r.Kind().String(),
		"status":         r.Status().String(),
		"resource_id":    r.ResourceID().String(),
		"start":          r.Start().Format(time.RFC3339),
		"total_price":    r.TotalPrice().String(),
		"occupancy":      r.Occupancy(),
	}
	if r.End() != nil {
		data["end"] = r.End().Format(time.RFC3339)
	}
	return shared.Notification{
		Recipient: owner.Email().Value(),
		Template:  template,
		Locale:    owner.Locale().String(),
		Data:      data,
	}
}
