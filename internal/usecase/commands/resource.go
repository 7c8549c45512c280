package commands

import (
	"context"
	"log/slog"
	"time"

	"resort-engine/internal/domain/resource"
	"resort-engine/internal/domain/shared/money"
	"resort-engine/internal/infra"
	"resort-engine/internal/pkg/clock"
	"resort-engine/internal/pkg/errs"
	"resort-engine/internal/pkg/patch"
	"resort-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrWeeklyRatesRoomsOnly = errs.Validation("weekly rates apply to rooms only")
	ErrNotPriced            = errs.Validation("resource is priced at settlement and takes no price rules")
)

// ResourcePatch carries the attributes to change; nil fields are kept.
type ResourcePatch struct {
	Name       *string
	Capacity   *int
	Status     *resource.Status
	HourlyRate *money.Money
}

type ResourceCommands interface {
	CreateResource(ctx context.Context, spec resource.Spec, weekly resource.WeeklyRates) (*resource.Resource, error)
	UpdateResource(ctx context.Context, id uuid.UUID, p ResourcePatch) (*resource.Resource, error)
	DeleteResource(ctx context.Context, id uuid.UUID) error
	SetWeeklyRate(ctx context.Context, id uuid.UUID, day time.Weekday, price money.Money) error
	AddOverride(ctx context.Context, id uuid.UUID, startDate, endDate time.Time, price money.Money) (resource.Override, error)
}

type resourceCommandsImpl struct {
	uow    shared.UnitOfWork
	quotes shared.QuoteCache
	clock  clock.Clock
	logger *slog.Logger
}

func NewResourceCommands(uow shared.UnitOfWork, quotes shared.QuoteCache, clock clock.Clock, logger *slog.Logger) ResourceCommands {
	return &resourceCommandsImpl{
		uow:    uow,
		quotes: quotes,
		clock:  clock,
		logger: logger,
	}
}

func (c *resourceCommandsImpl) CreateResource(ctx context.Context, spec resource.Spec, weekly resource.WeeklyRates) (*resource.Resource, error) {
	now := stamp(c.clock)
	res, err := resource.NewResource(uuid.New(), spec, now)
	if err != nil {
		return nil, err
	}
	if len(weekly) > 0 && res.Kind().Scheme() != resource.SchemeDaily {
		return nil, ErrWeeklyRatesRoomsOnly
	}
	for _, price := range weekly {
		if !price.IsPositive() {
			return nil, resource.ErrInvalidRate
		}
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Resources().Create(ctx, res); err != nil {
			return err
		}
		for day, price := range weekly {
			if err := tx.Pricing().SetWeeklyRate(ctx, res.ID(), day, price); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.InfoContext(ctx, "resource created", "kind", res.Kind(), "resource_id", res.ID())
	return res, nil
}

func (c *resourceCommandsImpl) UpdateResource(ctx context.Context, id uuid.UUID, p ResourcePatch) (*resource.Resource, error) {
	now := stamp(c.clock)

	var (
		updated *resource.Resource
		changed bool
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Resources().LockByID(ctx, id)
		if err != nil {
			return translate(err, resource.ErrResourceNotFound)
		}
		updated = res
		changed = patch.Changed(p.Name, res.Name()) ||
			patch.Changed(p.Capacity, res.Capacity()) ||
			patch.Changed(p.Status, res.Status()) ||
			patch.Changed(p.HourlyRate, res.HourlyRate())
		if !changed {
			return nil
		}
		err = res.Revise(
			patch.Coalesce(p.Name, res.Name()),
			patch.Coalesce(p.Capacity, res.Capacity()),
			patch.Coalesce(p.Status, res.Status()),
			patch.Coalesce(p.HourlyRate, res.HourlyRate()),
			now,
		)
		if err != nil {
			return err
		}
		if err := tx.Resources().Update(ctx, res); err != nil {
			return translate(err, resource.ErrResourceNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !changed {
		return updated, nil
	}

	c.quotes.Invalidate(ctx, id)
	c.logger.InfoContext(ctx, "resource updated", "resource_id", id)
	return updated, nil
}

// DeleteResource soft-deletes the resource. Its reservations stay readable.
func (c *resourceCommandsImpl) DeleteResource(ctx context.Context, id uuid.UUID) error {
	now := stamp(c.clock)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Resources().LockByID(ctx, id)
		if err != nil {
			return translate(err, resource.ErrResourceNotFound)
		}
		if err := res.SoftDelete(now); err != nil {
			return err
		}
		return translate(tx.Resources().Update(ctx, res), resource.ErrResourceNotFound)
	})
	if err != nil {
		return err
	}

	c.quotes.Invalidate(ctx, id)
	c.logger.InfoContext(ctx, "resource deleted", "resource_id", id)
	return nil
}

func (c *resourceCommandsImpl) SetWeeklyRate(ctx context.Context, id uuid.UUID, day time.Weekday, price money.Money) error {
	if !price.IsPositive() {
		return resource.ErrInvalidRate
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Resources().LockByID(ctx, id)
		if err != nil {
			return translate(err, resource.ErrResourceNotFound)
		}
		if res.Kind().Scheme() != resource.SchemeDaily {
			return ErrWeeklyRatesRoomsOnly
		}
		return tx.Pricing().SetWeeklyRate(ctx, id, day, price)
	})
	if err != nil {
		return err
	}

	c.quotes.Invalidate(ctx, id)
	c.logger.InfoContext(ctx, "weekly rate set", "resource_id", id, "weekday", day.String(), "price", price.String())
	return nil
}

func (c *resourceCommandsImpl) AddOverride(ctx context.Context, id uuid.UUID, startDate, endDate time.Time, price money.Money) (resource.Override, error) {
	now := stamp(c.clock)
	o, err := resource.NewOverride(uuid.New(), id, startDate, endDate, price, now)
	if err != nil {
		return resource.Override{}, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// the resource row lock serialises rule changes of one resource
		res, err := tx.Resources().LockByID(ctx, id)
		if err != nil {
			return translate(err, resource.ErrResourceNotFound)
		}
		if res.Kind().Scheme() == resource.SchemeExternal {
			return ErrNotPriced
		}
		existing, err := tx.Pricing().Overrides(ctx, id)
		if err != nil {
			return err
		}
		if err := resource.EnsureNoOverlap(existing, o); err != nil {
			return err
		}
		if err := tx.Pricing().AddOverride(ctx, o); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return resource.ErrOverlappingOverride
			}
			return err
		}
		return nil
	})
	if err != nil {
		return resource.Override{}, err
	}

	c.quotes.Invalidate(ctx, id)
	c.logger.InfoContext(ctx, "price override added",
		"resource_id", id,
		"override_id", o.ID(),
		"start_date", o.StartDate().Format(time.DateOnly),
		"end_date", o.EndDate().Format(time.DateOnly))
	return o, nil
}
