package pricing

import (
	"time"

	"resort-engine/internal/domain/resource"
	"resort-engine/internal/domain/shared/interval"
	"resort-engine/internal/domain/shared/money"
	"resort-engine/internal/pkg/errs"
)

var ErrPricingIncomplete = errs.Integrity("pricing rules incomplete")

// Rules are the pricing inputs stored for one resource.
type Rules struct {
	Weekly    resource.WeeklyRates
	Overrides []resource.Override
}

type Resolver struct {
	loc *time.Location
}

// NewResolver walks calendar days in loc.
func NewResolver(loc *time.Location) *Resolver {
	if loc == nil {
		loc = time.UTC
	}
	return &Resolver{loc: loc}
}

// Resolve computes the price of holding res over span for occupancy guests.
//
// Any override whose window intersects span wins over the recurring rate;
// when several apply, the lowest price is used.
func (r *Resolver) Resolve(res *resource.Resource, span interval.Interval, occupancy int, rules Rules) (money.Money, error) {
	if span.IsZero() {
		return money.Zero(), interval.ErrInvalidInterval
	}

	override, hasOverride := lowestOverride(rules.Overrides, span)

	switch res.Kind().Scheme() {
	case resource.SchemeDaily:
		days := span.Days(r.loc)
		if hasOverride {
			return override.Mul(int64(len(days)))
		}
		return r.weeklyTotal(days, rules.Weekly)

	case resource.SchemeHourly:
		rate := res.HourlyRate()
		if hasOverride {
			rate = override
		}
		if !rate.IsPositive() {
			return money.Zero(), errs.Wrapf(ErrPricingIncomplete, "%s %s has no hourly rate", res.Kind(), res.ID())
		}
		multiplier := int64(1)
		if res.Kind().PerHead() {
			multiplier = int64(max(occupancy, 1))
		}
		total, err := rate.Mul(span.BilledHours())
		if err != nil {
			return money.Zero(), err
		}
		return total.Mul(multiplier)

	default:
		// priced externally at settlement
		return money.Zero(), nil
	}
}

func (r *Resolver) weeklyTotal(days []time.Time, weekly resource.WeeklyRates) (money.Money, error) {
	total := money.Zero()
	for _, d := range days {
		rate, ok := weekly.Rate(d.Weekday())
		if !ok {
			return money.Zero(), errs.Wrapf(ErrPricingIncomplete, "no rate for %s", d.Weekday())
		}
		total = total.Add(rate)
	}
	return total, nil
}

func lowestOverride(overrides []resource.Override, span interval.Interval) (money.Money, bool) {
	var (
		best  money.Money
		found bool
	)
	for _, o := range overrides {
		if !o.Applies(span) {
			continue
		}
		if !found || o.Price().Less(best) {
			best = o.Price()
			found = true
		}
	}
	return best, found
}
