package reservation

import (
	"time"

	"resort-engine/internal/domain/resource"
	"resort-engine/internal/domain/shared/interval"
	"resort-engine/internal/pkg/errs"
)

// CheckAvailability decides whether res can take a new reservation of
// occupancy guests over span, given the reservations already stored for it.
// Capacity counters are derived from existing on every call.
func (p *Policy) CheckAvailability(res *resource.Resource, span interval.Interval, occupancy int, existing []*Reservation, now time.Time) error {
	if res.Kind() != p.ResourceKind() {
		return resource.ErrResourceNotFound
	}
	if err := res.EnsureBookable(); err != nil {
		return err
	}
	if occupancy > 0 && !res.Fits(occupancy) {
		return errs.Wrapf(ErrCapacityExceeded, "%d guests exceed capacity %d", occupancy, res.Capacity())
	}

	if p.mode == resource.ModeExclusive {
		for _, r := range existing {
			if p.collides(r, res) && p.Span(r, now).Overlaps(span) {
				return errs.Wrapf(ErrResourceUnavailable, "%s %s overlaps %s", r.kind, r.id, span)
			}
		}
		return nil
	}

	taken := 0
	for _, r := range existing {
		if !p.collides(r, res) {
			continue
		}
		if p.sharesSlot(r, span, now) {
			taken += r.occupancy
		}
	}
	if taken+occupancy > res.Capacity() {
		return errs.Wrapf(ErrCapacityExceeded, "%d taken + %d requested > %d", taken, occupancy, res.Capacity())
	}
	return nil
}

// CheckReseat decides whether r, which already holds seats on res, may move
// to span. Exclusive kinds never move, so only the pooled count is redone.
func (p *Policy) CheckReseat(r *Reservation, res *resource.Resource, span interval.Interval, existing []*Reservation, now time.Time) error {
	if p.mode != resource.ModePooled {
		return nil
	}
	taken := 0
	for _, other := range existing {
		if other.id == r.id || !p.collides(other, res) {
			continue
		}
		if p.sharesSlot(other, span, now) {
			taken += other.occupancy
		}
	}
	if taken+r.occupancy > res.Capacity() {
		return errs.Wrapf(ErrCapacityExceeded, "%d taken + %d held > %d from %s", taken, r.occupancy, res.Capacity(), span.Start().Format(time.RFC3339))
	}
	return nil
}

func (p *Policy) collides(r *Reservation, res *resource.Resource) bool {
	return r.resourceID == res.ID() && !r.deleted && p.Occupies(r.status)
}

// sharesSlot: restaurants count seatings within the tolerance window of the
// requested instant; pools count intersecting visits.
func (p *Policy) sharesSlot(r *Reservation, span interval.Interval, now time.Time) bool {
	if p.kind == KindRestaurantVisit {
		d := r.start.Sub(span.Start())
		if d < 0 {
			d = -d
		}
		return d <= p.rules.SeatingWindow
	}
	return p.Span(r, now).Overlaps(span)
}

// Loader fetches stored reservations of a candidate resource inside window.
type Loader func(res *resource.Resource, window interval.Interval) ([]*Reservation, error)

// FirstFit returns the first candidate, in the given order, that accepts the
// request. Candidates that are too small or fully booked are skipped. A lone
// candidate reports its own failure.
func (p *Policy) FirstFit(candidates []*resource.Resource, span interval.Interval, occupancy int, load Loader, now time.Time) (*resource.Resource, error) {
	var lastErr error = ErrResourceUnavailable
	capacityOnly := len(candidates) > 0
	for _, res := range candidates {
		existing, err := load(res, p.ScanWindow(span))
		if err != nil {
			return nil, err
		}
		err = p.CheckAvailability(res, span, occupancy, existing, now)
		if err == nil {
			return res, nil
		}
		if !errs.Is(err, errs.ErrConflict) && !errs.Is(err, errs.ErrNotFound) {
			return nil, err
		}
		if !errs.Is(err, ErrCapacityExceeded) {
			capacityOnly = false
		}
		lastErr = err
	}
	if len(candidates) == 1 || capacityOnly {
		return nil, lastErr
	}
	return nil, errs.Wrapf(ErrResourceUnavailable, "none of %d candidates accepts the request", len(candidates))
}
