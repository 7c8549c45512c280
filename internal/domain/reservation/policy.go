package reservation

import (
	"slices"
	"time"

	"resort-engine/internal/domain/resource"
	"resort-engine/internal/domain/shared/interval"
	"resort-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

// Rules are the time windows shared by all policies.
type Rules struct {
	Location      *time.Location
	CheckInGrace  time.Duration
	CancelCutoff  time.Duration
	SeatingWindow time.Duration
	// MinimumBlock is the shortest billable stay and the assumed length of
	// visits booked without an end.
	MinimumBlock time.Duration
}

func DefaultRules() Rules {
	return Rules{
		Location:      time.UTC,
		CheckInGrace:  time.Hour,
		CancelCutoff:  2 * time.Hour,
		SeatingWindow: time.Hour,
		MinimumBlock:  time.Hour,
	}
}

type transition struct {
	from []Status
	to   Status
}

// Policy is the per-kind strategy: exclusivity, lifecycle table and guards.
type Policy struct {
	kind      Kind
	mode      resource.Mode
	initial   Status
	occupying []Status
	table     map[Action]transition

	endRequired  bool
	endAllowed   bool
	dateOnly     bool
	cancelCutoff time.Duration
	checkInGrace time.Duration
	rules        Rules
}

type Policies struct {
	rules  Rules
	byKind map[Kind]*Policy
}

func NewPolicies(rules Rules) *Policies {
	if rules.Location == nil {
		rules.Location = time.UTC
	}
	if rules.MinimumBlock <= 0 {
		rules.MinimumBlock = time.Hour
	}
	live := []Status{StatusPending, StatusConfirmed}
	cancel := transition{from: live, to: StatusCancelled}
	accept := transition{from: []Status{StatusPending}, to: StatusConfirmed}

	return &Policies{
		rules: rules,
		byKind: map[Kind]*Policy{
			KindBooking: {
				kind:        KindBooking,
				mode:        resource.ModeExclusive,
				initial:     StatusConfirmed,
				occupying:   live,
				table:       map[Action]transition{ActionCancel: cancel},
				endRequired: true,
				endAllowed:  true,
				dateOnly:    true,
				rules:       rules,
			},
			KindHallReservation: {
				kind:        KindHallReservation,
				mode:        resource.ModeExclusive,
				initial:     StatusPending,
				occupying:   live,
				table:       map[Action]transition{ActionAccept: accept, ActionCancel: cancel},
				endRequired: true,
				endAllowed:  true,
				rules:       rules,
			},
			KindPoolVisit: {
				kind:      KindPoolVisit,
				mode:      resource.ModePooled,
				initial:   StatusReserved,
				occupying: []Status{StatusReserved, StatusCheckedIn},
				table: map[Action]transition{
					ActionCheckIn:  {from: []Status{StatusReserved}, to: StatusCheckedIn},
					ActionCheckOut: {from: []Status{StatusCheckedIn}, to: StatusCheckedOut},
					ActionCancel:   {from: []Status{StatusReserved}, to: StatusCancelled},
				},
				endAllowed:   true,
				cancelCutoff: rules.CancelCutoff,
				checkInGrace: rules.CheckInGrace,
				rules:        rules,
			},
			KindRestaurantVisit: {
				kind:         KindRestaurantVisit,
				mode:         resource.ModePooled,
				initial:      StatusPending,
				occupying:    live,
				table:        map[Action]transition{ActionAccept: accept, ActionCancel: cancel},
				cancelCutoff: rules.CancelCutoff,
				rules:        rules,
			},
		},
	}
}

func (p *Policies) For(kind Kind) (*Policy, error) {
	policy, ok := p.byKind[kind]
	if !ok {
		return nil, ErrUnknownKind
	}
	return policy, nil
}

func (p *Policies) Rules() Rules {
	return p.rules
}

func (p *Policy) Kind() Kind                  { return p.kind }
func (p *Policy) Mode() resource.Mode         { return p.mode }
func (p *Policy) Initial() Status             { return p.initial }
func (p *Policy) ResourceKind() resource.Kind { return p.kind.ResourceKind() }

func (p *Policy) Occupies(s Status) bool {
	return slices.Contains(p.occupying, s)
}

func (p *Policy) OccupyingStatuses() []Status {
	return slices.Clone(p.occupying)
}

func (p *Policy) Supports(a Action) bool {
	_, ok := p.table[a]
	return ok
}

// ValidateRequest applies the creation guards of the kind.
func (p *Policy) ValidateRequest(d Draft, now time.Time) error {
	if d.Kind != p.kind {
		return ErrUnknownKind
	}
	if d.CustomerID == uuid.Nil {
		return ErrCustomerRequired
	}
	if err := p.validateOccupancy(d.Occupancy); err != nil {
		return err
	}
	if d.Start.IsZero() {
		return interval.ErrInvalidInterval
	}
	if d.End == nil && p.endRequired {
		return interval.ErrInvalidInterval
	}
	if d.End != nil && p.endAllowed && !d.End.After(d.Start) {
		return interval.ErrInvalidInterval
	}

	if p.dateOnly {
		today := startOfDay(now.In(p.rules.Location))
		if d.Start.Before(today) {
			return ErrStartInPast
		}
		return nil
	}
	if !d.Start.After(now) {
		return ErrStartInPast
	}
	return nil
}

func (p *Policy) validateOccupancy(n int) error {
	if n < 0 {
		return ErrInvalidOccupancy
	}
	if p.mode == resource.ModePooled && n < 1 {
		return ErrInvalidOccupancy
	}
	return nil
}

// RequestSpan is the span a new request would occupy.
func (p *Policy) RequestSpan(start time.Time, end *time.Time) interval.Interval {
	if end != nil && p.endAllowed && end.After(start) {
		return interval.Must(start, *end)
	}
	return interval.Must(start, start.Add(p.rules.MinimumBlock))
}

// Span is the effective span of a stored reservation at now.
func (p *Policy) Span(r *Reservation, now time.Time) interval.Interval {
	if r.end != nil && r.end.After(r.start) {
		return interval.Must(r.start, *r.end)
	}
	end := r.start.Add(p.rules.MinimumBlock)
	if r.status == StatusCheckedIn && now.After(end) {
		end = now
	}
	return interval.Must(r.start, end)
}

// CheckInSpan is the span r would hold once checked in at now.
func (p *Policy) CheckInSpan(r *Reservation, now time.Time) interval.Interval {
	moved := *r
	moved.start = now
	if moved.end != nil && !moved.end.After(now) {
		moved.end = nil
	}
	moved.status = StatusCheckedIn
	return p.Span(&moved, now)
}

// ScanWindow bounds the storage query for reservations that might collide
// with span. Stored rows match when start < window.End and
// coalesce(end, start) >= window.Start; the checker filters precisely.
func (p *Policy) ScanWindow(span interval.Interval) interval.Interval {
	switch p.kind {
	case KindRestaurantVisit:
		w := p.rules.SeatingWindow
		return interval.Must(span.Start().Add(-w), span.Start().Add(w+time.Nanosecond))
	case KindPoolVisit:
		return interval.Must(span.Start().Add(-p.rules.MinimumBlock), span.End())
	default:
		return span
	}
}

// Apply performs action on r, enforcing the lifecycle table and time guards.
// On failure r is left untouched.
func (p *Policy) Apply(r *Reservation, action Action, in TransitionInput) error {
	if r.kind != p.kind {
		return ErrUnknownKind
	}
	if r.deleted {
		return ErrReservationNotFound
	}
	t, ok := p.table[action]
	if !ok {
		return errs.Wrapf(ErrInvalidTransition, "%s does not support %s", p.kind, action)
	}
	if action == ActionCancel && r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if !slices.Contains(t.from, r.status) {
		return errs.Wrapf(ErrInvalidTransition, "cannot %s a %s %s", action, r.status, p.kind)
	}

	now := in.Now
	switch action {
	case ActionCancel:
		if p.cancelCutoff > 0 && r.start.Sub(now) < p.cancelCutoff {
			return ErrCannotCancelLate
		}
	case ActionCheckIn:
		if r.start.Sub(now) > p.checkInGrace {
			return ErrCheckInTooEarly
		}
		if now.Before(r.start) && in.Reseat != nil {
			if err := in.Reseat(p.CheckInSpan(r, now)); err != nil {
				return err
			}
		}
		r.start = now
		if r.end != nil && !r.end.After(now) {
			r.end = nil
		}
	case ActionCheckOut:
		if in.Price == nil {
			return errs.New("check-out needs a price source")
		}
		span := interval.Must(r.start, maxTime(now, r.start.Add(p.rules.MinimumBlock)))
		total, err := in.Price(span, r.occupancy)
		if err != nil {
			return err
		}
		end := now
		r.end = &end
		r.durationHours = span.BilledHours()
		r.totalPrice = total
	}

	r.status = t.to
	r.updatedAt = now
	return nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
