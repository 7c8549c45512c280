package resource

import (
	"strings"
	"time"

	"resort-engine/internal/domain/shared/interval"
	"resort-engine/internal/domain/shared/money"
	"resort-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidWeekday        = errs.Validation("invalid weekday name")
	ErrInvalidRate           = errs.Validation("rate must be positive")
	ErrInvalidOverrideWindow = errs.Validation("override end date must not precede its start date")
	ErrOverlappingOverride   = errs.Integrity("override window overlaps an existing override")
)

// WeeklyRates is the recurring per-day price of a day-priced resource.
type WeeklyRates map[time.Weekday]money.Money

// ParseWeekday accepts full English day names in any case.
func ParseWeekday(name string) (time.Weekday, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == n {
			return d, nil
		}
	}
	return 0, ErrInvalidWeekday
}

func (w WeeklyRates) Rate(day time.Weekday) (money.Money, bool) {
	m, ok := w[day]
	return m, ok
}

// Override is a price that replaces the recurring rate for the inclusive
// calendar window [startDate, endDate].
type Override struct {
	id         uuid.UUID
	resourceID uuid.UUID
	startDate  time.Time
	endDate    time.Time
	price      money.Money
	createdAt  time.Time
}

func NewOverride(id, resourceID uuid.UUID, startDate, endDate time.Time, price money.Money, now time.Time) (Override, error) {
	start, end := truncateDay(startDate), truncateDay(endDate)
	if end.Before(start) {
		return Override{}, ErrInvalidOverrideWindow
	}
	if !price.IsPositive() {
		return Override{}, ErrInvalidRate
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return Override{
		id:         id,
		resourceID: resourceID,
		startDate:  start,
		endDate:    end,
		price:      price,
		createdAt:  now,
	}, nil
}

func ReconstructOverride(id, resourceID uuid.UUID, startDate, endDate time.Time, price money.Money, createdAt time.Time) Override {
	return Override{
		id:         id,
		resourceID: resourceID,
		startDate:  startDate,
		endDate:    endDate,
		price:      price,
		createdAt:  createdAt,
	}
}

// Window is the half-open span covered by the override, through the end of
// endDate.
func (o Override) Window() interval.Interval {
	return interval.Must(o.startDate, o.endDate.AddDate(0, 0, 1))
}

func (o Override) Applies(span interval.Interval) bool {
	return o.Window().Overlaps(span)
}

func (o Override) Conflicts(other Override) bool {
	return o.Window().Overlaps(other.Window())
}

// EnsureNoOverlap keeps override windows of one resource disjoint.
func EnsureNoOverlap(existing []Override, candidate Override) error {
	for _, o := range existing {
		if o.resourceID == candidate.resourceID && o.Conflicts(candidate) {
			return errs.Wrapf(ErrOverlappingOverride, "conflicts with override %s", o.id)
		}
	}
	return nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (o Override) ID() uuid.UUID         { return o.id }
func (o Override) ResourceID() uuid.UUID { return o.resourceID }
func (o Override) StartDate() time.Time  { return o.startDate }
func (o Override) EndDate() time.Time    { return o.endDate }
func (o Override) Price() money.Money    { return o.price }
func (o Override) CreatedAt() time.Time  { return o.createdAt }
