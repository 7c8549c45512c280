package interval

import (
	"time"

	"resort-engine/internal/pkg/errs"
)

var ErrInvalidInterval = errs.Validation("interval end must be after start")

// Interval is a half-open span [start, end). Back-to-back intervals do not
// overlap.
type Interval struct {
	start time.Time
	end   time.Time
}

func New(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{start: start, end: end}, nil
}

// Must is for fixtures and values already validated upstream.
func Must(start, end time.Time) Interval {
	i, err := New(start, end)
	if err != nil {
		panic(err)
	}
	return i
}

func (i Interval) Start() time.Time { return i.start }
func (i Interval) End() time.Time   { return i.end }

func (i Interval) Duration() time.Duration {
	return i.end.Sub(i.start)
}

func (i Interval) IsZero() bool {
	return i.start.IsZero() && i.end.IsZero()
}

func (i Interval) Overlaps(other Interval) bool {
	return i.start.Before(other.end) && other.start.Before(i.end)
}

func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.start) && t.Before(i.end)
}

// Extend widens the interval by d on both sides.
func (i Interval) Extend(d time.Duration) Interval {
	return Interval{start: i.start.Add(-d), end: i.end.Add(d)}
}

// BilledHours is the duration rounded up to whole hours.
func (i Interval) BilledHours() int64 {
	d := i.Duration()
	hours := int64(d / time.Hour)
	if d%time.Hour != 0 {
		hours++
	}
	return hours
}

// Days lists the calendar days touched by the interval in loc, one entry per
// 24h step from start while still before end.
func (i Interval) Days(loc *time.Location) []time.Time {
	if loc == nil {
		loc = time.UTC
	}
	var days []time.Time
	for d := i.start.In(loc); d.Before(i.end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func (i Interval) String() string {
	return "[" + i.start.Format(time.RFC3339) + "," + i.end.Format(time.RFC3339) + ")"
}
