//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"resort-engine/internal/domain/reservation"
	"resort-engine/internal/domain/resource"
	"resort-engine/internal/domain/shared/interval"
	"resort-engine/internal/domain/shared/money"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// 2030-06-03 is a Monday.
var now = time.Date(2030, 6, 3, 8, 0, 0, 0, time.UTC)

func at(hour int) time.Time { return now.Truncate(24 * time.Hour).Add(time.Duration(hour) * time.Hour) }

func ptr[T any](v T) *T { return &v }

func policies() *reservation.Policies {
	return reservation.NewPolicies(reservation.DefaultRules())
}

func policyFor(t *testing.T, kind reservation.Kind) *reservation.Policy {
	t.Helper()
	p, err := policies().For(kind)
	require.NoError(t, err)
	return p
}

func newResource(t *testing.T, kind resource.Kind, capacity int) *resource.Resource {
	t.Helper()
	spec := resource.Spec{Kind: kind, Name: string(kind), Capacity: capacity, HourlyRate: money.FromCents(1000)}
	if kind == resource.KindRoom {
		spec.RoomTypeID = uuid.New()
	}
	r, err := resource.NewResource(uuid.Nil, spec, now.AddDate(0, -1, 0))
	require.NoError(t, err)
	return r
}

// perHead bills rate for every started hour of span and every guest.
func perHead(rate money.Money) func(interval.Interval, int) (money.Money, error) {
	return func(span interval.Interval, occupancy int) (money.Money, error) {
		perGuest, err := rate.Mul(span.BilledHours())
		if err != nil {
			return money.Zero(), err
		}
		return perGuest.Mul(int64(occupancy))
	}
}

type resBuilder struct {
	s reservation.Snapshot
}

func stored(kind reservation.Kind, resourceID uuid.UUID) *resBuilder {
	return &resBuilder{s: reservation.Snapshot{
		ID:         uuid.New(),
		Kind:       kind,
		CustomerID: uuid.New(),
		ResourceID: resourceID,
		Occupancy:  1,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}}
}

func (b *resBuilder) span(start, end time.Time) *resBuilder {
	b.s.Start = start
	b.s.End = ptr(end)
	return b
}

func (b *resBuilder) openFrom(start time.Time) *resBuilder {
	b.s.Start = start
	b.s.End = nil
	return b
}

func (b *resBuilder) guests(n int) *resBuilder { b.s.Occupancy = n; return b }

func (b *resBuilder) status(s reservation.Status) *resBuilder { b.s.Status = s; return b }

func (b *resBuilder) deleted() *resBuilder { b.s.Deleted = true; return b }

func (b *resBuilder) price(cents int64) *resBuilder { b.s.TotalPrice = money.FromCents(cents); return b }

func (b *resBuilder) build() *reservation.Reservation { return reservation.Reconstruct(b.s) }
