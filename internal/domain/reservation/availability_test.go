//go:build unit

package reservation_test

import (
	"math/rand"
	"testing"
	"time"

	"resort-engine/internal/domain/reservation"
	"resort-engine/internal/domain/resource"
	"resort-engine/internal/domain/shared/interval"
	"resort-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExclusiveAvailability(t *testing.T) {
	p := policyFor(t, reservation.KindHallReservation)
	hall := newResource(t, resource.KindHall, 100)
	existing := []*reservation.Reservation{
		stored(reservation.KindHallReservation, hall.ID()).span(at(10), at(12)).status(reservation.StatusConfirmed).build(),
	}

	cases := []struct {
		name  string
		span  interval.Interval
		errIs error
	}{
		{name: "back to back after", span: interval.Must(at(12), at(14))},
		{name: "back to back before", span: interval.Must(at(8), at(10))},
		{name: "overlapping tail", span: interval.Must(at(11), at(13)), errIs: reservation.ErrResourceUnavailable},
		{name: "enclosing", span: interval.Must(at(9), at(13)), errIs: reservation.ErrResourceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := p.CheckAvailability(hall, tc.span, 0, existing, now)
			if tc.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.errIs)
			assert.Equal(t, errs.KindConflict, errs.KindOf(err))
		})
	}

	t.Run("cancelled and deleted reservations do not block", func(t *testing.T) {
		inactive := []*reservation.Reservation{
			stored(reservation.KindHallReservation, hall.ID()).span(at(10), at(12)).status(reservation.StatusCancelled).build(),
			stored(reservation.KindHallReservation, hall.ID()).span(at(10), at(12)).status(reservation.StatusPending).deleted().build(),
		}
		assert.NoError(t, p.CheckAvailability(hall, interval.Must(at(10), at(12)), 0, inactive, now))
	})

	t.Run("other resources do not block", func(t *testing.T) {
		other := []*reservation.Reservation{
			stored(reservation.KindHallReservation, uuid.New()).span(at(10), at(12)).status(reservation.StatusConfirmed).build(),
		}
		assert.NoError(t, p.CheckAvailability(hall, interval.Must(at(10), at(12)), 0, other, now))
	})

	t.Run("occupancy above hall capacity", func(t *testing.T) {
		err := p.CheckAvailability(hall, interval.Must(at(14), at(15)), 101, nil, now)
		require.ErrorIs(t, err, reservation.ErrCapacityExceeded)
	})
}

func TestPoolCapacityScenario(t *testing.T) {
	p := policyFor(t, reservation.KindPoolVisit)
	pool := newResource(t, resource.KindPool, 20)
	existing := []*reservation.Reservation{
		stored(reservation.KindPoolVisit, pool.ID()).span(at(10), at(12)).guests(15).status(reservation.StatusReserved).build(),
	}

	err := p.CheckAvailability(pool, interval.Must(at(11), at(13)), 6, existing, now)
	require.ErrorIs(t, err, reservation.ErrCapacityExceeded)

	require.NoError(t, p.CheckAvailability(pool, interval.Must(at(11), at(13)), 5, existing, now))
	require.NoError(t, p.CheckAvailability(pool, interval.Must(at(12), at(13)), 20, existing, now))
}

func TestPoolOpenEndedVisitsOccupyMinimumBlock(t *testing.T) {
	p := policyFor(t, reservation.KindPoolVisit)
	pool := newResource(t, resource.KindPool, 10)
	existing := []*reservation.Reservation{
		stored(reservation.KindPoolVisit, pool.ID()).openFrom(at(10)).guests(8).status(reservation.StatusReserved).build(),
	}

	err := p.CheckAvailability(pool, interval.Must(at(10).Add(30*time.Minute), at(12)), 3, existing, now)
	require.ErrorIs(t, err, reservation.ErrCapacityExceeded)
	require.NoError(t, p.CheckAvailability(pool, interval.Must(at(11), at(12)), 3, existing, now))

	assert.Equal(t, at(9), p.ScanWindow(interval.Must(at(10), at(12))).Start())
}

func TestPoolOutOfService(t *testing.T) {
	p := policyFor(t, reservation.KindPoolVisit)
	pool := newResource(t, resource.KindPool, 10)
	require.NoError(t, pool.ChangeStatus(resource.StatusMaintenance, now))

	err := p.CheckAvailability(pool, interval.Must(at(11), at(12)), 1, nil, now)
	require.ErrorIs(t, err, reservation.ErrResourceUnavailable)
}

func TestRestaurantSeatingWindow(t *testing.T) {
	p := policyFor(t, reservation.KindRestaurantVisit)
	restaurant := newResource(t, resource.KindRestaurant, 10)
	existing := []*reservation.Reservation{
		stored(reservation.KindRestaurantVisit, restaurant.ID()).openFrom(at(19)).guests(6).status(reservation.StatusConfirmed).build(),
		stored(reservation.KindRestaurantVisit, restaurant.ID()).openFrom(at(21)).guests(4).status(reservation.StatusPending).build(),
	}
	seat := func(h time.Time) interval.Interval { return p.RequestSpan(h, nil) }

	require.ErrorIs(t, p.CheckAvailability(restaurant, seat(at(20)), 1, existing, now), reservation.ErrCapacityExceeded)
	require.ErrorIs(t, p.CheckAvailability(restaurant, seat(at(18)), 5, existing, now), reservation.ErrCapacityExceeded)
	require.NoError(t, p.CheckAvailability(restaurant, seat(at(18)), 4, existing, now))
	require.NoError(t, p.CheckAvailability(restaurant, seat(at(17).Add(59*time.Minute)), 10, existing, now))

	window := p.ScanWindow(seat(at(20)))
	assert.Equal(t, at(19), window.Start())
	assert.True(t, window.End().After(at(21)))
}

func TestFirstFitRoomSelection(t *testing.T) {
	p := policyFor(t, reservation.KindBooking)
	small := newResource(t, resource.KindRoom, 1)
	busy := newResource(t, resource.KindRoom, 4)
	free := newResource(t, resource.KindRoom, 4)
	alsoFree := newResource(t, resource.KindRoom, 4)

	bookings := map[uuid.UUID][]*reservation.Reservation{
		busy.ID(): {stored(reservation.KindBooking, busy.ID()).span(at(24), at(72)).status(reservation.StatusConfirmed).build()},
	}
	load := func(res *resource.Resource, _ interval.Interval) ([]*reservation.Reservation, error) {
		return bookings[res.ID()], nil
	}
	stay := interval.Must(at(48), at(96))

	got, err := p.FirstFit([]*resource.Resource{small, busy, free, alsoFree}, stay, 2, load, now)
	require.NoError(t, err)
	assert.Equal(t, free.ID(), got.ID())

	_, err = p.FirstFit([]*resource.Resource{small, busy}, stay, 2, load, now)
	require.ErrorIs(t, err, reservation.ErrResourceUnavailable)

	_, err = p.FirstFit([]*resource.Resource{small}, stay, 2, load, now)
	require.ErrorIs(t, err, reservation.ErrCapacityExceeded)

	_, err = p.FirstFit(nil, stay, 2, load, now)
	require.ErrorIs(t, err, reservation.ErrResourceUnavailable)
}

// Random create/cancel sequences must never leave an instant where booked
// guests exceed capacity.
func TestPooledCapacityInvariant(t *testing.T) {
	p := policyFor(t, reservation.KindPoolVisit)
	const capacity = 12
	pool := newResource(t, resource.KindPool, capacity)
	rng := rand.New(rand.NewSource(7))

	var accepted []*reservation.Reservation
	for step := 0; step < 400; step++ {
		if len(accepted) > 0 && rng.Intn(4) == 0 {
			victim := accepted[rng.Intn(len(accepted))]
			if victim.Status() == reservation.StatusReserved {
				_ = p.Apply(victim, reservation.ActionCancel, reservation.TransitionInput{Now: now})
			}
			continue
		}

		startHour := 24 + rng.Intn(12)
		span := interval.Must(at(startHour), at(startHour+1+rng.Intn(4)))
		guests := 1 + rng.Intn(6)
		if err := p.CheckAvailability(pool, span, guests, accepted, now); err != nil {
			require.ErrorIs(t, err, reservation.ErrCapacityExceeded)
			continue
		}
		accepted = append(accepted, stored(reservation.KindPoolVisit, pool.ID()).span(span.Start(), span.End()).guests(guests).status(reservation.StatusReserved).build())

		for minute := 24 * 60; minute < 41*60; minute += 15 {
			instant := at(0).Add(time.Duration(minute) * time.Minute)
			total := 0
			for _, r := range accepted {
				if r.Status() == reservation.StatusReserved && p.Span(r, now).Contains(instant) {
					total += r.Occupancy()
				}
			}
			require.LessOrEqual(t, total, capacity, "step %d instant %s", step, instant)
		}
	}
}
