//go:build unit

package pricing_test

import (
	"math"
	"testing"
	"time"

	"resort-engine/internal/domain/pricing"
	"resort-engine/internal/domain/resource"
	"resort-engine/internal/domain/shared/interval"
	"resort-engine/internal/domain/shared/money"
	"resort-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	monday  = time.Date(2030, 6, 3, 0, 0, 0, 0, time.UTC)
	created = monday.AddDate(0, 0, -7)
)

func day(n int) time.Time { return monday.AddDate(0, 0, n) }

func newResource(t *testing.T, kind resource.Kind, rateCents int64) *resource.Resource {
	t.Helper()
	spec := resource.Spec{Kind: kind, Name: string(kind), Capacity: 20, HourlyRate: money.FromCents(rateCents)}
	if kind == resource.KindRoom {
		spec.RoomTypeID = uuid.New()
	}
	r, err := resource.NewResource(uuid.Nil, spec, created)
	require.NoError(t, err)
	return r
}

func uniformWeek(cents int64) resource.WeeklyRates {
	w := resource.WeeklyRates{}
	for d := time.Sunday; d <= time.Saturday; d++ {
		w[d] = money.FromCents(cents)
	}
	return w
}

func TestResolveDaily(t *testing.T) {
	resolver := pricing.NewResolver(time.UTC)
	room := newResource(t, resource.KindRoom, 0)
	weekly := resource.WeeklyRates{time.Monday: money.FromCents(10000), time.Tuesday: money.FromCents(10000)}

	t.Run("weekday sum", func(t *testing.T) {
		price, err := resolver.Resolve(room, interval.Must(day(0), day(2)), 2, pricing.Rules{Weekly: weekly})
		require.NoError(t, err)
		assert.Equal(t, int64(20000), price.Cents())
	})

	t.Run("lowest override wins", func(t *testing.T) {
		o, err := resource.NewOverride(uuid.Nil, room.ID(), day(0), day(1), money.FromCents(8000), created)
		require.NoError(t, err)

		price, err := resolver.Resolve(room, interval.Must(day(0), day(2)), 2, pricing.Rules{Weekly: weekly, Overrides: []resource.Override{o}})
		require.NoError(t, err)
		assert.Equal(t, int64(16000), price.Cents())
	})

	t.Run("minimum of several overrides", func(t *testing.T) {
		a, err := resource.NewOverride(uuid.Nil, room.ID(), day(0), day(0), money.FromCents(9000), created)
		require.NoError(t, err)
		b, err := resource.NewOverride(uuid.Nil, room.ID(), day(1), day(1), money.FromCents(7500), created)
		require.NoError(t, err)

		price, err := resolver.Resolve(room, interval.Must(day(0), day(2)), 2, pricing.Rules{Weekly: weekly, Overrides: []resource.Override{a, b}})
		require.NoError(t, err)
		assert.Equal(t, int64(15000), price.Cents())
	})

	t.Run("override outside the stay is ignored", func(t *testing.T) {
		o, err := resource.NewOverride(uuid.Nil, room.ID(), day(2), day(3), money.FromCents(100), created)
		require.NoError(t, err)

		price, err := resolver.Resolve(room, interval.Must(day(0), day(2)), 2, pricing.Rules{Weekly: weekly, Overrides: []resource.Override{o}})
		require.NoError(t, err)
		assert.Equal(t, int64(20000), price.Cents())
	})

	t.Run("missing weekday", func(t *testing.T) {
		_, err := resolver.Resolve(room, interval.Must(day(0), day(3)), 2, pricing.Rules{Weekly: weekly})
		require.ErrorIs(t, err, pricing.ErrPricingIncomplete)
		assert.Equal(t, errs.KindIntegrity, errs.KindOf(err))
	})

	t.Run("no rules at all", func(t *testing.T) {
		_, err := resolver.Resolve(room, interval.Must(day(0), day(1)), 2, pricing.Rules{})
		require.ErrorIs(t, err, pricing.ErrPricingIncomplete)
	})

	t.Run("zero length interval", func(t *testing.T) {
		_, err := resolver.Resolve(room, interval.Interval{}, 2, pricing.Rules{Weekly: weekly})
		require.ErrorIs(t, err, interval.ErrInvalidInterval)
	})
}

func TestResolveDailyMonotonic(t *testing.T) {
	resolver := pricing.NewResolver(time.UTC)
	room := newResource(t, resource.KindRoom, 0)
	rules := pricing.Rules{Weekly: uniformWeek(12000)}

	var previous money.Money
	for nights := 1; nights <= 14; nights++ {
		price, err := resolver.Resolve(room, interval.Must(day(0), day(nights)), 1, rules)
		require.NoError(t, err)
		assert.Equal(t, int64(12000*nights), price.Cents())
		assert.True(t, previous.Less(price))
		previous = price
	}
}

func TestResolveHourly(t *testing.T) {
	resolver := pricing.NewResolver(time.UTC)

	t.Run("hall rounds hours up", func(t *testing.T) {
		hall := newResource(t, resource.KindHall, 5000)
		price, err := resolver.Resolve(hall, interval.Must(day(0), day(0).Add(150*time.Minute)), 40, pricing.Rules{})
		require.NoError(t, err)
		assert.Equal(t, int64(15000), price.Cents())
	})

	t.Run("pool is per head", func(t *testing.T) {
		pool := newResource(t, resource.KindPool, 1000)
		price, err := resolver.Resolve(pool, interval.Must(day(0), day(0).Add(2*time.Hour)), 3, pricing.Rules{})
		require.NoError(t, err)
		assert.Equal(t, int64(6000), price.Cents())
	})

	t.Run("override replaces hourly rate", func(t *testing.T) {
		hall := newResource(t, resource.KindHall, 5000)
		o, err := resource.NewOverride(uuid.Nil, hall.ID(), day(0), day(0), money.FromCents(4000), created)
		require.NoError(t, err)
		price, err := resolver.Resolve(hall, interval.Must(day(0).Add(10*time.Hour), day(0).Add(12*time.Hour)), 1, pricing.Rules{Overrides: []resource.Override{o}})
		require.NoError(t, err)
		assert.Equal(t, int64(8000), price.Cents())
	})

	t.Run("total beyond int64 is rejected", func(t *testing.T) {
		pool := newResource(t, resource.KindPool, math.MaxInt64/4)
		_, err := resolver.Resolve(pool, interval.Must(day(0), day(0).Add(5*time.Hour)), 2, pricing.Rules{})
		require.ErrorIs(t, err, money.ErrAmountOverflow)
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	})
}

func TestResolveExternal(t *testing.T) {
	resolver := pricing.NewResolver(time.UTC)
	restaurant := newResource(t, resource.KindRestaurant, 0)

	price, err := resolver.Resolve(restaurant, interval.Must(day(0), day(0).Add(time.Hour)), 4, pricing.Rules{})
	require.NoError(t, err)
	assert.True(t, price.IsZero())
}
