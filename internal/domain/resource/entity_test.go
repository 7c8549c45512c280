//go:build unit

package resource_test

import (
	"testing"
	"time"

	"resort-engine/internal/domain/resource"
	"resort-engine/internal/domain/shared/interval"
	"resort-engine/internal/domain/shared/money"
	"resort-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)

func validSpec(kind resource.Kind) resource.Spec {
	spec := resource.Spec{Kind: kind, Name: "Lagoon", Capacity: 4}
	switch kind {
	case resource.KindRoom:
		spec.RoomTypeID = uuid.New()
	case resource.KindHall, resource.KindPool:
		spec.HourlyRate = money.FromCents(5000)
	}
	return spec
}

func TestNewResource(t *testing.T) {
	cases := []struct {
		name   string
		kind   resource.Kind
		mutate func(*resource.Spec)
		errIs  error
	}{
		{name: "room", kind: resource.KindRoom},
		{name: "hall", kind: resource.KindHall},
		{name: "pool", kind: resource.KindPool},
		{name: "restaurant", kind: resource.KindRestaurant},
		{name: "blank name", kind: resource.KindRoom, mutate: func(s *resource.Spec) { s.Name = "  " }, errIs: resource.ErrEmptyResourceName},
		{name: "zero capacity", kind: resource.KindPool, mutate: func(s *resource.Spec) { s.Capacity = 0 }, errIs: resource.ErrInvalidCapacity},
		{name: "room without type", kind: resource.KindRoom, mutate: func(s *resource.Spec) { s.RoomTypeID = uuid.Nil }, errIs: resource.ErrRoomTypeRequired},
		{name: "hall without rate", kind: resource.KindHall, mutate: func(s *resource.Spec) { s.HourlyRate = money.Zero() }, errIs: resource.ErrHourlyRateRequired},
		{name: "bad status", kind: resource.KindPool, mutate: func(s *resource.Spec) { s.Status = "flooded" }, errIs: resource.ErrInvalidStatus},
		{name: "bad kind", kind: "spa", errIs: resource.ErrUnknownKind},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec := validSpec(tc.kind)
			if tc.mutate != nil {
				tc.mutate(&spec)
			}
			r, err := resource.NewResource(uuid.Nil, spec, now)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, errs.KindValidation, errs.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, r.ID())
			assert.Equal(t, resource.StatusAvailable, r.Status())
			assert.NoError(t, r.EnsureBookable())
		})
	}
}

func TestEnsureBookable(t *testing.T) {
	r, err := resource.NewResource(uuid.Nil, validSpec(resource.KindPool), now)
	require.NoError(t, err)

	require.NoError(t, r.ChangeStatus(resource.StatusMaintenance, now))
	err = r.EnsureBookable()
	require.ErrorIs(t, err, resource.ErrResourceUnavailable)
	assert.True(t, errs.Is(err, errs.ErrConflict))

	require.NoError(t, r.ChangeStatus(resource.StatusAvailable, now))
	require.NoError(t, r.SoftDelete(now))
	require.ErrorIs(t, r.EnsureBookable(), resource.ErrResourceNotFound)
	require.ErrorIs(t, r.SoftDelete(now), resource.ErrResourceNotFound)
}

func TestRevise(t *testing.T) {
	r, err := resource.NewResource(uuid.Nil, validSpec(resource.KindHall), now)
	require.NoError(t, err)

	later := now.Add(time.Hour)
	require.NoError(t, r.Revise(" Ballroom ", 250, resource.StatusMaintenance, money.FromCents(9000), later))
	assert.Equal(t, "Ballroom", r.Name())
	assert.Equal(t, 250, r.Capacity())
	assert.Equal(t, resource.StatusMaintenance, r.Status())
	assert.Equal(t, later, r.UpdatedAt())

	assert.ErrorIs(t, r.Revise("Ballroom", 0, resource.StatusAvailable, money.FromCents(9000), later), resource.ErrInvalidCapacity)
	assert.ErrorIs(t, r.Revise("Ballroom", 10, resource.StatusAvailable, money.Zero(), later), resource.ErrHourlyRateRequired)
	assert.Equal(t, 250, r.Capacity())
}

func TestModesAndSchemes(t *testing.T) {
	assert.Equal(t, resource.ModeExclusive, resource.KindRoom.Mode())
	assert.Equal(t, resource.ModeExclusive, resource.KindHall.Mode())
	assert.Equal(t, resource.ModePooled, resource.KindPool.Mode())
	assert.Equal(t, resource.ModePooled, resource.KindRestaurant.Mode())

	assert.Equal(t, resource.SchemeDaily, resource.KindRoom.Scheme())
	assert.Equal(t, resource.SchemeHourly, resource.KindPool.Scheme())
	assert.Equal(t, resource.SchemeExternal, resource.KindRestaurant.Scheme())
	assert.True(t, resource.KindPool.PerHead())
	assert.False(t, resource.KindHall.PerHead())
}

func TestParseWeekday(t *testing.T) {
	d, err := resource.ParseWeekday("monday")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, d)

	d, err = resource.ParseWeekday(" SUNDAY ")
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, d)

	_, err = resource.ParseWeekday("Funday")
	require.ErrorIs(t, err, resource.ErrInvalidWeekday)
}

func TestOverrides(t *testing.T) {
	roomID := uuid.New()
	day := func(d int) time.Time { return time.Date(2030, 6, d, 0, 0, 0, 0, time.UTC) }

	monTue, err := resource.NewOverride(uuid.Nil, roomID, day(3), day(4), money.FromCents(8000), now)
	require.NoError(t, err)

	t.Run("window covers through end date", func(t *testing.T) {
		assert.Equal(t, day(5), monTue.Window().End())
		assert.True(t, monTue.Applies(interval.Must(day(3), day(5))))
		assert.False(t, monTue.Applies(interval.Must(day(5), day(6))))
		assert.True(t, monTue.Applies(interval.Must(day(4).Add(23*time.Hour), day(6))))
	})

	t.Run("invalid window", func(t *testing.T) {
		_, err := resource.NewOverride(uuid.Nil, roomID, day(4), day(3), money.FromCents(8000), now)
		require.ErrorIs(t, err, resource.ErrInvalidOverrideWindow)
	})

	t.Run("non positive price", func(t *testing.T) {
		_, err := resource.NewOverride(uuid.Nil, roomID, day(3), day(3), money.Zero(), now)
		require.ErrorIs(t, err, resource.ErrInvalidRate)
	})

	t.Run("overlap detection", func(t *testing.T) {
		tueWed, err := resource.NewOverride(uuid.Nil, roomID, day(4), day(5), money.FromCents(7000), now)
		require.NoError(t, err)
		err = resource.EnsureNoOverlap([]resource.Override{monTue}, tueWed)
		require.ErrorIs(t, err, resource.ErrOverlappingOverride)
		assert.Equal(t, errs.KindIntegrity, errs.KindOf(err))

		wedThu, err := resource.NewOverride(uuid.Nil, roomID, day(5), day(6), money.FromCents(7000), now)
		require.NoError(t, err)
		assert.NoError(t, resource.EnsureNoOverlap([]resource.Override{monTue}, wedThu))

		other, err := resource.NewOverride(uuid.Nil, uuid.New(), day(3), day(4), money.FromCents(7000), now)
		require.NoError(t, err)
		assert.NoError(t, resource.EnsureNoOverlap([]resource.Override{monTue}, other))
	})
}
