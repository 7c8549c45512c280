//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"resort-engine/internal/domain/reservation"
	"resort-engine/internal/domain/resource"
	"resort-engine/internal/domain/shared/interval"
	"resort-engine/internal/domain/shared/money"
	"resort-engine/internal/usecase/commands"
	"resort-engine/internal/usecase/shared"
	sharedmock "resort-engine/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ResourceCommandsSuite struct {
	engineSuite
}

func TestResourceCommandsSuite(t *testing.T) {
	suite.Run(t, new(ResourceCommandsSuite))
}

func (s *ResourceCommandsSuite) TestCreateValidates() {
	tests := []struct {
		name   string
		spec   resource.Spec
		weekly resource.WeeklyRates
		want   error
	}{
		{"empty name", resource.Spec{Kind: resource.KindHall, Capacity: 10, HourlyRate: money.FromCents(100)}, nil, resource.ErrEmptyResourceName},
		{"zero capacity", resource.Spec{Kind: resource.KindHall, Name: "Hall", HourlyRate: money.FromCents(100)}, nil, resource.ErrInvalidCapacity},
		{"room without type", resource.Spec{Kind: resource.KindRoom, Name: "101", Capacity: 2}, nil, resource.ErrRoomTypeRequired},
		{"pool without rate", resource.Spec{Kind: resource.KindPool, Name: "Pool", Capacity: 2}, nil, resource.ErrHourlyRateRequired},
		{"weekly rates on a hall", resource.Spec{Kind: resource.KindHall, Name: "Hall", Capacity: 10, HourlyRate: money.FromCents(100)},
			resource.WeeklyRates{time.Monday: money.FromCents(100)}, commands.ErrWeeklyRatesRoomsOnly},
		{"non-positive weekly rate", resource.Spec{Kind: resource.KindRoom, Name: "101", RoomTypeID: uuid.New(), Capacity: 2},
			resource.WeeklyRates{time.Monday: money.Zero()}, resource.ErrInvalidRate},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.resources.CreateResource(s.ctx, tt.spec, tt.weekly)
			s.ErrorIs(err, tt.want)
		})
	}
}

func (s *ResourceCommandsSuite) TestUpdateKeepsUnsetFields() {
	pool := s.pool(20, 1000)

	updated, err := s.resources.UpdateResource(s.ctx, pool.ID(), commands.ResourcePatch{Capacity: ptr(30)})
	s.Require().NoError(err)
	s.Equal(30, updated.Capacity())
	s.Equal(pool.Name(), updated.Name())
	s.Equal(money.FromCents(1000), updated.HourlyRate())

	_, err = s.resources.UpdateResource(s.ctx, pool.ID(), commands.ResourcePatch{Capacity: ptr(0)})
	s.ErrorIs(err, resource.ErrInvalidCapacity)

	_, err = s.resources.UpdateResource(s.ctx, uuid.New(), commands.ResourcePatch{Name: ptr("x")})
	s.ErrorIs(err, resource.ErrResourceNotFound)
}

func (s *ResourceCommandsSuite) TestDeletedResourceTakesNoReservations() {
	_, guest := s.customer("guest@example.com")
	hall := s.hall(20000)
	kept, err := s.reservations.CreateReservation(s.ctx, guest, commands.ReservationRequest{
		Kind: reservation.KindHallReservation, ResourceID: hall.ID(), Start: on(5, 10), End: ptr(on(5, 11)),
	})
	s.Require().NoError(err)

	s.Require().NoError(s.resources.DeleteResource(s.ctx, hall.ID()))

	_, err = s.reservations.CreateReservation(s.ctx, guest, commands.ReservationRequest{
		Kind: reservation.KindHallReservation, ResourceID: hall.ID(), Start: on(6, 10), End: ptr(on(6, 11)),
	})
	s.ErrorIs(err, resource.ErrResourceNotFound)

	s.Require().NoError(s.uow.WithinReadOnly(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Reservations().Get(ctx, reservation.KindHallReservation, kept.ID())
		return err
	}))
}

func (s *ResourceCommandsSuite) TestOverrides() {
	room := s.room(uuid.New(), 2, 10000)

	o, err := s.resources.AddOverride(s.ctx, room.ID(), on(10, 15), on(12, 9), money.FromCents(8000))
	s.Require().NoError(err)
	s.Equal(on(10, 0), o.StartDate())
	s.Equal(on(12, 0), o.EndDate())

	_, err = s.resources.AddOverride(s.ctx, room.ID(), on(12, 0), on(14, 0), money.FromCents(7000))
	s.ErrorIs(err, resource.ErrOverlappingOverride)

	_, err = s.resources.AddOverride(s.ctx, room.ID(), on(13, 0), on(14, 0), money.FromCents(7000))
	s.NoError(err)

	_, err = s.resources.AddOverride(s.ctx, room.ID(), on(20, 0), on(19, 0), money.FromCents(7000))
	s.ErrorIs(err, resource.ErrInvalidOverrideWindow)

	_, err = s.resources.AddOverride(s.ctx, uuid.New(), on(20, 0), on(21, 0), money.FromCents(7000))
	s.ErrorIs(err, resource.ErrResourceNotFound)

	restaurant := s.restaurant(10)
	_, err = s.resources.AddOverride(s.ctx, restaurant.ID(), on(20, 0), on(21, 0), money.FromCents(7000))
	s.ErrorIs(err, commands.ErrNotPriced)
}

func (s *ResourceCommandsSuite) TestWeeklyRates() {
	room := s.resource(resource.Spec{Kind: resource.KindRoom, Name: "101", RoomTypeID: uuid.New(), Capacity: 2}, nil)
	_, guest := s.customer("guest@example.com")
	req := commands.ReservationRequest{Kind: reservation.KindBooking, ResourceID: room.ID(), Start: on(10, 0), End: ptr(on(11, 0))}

	_, err := s.reservations.CheckAndPrice(s.ctx, guest, req)
	s.Error(err)

	s.Require().NoError(s.resources.SetWeeklyRate(s.ctx, room.ID(), time.Monday, money.FromCents(12000)))
	q, err := s.reservations.CheckAndPrice(s.ctx, guest, req)
	s.Require().NoError(err)
	s.Equal(money.FromCents(12000), q.Price)

	s.ErrorIs(s.resources.SetWeeklyRate(s.ctx, room.ID(), time.Monday, money.Zero()), resource.ErrInvalidRate)
	hall := s.hall(20000)
	s.ErrorIs(s.resources.SetWeeklyRate(s.ctx, hall.ID(), time.Monday, money.FromCents(100)), commands.ErrWeeklyRatesRoomsOnly)
}

func (s *ResourceCommandsSuite) TestRuleChangesInvalidateQuotes() {
	cache := sharedmock.NewMockQuoteCache(s.ctrl)
	s.quotes = cache
	s.wire()

	room := s.room(uuid.New(), 2, 10000)
	cache.EXPECT().Invalidate(gomock.Any(), room.ID()).Times(3)

	s.Require().NoError(s.resources.SetWeeklyRate(s.ctx, room.ID(), time.Friday, money.FromCents(15000)))
	_, err := s.resources.AddOverride(s.ctx, room.ID(), on(10, 0), on(10, 0), money.FromCents(9000))
	s.Require().NoError(err)
	_, err = s.resources.UpdateResource(s.ctx, room.ID(), commands.ResourcePatch{Name: ptr("Garden View")})
	s.Require().NoError(err)

	// unchanged values leave cached quotes alone
	same, err := s.resources.UpdateResource(s.ctx, room.ID(), commands.ResourcePatch{Name: ptr("Garden View"), Capacity: ptr(2)})
	s.Require().NoError(err)
	s.Equal("Garden View", same.Name())
}

func (s *ResourceCommandsSuite) TestOverrideWindowCoversWholeDays() {
	_, guest := s.customer("guest@example.com")
	room := s.room(uuid.New(), 2, 10000)
	_, err := s.resources.AddOverride(s.ctx, room.ID(), on(14, 0), on(14, 0), money.FromCents(5000))
	s.Require().NoError(err)

	span := interval.Must(on(13, 0), on(14, 0))
	q, err := s.reservations.CheckAndPrice(s.ctx, guest, commands.ReservationRequest{
		Kind: reservation.KindBooking, ResourceID: room.ID(), Start: span.Start(), End: ptr(span.End()),
	})
	s.Require().NoError(err)
	s.Equal(money.FromCents(10000), q.Price)

	q, err = s.reservations.CheckAndPrice(s.ctx, guest, commands.ReservationRequest{
		Kind: reservation.KindBooking, ResourceID: room.ID(), Start: on(14, 0), End: ptr(on(15, 0)),
	})
	s.Require().NoError(err)
	s.Equal(money.FromCents(5000), q.Price)
}
