//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"resort-engine/internal/domain/customer"
	"resort-engine/internal/domain/pricing"
	"resort-engine/internal/domain/reservation"
	"resort-engine/internal/domain/resource"
	"resort-engine/internal/domain/shared/money"
	"resort-engine/internal/infra/memory"
	"resort-engine/internal/pkg/clock"
	"resort-engine/internal/pkg/jwt"
	"resort-engine/internal/usecase/commands"
	"resort-engine/internal/usecase/shared"
	sharedmock "resort-engine/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// Monday 2030-06-03 09:00 UTC
var start = time.Date(2030, 6, 3, 9, 0, 0, 0, time.UTC)

func on(day, hour int) time.Time {
	return time.Date(2030, 6, day, hour, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

type engineSuite struct {
	suite.Suite
	ctx      context.Context
	uow      *memory.UnitOfWork
	clock    *clock.MockClock
	ctrl     *gomock.Controller
	notifier *sharedmock.MockNotifier
	quotes   shared.QuoteCache

	mu   sync.Mutex
	sent []shared.Notification

	reservations commands.ReservationCommands
	billing      commands.BillingCommands
	resources    commands.ResourceCommands
	customers    commands.CustomerCommands
	staff        shared.Actor
}

func (s *engineSuite) SetupTest() {
	s.ctx = context.Background()
	s.uow = memory.NewUnitOfWork(nil)
	s.clock = clock.NewMockClock(start)
	s.ctrl = gomock.NewController(s.T())
	s.notifier = sharedmock.NewMockNotifier(s.ctrl)
	s.sent = nil
	s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(_ context.Context, n shared.Notification) {
		s.mu.Lock()
		s.sent = append(s.sent, n)
		s.mu.Unlock()
	}).AnyTimes()
	s.quotes = shared.NopQuoteCache{}
	s.wire()
	s.staff = shared.StaffActor(uuid.New())
}

func (s *engineSuite) wire() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	policies := reservation.NewPolicies(reservation.DefaultRules())
	resolver := pricing.NewResolver(time.UTC)

	s.reservations = commands.NewReservationCommands(s.uow, policies, resolver, s.quotes, s.notifier, shared.NopMetrics{}, s.clock, logger)
	s.billing = commands.NewBillingCommands(s.uow, s.notifier, shared.NopMetrics{}, s.clock, logger)
	s.resources = commands.NewResourceCommands(s.uow, s.quotes, s.clock, logger)
	s.customers = commands.NewCustomerCommands(s.uow, jwt.NewService("test-secret", time.Hour), s.notifier, s.clock, 10*time.Minute, logger)
}

func (s *engineSuite) notifications(template string) []shared.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []shared.Notification
	for _, n := range s.sent {
		if n.Template == template {
			out = append(out, n)
		}
	}
	return out
}

func (s *engineSuite) customer(email string) (*customer.Customer, shared.Actor) {
	s.T().Helper()
	reg, err := s.customers.Register(s.ctx, commands.RegisterInput{Email: email, FirstName: "Lina", LastName: "Haddad"})
	s.Require().NoError(err)
	return reg.Customer, shared.CustomerActor(reg.Customer.ID())
}

func (s *engineSuite) resource(spec resource.Spec, weekly resource.WeeklyRates) *resource.Resource {
	s.T().Helper()
	res, err := s.resources.CreateResource(s.ctx, spec, weekly)
	s.Require().NoError(err)
	return res
}

func (s *engineSuite) pool(capacity int, rateCents int64) *resource.Resource {
	return s.resource(resource.Spec{Kind: resource.KindPool, Name: "Lagoon", Capacity: capacity, HourlyRate: money.FromCents(rateCents)}, nil)
}

func (s *engineSuite) hall(rateCents int64) *resource.Resource {
	return s.resource(resource.Spec{Kind: resource.KindHall, Name: "Grand Hall", Capacity: 200, HourlyRate: money.FromCents(rateCents)}, nil)
}

func (s *engineSuite) restaurant(capacity int) *resource.Resource {
	return s.resource(resource.Spec{Kind: resource.KindRestaurant, Name: "Olive", Capacity: capacity}, nil)
}

func (s *engineSuite) room(roomType uuid.UUID, capacity int, dailyCents int64) *resource.Resource {
	weekly := resource.WeeklyRates{}
	for d := time.Sunday; d <= time.Saturday; d++ {
		weekly[d] = money.FromCents(dailyCents)
	}
	return s.resource(resource.Spec{Kind: resource.KindRoom, Name: "Sea View", RoomTypeID: roomType, Capacity: capacity}, weekly)
}

func (s *engineSuite) visit(actor shared.Actor, poolID uuid.UUID, guests int, from, to time.Time) (*reservation.Reservation, error) {
	return s.reservations.CreateReservation(s.ctx, actor, commands.ReservationRequest{
		Kind:       reservation.KindPoolVisit,
		ResourceID: poolID,
		Start:      from,
		End:        &to,
		Occupancy:  guests,
	})
}
