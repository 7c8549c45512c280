// Package memory is an in-process storage driver. A single mutex serializes
// every unit of work, and a failed unit restores the state it started from.
package memory

import (
	"context"
	"log/slog"
	"maps"
	"sync"
	"time"

	"resort-engine/internal/domain/billing"
	"resort-engine/internal/domain/customer"
	"resort-engine/internal/domain/reservation"
	"resort-engine/internal/domain/resource"
	"resort-engine/internal/domain/shared/money"
	"resort-engine/internal/infra"
	"resort-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type state struct {
	resources    map[uuid.UUID]resource.Snapshot
	weekly       map[uuid.UUID]resource.WeeklyRates
	overrides    map[uuid.UUID][]resource.Override
	reservations map[uuid.UUID]reservation.Snapshot
	payments     []*billing.Payment
	customers    map[uuid.UUID]*customer.Customer
	codes        map[uuid.UUID]customer.VerificationCode
}

func newState() state {
	return state{
		resources:    map[uuid.UUID]resource.Snapshot{},
		weekly:       map[uuid.UUID]resource.WeeklyRates{},
		overrides:    map[uuid.UUID][]resource.Override{},
		reservations: map[uuid.UUID]reservation.Snapshot{},
		customers:    map[uuid.UUID]*customer.Customer{},
		codes:        map[uuid.UUID]customer.VerificationCode{},
	}
}

// clone copies every container. Stored values are never mutated in place.
func (s state) clone() state {
	c := state{
		resources:    maps.Clone(s.resources),
		weekly:       make(map[uuid.UUID]resource.WeeklyRates, len(s.weekly)),
		overrides:    make(map[uuid.UUID][]resource.Override, len(s.overrides)),
		reservations: maps.Clone(s.reservations),
		payments:     append([]*billing.Payment(nil), s.payments...),
		customers:    maps.Clone(s.customers),
		codes:        maps.Clone(s.codes),
	}
	for id, w := range s.weekly {
		c.weekly[id] = maps.Clone(w)
	}
	for id, o := range s.overrides {
		c.overrides[id] = append([]resource.Override(nil), o...)
	}
	return c
}

type UnitOfWork struct {
	mu     sync.Mutex
	state  state
	logger *slog.Logger
}

func NewUnitOfWork(logger *slog.Logger) *UnitOfWork {
	if logger == nil {
		logger = slog.Default()
	}
	return &UnitOfWork{state: newState(), logger: logger}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.run(ctx, fn)
}

func (u *UnitOfWork) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.run(ctx, fn)
}

func (u *UnitOfWork) run(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u.mu.Lock()
	defer u.mu.Unlock()

	before := u.state.clone()
	if err := fn(ctx, &memTx{u: u}); err != nil {
		u.state = before
		return err
	}
	return nil
}

func (u *UnitOfWork) notFound(msg string) error {
	return infra.WrapRepoErr(u.logger, infra.KindNotFound, msg, nil)
}

type memTx struct {
	u *UnitOfWork
}

func (t *memTx) Resources() shared.ResourceRepository                 { return resourceRepo{t.u} }
func (t *memTx) Pricing() shared.PricingRepository                    { return pricingRepo{t.u} }
func (t *memTx) Reservations() shared.ReservationRepository           { return reservationRepo{t.u} }
func (t *memTx) Payments() shared.PaymentRepository                   { return paymentRepo{t.u} }
func (t *memTx) Customers() shared.CustomerRepository                 { return customerRepo{t.u} }
func (t *memTx) VerificationCodes() shared.VerificationCodeRepository { return codeRepo{t.u} }

type pricingRepo struct{ u *UnitOfWork }

func (r pricingRepo) WeeklyRates(_ context.Context, resourceID uuid.UUID) (resource.WeeklyRates, error) {
	return maps.Clone(r.u.state.weekly[resourceID]), nil
}

func (r pricingRepo) SetWeeklyRate(_ context.Context, resourceID uuid.UUID, day time.Weekday, price money.Money) error {
	if _, ok := r.u.state.resources[resourceID]; !ok {
		return infra.WrapRepoErr(r.u.logger, infra.KindForeignKeyViolated, "unknown resource", nil)
	}
	w := maps.Clone(r.u.state.weekly[resourceID])
	if w == nil {
		w = resource.WeeklyRates{}
	}
	w[day] = price
	r.u.state.weekly[resourceID] = w
	return nil
}

func (r pricingRepo) Overrides(_ context.Context, resourceID uuid.UUID) ([]resource.Override, error) {
	return append([]resource.Override(nil), r.u.state.overrides[resourceID]...), nil
}

func (r pricingRepo) AddOverride(_ context.Context, o resource.Override) error {
	existing := r.u.state.overrides[o.ResourceID()]
	if err := resource.EnsureNoOverlap(existing, o); err != nil {
		return infra.WrapRepoErr(r.u.logger, infra.KindConflict, "override window overlaps", err)
	}
	r.u.state.overrides[o.ResourceID()] = append(append([]resource.Override(nil), existing...), o)
	return nil
}

type paymentRepo struct{ u *UnitOfWork }

func (r paymentRepo) Create(_ context.Context, p *billing.Payment) error {
	for _, existing := range r.u.state.payments {
		if existing.InvoiceID() == p.InvoiceID() {
			return infra.WrapRepoErr(r.u.logger, infra.KindDuplicateKey, "invoice already has a payment", nil)
		}
	}
	r.u.state.payments = append(r.u.state.payments, p)
	return nil
}

func (r paymentRepo) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]*billing.Payment, error) {
	var out []*billing.Payment
	for i := len(r.u.state.payments) - 1; i >= 0; i-- {
		if p := r.u.state.payments[i]; p.CustomerID() == customerID {
			out = append(out, p)
		}
	}
	return out, nil
}

type customerRepo struct{ u *UnitOfWork }

func (r customerRepo) Create(_ context.Context, c *customer.Customer) error {
	for _, existing := range r.u.state.customers {
		if existing.Email() == c.Email() {
			return infra.WrapRepoErr(r.u.logger, infra.KindDuplicateKey, "email already registered", nil)
		}
	}
	r.u.state.customers[c.ID()] = copyCustomer(c)
	return nil
}

func (r customerRepo) FindByID(_ context.Context, id uuid.UUID) (*customer.Customer, error) {
	c, ok := r.u.state.customers[id]
	if !ok {
		return nil, r.u.notFound("customer not found")
	}
	return copyCustomer(c), nil
}

func (r customerRepo) Update(_ context.Context, c *customer.Customer) error {
	if _, ok := r.u.state.customers[c.ID()]; !ok {
		return r.u.notFound("customer not found")
	}
	r.u.state.customers[c.ID()] = copyCustomer(c)
	return nil
}

func copyCustomer(c *customer.Customer) *customer.Customer {
	return customer.Reconstruct(c.ID(), c.Email(), c.FirstName(), c.LastName(), c.Locale(), c.IsVerified(), c.CreatedAt(), c.UpdatedAt())
}

type codeRepo struct{ u *UnitOfWork }

func (r codeRepo) Upsert(_ context.Context, code *customer.VerificationCode) error {
	r.u.state.codes[code.CustomerID()] = *code
	return nil
}

func (r codeRepo) FindByCustomer(_ context.Context, customerID uuid.UUID) (*customer.VerificationCode, error) {
	code, ok := r.u.state.codes[customerID]
	if !ok {
		return nil, r.u.notFound("verification code not found")
	}
	return &code, nil
}

func (r codeRepo) Delete(_ context.Context, customerID uuid.UUID) error {
	delete(r.u.state.codes, customerID)
	return nil
}

func (r codeRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for id, code := range r.u.state.codes {
		if code.Expired(now) {
			delete(r.u.state.codes, id)
			n++
		}
	}
	return n, nil
}
