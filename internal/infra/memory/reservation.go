package memory

import (
	"context"
	"slices"
	"strings"

	"resort-engine/internal/domain/reservation"
	"resort-engine/internal/domain/shared/interval"
	"resort-engine/internal/infra"
	"resort-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type reservationRepo struct{ u *UnitOfWork }

func (r reservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	if _, ok := r.u.state.reservations[res.ID()]; ok {
		return infra.WrapRepoErr(r.u.logger, infra.KindDuplicateKey, "reservation already exists", nil)
	}
	if _, ok := r.u.state.customers[res.CustomerID()]; !ok {
		return infra.WrapRepoErr(r.u.logger, infra.KindForeignKeyViolated, "unknown customer", nil)
	}
	r.u.state.reservations[res.ID()] = res.Snapshot()
	return nil
}

func (r reservationRepo) Get(_ context.Context, kind reservation.Kind, id uuid.UUID) (*reservation.Reservation, error) {
	s, ok := r.u.state.reservations[id]
	if !ok || s.Deleted || s.Kind != kind {
		return nil, r.u.notFound("reservation not found")
	}
	return reservation.Reconstruct(s), nil
}

func (r reservationRepo) GetForUpdate(ctx context.Context, kind reservation.Kind, id uuid.UUID) (*reservation.Reservation, error) {
	return r.Get(ctx, kind, id)
}

func (r reservationRepo) Update(_ context.Context, res *reservation.Reservation) error {
	stored, ok := r.u.state.reservations[res.ID()]
	if !ok {
		return r.u.notFound("reservation not found")
	}
	if stored.Version != res.Version() {
		return infra.WrapRepoErr(r.u.logger, infra.KindStaleVersion, "reservation changed concurrently", nil)
	}
	res.Bump()
	r.u.state.reservations[res.ID()] = res.Snapshot()
	return nil
}

func (r reservationRepo) Occupying(_ context.Context, resourceID uuid.UUID, statuses []reservation.Status, window interval.Interval) ([]*reservation.Reservation, error) {
	var out []*reservation.Reservation
	for _, s := range r.u.state.reservations {
		if s.ResourceID != resourceID || s.Deleted || !slices.Contains(statuses, s.Status) {
			continue
		}
		last := s.Start
		if s.End != nil {
			last = *s.End
		}
		if s.Start.Before(window.End()) && !last.Before(window.Start()) {
			out = append(out, reservation.Reconstruct(s))
		}
	}
	slices.SortFunc(out, func(a, b *reservation.Reservation) int {
		if c := a.Start().Compare(b.Start()); c != 0 {
			return c
		}
		return strings.Compare(a.ID().String(), b.ID().String())
	})
	return out, nil
}

func (r reservationRepo) List(_ context.Context, filter shared.ReservationFilter) ([]*reservation.Reservation, error) {
	out := r.filter(filter)
	slices.SortFunc(out, newestFirst)
	if filter.After != nil {
		cut := slices.IndexFunc(out, func(res *reservation.Reservation) bool { return before(res, *filter.After) })
		if cut < 0 {
			return nil, nil
		}
		out = out[cut:]
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r reservationRepo) CountDistinctCustomers(_ context.Context, filter shared.ReservationFilter) (int, error) {
	seen := map[uuid.UUID]struct{}{}
	for _, res := range r.filter(filter) {
		seen[res.CustomerID()] = struct{}{}
	}
	return len(seen), nil
}

func (r reservationRepo) ListByCustomer(_ context.Context, customerID uuid.UUID, payed bool) ([]*reservation.Reservation, error) {
	out := r.filter(shared.ReservationFilter{CustomerID: &customerID, Payed: &payed})
	slices.SortFunc(out, newestFirst)
	return out, nil
}

func (r reservationRepo) filter(f shared.ReservationFilter) []*reservation.Reservation {
	var out []*reservation.Reservation
	for _, s := range r.u.state.reservations {
		switch {
		case s.Deleted,
			f.Kind != nil && s.Kind != *f.Kind,
			f.Status != nil && s.Status != *f.Status,
			f.Payed != nil && s.Payed != *f.Payed,
			f.ResourceID != nil && s.ResourceID != *f.ResourceID,
			f.CustomerID != nil && s.CustomerID != *f.CustomerID,
			f.StartFrom != nil && s.Start.Before(*f.StartFrom),
			f.StartBefore != nil && !s.Start.Before(*f.StartBefore):
			continue
		}
		out = append(out, reservation.Reconstruct(s))
	}
	return out
}

func newestFirst(a, b *reservation.Reservation) int {
	if c := b.CreatedAt().Compare(a.CreatedAt()); c != 0 {
		return c
	}
	return strings.Compare(b.ID().String(), a.ID().String())
}

// before reports whether res sorts strictly after the keyset position.
func before(res *reservation.Reservation, k shared.Keyset) bool {
	if !res.CreatedAt().Equal(k.CreatedAt) {
		return res.CreatedAt().Before(k.CreatedAt)
	}
	return strings.Compare(res.ID().String(), k.ID.String()) < 0
}
