package commands

import (
	"time"

	"resort-engine/internal/domain/reservation"
	"resort-engine/internal/infra"
	"resort-engine/internal/pkg/clock"
	"resort-engine/internal/pkg/errs"
)

// translate turns repository failures into domain errors. NOT_FOUND becomes
// notFound and lost races become ErrReservationConflict. Anything else is
// returned unchanged so the unit of work can still retry it.
func translate(err, notFound error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && infra.IsKind(err, infra.KindNotFound):
		return notFound
	case infra.IsKind(err, infra.KindConflict), infra.IsKind(err, infra.KindStaleVersion):
		return errs.Wrap(reservation.ErrReservationConflict, err.Error())
	default:
		return err
	}
}

// stamp reads the clock at storage precision so that keyset cursors built
// from created_at round-trip exactly.
func stamp(c clock.Clock) time.Time {
	return c.Now().UTC().Truncate(time.Microsecond)
}

func rejectReason(err error) string {
	switch {
	case errs.Is(err, reservation.ErrCapacityExceeded):
		return "capacity_exceeded"
	case errs.Is(err, reservation.ErrResourceUnavailable):
		return "unavailable"
	case errs.Is(err, reservation.ErrReservationConflict):
		return "race"
	default:
		return string(errs.KindOf(err))
	}
}

var ErrStaffOnly = errs.Refine(reservation.ErrInvalidTransition, errs.KindConflict, "only staff may accept reservations")
