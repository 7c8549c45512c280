package request

import (
	"time"

	"resort-engine/internal/domain/reservation"
	"resort-engine/internal/usecase/commands"
	"resort-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

// CreateReservationRequest also serves availability quotes. Bookings name
// either a room or a room type.
type CreateReservationRequest struct {
	ResourceID *uuid.UUID `json:"resource_id"`
	RoomTypeID *uuid.UUID `json:"room_type_id"`
	CustomerID *uuid.UUID `json:"customer_id"`
	Start      time.Time  `json:"start" binding:"required"`
	End        *time.Time `json:"end"`
	Occupancy  int        `json:"occupancy" binding:"gte=0,lte=10000"`
	Note       string     `json:"note" binding:"max=1000"`
	WalkIn     bool       `json:"walk_in"`
}

func (r CreateReservationRequest) ToCommand(kind reservation.Kind) commands.ReservationRequest {
	req := commands.ReservationRequest{
		Kind:      kind,
		Start:     r.Start,
		End:       r.End,
		Occupancy: r.Occupancy,
		Note:      r.Note,
		WalkIn:    r.WalkIn,
	}
	if r.ResourceID != nil {
		req.ResourceID = *r.ResourceID
	}
	if r.RoomTypeID != nil {
		req.RoomTypeID = *r.RoomTypeID
	}
	if r.CustomerID != nil {
		req.CustomerID = *r.CustomerID
	}
	return req
}

// ListReservationsQuery is bound from the query string.
type ListReservationsQuery struct {
	Kind        string     `form:"kind"`
	Status      string     `form:"status"`
	Payed       *bool      `form:"payed"`
	ResourceID  string     `form:"resource_id" binding:"omitempty,uuid"`
	CustomerID  string     `form:"customer_id" binding:"omitempty,uuid"`
	StartFrom   *time.Time `form:"start_from" time_format:"2006-01-02T15:04:05Z07:00"`
	StartBefore *time.Time `form:"start_before" time_format:"2006-01-02T15:04:05Z07:00"`
	Cursor      string     `form:"cursor"`
	Limit       int        `form:"limit" binding:"gte=0,lte=200"`
}

func (q ListReservationsQuery) ToInput() (queries.ReservationListInput, error) {
	in := queries.ReservationListInput{
		Payed:       q.Payed,
		StartFrom:   q.StartFrom,
		StartBefore: q.StartBefore,
		After:       q.Cursor,
		Limit:       q.Limit,
	}
	if q.Kind != "" {
		kind, err := reservation.ParseKind(q.Kind)
		if err != nil {
			return in, err
		}
		in.Kind = &kind
	}
	if q.Status != "" {
		status, err := reservation.ParseStatus(q.Status)
		if err != nil {
			return in, err
		}
		in.Status = &status
	}
	if q.ResourceID != "" {
		id := uuid.MustParse(q.ResourceID)
		in.ResourceID = &id
	}
	if q.CustomerID != "" {
		id := uuid.MustParse(q.CustomerID)
		in.CustomerID = &id
	}
	return in, nil
}
