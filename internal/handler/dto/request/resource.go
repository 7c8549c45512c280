package request

import (
	"time"

	"resort-engine/internal/domain/resource"
	"resort-engine/internal/domain/shared/money"
	"resort-engine/internal/usecase/commands"
	"resort-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateResourceRequest struct {
	Kind        string             `json:"kind" binding:"required,oneof=room hall pool restaurant"`
	Name        string             `json:"name" binding:"required,max=255"`
	RoomTypeID  *uuid.UUID         `json:"room_type_id"`
	Capacity    int                `json:"capacity" binding:"required,gt=0"`
	Status      string             `json:"status" binding:"omitempty,oneof=available maintenance closed"`
	HourlyRate  *float64           `json:"hourly_rate" binding:"omitempty,gt=0"`
	WeeklyRates map[string]float64 `json:"weekly_rates"`
}

func (r CreateResourceRequest) ToSpec() (resource.Spec, resource.WeeklyRates, error) {
	kind, err := resource.ParseKind(r.Kind)
	if err != nil {
		return resource.Spec{}, nil, err
	}
	spec := resource.Spec{
		Kind:     kind,
		Name:     r.Name,
		Capacity: r.Capacity,
		Status:   resource.Status(r.Status),
	}
	if r.RoomTypeID != nil {
		spec.RoomTypeID = *r.RoomTypeID
	}
	if r.HourlyRate != nil {
		if spec.HourlyRate, err = money.FromFloat(*r.HourlyRate); err != nil {
			return resource.Spec{}, nil, err
		}
	}

	var weekly resource.WeeklyRates
	if len(r.WeeklyRates) > 0 {
		weekly = make(resource.WeeklyRates, len(r.WeeklyRates))
		for name, amount := range r.WeeklyRates {
			day, err := resource.ParseWeekday(name)
			if err != nil {
				return resource.Spec{}, nil, err
			}
			price, err := money.FromFloat(amount)
			if err != nil {
				return resource.Spec{}, nil, err
			}
			weekly[day] = price
		}
	}
	return spec, weekly, nil
}

type UpdateResourceRequest struct {
	Name       *string  `json:"name" binding:"omitempty,max=255"`
	Capacity   *int     `json:"capacity" binding:"omitempty,gt=0"`
	Status     *string  `json:"status" binding:"omitempty,oneof=available maintenance closed"`
	HourlyRate *float64 `json:"hourly_rate" binding:"omitempty,gt=0"`
}

func (r UpdateResourceRequest) ToPatch() (commands.ResourcePatch, error) {
	p := commands.ResourcePatch{Name: r.Name, Capacity: r.Capacity}
	if r.Status != nil {
		status := resource.Status(*r.Status)
		p.Status = &status
	}
	if r.HourlyRate != nil {
		rate, err := money.FromFloat(*r.HourlyRate)
		if err != nil {
			return p, err
		}
		p.HourlyRate = &rate
	}
	return p, nil
}

type ListResourcesQuery struct {
	Kind       string `form:"kind" binding:"omitempty,oneof=room hall pool restaurant"`
	RoomTypeID string `form:"room_type_id" binding:"omitempty,uuid"`
}

func (q ListResourcesQuery) ToFilter() shared.ResourceFilter {
	var f shared.ResourceFilter
	if q.Kind != "" {
		kind := resource.Kind(q.Kind)
		f.Kind = &kind
	}
	if q.RoomTypeID != "" {
		id := uuid.MustParse(q.RoomTypeID)
		f.RoomTypeID = &id
	}
	return f
}

type PriceRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

func (r PriceRequest) Money() (money.Money, error) {
	return money.FromFloat(r.Price)
}

type AddOverrideRequest struct {
	StartDate string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string  `json:"end_date" binding:"required,datetime=2006-01-02"`
	Price     float64 `json:"price" binding:"required,gt=0"`
}

// Window parses the inclusive date range in loc.
func (r AddOverrideRequest) Window(loc *time.Location) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(time.DateOnly, r.StartDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, resource.ErrInvalidOverrideWindow
	}
	end, err := time.ParseInLocation(time.DateOnly, r.EndDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, resource.ErrInvalidOverrideWindow
	}
	return start, end, nil
}
