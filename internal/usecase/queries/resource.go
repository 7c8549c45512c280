package queries

import (
	"context"
	"strings"

	"resort-engine/internal/domain/resource"
	"resort-engine/internal/infra"
	"resort-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type ResourceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
	List(ctx context.Context, filter shared.ResourceFilter) ([]*ResourceView, error)
	Rates(ctx context.Context, id uuid.UUID) (*RateCardView, error)
}

type resourceQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewResourceQueries(uow shared.UnitOfWork) ResourceQueries {
	return &resourceQueriesImpl{uow: uow}
}

func (q *resourceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ResourceView, error) {
	var view *ResourceView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := findResource(ctx, tx, id)
		if err != nil {
			return err
		}
		view, err = ToResourceView(res)
		return err
	})
	return view, err
}

func (q *resourceQueriesImpl) List(ctx context.Context, filter shared.ResourceFilter) ([]*ResourceView, error) {
	views := []*ResourceView{}
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		rows, err := tx.Resources().List(ctx, filter)
		if err != nil {
			return err
		}
		for _, res := range rows {
			view, err := ToResourceView(res)
			if err != nil {
				return err
			}
			views = append(views, view)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *resourceQueriesImpl) Rates(ctx context.Context, id uuid.UUID) (*RateCardView, error) {
	card := &RateCardView{ResourceID: id, Overrides: []OverrideView{}}
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := findResource(ctx, tx, id); err != nil {
			return err
		}
		weekly, err := tx.Pricing().WeeklyRates(ctx, id)
		if err != nil {
			return err
		}
		if len(weekly) > 0 {
			card.Weekly = make(map[string]string, len(weekly))
			for day, price := range weekly {
				card.Weekly[strings.ToLower(day.String())] = price.String()
			}
		}
		overrides, err := tx.Pricing().Overrides(ctx, id)
		if err != nil {
			return err
		}
		for _, o := range overrides {
			card.Overrides = append(card.Overrides, ToOverrideView(o))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

func findResource(ctx context.Context, tx shared.Tx, id uuid.UUID) (*resource.Resource, error) {
	res, err := tx.Resources().FindByID(ctx, id)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, resource.ErrResourceNotFound
	}
	return res, err
}
