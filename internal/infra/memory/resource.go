package memory

import (
	"context"
	"slices"
	"strings"

	"resort-engine/internal/domain/resource"
	"resort-engine/internal/infra"
	"resort-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type resourceRepo struct{ u *UnitOfWork }

func (r resourceRepo) Create(_ context.Context, res *resource.Resource) error {
	if _, ok := r.u.state.resources[res.ID()]; ok {
		return infra.WrapRepoErr(r.u.logger, infra.KindDuplicateKey, "resource already exists", nil)
	}
	r.u.state.resources[res.ID()] = res.Snapshot()
	return nil
}

func (r resourceRepo) Update(_ context.Context, res *resource.Resource) error {
	if _, ok := r.u.state.resources[res.ID()]; !ok {
		return r.u.notFound("resource not found")
	}
	r.u.state.resources[res.ID()] = res.Snapshot()
	return nil
}

func (r resourceRepo) FindByID(_ context.Context, id uuid.UUID) (*resource.Resource, error) {
	s, ok := r.u.state.resources[id]
	if !ok || s.Deleted {
		return nil, r.u.notFound("resource not found")
	}
	return resource.Reconstruct(s), nil
}

// LockByID needs no lock: the unit of work already holds the store mutex.
func (r resourceRepo) LockByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	return r.FindByID(ctx, id)
}

func (r resourceRepo) LockByRoomType(ctx context.Context, roomTypeID uuid.UUID) ([]*resource.Resource, error) {
	return r.List(ctx, shared.ResourceFilter{Kind: ptrKind(resource.KindRoom), RoomTypeID: &roomTypeID})
}

func (r resourceRepo) List(_ context.Context, filter shared.ResourceFilter) ([]*resource.Resource, error) {
	var out []*resource.Resource
	for _, s := range r.u.state.resources {
		if s.Deleted {
			continue
		}
		if filter.Kind != nil && s.Kind != *filter.Kind {
			continue
		}
		if filter.RoomTypeID != nil && s.RoomTypeID != *filter.RoomTypeID {
			continue
		}
		out = append(out, resource.Reconstruct(s))
	}
	if filter.RoomTypeID != nil {
		slices.SortFunc(out, func(a, b *resource.Resource) int { return strings.Compare(a.ID().String(), b.ID().String()) })
		return out, nil
	}
	slices.SortFunc(out, func(a, b *resource.Resource) int {
		if c := strings.Compare(string(a.Kind()), string(b.Kind())); c != 0 {
			return c
		}
		if c := strings.Compare(a.Name(), b.Name()); c != 0 {
			return c
		}
		return strings.Compare(a.ID().String(), b.ID().String())
	})
	return out, nil
}

func ptrKind(k resource.Kind) *resource.Kind {
	return &k
}
