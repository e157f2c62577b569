package memory

import (
	"context"

	"terrafarm/internal/app/ports"
	"terrafarm/internal/domain/farm"
)

type FarmRepo struct {
	store *Store
}

func NewFarmRepo(store *Store) FarmRepo {
	return FarmRepo{store: store}
}

func (r FarmRepo) GetByID(_ context.Context, farmID string) (farm.Farm, error) {
	f, ok := r.store.farms[farmID]
	if !ok {
		return farm.Farm{}, ports.ErrNotFound
	}
	return f, nil
}

func (r FarmRepo) SaveWithVersion(_ context.Context, f farm.Farm, expectedVersion int64) error {
	current, ok := r.store.farms[f.ID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.farms[f.ID] = f
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.farms[f.ID] = f
	return nil
}

func (r FarmRepo) Delete(_ context.Context, farmID string) error {
	if _, ok := r.store.farms[farmID]; !ok {
		return ports.ErrNotFound
	}
	delete(r.store.farms, farmID)
	delete(r.store.events, farmID)
	return nil
}
