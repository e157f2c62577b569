package memory

import (
	"context"

	"terrafarm/internal/domain/farm"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, farmID string, events []farm.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	r.store.events[farmID] = append(r.store.events[farmID], events...)
	return nil
}

func (r EventRepo) ListByFarmID(_ context.Context, farmID string, limit int) ([]farm.DomainEvent, error) {
	all := r.store.events[farmID]
	// Newest first.
	out := make([]farm.DomainEvent, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		out = append(out, all[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
