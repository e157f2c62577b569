package ports

import (
	"context"

	"terrafarm/internal/domain/farm"
)

type FarmRepository interface {
	GetByID(ctx context.Context, farmID string) (farm.Farm, error)
	// SaveWithVersion persists the farm only if the stored version still
	// equals expectedVersion; otherwise it returns ErrConflict. An
	// expectedVersion of 0 creates the record.
	SaveWithVersion(ctx context.Context, f farm.Farm, expectedVersion int64) error
	Delete(ctx context.Context, farmID string) error
}

type EventRepository interface {
	Append(ctx context.Context, farmID string, events []farm.DomainEvent) error
	ListByFarmID(ctx context.Context, farmID string, limit int) ([]farm.DomainEvent, error)
}
