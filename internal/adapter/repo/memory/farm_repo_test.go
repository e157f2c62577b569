package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"terrafarm/internal/app/ports"
	"terrafarm/internal/domain/farm"
)

func testFarm(t *testing.T, id string) farm.Farm {
	t.Helper()
	f, err := farm.NewFarm(id, "player-1", farm.DifficultyNormal,
		farm.Location{Latitude: 45, Longitude: 9}, 2, time.Unix(1000, 0))
	if err != nil {
		t.Fatalf("new farm: %v", err)
	}
	return f
}

func TestSaveWithVersion_CreateAndReload(t *testing.T) {
	repo := NewFarmRepo(NewStore())
	f := testFarm(t, "farm-1")

	if err := repo.SaveWithVersion(context.Background(), f, 0); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := repo.GetByID(context.Background(), "farm-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != f.ID || got.Version != f.Version {
		t.Fatalf("got %+v", got)
	}
}

func TestSaveWithVersion_CreateOnExistingIDConflicts(t *testing.T) {
	repo := NewFarmRepo(NewStore())
	f := testFarm(t, "farm-1")

	if err := repo.SaveWithVersion(context.Background(), f, 0); err != nil {
		t.Fatalf("create: %v", err)
	}
	// An update addressed at a missing record also conflicts.
	other := testFarm(t, "farm-2")
	if err := repo.SaveWithVersion(context.Background(), other, 5); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestSaveWithVersion_StaleVersionConflicts(t *testing.T) {
	repo := NewFarmRepo(NewStore())
	f := testFarm(t, "farm-1")
	if err := repo.SaveWithVersion(context.Background(), f, 0); err != nil {
		t.Fatalf("create: %v", err)
	}

	updated := f
	updated.Version = 2
	if err := repo.SaveWithVersion(context.Background(), updated, 1); err != nil {
		t.Fatalf("update: %v", err)
	}

	// A second writer still holding version 1 loses.
	stale := f
	stale.Version = 2
	if err := repo.SaveWithVersion(context.Background(), stale, 1); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	got, _ := repo.GetByID(context.Background(), "farm-1")
	if got.Version != 2 {
		t.Fatalf("version=%d, want 2", got.Version)
	}
}

func TestGetByID_Missing(t *testing.T) {
	repo := NewFarmRepo(NewStore())
	if _, err := repo.GetByID(context.Background(), "nope"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_RemovesFarmAndEvents(t *testing.T) {
	store := NewStore()
	farms := NewFarmRepo(store)
	events := NewEventRepo(store)
	f := testFarm(t, "farm-1")

	if err := farms.SaveWithVersion(context.Background(), f, 0); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := events.Append(context.Background(), "farm-1", []farm.DomainEvent{{Type: "action_settled"}}); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := farms.Delete(context.Background(), "farm-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := farms.GetByID(context.Background(), "farm-1"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	left, _ := events.ListByFarmID(context.Background(), "farm-1", 0)
	if len(left) != 0 {
		t.Fatalf("events must be deleted with the farm: %+v", left)
	}
	if err := farms.Delete(context.Background(), "farm-1"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("double delete must report ErrNotFound, got %v", err)
	}
}

func TestListByFarmID_NewestFirstAndLimited(t *testing.T) {
	events := NewEventRepo(NewStore())

	batch := []farm.DomainEvent{
		{Type: "a", OccurredAt: time.Unix(1, 0)},
		{Type: "b", OccurredAt: time.Unix(2, 0)},
		{Type: "c", OccurredAt: time.Unix(3, 0)},
	}
	if err := events.Append(context.Background(), "farm-1", batch); err != nil {
		t.Fatalf("append: %v", err)
	}

	all, err := events.ListByFarmID(context.Background(), "farm-1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 || all[0].Type != "c" || all[2].Type != "a" {
		t.Fatalf("order: %+v", all)
	}

	limited, err := events.ListByFarmID(context.Background(), "farm-1", 2)
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 2 || limited[0].Type != "c" || limited[1].Type != "b" {
		t.Fatalf("limited: %+v", limited)
	}
}
