package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"terrafarm/internal/adapter/repo/memory"
	"terrafarm/internal/app/ports"
	"terrafarm/internal/domain/farm"
)

func TestCreate_NewFarmWithDefaults(t *testing.T) {
	store := memory.NewStore()
	uc := CreateUseCase{
		Farms: memory.NewFarmRepo(store),
		NewID: func() string { return "farm-1" },
		Now:   func() time.Time { return time.Unix(1000, 0) },
	}

	resp, err := uc.Execute(context.Background(), CreateRequest{
		OwnerID:  "player-1",
		Latitude: 45, Longitude: 9,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	f := resp.Farm
	if f.ID != "farm-1" || f.OwnerID != "player-1" {
		t.Fatalf("identity: %+v", f)
	}
	if f.Difficulty != farm.DifficultyNormal {
		t.Fatalf("difficulty=%s, want normal default", f.Difficulty)
	}
	if len(f.Plots) != farm.DefaultPlotCount {
		t.Fatalf("plots=%d, want %d", len(f.Plots), farm.DefaultPlotCount)
	}
	if f.Budget != farm.SettingsFor(farm.DifficultyNormal).StartingBudget {
		t.Fatalf("budget=%v", f.Budget)
	}
	if f.CurrentDay != 1 || f.Version != 1 {
		t.Fatalf("day=%d version=%d", f.CurrentDay, f.Version)
	}

	saved, err := memory.NewFarmRepo(store).GetByID(context.Background(), "farm-1")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if saved.ID != "farm-1" {
		t.Fatalf("farm must be persisted")
	}
}

func TestCreate_EasyDifficultyBudget(t *testing.T) {
	uc := CreateUseCase{
		Farms: memory.NewFarmRepo(memory.NewStore()),
		NewID: func() string { return "farm-e" },
	}

	resp, err := uc.Execute(context.Background(), CreateRequest{
		OwnerID: "player-1", Difficulty: farm.DifficultyEasy,
		Latitude: 45, Longitude: 9,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.Farm.Budget != 10000 {
		t.Fatalf("budget=%v, want 10000 on easy", resp.Farm.Budget)
	}
}

func TestCreate_InvalidLocation(t *testing.T) {
	uc := CreateUseCase{Farms: memory.NewFarmRepo(memory.NewStore())}

	_, err := uc.Execute(context.Background(), CreateRequest{
		OwnerID: "player-1", Latitude: 95, Longitude: 9,
	})
	if !errors.Is(err, farm.ErrInvalidLocation) {
		t.Fatalf("expected ErrInvalidLocation, got %v", err)
	}
}

func TestCreate_BlankOwnerIsInvalid(t *testing.T) {
	uc := CreateUseCase{Farms: memory.NewFarmRepo(memory.NewStore())}

	_, err := uc.Execute(context.Background(), CreateRequest{OwnerID: " "})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestNewFarmID_IsShortHex(t *testing.T) {
	id := NewFarmID()
	if len(id) != 8 {
		t.Fatalf("id %q, want 8 hex chars", id)
	}
	if id == NewFarmID() && id == NewFarmID() {
		t.Fatalf("ids should vary")
	}
}

func TestGetAndDelete(t *testing.T) {
	store := memory.NewStore()
	f := seedFarm(t, store)

	getUC := GetUseCase{Farms: memory.NewFarmRepo(store)}
	resp, err := getUC.Execute(context.Background(), GetRequest{FarmID: f.ID})
	if err != nil || resp.Farm.ID != f.ID {
		t.Fatalf("get: %v %+v", err, resp)
	}

	delUC := DeleteUseCase{Farms: memory.NewFarmRepo(store)}
	if err := delUC.Execute(context.Background(), DeleteRequest{FarmID: f.ID}); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := getUC.Execute(context.Background(), GetRequest{FarmID: f.ID}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := delUC.Execute(context.Background(), DeleteRequest{FarmID: f.ID}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("double delete must report ErrNotFound, got %v", err)
	}
}

func TestSummary_AggregatesPlotsAndFinances(t *testing.T) {
	store := memory.NewStore()
	f := seedFarm(t, store)
	f.Plots[0].Status = farm.PlotGrowing
	f.Plots[0].CropID = "wheat"
	f.Plots[0].Health = 80
	f.Plots[1].Status = farm.PlotReady
	f.Plots[1].CropID = "wheat"
	f.Plots[1].Health = 60
	f.TotalRevenue = 500
	f.TotalExpenses = 200.25
	store.SeedFarm(f)

	uc := SummaryUseCase{Farms: memory.NewFarmRepo(store)}
	resp, err := uc.Execute(context.Background(), SummaryRequest{FarmID: f.ID})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if resp.Farm.TotalPlots != 2 || resp.Farm.ActivePlots != 2 || resp.Farm.ReadyToHarvest != 1 {
		t.Fatalf("plot stats: %+v", resp.Farm)
	}
	if resp.Farm.AverageHealth != 70 {
		t.Fatalf("avg health=%v, want 70", resp.Farm.AverageHealth)
	}
	if resp.Financial.TotalExpenses != 200.25 {
		t.Fatalf("expenses=%v", resp.Financial.TotalExpenses)
	}
	if resp.Financial.Profit != 299.75 {
		t.Fatalf("profit=%v", resp.Financial.Profit)
	}
}

func TestEvents_NewestFirstWithLimit(t *testing.T) {
	store := memory.NewStore()
	f := seedFarm(t, store)

	repo := memory.NewEventRepo(store)
	if err := repo.Append(context.Background(), f.ID, []farm.DomainEvent{
		{Type: "first", OccurredAt: time.Unix(1, 0)},
		{Type: "second", OccurredAt: time.Unix(2, 0)},
		{Type: "third", OccurredAt: time.Unix(3, 0)},
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	uc := EventsUseCase{Events: repo}
	resp, err := uc.Execute(context.Background(), EventsRequest{FarmID: f.ID, Limit: 2})
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	if len(resp.Events) != 2 || resp.Events[0].Type != "third" || resp.Events[1].Type != "second" {
		t.Fatalf("events: %+v", resp.Events)
	}
}

func seedFarm(t *testing.T, store *memory.Store) farm.Farm {
	t.Helper()
	f, err := farm.NewFarm("farm-1", "player-1", farm.DifficultyNormal,
		farm.Location{Latitude: 45, Longitude: 9}, 2, time.Unix(1000, 0))
	if err != nil {
		t.Fatalf("new farm: %v", err)
	}
	store.SeedFarm(f)
	return f
}
