package farm

import (
	"errors"
	"testing"
	"time"
)

func TestNewFarm_Defaults(t *testing.T) {
	f, err := NewFarm("f1", "p1", "", Location{Latitude: 45, Longitude: 9}, 0, time.Unix(1000, 0))
	if err != nil {
		t.Fatalf("new farm: %v", err)
	}
	if f.Difficulty != DifficultyNormal {
		t.Fatalf("difficulty=%s, want normal default", f.Difficulty)
	}
	if len(f.Plots) != DefaultPlotCount {
		t.Fatalf("plots=%d, want %d", len(f.Plots), DefaultPlotCount)
	}
	for i, p := range f.Plots {
		if p.ID != i+1 || p.Status != PlotEmpty || p.WaterLevel != InitialWaterLevel || p.Health != 100 {
			t.Fatalf("plot %d: %+v", i, p)
		}
	}
	if f.CurrentDay != 1 || f.Version != 1 {
		t.Fatalf("day=%d version=%d", f.CurrentDay, f.Version)
	}
}

func TestNewFarm_ClampsPlotCount(t *testing.T) {
	f, err := NewFarm("f1", "p1", DifficultyNormal, Location{Latitude: 45, Longitude: 9}, 50, time.Unix(1000, 0))
	if err != nil {
		t.Fatalf("new farm: %v", err)
	}
	if len(f.Plots) != MaxPlotCount {
		t.Fatalf("plots=%d, want clamp to %d", len(f.Plots), MaxPlotCount)
	}
}

func TestNewFarm_RejectsOutOfRangeCoordinates(t *testing.T) {
	cases := []Location{
		{Latitude: 91, Longitude: 0},
		{Latitude: -91, Longitude: 0},
		{Latitude: 0, Longitude: 181},
		{Latitude: 0, Longitude: -181},
	}
	for _, loc := range cases {
		if _, err := NewFarm("f1", "p1", DifficultyNormal, loc, 6, time.Unix(1000, 0)); !errors.Is(err, ErrInvalidLocation) {
			t.Errorf("location %+v: expected ErrInvalidLocation, got %v", loc, err)
		}
	}
}

func TestPlotByID(t *testing.T) {
	f := newTestFarm(t)

	p, err := f.PlotByID(2)
	if err != nil || p.ID != 2 {
		t.Fatalf("plot 2: %v %+v", err, p)
	}
	if _, err := f.PlotByID(3); !errors.Is(err, ErrPlotNotFound) {
		t.Fatalf("expected ErrPlotNotFound, got %v", err)
	}
}

func TestValidateStructure_DetectsCorruption(t *testing.T) {
	f := newTestFarm(t)
	f.Plots[0].CropID = "wheat" // empty status with a crop id

	if err := f.validateStructure(); !errors.Is(err, ErrCorruptFarm) {
		t.Fatalf("expected ErrCorruptFarm, got %v", err)
	}

	f = newTestFarm(t)
	f.Plots[1].ID = 7

	if err := f.validateStructure(); !errors.Is(err, ErrCorruptFarm) {
		t.Fatalf("expected ErrCorruptFarm for misnumbered plot, got %v", err)
	}
}

func TestUnlockAchievement_Idempotent(t *testing.T) {
	f := newTestFarm(t)

	if !f.unlockAchievement(AchievementFirstThousand) {
		t.Fatalf("first unlock must report true")
	}
	if f.unlockAchievement(AchievementFirstThousand) {
		t.Fatalf("second unlock must report false")
	}
	if len(f.Achievements) != 1 {
		t.Fatalf("achievements=%v", f.Achievements)
	}
}
