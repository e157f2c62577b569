package farm

import (
	"fmt"
	"time"
)

// NewFarm creates a farm with count empty plots and a difficulty-determined
// starting budget. The plot count is fixed for the lifetime of the farm.
func NewFarm(id, ownerID string, difficulty Difficulty, loc Location, plotCount int, now time.Time) (Farm, error) {
	if loc.Latitude < -90 || loc.Latitude > 90 || loc.Longitude < -180 || loc.Longitude > 180 {
		return Farm{}, ErrInvalidLocation
	}
	if plotCount <= 0 {
		plotCount = DefaultPlotCount
	}
	if plotCount > MaxPlotCount {
		plotCount = MaxPlotCount
	}
	switch difficulty {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
	default:
		difficulty = DifficultyNormal
	}

	plots := make([]Plot, plotCount)
	for i := range plots {
		plots[i] = Plot{ID: i + 1, Status: PlotEmpty, WaterLevel: InitialWaterLevel, Health: 100}
	}

	return Farm{
		ID:           id,
		OwnerID:      ownerID,
		Difficulty:   difficulty,
		Location:     loc,
		CurrentDay:   1,
		Season:       SeasonForDay(1, loc.Latitude),
		Budget:       SettingsFor(difficulty).StartingBudget,
		Achievements: []string{},
		Plots:        plots,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// PlotByID returns the plot with the given 1-indexed id.
func (f *Farm) PlotByID(id int) (*Plot, error) {
	for i := range f.Plots {
		if f.Plots[i].ID == id {
			return &f.Plots[i], nil
		}
	}
	return nil, ErrPlotNotFound
}

// validateStructure catches structural corruption: plots must be 1..N in
// order and crop ids must agree with status. Violations are fatal rather
// than silently repaired.
func (f *Farm) validateStructure() error {
	if len(f.Plots) == 0 {
		return fmt.Errorf("%w: farm %s has no plots", ErrCorruptFarm, f.ID)
	}
	for i := range f.Plots {
		p := &f.Plots[i]
		if p.ID != i+1 {
			return fmt.Errorf("%w: plot at index %d has id %d", ErrCorruptFarm, i, p.ID)
		}
		if (p.Status == PlotEmpty) != (p.CropID == "") {
			return fmt.Errorf("%w: plot %d status %s with crop %q", ErrCorruptFarm, p.ID, p.Status, p.CropID)
		}
	}
	return nil
}

func (f *Farm) spend(amount float64) error {
	if f.Budget < amount {
		return ErrInsufficientFunds
	}
	f.Budget -= amount
	f.TotalExpenses += amount
	return nil
}

func (f *Farm) earn(amount float64) {
	f.Budget += amount
	f.TotalRevenue += amount
}

func (f *Farm) unlockAchievement(name string) bool {
	for _, a := range f.Achievements {
		if a == name {
			return false
		}
	}
	f.Achievements = append(f.Achievements, name)
	return true
}

// clear returns the plot to empty, discarding the crop and tending history.
func (p *Plot) clear() {
	*p = Plot{ID: p.ID, Status: PlotEmpty, WaterLevel: InitialWaterLevel, Health: 100}
}
