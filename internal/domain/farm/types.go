package farm

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

type PlotStatus string

const (
	PlotEmpty   PlotStatus = "empty"
	PlotPlanted PlotStatus = "planted"
	PlotGrowing PlotStatus = "growing"
	PlotReady   PlotStatus = "ready"
)

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Plot is one planting slot. Status is the single source of truth for
// emptiness; CropID is non-empty iff Status != PlotEmpty.
type Plot struct {
	ID              int        `json:"id"`
	Status          PlotStatus `json:"status"`
	CropID          string     `json:"crop_id,omitempty"`
	PlantedDay      int        `json:"planted_day,omitempty"`
	WaterLevel      float64    `json:"water_level"`
	FertilizerLevel float64    `json:"fertilizer_level"`
	Health          float64    `json:"health"`
	GrowthProgress  float64    `json:"growth_progress"`

	// Tending history since planting, feeds the harvest quality factor.
	GrowthDays        int     `json:"growth_days,omitempty"`
	HealthSum         float64 `json:"health_sum,omitempty"`
	AdequateWaterDays int     `json:"adequate_water_days,omitempty"`
	TempStressDays    int     `json:"temp_stress_days,omitempty"`
}

// Farm is the aggregate root of one play-through. All mutation goes through
// ActionService and DayService; Version backs optimistic concurrency.
type Farm struct {
	ID            string     `json:"id"`
	OwnerID       string     `json:"owner_id"`
	Difficulty    Difficulty `json:"difficulty"`
	Location      Location   `json:"location"`
	CurrentDay    int        `json:"current_day"`
	Season        Season     `json:"season"`
	Budget        float64    `json:"budget"`
	TotalRevenue  float64    `json:"total_revenue"`
	TotalExpenses float64    `json:"total_expenses"`
	Achievements  []string   `json:"achievements"`
	Plots         []Plot     `json:"plots"`
	Version       int64      `json:"version"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type ActionType string

const (
	ActionPlant     ActionType = "plant"
	ActionWater     ActionType = "water"
	ActionFertilize ActionType = "fertilize"
	ActionHarvest   ActionType = "harvest"
	ActionRemove    ActionType = "remove"
)

// ActionIntent is a transient command targeting one plot.
type ActionIntent struct {
	Type   ActionType `json:"type"`
	PlotID int        `json:"plot_id"`
	CropID string     `json:"crop_id,omitempty"`
}

// ActionOutcome is feedback for the caller; it is not persisted state.
type ActionOutcome struct {
	Message string  `json:"message"`
	Cost    float64 `json:"cost"`
	Revenue float64 `json:"revenue"`
}

type DomainEvent struct {
	Type       string         `json:"type"`
	Message    string         `json:"message"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload,omitempty"`
}
