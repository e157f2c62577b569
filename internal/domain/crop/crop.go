package crop

// WaterNeed is the agronomic water demand tier of a crop.
type WaterNeed string

const (
	WaterNeedLow    WaterNeed = "low"
	WaterNeedMedium WaterNeed = "medium"
	WaterNeedHigh   WaterNeed = "high"
)

// LevelThreshold is the plot water level (0-100) below which growth stalls.
func (w WaterNeed) LevelThreshold() float64 {
	switch w {
	case WaterNeedLow:
		return 20
	case WaterNeedHigh:
		return 40
	default:
		return 30
	}
}

// PrecipRange is the daily rainfall band (mm/day) the tier considers ideal.
func (w WaterNeed) PrecipRange() (min, max float64) {
	switch w {
	case WaterNeedLow:
		return 1, 3
	case WaterNeedHigh:
		return 5, 12
	default:
		return 3, 7
	}
}

type Requirements struct {
	MinTemp     float64   `json:"min_temp" yaml:"min_temp"`
	MaxTemp     float64   `json:"max_temp" yaml:"max_temp"`
	OptimalTemp float64   `json:"optimal_temp" yaml:"optimal_temp"`
	WaterNeed   WaterNeed `json:"water_need" yaml:"water_need"`
	GrowingDays int       `json:"growing_days" yaml:"growing_days"`
}

type Crop struct {
	ID              string       `json:"id" yaml:"id"`
	Name            string       `json:"name" yaml:"name"`
	Requirements    Requirements `json:"requirements" yaml:"requirements"`
	Description     string       `json:"description" yaml:"description"`
	YieldPerHectare float64      `json:"yield_per_hectare" yaml:"yield_per_hectare"`
	PricePerTon     float64      `json:"price_per_ton" yaml:"price_per_ton"`
}

// BaseRevenue is the revenue one harvest would earn at quality factor 1.0.
func (c Crop) BaseRevenue() float64 {
	return c.YieldPerHectare * c.PricePerTon
}
