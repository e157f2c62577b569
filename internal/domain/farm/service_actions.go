package farm

import (
	"fmt"
	"math"
	"time"

	"terrafarm/internal/domain/crop"
)

// ActionService validates and applies one player action against a farm.
// Validation happens before any mutation: on error the farm is unchanged.
type ActionService struct{}

// Apply settles intent against f. cropDef is the catalog entry for the crop
// being planted (ActionPlant) or the crop currently on the plot
// (ActionHarvest); it is ignored for the other actions.
func (ActionService) Apply(f *Farm, intent ActionIntent, cropDef *crop.Crop, now time.Time) (ActionOutcome, []DomainEvent, error) {
	if err := f.validateStructure(); err != nil {
		return ActionOutcome{}, nil, err
	}
	p, err := f.PlotByID(intent.PlotID)
	if err != nil {
		return ActionOutcome{}, nil, err
	}

	var outcome ActionOutcome
	switch intent.Type {
	case ActionPlant:
		outcome, err = applyPlant(f, p, intent.CropID, cropDef)
	case ActionWater:
		outcome, err = applyWater(f, p)
	case ActionFertilize:
		outcome, err = applyFertilize(f, p)
	case ActionHarvest:
		outcome, err = applyHarvest(f, p, cropDef)
	case ActionRemove:
		outcome, err = applyRemove(p)
	default:
		return ActionOutcome{}, nil, ErrUnknownAction
	}
	if err != nil {
		return ActionOutcome{}, nil, err
	}

	f.UpdatedAt = now
	f.Version++

	events := []DomainEvent{{
		Type:       "action_settled",
		Message:    outcome.Message,
		OccurredAt: now,
		Payload: map[string]any{
			"action":  string(intent.Type),
			"plot_id": intent.PlotID,
			"cost":    outcome.Cost,
			"revenue": outcome.Revenue,
			"budget":  f.Budget,
		},
	}}
	return outcome, events, nil
}

func applyPlant(f *Farm, p *Plot, cropID string, cropDef *crop.Crop) (ActionOutcome, error) {
	if p.Status != PlotEmpty {
		return ActionOutcome{}, ErrInvalidState
	}
	if cropDef == nil || cropDef.ID != cropID {
		return ActionOutcome{}, ErrUnknownCrop
	}
	if err := f.spend(PlantCost); err != nil {
		return ActionOutcome{}, err
	}
	p.Status = PlotPlanted
	p.CropID = cropID
	p.PlantedDay = f.CurrentDay
	p.GrowthProgress = 0
	p.WaterLevel = InitialWaterLevel
	p.FertilizerLevel = 0
	p.Health = 100
	p.GrowthDays = 0
	p.HealthSum = 0
	p.AdequateWaterDays = 0
	p.TempStressDays = 0
	return ActionOutcome{
		Message: fmt.Sprintf("Planted %s on plot %d", cropDef.Name, p.ID),
		Cost:    PlantCost,
	}, nil
}

func applyWater(f *Farm, p *Plot) (ActionOutcome, error) {
	if p.Status == PlotEmpty {
		return ActionOutcome{}, ErrInvalidState
	}
	if err := f.spend(WaterCost); err != nil {
		return ActionOutcome{}, err
	}
	p.WaterLevel = math.Min(100, p.WaterLevel+WaterPerAction)
	return ActionOutcome{
		Message: fmt.Sprintf("Watered plot %d. Water level: %.0f%%", p.ID, p.WaterLevel),
		Cost:    WaterCost,
	}, nil
}

func applyFertilize(f *Farm, p *Plot) (ActionOutcome, error) {
	if p.Status == PlotEmpty {
		return ActionOutcome{}, ErrInvalidState
	}
	if err := f.spend(FertilizeCost); err != nil {
		return ActionOutcome{}, err
	}
	p.FertilizerLevel = math.Min(100, p.FertilizerLevel+FertilizerPerAction)
	return ActionOutcome{
		Message: fmt.Sprintf("Fertilized plot %d. Fertilizer level: %.0f%%", p.ID, p.FertilizerLevel),
		Cost:    FertilizeCost,
	}, nil
}

func applyHarvest(f *Farm, p *Plot, cropDef *crop.Crop) (ActionOutcome, error) {
	if p.Status != PlotReady {
		return ActionOutcome{}, ErrNotReady
	}
	if cropDef == nil || cropDef.ID != p.CropID {
		return ActionOutcome{}, fmt.Errorf("%w: plot %d references crop %q", ErrCorruptFarm, p.ID, p.CropID)
	}
	quality := qualityFactor(p)
	revenue := cropDef.BaseRevenue() * quality
	f.earn(revenue)
	p.clear()
	return ActionOutcome{
		Message: fmt.Sprintf("Harvested %s! Earned $%.2f (quality %.0f%%)", cropDef.Name, revenue, quality*100),
		Revenue: revenue,
	}, nil
}

func applyRemove(p *Plot) (ActionOutcome, error) {
	if p.Status == PlotEmpty {
		return ActionOutcome{}, ErrInvalidState
	}
	id := p.ID
	p.clear()
	return ActionOutcome{Message: fmt.Sprintf("Cleared plot %d", id)}, nil
}

// qualityFactor scales harvest revenue by how well the crop was tended:
// average health over the growth period plus the share of days with adequate
// water. Deterministic and monotonic in health.
func qualityFactor(p *Plot) float64 {
	if p.GrowthDays == 0 {
		return MinQualityFactor
	}
	avgHealth := p.HealthSum / float64(p.GrowthDays) / 100
	waterShare := float64(p.AdequateWaterDays) / float64(p.GrowthDays)
	q := QualityHealthWeight*avgHealth + QualityWaterWeight*waterShare
	return math.Min(1, math.Max(MinQualityFactor, q))
}
