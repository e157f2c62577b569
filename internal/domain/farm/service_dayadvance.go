package farm

import (
	"fmt"
	"math"
	"time"

	"terrafarm/internal/domain/climate"
	"terrafarm/internal/domain/crop"
)

// DayInputs carries everything one day of simulation needs. Weather and
// Risks are already resolved by the caller (including fallback on provider
// failure) so the settle step itself is pure and deterministic.
type DayInputs struct {
	Weather         climate.Observation
	Risks           climate.RiskSignals
	WeatherFallback bool
	Crops           map[string]crop.Crop
}

type DayAdvanceResult struct {
	Events []DomainEvent
}

// DayService advances a farm by exactly one simulated day.
type DayService struct{}

// Advance increments the day counter, recomputes the season, and updates
// every non-empty plot: resource decay, growth, health, status transitions.
// The farm is mutated in place; callers persist it atomically with the
// returned events.
func (DayService) Advance(f *Farm, in DayInputs, now time.Time) (DayAdvanceResult, error) {
	if err := f.validateStructure(); err != nil {
		return DayAdvanceResult{}, err
	}
	for i := range f.Plots {
		p := &f.Plots[i]
		if p.Status == PlotEmpty {
			continue
		}
		if _, ok := in.Crops[p.CropID]; !ok {
			return DayAdvanceResult{}, fmt.Errorf("%w: plot %d references crop %q", ErrCorruptFarm, p.ID, p.CropID)
		}
	}

	settings := SettingsFor(f.Difficulty)
	f.CurrentDay++
	f.Season = SeasonForDay(f.CurrentDay, f.Location.Latitude)

	events := make([]DomainEvent, 0, 4)
	if in.WeatherFallback {
		events = append(events, DomainEvent{
			Type:       "weather_fallback",
			Message:    "Weather data unavailable; using seasonal averages",
			OccurredAt: now,
		})
	}

	riskKind, riskSeverity := in.Risks.Worst()
	severeRisk := riskSeverity*settings.WeatherSeverity >= SevereRiskThreshold
	if severeRisk {
		events = append(events, DomainEvent{
			Type:       "severe_weather",
			Message:    fmt.Sprintf("Severe %s conditions are stressing your crops", riskKind),
			OccurredAt: now,
			Payload:    map[string]any{"risk": riskKind, "severity": riskSeverity},
		})
	}

	for i := range f.Plots {
		p := &f.Plots[i]
		if p.Status == PlotEmpty {
			continue
		}
		c := in.Crops[p.CropID]

		p.WaterLevel = math.Max(0, p.WaterLevel-DailyWaterDecay)
		p.FertilizerLevel = math.Max(0, p.FertilizerLevel-DailyFertilizerDecay)

		inc := growthIncrement(p, c, in.Weather, settings.GrowthSpeed)
		if inc > 0 && p.Status == PlotPlanted {
			p.Status = PlotGrowing
		}
		p.GrowthProgress = math.Min(100, p.GrowthProgress+inc)

		if p.WaterLevel < LowWaterThreshold {
			p.Health = math.Max(0, p.Health-LowWaterHealthLoss)
			events = append(events, DomainEvent{
				Type:       "low_water",
				Message:    fmt.Sprintf("Plot %d: low water, health declining", p.ID),
				OccurredAt: now,
				Payload:    map[string]any{"plot_id": p.ID, "water_level": p.WaterLevel},
			})
		}

		if outsideTempRange(in.Weather.TempAvg, c.Requirements) {
			p.TempStressDays++
		} else {
			p.TempStressDays = 0
		}
		if p.TempStressDays >= TempStressDaysBeforeLoss {
			p.Health = math.Max(0, p.Health-TempStressHealthLoss)
		}
		if severeRisk {
			p.Health = math.Max(0, p.Health-SevereRiskHealthLoss)
		}

		p.GrowthDays++
		p.HealthSum += p.Health
		if p.WaterLevel >= c.Requirements.WaterNeed.LevelThreshold() {
			p.AdequateWaterDays++
		}

		if p.Health <= 0 {
			events = append(events, DomainEvent{
				Type:       "crop_failed",
				Message:    fmt.Sprintf("Plot %d: %s failed and was removed", p.ID, c.Name),
				OccurredAt: now,
				Payload:    map[string]any{"plot_id": p.ID, "crop_id": c.ID},
			})
			p.clear()
			continue
		}
		if p.Health < HealthWarningThreshold {
			events = append(events, DomainEvent{
				Type:       "health_warning",
				Message:    fmt.Sprintf("Plot %d: %s health is at %.0f%%", p.ID, c.Name, p.Health),
				OccurredAt: now,
				Payload:    map[string]any{"plot_id": p.ID, "health": p.Health},
			})
		}
		if p.GrowthProgress >= 100 && p.Status != PlotReady {
			p.Status = PlotReady
			events = append(events, DomainEvent{
				Type:       "crop_ready",
				Message:    fmt.Sprintf("Plot %d: %s is ready to harvest!", p.ID, c.Name),
				OccurredAt: now,
				Payload:    map[string]any{"plot_id": p.ID, "crop_id": c.ID},
			})
		}
	}

	for _, name := range dueAchievements(f) {
		if f.unlockAchievement(name) {
			events = append(events, DomainEvent{
				Type:       "achievement_unlocked",
				Message:    "Achievement unlocked: " + name + "!",
				OccurredAt: now,
				Payload:    map[string]any{"achievement": name},
			})
		}
	}

	f.UpdatedAt = now
	f.Version++

	return DayAdvanceResult{Events: events}, nil
}

// growthIncrement is the deterministic daily growth function: base rate
// scaled by difficulty, temperature match, water adequacy and fertilizer.
func growthIncrement(p *Plot, c crop.Crop, w climate.Observation, speed float64) float64 {
	inc := BaseGrowthPerDay * speed
	inc *= temperatureFactor(w.TempAvg, c.Requirements)
	if p.WaterLevel < c.Requirements.WaterNeed.LevelThreshold() {
		inc *= WaterDeficitGrowthFactor
	}
	if p.FertilizerLevel > FertilizerBoostThreshold {
		inc *= FertilizerBoostFactor
	}
	return inc
}

// temperatureFactor is 1.0 inside the crop's survivable range and falls off
// linearly with distance outside it.
func temperatureFactor(tempC float64, req crop.Requirements) float64 {
	if !outsideTempRange(tempC, req) {
		return 1
	}
	var dist float64
	if tempC < req.MinTemp {
		dist = req.MinTemp - tempC
	} else {
		dist = tempC - req.MaxTemp
	}
	return math.Max(0, 1-TempPenaltyPerDegree*dist)
}

func outsideTempRange(tempC float64, req crop.Requirements) bool {
	return tempC < req.MinTemp || tempC > req.MaxTemp
}

func dueAchievements(f *Farm) []string {
	var due []string
	if f.TotalRevenue >= RevenueMilestone {
		due = append(due, AchievementFirstThousand)
	}
	if f.CurrentDay >= SurvivalMilestoneDay {
		due = append(due, AchievementSurvivedAMonth)
	}
	return due
}
