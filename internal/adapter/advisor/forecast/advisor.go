// Package forecast scores drought, frost and heatwave risk from a trailing
// climate window. The game engine only consumes the resulting severities.
package forecast

import (
	"context"
	"math"

	"terrafarm/internal/domain/climate"
	"terrafarm/internal/domain/farm"
)

// HistorySource supplies the trailing daily records the scoring works on.
type HistorySource interface {
	History(ctx context.Context, loc farm.Location) (climate.History, error)
}

type Advisor struct {
	Source HistorySource
}

// Signals returns drought/frost/heatwave severities in [0,1] for loc.
func (a Advisor) Signals(ctx context.Context, loc farm.Location) (climate.RiskSignals, error) {
	history, err := a.Source.History(ctx, loc)
	if err != nil {
		return climate.RiskSignals{}, err
	}
	days := recentWindow(history.Days, 14)
	if len(days) == 0 {
		return climate.RiskSignals{}, nil
	}
	return climate.RiskSignals{
		Drought:  droughtScore(days, loc.Latitude),
		Frost:    frostScore(days, loc.Latitude),
		Heatwave: heatwaveScore(days, loc.Latitude),
	}, nil
}

func recentWindow(days []climate.DayRecord, n int) []climate.DayRecord {
	if len(days) <= n {
		return days
	}
	return days[len(days)-n:]
}

func droughtScore(days []climate.DayRecord, latitude float64) float64 {
	var precipSum float64
	var lowRainDays, hotDays int
	for _, d := range days {
		precipSum += d.Precipitation
		if d.Precipitation < 1 {
			lowRainDays++
		}
		if d.TempMax > 30 {
			hotDays++
		}
	}
	avgPrecip := precipSum / float64(len(days))

	score := 0.0
	switch {
	case avgPrecip < 1:
		score += 30
	case avgPrecip < 3:
		score += 15
	}
	score += math.Min(40, float64(lowRainDays)*3)
	score += math.Min(30, float64(hotDays)*3)

	// Tropics and high latitudes are less drought-prone.
	switch {
	case math.Abs(latitude) < 23.5:
		score *= 0.7
	case math.Abs(latitude) > 45:
		score *= 0.8
	}
	return clamp01(score / 100)
}

func frostScore(days []climate.DayRecord, latitude float64) float64 {
	minTemp := math.Inf(1)
	var coldDays, frostDays int
	for _, d := range days {
		minTemp = math.Min(minTemp, d.TempMin)
		if d.TempMin < 5 {
			coldDays++
		}
		if d.TempMin < 0 {
			frostDays++
		}
	}

	score := 0.0
	switch {
	case minTemp < -5:
		score += 50
	case minTemp < 0:
		score += 35
	case minTemp < 5:
		score += 20
	}
	score += math.Min(30, float64(coldDays)*3)
	score += math.Min(20, float64(frostDays)*5)
	if len(days) >= 3 && days[len(days)-1].TempMin < days[len(days)-3].TempMin {
		score += 10
	}

	switch {
	case math.Abs(latitude) > 45:
		score *= 1.3
	case math.Abs(latitude) < 25:
		score *= 0.3
	}
	return clamp01(score / 100)
}

func heatwaveScore(days []climate.DayRecord, latitude float64) float64 {
	maxTemp := math.Inf(-1)
	var hotDays, extremeDays int
	for _, d := range days {
		maxTemp = math.Max(maxTemp, d.TempMax)
		if d.TempMax > 35 {
			hotDays++
		}
		if d.TempMax > 40 {
			extremeDays++
		}
	}

	score := 0.0
	switch {
	case maxTemp > 45:
		score += 50
	case maxTemp > 40:
		score += 35
	case maxTemp > 35:
		score += 20
	}
	score += math.Min(30, float64(hotDays)*3)
	score += math.Min(20, float64(extremeDays)*8)
	if len(days) >= 3 && days[len(days)-1].TempMax > days[len(days)-3].TempMax {
		score += 10
	}

	switch {
	case math.Abs(latitude) < 30:
		score *= 1.2
	case math.Abs(latitude) > 50:
		score *= 0.6
	}
	return clamp01(score / 100)
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
