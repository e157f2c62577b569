package crop

import (
	"math"
	"sort"
)

type Suitability struct {
	OverallScore     float64  `json:"overall_score"`
	TemperatureScore float64  `json:"temperature_score"`
	WaterScore       float64  `json:"water_score"`
	Status           string   `json:"status"`
	Tips             []string `json:"tips,omitempty"`
	YieldModifier    float64  `json:"yield_modifier"`
}

// Evaluate scores how well a crop fits the given average temperature (degC)
// and precipitation (mm/day). Scores are 0-100.
func Evaluate(c Crop, tempC, precipMmDay float64) Suitability {
	req := c.Requirements

	var tempScore float64
	if tempC >= req.MinTemp && tempC <= req.MaxTemp {
		tempScore = math.Max(0, 100-math.Abs(tempC-req.OptimalTemp)*5)
	}

	minWater, maxWater := req.WaterNeed.PrecipRange()
	var waterScore float64
	switch {
	case precipMmDay >= minWater && precipMmDay <= maxWater:
		waterScore = 100
	case precipMmDay < minWater:
		waterScore = math.Max(0, 100-(minWater-precipMmDay)*20)
	default:
		waterScore = math.Max(0, 100-(precipMmDay-maxWater)*10)
	}

	overall := tempScore*0.5 + waterScore*0.5

	var status string
	switch {
	case overall >= 70:
		status = "excellent"
	case overall >= 50:
		status = "good"
	case overall >= 30:
		status = "challenging"
	default:
		status = "poor"
	}

	var tips []string
	if tempScore < 50 {
		if tempC < req.OptimalTemp {
			tips = append(tips, "Temperature is below optimal. Consider waiting for warmer weather.")
		} else {
			tips = append(tips, "Temperature is above optimal. Provide shade and increase irrigation.")
		}
	}
	if waterScore < 50 {
		if precipMmDay < minWater {
			tips = append(tips, "Insufficient rainfall. Irrigation will be required.")
		} else {
			tips = append(tips, "Excessive rainfall. Ensure proper drainage.")
		}
	}

	return Suitability{
		OverallScore:     round1(overall),
		TemperatureScore: round1(tempScore),
		WaterScore:       round1(waterScore),
		Status:           status,
		Tips:             tips,
		YieldModifier:    math.Round(overall) / 100,
	}
}

type Recommendation struct {
	CropID           string  `json:"crop_id"`
	Name             string  `json:"name"`
	Score            float64 `json:"score"`
	GrowingDays      int     `json:"growing_days"`
	PotentialRevenue float64 `json:"potential_revenue"`
}

// Recommend ranks temperature-compatible crops for the given conditions,
// best first. Crops outside their survivable temperature range are omitted.
func Recommend(crops []Crop, tempC, precipMmDay float64) []Recommendation {
	out := make([]Recommendation, 0, len(crops))
	for _, c := range crops {
		req := c.Requirements
		if tempC < req.MinTemp || tempC > req.MaxTemp {
			continue
		}
		score := math.Max(0, 100-math.Abs(tempC-req.OptimalTemp)*3)
		minWater, _ := req.WaterNeed.PrecipRange()
		if precipMmDay < minWater*0.5 {
			score *= 0.7
		}
		out = append(out, Recommendation{
			CropID:           c.ID,
			Name:             c.Name,
			Score:            round1(score),
			GrowingDays:      req.GrowingDays,
			PotentialRevenue: c.BaseRevenue(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
