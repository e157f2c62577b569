// Package staticfile serves the crop catalog from a YAML file, falling back
// to a built-in set of six crops when no file is configured.
package staticfile

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"terrafarm/internal/domain/crop"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"
)

type Provider struct {
	crops map[string]crop.Crop
}

type catalogFile struct {
	Crops []crop.Crop `yaml:"crops"`
}

// Load reads a catalog YAML file.
func Load(path string) (*Provider, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read crop catalog: %w", err)
	}
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse crop catalog: %w", err)
	}
	if len(file.Crops) == 0 {
		return nil, fmt.Errorf("crop catalog %s contains no crops", path)
	}
	crops := make(map[string]crop.Crop, len(file.Crops))
	for _, c := range file.Crops {
		if c.ID == "" {
			return nil, fmt.Errorf("crop catalog %s contains a crop without id", path)
		}
		crops[c.ID] = c
	}
	return &Provider{crops: crops}, nil
}

func (p *Provider) Get(cropID string) (crop.Crop, bool) {
	c, ok := p.crops[cropID]
	return c, ok
}

func (p *Provider) All() []crop.Crop {
	out := make([]crop.Crop, 0, len(p.crops))
	for _, c := range p.crops {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Suggest returns the catalog id closest to cropID by edit distance, or ""
// when nothing is within the tolerance for the id's length.
func (p *Provider) Suggest(cropID string) string {
	cropID = strings.ToLower(strings.TrimSpace(cropID))
	if cropID == "" {
		return ""
	}
	best, bestDist := "", -1
	for id := range p.crops {
		dist := levenshtein.ComputeDistance(cropID, id)
		if dist > suggestionLimit(len(id)) {
			continue
		}
		if bestDist < 0 || dist < bestDist || (dist == bestDist && id < best) {
			best, bestDist = id, dist
		}
	}
	return best
}

func suggestionLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// Default returns the built-in catalog.
func Default() *Provider {
	crops := map[string]crop.Crop{}
	for _, c := range defaultCrops {
		crops[c.ID] = c
	}
	return &Provider{crops: crops}
}

var defaultCrops = []crop.Crop{
	{
		ID:   "wheat",
		Name: "Wheat",
		Requirements: crop.Requirements{
			MinTemp: 3, MaxTemp: 32, OptimalTemp: 20,
			WaterNeed: crop.WaterNeedMedium, GrowingDays: 120,
		},
		Description:     "A staple grain crop adaptable to various climates. Best grown in temperate regions with moderate rainfall.",
		YieldPerHectare: 3.5,
		PricePerTon:     250,
	},
	{
		ID:   "corn",
		Name: "Corn (Maize)",
		Requirements: crop.Requirements{
			MinTemp: 10, MaxTemp: 35, OptimalTemp: 25,
			WaterNeed: crop.WaterNeedHigh, GrowingDays: 90,
		},
		Description:     "High-yielding grain requiring warm temperatures and consistent moisture throughout the growing season.",
		YieldPerHectare: 10.0,
		PricePerTon:     180,
	},
	{
		ID:   "rice",
		Name: "Rice",
		Requirements: crop.Requirements{
			MinTemp: 20, MaxTemp: 38, OptimalTemp: 30,
			WaterNeed: crop.WaterNeedHigh, GrowingDays: 150,
		},
		Description:     "Requires flooded conditions and warm temperatures. Major food crop for billions worldwide.",
		YieldPerHectare: 4.5,
		PricePerTon:     350,
	},
	{
		ID:   "soybean",
		Name: "Soybean",
		Requirements: crop.Requirements{
			MinTemp: 15, MaxTemp: 30, OptimalTemp: 25,
			WaterNeed: crop.WaterNeedMedium, GrowingDays: 100,
		},
		Description:     "Nitrogen-fixing legume excellent for crop rotation. Versatile crop used for food, feed, and oil.",
		YieldPerHectare: 2.8,
		PricePerTon:     400,
	},
	{
		ID:   "tomato",
		Name: "Tomato",
		Requirements: crop.Requirements{
			MinTemp: 15, MaxTemp: 35, OptimalTemp: 24,
			WaterNeed: crop.WaterNeedMedium, GrowingDays: 70,
		},
		Description:     "Popular vegetable crop requiring warm days and consistent watering. High value per hectare.",
		YieldPerHectare: 50.0,
		PricePerTon:     150,
	},
	{
		ID:   "potato",
		Name: "Potato",
		Requirements: crop.Requirements{
			MinTemp: 7, MaxTemp: 25, OptimalTemp: 18,
			WaterNeed: crop.WaterNeedMedium, GrowingDays: 100,
		},
		Description:     "Cool-weather crop grown for its starchy tubers. Adaptable to various conditions.",
		YieldPerHectare: 40.0,
		PricePerTon:     120,
	},
}
