package climate

// Observation is one day (or a rolling-window average) of weather at a
// location.
type Observation struct {
	TempAvg        float64 `json:"temp_avg"`
	TempMin        float64 `json:"temp_min"`
	TempMax        float64 `json:"temp_max"`
	Precipitation  float64 `json:"precipitation"`
	Humidity       float64 `json:"humidity"`
	SolarRadiation float64 `json:"solar_radiation"`
	WindSpeed      float64 `json:"wind_speed"`
}

// Fallback is the fixed observation substituted when no provider data is
// available. The simulation must always progress, so these defaults stand in
// for a mild clear day.
func Fallback() Observation {
	return Observation{
		TempAvg:        22,
		TempMin:        16,
		TempMax:        28,
		Precipitation:  5,
		Humidity:       60,
		SolarRadiation: 18,
		WindSpeed:      3,
	}
}

// DayRecord is a single dated sample inside a History window.
type DayRecord struct {
	TempAvg       float64
	TempMin       float64
	TempMax       float64
	Precipitation float64
	Humidity      float64
}

// History is a trailing window of daily records, oldest first.
type History struct {
	Days []DayRecord
}

// RiskSignals carries external early-warning severities in [0,1].
type RiskSignals struct {
	Drought  float64 `json:"drought_risk"`
	Frost    float64 `json:"frost_risk"`
	Heatwave float64 `json:"heatwave_risk"`
}

// Worst returns the dominant risk kind and its severity.
func (r RiskSignals) Worst() (string, float64) {
	kind, severity := "drought", r.Drought
	if r.Frost > severity {
		kind, severity = "frost", r.Frost
	}
	if r.Heatwave > severity {
		kind, severity = "heatwave", r.Heatwave
	}
	return kind, severity
}
