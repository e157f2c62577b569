package farm

const (
	DefaultPlotCount = 6
	MaxPlotCount     = 12

	SeasonLengthDays = 30

	PlantCost     = 100.0
	WaterCost     = 10.0
	FertilizeCost = 50.0

	WaterPerAction      = 25.0
	FertilizerPerAction = 30.0
	InitialWaterLevel   = 50.0

	DailyWaterDecay      = 10.0
	DailyFertilizerDecay = 2.0

	BaseGrowthPerDay         = 5.0
	TempPenaltyPerDegree     = 0.1
	WaterDeficitGrowthFactor = 0.5
	FertilizerBoostThreshold = 50.0
	FertilizerBoostFactor    = 1.3

	LowWaterThreshold        = 20.0
	LowWaterHealthLoss       = 5.0
	TempStressDaysBeforeLoss = 2
	TempStressHealthLoss     = 5.0
	SevereRiskThreshold      = 0.7
	SevereRiskHealthLoss     = 10.0
	HealthWarningThreshold   = 40.0

	QualityHealthWeight = 0.7
	QualityWaterWeight  = 0.3
	MinQualityFactor    = 0.1

	RevenueMilestone     = 1000.0
	SurvivalMilestoneDay = 30
)

const (
	AchievementFirstThousand  = "First $1000"
	AchievementSurvivedAMonth = "Survived a Month"
)

type DifficultySettings struct {
	StartingBudget  float64
	WeatherSeverity float64
	GrowthSpeed     float64
}

func SettingsFor(d Difficulty) DifficultySettings {
	switch d {
	case DifficultyEasy:
		return DifficultySettings{StartingBudget: 10000, WeatherSeverity: 0.5, GrowthSpeed: 1.2}
	case DifficultyHard:
		return DifficultySettings{StartingBudget: 2500, WeatherSeverity: 1.5, GrowthSpeed: 0.8}
	default:
		return DifficultySettings{StartingBudget: 5000, WeatherSeverity: 1.0, GrowthSpeed: 1.0}
	}
}
