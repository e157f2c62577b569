package game

import "terrafarm/internal/domain/farm"

type CreateRequest struct {
	OwnerID    string
	Difficulty farm.Difficulty
	Latitude   float64
	Longitude  float64
	PlotCount  int
}

type CreateResponse struct {
	Farm farm.Farm `json:"farm"`
}

type GetRequest struct {
	FarmID string
}

type GetResponse struct {
	Farm farm.Farm `json:"farm"`
}

type DeleteRequest struct {
	FarmID string
}

type SummaryRequest struct {
	FarmID string
}

type Financial struct {
	CurrentBudget float64 `json:"current_budget"`
	TotalRevenue  float64 `json:"total_revenue"`
	TotalExpenses float64 `json:"total_expenses"`
	Profit        float64 `json:"profit"`
}

type FarmStats struct {
	TotalPlots     int     `json:"total_plots"`
	ActivePlots    int     `json:"active_plots"`
	ReadyToHarvest int     `json:"ready_to_harvest"`
	AverageHealth  float64 `json:"average_health"`
}

type SummaryResponse struct {
	FarmID       string      `json:"farm_id"`
	OwnerID      string      `json:"owner_id"`
	DaysPlayed   int         `json:"days_played"`
	Season       farm.Season `json:"season"`
	Financial    Financial   `json:"financial"`
	Farm         FarmStats   `json:"farm"`
	Achievements []string    `json:"achievements"`
}

type EventsRequest struct {
	FarmID string
	Limit  int
}

type EventsResponse struct {
	Events []farm.DomainEvent `json:"events"`
}
