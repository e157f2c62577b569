package action

import "terrafarm/internal/domain/farm"

type Request struct {
	FarmID string
	Intent farm.ActionIntent
}

type Response struct {
	Success     bool      `json:"success"`
	Message     string    `json:"message"`
	Cost        float64   `json:"cost"`
	Revenue     float64   `json:"revenue"`
	UpdatedFarm farm.Farm `json:"updated_farm"`
}
