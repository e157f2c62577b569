package dayadvance

import "terrafarm/internal/domain/farm"

type Request struct {
	FarmID string
}

type Response struct {
	CurrentDay  int                `json:"current_day"`
	Season      farm.Season        `json:"season"`
	Budget      float64            `json:"budget"`
	Events      []farm.DomainEvent `json:"events"`
	UpdatedFarm farm.Farm          `json:"updated_farm"`
}
