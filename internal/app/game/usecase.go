package game

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"math"
	"strings"
	"time"

	"terrafarm/internal/app/ports"
	"terrafarm/internal/domain/farm"
)

var ErrInvalidRequest = errors.New("invalid game request")

type CreateUseCase struct {
	Farms ports.FarmRepository
	NewID func() string
	Now   func() time.Time
}

func (u CreateUseCase) Execute(ctx context.Context, req CreateRequest) (CreateResponse, error) {
	req.OwnerID = strings.TrimSpace(req.OwnerID)
	if req.OwnerID == "" {
		return CreateResponse{}, ErrInvalidRequest
	}

	idFn := u.NewID
	if idFn == nil {
		idFn = NewFarmID
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	f, err := farm.NewFarm(idFn(), req.OwnerID, req.Difficulty,
		farm.Location{Latitude: req.Latitude, Longitude: req.Longitude},
		req.PlotCount, nowFn())
	if err != nil {
		return CreateResponse{}, err
	}

	if err := u.Farms.SaveWithVersion(ctx, f, 0); err != nil {
		return CreateResponse{}, err
	}
	return CreateResponse{Farm: f}, nil
}

// NewFarmID returns a short random hex identifier.
func NewFarmID() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

type GetUseCase struct {
	Farms ports.FarmRepository
}

func (u GetUseCase) Execute(ctx context.Context, req GetRequest) (GetResponse, error) {
	if strings.TrimSpace(req.FarmID) == "" {
		return GetResponse{}, ErrInvalidRequest
	}
	f, err := u.Farms.GetByID(ctx, req.FarmID)
	if err != nil {
		return GetResponse{}, err
	}
	return GetResponse{Farm: f}, nil
}

type DeleteUseCase struct {
	Farms ports.FarmRepository
}

func (u DeleteUseCase) Execute(ctx context.Context, req DeleteRequest) error {
	if strings.TrimSpace(req.FarmID) == "" {
		return ErrInvalidRequest
	}
	return u.Farms.Delete(ctx, req.FarmID)
}

type SummaryUseCase struct {
	Farms ports.FarmRepository
}

func (u SummaryUseCase) Execute(ctx context.Context, req SummaryRequest) (SummaryResponse, error) {
	if strings.TrimSpace(req.FarmID) == "" {
		return SummaryResponse{}, ErrInvalidRequest
	}
	f, err := u.Farms.GetByID(ctx, req.FarmID)
	if err != nil {
		return SummaryResponse{}, err
	}

	var active, ready int
	var healthSum float64
	for _, p := range f.Plots {
		if p.Status != farm.PlotEmpty {
			active++
		}
		if p.Status == farm.PlotReady {
			ready++
		}
		healthSum += p.Health
	}
	var avgHealth float64
	if len(f.Plots) > 0 {
		avgHealth = math.Round(healthSum/float64(len(f.Plots))*10) / 10
	}

	return SummaryResponse{
		FarmID:     f.ID,
		OwnerID:    f.OwnerID,
		DaysPlayed: f.CurrentDay,
		Season:     f.Season,
		Financial: Financial{
			CurrentBudget: round2(f.Budget),
			TotalRevenue:  round2(f.TotalRevenue),
			TotalExpenses: round2(f.TotalExpenses),
			Profit:        round2(f.TotalRevenue - f.TotalExpenses),
		},
		Farm: FarmStats{
			TotalPlots:     len(f.Plots),
			ActivePlots:    active,
			ReadyToHarvest: ready,
			AverageHealth:  avgHealth,
		},
		Achievements: f.Achievements,
	}, nil
}

type EventsUseCase struct {
	Events ports.EventRepository
}

func (u EventsUseCase) Execute(ctx context.Context, req EventsRequest) (EventsResponse, error) {
	if strings.TrimSpace(req.FarmID) == "" {
		return EventsResponse{}, ErrInvalidRequest
	}
	events, err := u.Events.ListByFarmID(ctx, req.FarmID, req.Limit)
	if err != nil {
		return EventsResponse{}, err
	}
	return EventsResponse{Events: events}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
