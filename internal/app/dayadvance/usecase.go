package dayadvance

import (
	"context"
	"errors"
	"strings"
	"time"

	"terrafarm/internal/app/ports"
	"terrafarm/internal/domain/climate"
	"terrafarm/internal/domain/crop"
	"terrafarm/internal/domain/farm"
)

var ErrInvalidRequest = errors.New("invalid advance-day request")

// UseCase advances one farm by one simulated day. Provider failures are
// absorbed here: weather falls back to the fixed default and risk signals to
// zero, so the simulation always progresses. The day increment, plot updates
// and event append commit in one transaction; a retry after a conflict never
// double-advances.
type UseCase struct {
	TxManager ports.TxManager
	Farms     ports.FarmRepository
	Events    ports.EventRepository
	Catalog   ports.CropCatalog
	Climate   ports.ClimateProvider
	Advisor   ports.RiskAdvisor
	Metrics   ports.GameMetrics
	Settle    farm.DayService
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.FarmID = strings.TrimSpace(req.FarmID)
	if req.FarmID == "" {
		return Response{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		f, err := u.Farms.GetByID(txCtx, req.FarmID)
		if err != nil {
			return err
		}

		inputs := u.gatherInputs(ctx, f)

		expectedVersion := f.Version
		result, err := u.Settle.Advance(&f, inputs, nowFn())
		if err != nil {
			return err
		}

		if err := u.Farms.SaveWithVersion(txCtx, f, expectedVersion); err != nil {
			return err
		}
		if err := u.Events.Append(txCtx, req.FarmID, result.Events); err != nil {
			return err
		}

		out = Response{
			CurrentDay:  f.CurrentDay,
			Season:      f.Season,
			Budget:      f.Budget,
			Events:      result.Events,
			UpdatedFarm: f,
		}
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			if errors.Is(err, ports.ErrConflict) {
				u.Metrics.RecordConflict()
			} else {
				u.Metrics.RecordFailure()
			}
		}
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordDayAdvance()
	}
	return out, nil
}

// gatherInputs pulls weather and risk signals, degrading to fallbacks on any
// provider error, and collects the catalog entries for the planted crops.
func (u UseCase) gatherInputs(ctx context.Context, f farm.Farm) farm.DayInputs {
	inputs := farm.DayInputs{Crops: map[string]crop.Crop{}}

	weather, err := u.Climate.Observe(ctx, f.Location)
	if err != nil {
		inputs.Weather = climate.Fallback()
		inputs.WeatherFallback = true
	} else {
		inputs.Weather = weather
	}

	if u.Advisor != nil {
		if signals, err := u.Advisor.Signals(ctx, f.Location); err == nil {
			inputs.Risks = signals
		}
	}

	for _, p := range f.Plots {
		if p.CropID == "" {
			continue
		}
		if c, ok := u.Catalog.Get(p.CropID); ok {
			inputs.Crops[p.CropID] = c
		}
	}
	return inputs
}
