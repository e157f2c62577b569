package action

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"terrafarm/internal/app/ports"
	"terrafarm/internal/domain/crop"
	"terrafarm/internal/domain/farm"
)

var ErrInvalidRequest = errors.New("invalid action request")

// UnknownCropError carries a near-miss suggestion alongside the
// farm.ErrUnknownCrop sentinel.
type UnknownCropError struct {
	CropID     string
	Suggestion string
}

func (e *UnknownCropError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown crop %q (did you mean %q?)", e.CropID, e.Suggestion)
	}
	return fmt.Sprintf("unknown crop %q", e.CropID)
}

func (e *UnknownCropError) Unwrap() error { return farm.ErrUnknownCrop }

// UseCase applies one player action to one farm inside a transaction.
// The version-checked save serializes concurrent mutations per farm.
type UseCase struct {
	TxManager ports.TxManager
	Farms     ports.FarmRepository
	Events    ports.EventRepository
	Catalog   ports.CropCatalog
	Metrics   ports.GameMetrics
	Settle    farm.ActionService
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.FarmID = strings.TrimSpace(req.FarmID)
	req.Intent.CropID = strings.TrimSpace(req.Intent.CropID)
	if req.FarmID == "" || req.Intent.PlotID <= 0 || !isSupportedActionType(req.Intent.Type) {
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

		cropDef, err := u.resolveCrop(&f, req.Intent)
		if err != nil {
			return err
		}

		expectedVersion := f.Version
		outcome, events, err := u.Settle.Apply(&f, req.Intent, cropDef, nowFn())
		if err != nil {
			return err
		}

		if err := u.Farms.SaveWithVersion(txCtx, f, expectedVersion); err != nil {
			return err
		}
		if err := u.Events.Append(txCtx, req.FarmID, events); err != nil {
			return err
		}

		out = Response{
			Success:     true,
			Message:     outcome.Message,
			Cost:        outcome.Cost,
			Revenue:     outcome.Revenue,
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
		u.Metrics.RecordAction(string(req.Intent.Type))
	}
	return out, nil
}

// resolveCrop looks up the catalog entry the settle step needs: the crop
// being planted, or the crop currently on the target plot for a harvest.
func (u UseCase) resolveCrop(f *farm.Farm, intent farm.ActionIntent) (*crop.Crop, error) {
	switch intent.Type {
	case farm.ActionPlant:
		if intent.CropID == "" {
			return nil, &UnknownCropError{CropID: intent.CropID}
		}
		c, ok := u.Catalog.Get(intent.CropID)
		if !ok {
			return nil, &UnknownCropError{CropID: intent.CropID, Suggestion: u.Catalog.Suggest(intent.CropID)}
		}
		return &c, nil
	case farm.ActionHarvest:
		p, err := f.PlotByID(intent.PlotID)
		if err != nil {
			return nil, err
		}
		if p.CropID == "" {
			// Nothing planted; the settle step reports ErrNotReady.
			return nil, nil
		}
		c, ok := u.Catalog.Get(p.CropID)
		if !ok {
			return nil, fmt.Errorf("%w: plot %d references crop %q", farm.ErrCorruptFarm, p.ID, p.CropID)
		}
		return &c, nil
	default:
		return nil, nil
	}
}

func isSupportedActionType(t farm.ActionType) bool {
	switch t {
	case farm.ActionPlant, farm.ActionWater, farm.ActionFertilize, farm.ActionHarvest, farm.ActionRemove:
		return true
	default:
		return false
	}
}
