package crops

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"terrafarm/internal/app/ports"
	"terrafarm/internal/domain/crop"
	"terrafarm/internal/domain/farm"
)

var ErrInvalidRequest = errors.New("invalid crops request")

type UseCase struct {
	Catalog ports.CropCatalog
}

func (u UseCase) List(_ context.Context) ListResponse {
	return ListResponse{Crops: u.Catalog.All()}
}

func (u UseCase) Get(_ context.Context, req GetRequest) (GetResponse, error) {
	c, err := u.lookup(req.CropID)
	if err != nil {
		return GetResponse{}, err
	}
	return GetResponse{Crop: c}, nil
}

func (u UseCase) Suitability(_ context.Context, req SuitabilityRequest) (SuitabilityResponse, error) {
	c, err := u.lookup(req.CropID)
	if err != nil {
		return SuitabilityResponse{}, err
	}
	return SuitabilityResponse{
		Crop:        c.Name,
		Suitability: crop.Evaluate(c, req.Temperature, req.Precipitation),
	}, nil
}

func (u UseCase) Recommend(_ context.Context, req RecommendRequest) RecommendResponse {
	return RecommendResponse{
		Recommendations: crop.Recommend(u.Catalog.All(), req.Temperature, req.Precipitation),
	}
}

func (u UseCase) lookup(cropID string) (crop.Crop, error) {
	cropID = strings.TrimSpace(cropID)
	if cropID == "" {
		return crop.Crop{}, ErrInvalidRequest
	}
	c, ok := u.Catalog.Get(cropID)
	if !ok {
		if suggestion := u.Catalog.Suggest(cropID); suggestion != "" {
			return crop.Crop{}, fmt.Errorf("%w: %q (did you mean %q?)", farm.ErrUnknownCrop, cropID, suggestion)
		}
		return crop.Crop{}, fmt.Errorf("%w: %q", farm.ErrUnknownCrop, cropID)
	}
	return c, nil
}
