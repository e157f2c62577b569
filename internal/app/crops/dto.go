package crops

import "terrafarm/internal/domain/crop"

type ListResponse struct {
	Crops []crop.Crop `json:"crops"`
}

type GetRequest struct {
	CropID string
}

type GetResponse struct {
	Crop crop.Crop `json:"crop"`
}

type SuitabilityRequest struct {
	CropID        string
	Temperature   float64
	Precipitation float64
}

type SuitabilityResponse struct {
	Crop        string           `json:"crop"`
	Suitability crop.Suitability `json:"suitability"`
}

type RecommendRequest struct {
	Temperature   float64
	Precipitation float64
}

type RecommendResponse struct {
	Recommendations []crop.Recommendation `json:"recommendations"`
}
