package domain

import "errors"

var (
	MessageSuccessFindNearby      = "nearby services retrieved successfully"
	MessageSuccessRecommend       = "recommended service retrieved successfully"
	MessageSuccessFindDonation    = "donation services retrieved successfully"
	MessageSuccessFindNearbyUsers = "nearby users retrieved successfully"

	MessageFailedFindNearby   = "failed to find nearby services"
	MessageFailedRecommend    = "failed to recommend a service"
	MessageFailedFindDonation = "failed to find donation services"

	ErrInvalidRadius = errors.New("radius must be positive")
)

type (
	NearbyServicesRequest struct {
		RadiusKm float64 `json:"radius_km" validate:"required,gt=0"`
	}

	RecommendServiceRequest struct {
		ServiceType string `json:"service_type" validate:"required"`
	}
)
