package domain

import (
	"errors"
)

var (
	MessageSuccessDetectLocation = "location detected successfully"
	MessageFailedDetectLocation  = "failed to detect location"

	ErrLocationUnavailable = errors.New("location unavailable")
	ErrGeocodeFailed       = errors.New("reverse geocoding failed")
)

type (
	DetectLocationRequest struct {
		Lat *float64 `json:"lat" validate:"required,latitude"`
		Lng *float64 `json:"lng" validate:"required,longitude"`
	}

	DetectLocationResponse struct {
		Lat     float64 `json:"lat"`
		Lng     float64 `json:"lng"`
		Address string  `json:"address,omitempty"`
		// Warning carries the non-fatal geocode failure, if any.
		Warning string `json:"warning,omitempty"`
	}
)
