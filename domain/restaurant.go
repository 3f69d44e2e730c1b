package domain

import (
	"errors"
)

var (
	MessageSuccessGetRestaurants      = "nearby restaurants retrieved successfully"
	MessageFailedGetRestaurants       = "failed to retrieve nearby restaurants"
	MessageSuccessGetRestaurantDetail = "restaurant details retrieved successfully"
	MessageFailedGetRestaurantDetail  = "failed to retrieve restaurant details"
	MessageSuccessGetMenu             = "restaurant menu retrieved successfully"
	MessageFailedGetMenu              = "failed to retrieve restaurant menu"

	ErrSearchFailed       = errors.New("nearby search failed")
	ErrPreconditionUnmet  = errors.New("location coordinate required")
	ErrRestaurantNotFound = errors.New("restaurant not found")
)

type (
	// Restaurant is a candidate produced by the places lookup. Candidates
	// live for one screen session and are never persisted.
	Restaurant struct {
		ID         string   `json:"id" validate:"required"`
		Name       string   `json:"name" validate:"required"`
		Rating     float64  `json:"rating,omitempty"`
		PriceLevel int      `json:"price_level,omitempty"`
		Vicinity   string   `json:"vicinity,omitempty"`
		Types      []string `json:"types,omitempty"`
	}

	NearbySearchRequest struct {
		Lat      *float64 `json:"lat" validate:"required,latitude"`
		Lng      *float64 `json:"lng" validate:"required,longitude"`
		Radius   int      `json:"radius" validate:"omitempty,min=1,max=50000"`
		Category string   `json:"category"`
	}

	RestaurantDetailResponse struct {
		Restaurant
		Address string `json:"address,omitempty"`
	}

	MenuItem struct {
		ID          string  `json:"id"`
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
	}

	MenuCategory struct {
		Category string     `json:"category"`
		Items    []MenuItem `json:"items"`
	}
)
