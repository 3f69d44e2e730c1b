package domain

import (
	"errors"
)

var (
	MessageSuccessGetRecommendations = "recommendations generated successfully"
	MessageFailedGetRecommendations  = "failed to generate recommendations"

	ErrNoContent         = errors.New("provider returned no content")
	ErrMalformedResponse = errors.New("provider response did not match the expected shape")
)

type (
	RecommendationRequest struct {
		Restaurants []Restaurant `json:"restaurants" validate:"required,min=1,dive"`
		// Selected holds the ids the user picked; when empty every submitted
		// candidate is considered.
		Selected   []string `json:"selected"`
		Preference string   `json:"preference" validate:"required,min=3"`
	}

	// Recommendation mirrors the JSON object the completion provider is asked
	// to produce, so the field names follow its reply rather than the API
	// convention used elsewhere.
	Recommendation struct {
		RestaurantID   string `json:"restaurantId"`
		RestaurantName string `json:"restaurantName"`
		DishName       string `json:"dishName"`
		Description    string `json:"description"`
		Reason         string `json:"reason"`
		EstimatedPrice string `json:"estimatedPrice,omitempty"`
	}

	RecommendationResponse struct {
		Recommendations []Recommendation `json:"recommendations"`
	}
)
