package restaurant

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"platefinder/domain"
	"platefinder/pkg/location"
)

type (
	RestaurantService interface {
		GetNearbyRestaurants(ctx context.Context, req domain.NearbySearchRequest) ([]domain.Restaurant, error)
		GetRestaurantDetails(ctx context.Context, restaurantID string) (domain.RestaurantDetailResponse, error)
		GetRestaurantMenu(ctx context.Context, restaurantID string) ([]domain.MenuCategory, error)
	}

	restaurantService struct {
		locationService location.LocationService
	}
)

func NewRestaurantService(locationService location.LocationService) RestaurantService {
	return &restaurantService{locationService: locationService}
}

// GetNearbyRestaurants searches the places provider around the given
// coordinate and maps the results to candidates. A request without a resolved
// coordinate is rejected before any provider call.
func (s *restaurantService) GetNearbyRestaurants(ctx context.Context, req domain.NearbySearchRequest) ([]domain.Restaurant, error) {
	if req.Lat == nil || req.Lng == nil {
		return nil, domain.ErrPreconditionUnmet
	}

	places, err := s.locationService.SearchNearbyPlaces(ctx, *req.Lat, *req.Lng, req.Radius, req.Category)
	if err != nil {
		return nil, err
	}

	return mapPlacesToRestaurants(places), nil
}

func (s *restaurantService) GetRestaurantDetails(ctx context.Context, restaurantID string) (domain.RestaurantDetailResponse, error) {
	place, address, err := s.locationService.GetPlaceDetails(ctx, restaurantID)
	if err != nil {
		return domain.RestaurantDetailResponse{}, err
	}

	restaurant := mapPlacesToRestaurants([]location.Place{place})[0]
	if restaurant.ID == "" || place.PlaceID == "" {
		restaurant.ID = restaurantID
	}
	return domain.RestaurantDetailResponse{
		Restaurant: restaurant,
		Address:    address,
	}, nil
}

// GetRestaurantMenu returns a placeholder menu. Real menu integration is out
// of scope; the categories are stable so the ordering flow can be exercised
// end to end.
func (s *restaurantService) GetRestaurantMenu(ctx context.Context, restaurantID string) ([]domain.MenuCategory, error) {
	if restaurantID == "" {
		return nil, domain.ErrRestaurantNotFound
	}

	return []domain.MenuCategory{
		{
			Category: "Appetizers",
			Items: []domain.MenuItem{
				{ID: "app1", Name: "Spring Rolls", Description: "Fresh vegetables wrapped in rice paper", Price: 8.99},
				{ID: "app2", Name: "Mozzarella Sticks", Description: "Breaded and deep-fried mozzarella", Price: 7.99},
			},
		},
		{
			Category: "Main Courses",
			Items: []domain.MenuItem{
				{ID: "main1", Name: "Chicken Parmesan", Description: "Breaded chicken with marinara and cheese", Price: 15.99},
				{ID: "main2", Name: "Vegetable Stir Fry", Description: "Fresh vegetables in a savory sauce", Price: 13.99},
			},
		},
		{
			Category: "Desserts",
			Items: []domain.MenuItem{
				{ID: "des1", Name: "Chocolate Cake", Description: "Rich chocolate cake with ganache", Price: 6.99},
				{ID: "des2", Name: "Cheesecake", Description: "New York style cheesecake", Price: 7.99},
			},
		},
	}, nil
}

func mapPlacesToRestaurants(places []location.Place) []domain.Restaurant {
	restaurants := make([]domain.Restaurant, 0, len(places))
	for _, place := range places {
		id := place.PlaceID
		if id == "" {
			// The provider occasionally omits place ids; candidates still need
			// one unique within the result set.
			id = fmt.Sprintf("restaurant-%s", uuid.New().String())
		}
		name := place.Name
		if name == "" {
			name = "Unknown Restaurant"
		}
		restaurants = append(restaurants, domain.Restaurant{
			ID:         id,
			Name:       name,
			Rating:     place.Rating,
			PriceLevel: place.PriceLevel,
			Vicinity:   place.Vicinity,
			Types:      place.Types,
		})
	}
	return restaurants
}
