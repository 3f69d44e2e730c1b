package location

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"platefinder/domain"
	"platefinder/internal/monitoring"
	"platefinder/internal/utils"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api"

type (
	// Place is one nearby-search result as returned by the places provider.
	Place struct {
		PlaceID    string
		Name       string
		Rating     float64
		PriceLevel int
		Vicinity   string
		Types      []string
	}

	LocationService interface {
		Detect(ctx context.Context, req domain.DetectLocationRequest) (domain.DetectLocationResponse, error)
		SearchNearbyPlaces(ctx context.Context, lat, lng float64, radius int, category string) ([]Place, error)
		GetPlaceDetails(ctx context.Context, placeID string) (Place, string, error)
	}

	locationService struct {
		client *http.Client
	}
)

func NewLocationService() LocationService {
	return &locationService{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Detect resolves the caller-supplied coordinate to an address. Reverse
// geocoding failure is non-fatal: the coordinate is still returned, with the
// failure noted as a warning.
func (s *locationService) Detect(ctx context.Context, req domain.DetectLocationRequest) (domain.DetectLocationResponse, error) {
	if req.Lat == nil || req.Lng == nil {
		return domain.DetectLocationResponse{}, domain.ErrLocationUnavailable
	}

	res := domain.DetectLocationResponse{Lat: *req.Lat, Lng: *req.Lng}

	address, err := s.reverseGeocode(ctx, *req.Lat, *req.Lng)
	if err != nil {
		log.Printf("Reverse geocoding failed for %f,%f: %v", *req.Lat, *req.Lng, err)
		monitoring.ProviderFailures.WithLabelValues("geocode").Inc()
		res.Warning = domain.ErrGeocodeFailed.Error()
		return res, nil
	}

	res.Address = address
	return res, nil
}

func (s *locationService) reverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	apiKey := utils.GetConfig("GOOGLE_MAPS_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("GOOGLE_MAPS_API_KEY not set")
	}

	query := url.Values{}
	query.Set("latlng", fmt.Sprintf("%f,%f", lat, lng))
	query.Set("key", apiKey)

	var payload struct {
		Status  string `json:"status"`
		Results []struct {
			FormattedAddress string `json:"formatted_address"`
		} `json:"results"`
	}
	if err := s.getJSON(ctx, "/geocode/json", query, &payload); err != nil {
		return "", err
	}

	if payload.Status != "OK" || len(payload.Results) == 0 {
		return "", fmt.Errorf("geocoder returned status %s: %w", payload.Status, domain.ErrGeocodeFailed)
	}
	return payload.Results[0].FormattedAddress, nil
}

// SearchNearbyPlaces runs a places nearby search around the coordinate.
// A non-OK provider status surfaces as ErrSearchFailed; zero results is not
// an error.
func (s *locationService) SearchNearbyPlaces(ctx context.Context, lat, lng float64, radius int, category string) ([]Place, error) {
	apiKey := utils.GetConfig("GOOGLE_MAPS_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GOOGLE_MAPS_API_KEY not set")
	}

	if radius <= 0 {
		// A zero configured radius is meaningless for a nearby search, so it
		// falls through to the builtin default too.
		if radius = utils.GetConfigInt("DEFAULT_SEARCH_RADIUS_M", 1500); radius <= 0 {
			radius = 1500
		}
	}
	if category == "" {
		category = "restaurant"
	}

	query := url.Values{}
	query.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	query.Set("radius", strconv.Itoa(radius))
	query.Set("type", category)
	query.Set("key", apiKey)

	var payload struct {
		Status  string      `json:"status"`
		Results []placeJSON `json:"results"`
	}
	if err := s.getJSON(ctx, "/place/nearbysearch/json", query, &payload); err != nil {
		monitoring.ProviderFailures.WithLabelValues("places").Inc()
		return nil, err
	}

	if payload.Status == "ZERO_RESULTS" {
		return []Place{}, nil
	}
	if payload.Status != "OK" {
		monitoring.ProviderFailures.WithLabelValues("places").Inc()
		return nil, fmt.Errorf("places search returned status %s: %w", payload.Status, domain.ErrSearchFailed)
	}

	places := make([]Place, 0, len(payload.Results))
	for _, r := range payload.Results {
		places = append(places, r.toPlace())
	}
	return places, nil
}

// GetPlaceDetails fetches a single place and its formatted address.
func (s *locationService) GetPlaceDetails(ctx context.Context, placeID string) (Place, string, error) {
	apiKey := utils.GetConfig("GOOGLE_MAPS_API_KEY")
	if apiKey == "" {
		return Place{}, "", fmt.Errorf("GOOGLE_MAPS_API_KEY not set")
	}

	query := url.Values{}
	query.Set("place_id", placeID)
	query.Set("fields", "place_id,name,rating,price_level,vicinity,types,formatted_address")
	query.Set("key", apiKey)

	var payload struct {
		Status string `json:"status"`
		Result struct {
			placeJSON
			FormattedAddress string `json:"formatted_address"`
		} `json:"result"`
	}
	if err := s.getJSON(ctx, "/place/details/json", query, &payload); err != nil {
		monitoring.ProviderFailures.WithLabelValues("places").Inc()
		return Place{}, "", err
	}

	if payload.Status == "NOT_FOUND" || payload.Status == "ZERO_RESULTS" {
		return Place{}, "", domain.ErrRestaurantNotFound
	}
	if payload.Status != "OK" {
		monitoring.ProviderFailures.WithLabelValues("places").Inc()
		return Place{}, "", fmt.Errorf("place details returned status %s: %w", payload.Status, domain.ErrSearchFailed)
	}
	return payload.Result.toPlace(), payload.Result.FormattedAddress, nil
}

func (s *locationService) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	baseURL := utils.GetConfig("GOOGLE_MAPS_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("maps API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("maps API error: %s - %s", resp.Status, string(bodyBytes))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

type placeJSON struct {
	PlaceID    string   `json:"place_id"`
	Name       string   `json:"name"`
	Rating     float64  `json:"rating"`
	PriceLevel int      `json:"price_level"`
	Vicinity   string   `json:"vicinity"`
	Types      []string `json:"types"`
}

func (p placeJSON) toPlace() Place {
	return Place{
		PlaceID:    p.PlaceID,
		Name:       p.Name,
		Rating:     p.Rating,
		PriceLevel: p.PriceLevel,
		Vicinity:   p.Vicinity,
		Types:      p.Types,
	}
}
