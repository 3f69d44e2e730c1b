package location

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platefinder/domain"
	"platefinder/internal/utils"
)

func floatPtr(f float64) *float64 { return &f }

// pointConfigAt writes a config file targeting the test server and loads it.
func pointConfigAt(t *testing.T, baseURL string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := fmt.Sprintf("GOOGLE_MAPS_API_KEY: \"test-key\"\nGOOGLE_MAPS_BASE_URL: %q\n", baseURL)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	utils.LoadConfig(path)
}

func TestLocationService_Detect(t *testing.T) {
	ctx := context.Background()

	t.Run("missing coordinate is LocationUnavailable", func(t *testing.T) {
		svc := NewLocationService()

		_, err := svc.Detect(ctx, domain.DetectLocationRequest{})
		assert.ErrorIs(t, err, domain.ErrLocationUnavailable)
	})

	t.Run("returns coordinate with resolved address", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/geocode/json", r.URL.Path)
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))
			fmt.Fprint(w, `{"status":"OK","results":[{"formatted_address":"123 Main St, Springfield"}]}`)
		}))
		defer server.Close()
		pointConfigAt(t, server.URL)

		svc := NewLocationService()
		res, err := svc.Detect(ctx, domain.DetectLocationRequest{Lat: floatPtr(40.7), Lng: floatPtr(-74.0)})
		require.NoError(t, err)
		assert.Equal(t, 40.7, res.Lat)
		assert.Equal(t, "123 Main St, Springfield", res.Address)
		assert.Empty(t, res.Warning)
	})

	t.Run("geocode failure is non-fatal", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"status":"REQUEST_DENIED","results":[]}`)
		}))
		defer server.Close()
		pointConfigAt(t, server.URL)

		svc := NewLocationService()
		res, err := svc.Detect(ctx, domain.DetectLocationRequest{Lat: floatPtr(40.7), Lng: floatPtr(-74.0)})
		require.NoError(t, err)
		assert.Equal(t, 40.7, res.Lat)
		assert.Equal(t, -74.0, res.Lng)
		assert.Empty(t, res.Address)
		assert.NotEmpty(t, res.Warning)
	})
}

func TestLocationService_SearchNearbyPlaces(t *testing.T) {
	ctx := context.Background()

	t.Run("maps provider results", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/place/nearbysearch/json", r.URL.Path)
			assert.Equal(t, "restaurant", r.URL.Query().Get("type"))
			assert.Equal(t, "1500", r.URL.Query().Get("radius"))
			fmt.Fprint(w, `{"status":"OK","results":[
				{"place_id":"p1","name":"Taqueria","rating":4.5,"price_level":2,"vicinity":"123 Main St","types":["restaurant","food"]}
			]}`)
		}))
		defer server.Close()
		pointConfigAt(t, server.URL)

		svc := NewLocationService()
		places, err := svc.SearchNearbyPlaces(ctx, 40.7, -74.0, 0, "")
		require.NoError(t, err)
		require.Len(t, places, 1)
		assert.Equal(t, "p1", places[0].PlaceID)
		assert.Equal(t, "Taqueria", places[0].Name)
		assert.Equal(t, 4.5, places[0].Rating)
		assert.Equal(t, 2, places[0].PriceLevel)
	})

	t.Run("zero results is not an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"status":"ZERO_RESULTS","results":[]}`)
		}))
		defer server.Close()
		pointConfigAt(t, server.URL)

		svc := NewLocationService()
		places, err := svc.SearchNearbyPlaces(ctx, 40.7, -74.0, 500, "restaurant")
		require.NoError(t, err)
		assert.Empty(t, places)
	})

	t.Run("non-OK status is SearchFailed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"status":"INVALID_REQUEST","results":[]}`)
		}))
		defer server.Close()
		pointConfigAt(t, server.URL)

		svc := NewLocationService()
		_, err := svc.SearchNearbyPlaces(ctx, 40.7, -74.0, 500, "restaurant")
		assert.ErrorIs(t, err, domain.ErrSearchFailed)
	})
}

func TestLocationService_GetPlaceDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("returns place and formatted address", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/place/details/json", r.URL.Path)
			assert.Equal(t, "p1", r.URL.Query().Get("place_id"))
			fmt.Fprint(w, `{"status":"OK","result":{"place_id":"p1","name":"Taqueria","rating":4.5,"vicinity":"123 Main St","formatted_address":"123 Main St, Springfield"}}`)
		}))
		defer server.Close()
		pointConfigAt(t, server.URL)

		svc := NewLocationService()
		place, address, err := svc.GetPlaceDetails(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, "Taqueria", place.Name)
		assert.Equal(t, "123 Main St, Springfield", address)
	})

	t.Run("missing place is RestaurantNotFound", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"status":"NOT_FOUND"}`)
		}))
		defer server.Close()
		pointConfigAt(t, server.URL)

		svc := NewLocationService()
		_, _, err := svc.GetPlaceDetails(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)
	})
}
