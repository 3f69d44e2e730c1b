package restaurant

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platefinder/domain"
	"platefinder/pkg/location"
)

type fakeLocationService struct {
	places     []location.Place
	detail     location.Place
	detailAddr string
	err        error
}

func (f *fakeLocationService) Detect(_ context.Context, req domain.DetectLocationRequest) (domain.DetectLocationResponse, error) {
	return domain.DetectLocationResponse{}, f.err
}

func (f *fakeLocationService) SearchNearbyPlaces(_ context.Context, _, _ float64, _ int, _ string) ([]location.Place, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.places, nil
}

func (f *fakeLocationService) GetPlaceDetails(_ context.Context, _ string) (location.Place, string, error) {
	if f.err != nil {
		return location.Place{}, "", f.err
	}
	return f.detail, f.detailAddr, nil
}

func floatPtr(f float64) *float64 { return &f }

func TestRestaurantService_GetNearbyRestaurants(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a coordinate", func(t *testing.T) {
		svc := NewRestaurantService(&fakeLocationService{})

		_, err := svc.GetNearbyRestaurants(ctx, domain.NearbySearchRequest{})
		assert.ErrorIs(t, err, domain.ErrPreconditionUnmet)
	})

	t.Run("maps places to candidates", func(t *testing.T) {
		svc := NewRestaurantService(&fakeLocationService{places: []location.Place{
			{PlaceID: "p1", Name: "Taqueria", Rating: 4.5, PriceLevel: 2, Vicinity: "123 Main St", Types: []string{"restaurant"}},
		}})

		res, err := svc.GetNearbyRestaurants(ctx, domain.NearbySearchRequest{Lat: floatPtr(40.7), Lng: floatPtr(-74.0)})
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "p1", res[0].ID)
		assert.Equal(t, "Taqueria", res[0].Name)
		assert.Equal(t, 4.5, res[0].Rating)
	})

	t.Run("fills missing ids and names", func(t *testing.T) {
		svc := NewRestaurantService(&fakeLocationService{places: []location.Place{
			{PlaceID: "", Name: ""},
			{PlaceID: "", Name: ""},
		}})

		res, err := svc.GetNearbyRestaurants(ctx, domain.NearbySearchRequest{Lat: floatPtr(40.7), Lng: floatPtr(-74.0)})
		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.True(t, strings.HasPrefix(res[0].ID, "restaurant-"))
		assert.Equal(t, "Unknown Restaurant", res[0].Name)
		assert.NotEqual(t, res[0].ID, res[1].ID, "generated ids must be unique within a result set")
	})

	t.Run("propagates search failures", func(t *testing.T) {
		svc := NewRestaurantService(&fakeLocationService{err: domain.ErrSearchFailed})

		_, err := svc.GetNearbyRestaurants(ctx, domain.NearbySearchRequest{Lat: floatPtr(40.7), Lng: floatPtr(-74.0)})
		assert.ErrorIs(t, err, domain.ErrSearchFailed)
	})
}

func TestRestaurantService_GetRestaurantDetails(t *testing.T) {
	ctx := context.Background()
	svc := NewRestaurantService(&fakeLocationService{
		detail:     location.Place{PlaceID: "p1", Name: "Taqueria", Rating: 4.5},
		detailAddr: "123 Main St, Springfield",
	})

	res, err := svc.GetRestaurantDetails(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", res.ID)
	assert.Equal(t, "Taqueria", res.Name)
	assert.Equal(t, "123 Main St, Springfield", res.Address)
}

func TestRestaurantService_GetRestaurantMenu(t *testing.T) {
	ctx := context.Background()
	svc := NewRestaurantService(&fakeLocationService{})

	t.Run("menu is stable across calls", func(t *testing.T) {
		first, err := svc.GetRestaurantMenu(ctx, "p1")
		require.NoError(t, err)
		second, err := svc.GetRestaurantMenu(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, first, second)
		require.NotEmpty(t, first)
		for _, category := range first {
			assert.NotEmpty(t, category.Items)
		}
	})

	t.Run("rejects an empty id", func(t *testing.T) {
		_, err := svc.GetRestaurantMenu(ctx, "")
		assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)
	})
}
