package profile

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platefinder/domain"
	"platefinder/pkg/store"
)

type fakeSlotStore struct {
	mu    sync.Mutex
	slots map[string]string
}

func newFakeSlotStore() *fakeSlotStore {
	return &fakeSlotStore{slots: make(map[string]string)}
}

func (f *fakeSlotStore) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	value, ok := f.slots[key]
	return value, ok, nil
}

func (f *fakeSlotStore) Put(_ context.Context, key string, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slots[key] = value
	return nil
}

func (f *fakeSlotStore) Update(_ context.Context, key string, fn func(string, bool) (string, error)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	value, ok := f.slots[key]
	next, err := fn(value, ok)
	if err != nil {
		return err
	}
	f.slots[key] = next
	return nil
}

func (f *fakeSlotStore) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.slots, key)
	return nil
}

func strPtr(s string) *string { return &s }

func TestProfileService_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults when slot is absent", func(t *testing.T) {
		svc := NewProfileService(newFakeSlotStore())

		profile, err := svc.GetProfile(ctx)
		require.NoError(t, err)
		assert.Empty(t, profile.Name)
		assert.Empty(t, profile.DietaryPreferences)
		assert.Zero(t, profile.VisitCount)
	})

	t.Run("defaults when slot is corrupt", func(t *testing.T) {
		slots := newFakeSlotStore()
		slots.slots[store.SlotProfile] = "][ not json"
		svc := NewProfileService(slots)

		profile, err := svc.GetProfile(ctx)
		require.NoError(t, err)
		assert.Empty(t, profile.Name)
		assert.Empty(t, profile.DietaryPreferences)
	})

	t.Run("loading twice without mutation is identical", func(t *testing.T) {
		slots := newFakeSlotStore()
		svc := NewProfileService(slots)

		_, err := svc.UpdateProfile(ctx, domain.UpdateProfileRequest{Name: strPtr("Dana"), Email: strPtr("dana@example.com")})
		require.NoError(t, err)

		first, err := svc.GetProfile(ctx)
		require.NoError(t, err)
		second, err := svc.GetProfile(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestProfileService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(newFakeSlotStore())

	_, err := svc.UpdateProfile(ctx, domain.UpdateProfileRequest{
		Name:  strPtr("Dana"),
		Phone: strPtr("555-0100"),
	})
	require.NoError(t, err)

	// A partial update leaves the other fields alone.
	profile, err := svc.UpdateProfile(ctx, domain.UpdateProfileRequest{Address: strPtr("123 Main St")})
	require.NoError(t, err)
	assert.Equal(t, "Dana", profile.Name)
	assert.Equal(t, "555-0100", profile.Phone)
	assert.Equal(t, "123 Main St", profile.Address)
}

func TestProfileService_RecordVisit(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(newFakeSlotStore())

	first, err := svc.RecordVisit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, first.VisitCount)
	assert.False(t, first.LastVisit.IsZero())

	second, err := svc.RecordVisit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, second.VisitCount)
}

func TestProfileService_DietaryPreferences(t *testing.T) {
	ctx := context.Background()

	t.Run("add is a no-op when already present", func(t *testing.T) {
		svc := NewProfileService(newFakeSlotStore())

		_, err := svc.AddDietaryPreference(ctx, "vegetarian")
		require.NoError(t, err)
		profile, err := svc.AddDietaryPreference(ctx, "vegetarian")
		require.NoError(t, err)
		assert.Equal(t, []string{"vegetarian"}, profile.DietaryPreferences)
	})

	t.Run("remove filters the value out", func(t *testing.T) {
		svc := NewProfileService(newFakeSlotStore())

		_, err := svc.AddDietaryPreference(ctx, "vegetarian")
		require.NoError(t, err)
		_, err = svc.AddDietaryPreference(ctx, "halal")
		require.NoError(t, err)

		profile, err := svc.RemoveDietaryPreference(ctx, "vegetarian")
		require.NoError(t, err)
		assert.Equal(t, []string{"halal"}, profile.DietaryPreferences)
	})

	t.Run("remove of an absent value is a no-op", func(t *testing.T) {
		svc := NewProfileService(newFakeSlotStore())

		_, err := svc.AddDietaryPreference(ctx, "halal")
		require.NoError(t, err)

		profile, err := svc.RemoveDietaryPreference(ctx, "kosher")
		require.NoError(t, err)
		assert.Equal(t, []string{"halal"}, profile.DietaryPreferences)
	})
}

func TestProfileService_Favorites(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(newFakeSlotStore())

	_, err := svc.AddFavorite(ctx, "Taqueria")
	require.NoError(t, err)
	profile, err := svc.AddFavorite(ctx, "Taqueria")
	require.NoError(t, err)
	assert.Equal(t, []string{"Taqueria"}, profile.Favorites)

	profile, err = svc.RemoveFavorite(ctx, "Taqueria")
	require.NoError(t, err)
	assert.Empty(t, profile.Favorites)
}

func TestProfileService_ConcurrentPreferenceAdds(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(newFakeSlotStore())

	const n = 8
	values := make([]string, n)
	for i := range values {
		values[i] = fmt.Sprintf("preference-%d", i)
	}

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for _, v := range values {
		wg.Add(1)
		go func(v string) {
			defer wg.Done()
			_, err := svc.AddDietaryPreference(ctx, v)
			errs <- err
		}(v)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	profile, err := svc.GetProfile(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, values, profile.DietaryPreferences, "every concurrently added preference must survive")
}

func TestProfileService_ClearProfile(t *testing.T) {
	ctx := context.Background()
	slots := newFakeSlotStore()
	slots.slots[store.SlotOrderHistory] = `[{"id":"o1"}]`
	svc := NewProfileService(slots)

	_, err := svc.UpdateProfile(ctx, domain.UpdateProfileRequest{Name: strPtr("Dana"), Email: strPtr("dana@example.com")})
	require.NoError(t, err)
	_, err = svc.AddDietaryPreference(ctx, "vegetarian")
	require.NoError(t, err)

	cleared, err := svc.ClearProfile(ctx)
	require.NoError(t, err)
	assert.Empty(t, cleared.Name)
	assert.Empty(t, cleared.Email)
	assert.Empty(t, cleared.DietaryPreferences)

	_, ok := slots.slots[store.SlotProfile]
	assert.False(t, ok, "profile slot should be removed")
	assert.Equal(t, `[{"id":"o1"}]`, slots.slots[store.SlotOrderHistory], "order history slot must survive a profile clear")
}
