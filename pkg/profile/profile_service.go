package profile

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"platefinder/domain"
	"platefinder/entities"
	"platefinder/pkg/store"
)

type (
	ProfileService interface {
		GetProfile(ctx context.Context) (entities.UserProfile, error)
		UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest) (entities.UserProfile, error)
		RecordVisit(ctx context.Context) (entities.UserProfile, error)
		AddDietaryPreference(ctx context.Context, value string) (entities.UserProfile, error)
		RemoveDietaryPreference(ctx context.Context, value string) (entities.UserProfile, error)
		AddFavorite(ctx context.Context, value string) (entities.UserProfile, error)
		RemoveFavorite(ctx context.Context, value string) (entities.UserProfile, error)
		ClearProfile(ctx context.Context) (entities.UserProfile, error)
	}

	profileService struct {
		slots store.SlotStore
	}
)

func NewProfileService(slots store.SlotStore) ProfileService {
	return &profileService{slots: slots}
}

// GetProfile loads the stored profile. A missing or unreadable slot yields
// the default profile; reads never mutate the slot, so two consecutive loads
// return the same document.
func (s *profileService) GetProfile(ctx context.Context) (entities.UserProfile, error) {
	value, ok, err := s.slots.Get(ctx, store.SlotProfile)
	if err != nil {
		log.Printf("Error reading profile slot: %v", err)
		return entities.DefaultUserProfile(), nil
	}
	return decodeProfile(value, ok), nil
}

func (s *profileService) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest) (entities.UserProfile, error) {
	return s.mutate(ctx, func(profile entities.UserProfile) entities.UserProfile {
		if req.Name != nil {
			profile.Name = *req.Name
		}
		if req.Email != nil {
			profile.Email = *req.Email
		}
		if req.Phone != nil {
			profile.Phone = *req.Phone
		}
		if req.Address != nil {
			profile.Address = *req.Address
		}
		return profile
	})
}

// RecordVisit increments the visit counter and stamps the visit time. The
// counter never decreases; it is only ever touched here.
func (s *profileService) RecordVisit(ctx context.Context) (entities.UserProfile, error) {
	return s.mutate(ctx, func(profile entities.UserProfile) entities.UserProfile {
		profile.VisitCount++
		profile.LastVisit = time.Now()
		return profile
	})
}

// AddDietaryPreference adds with set semantics: a value already present
// leaves the profile unchanged.
func (s *profileService) AddDietaryPreference(ctx context.Context, value string) (entities.UserProfile, error) {
	return s.mutate(ctx, func(profile entities.UserProfile) entities.UserProfile {
		profile.DietaryPreferences = addUnique(profile.DietaryPreferences, value)
		return profile
	})
}

func (s *profileService) RemoveDietaryPreference(ctx context.Context, value string) (entities.UserProfile, error) {
	return s.mutate(ctx, func(profile entities.UserProfile) entities.UserProfile {
		profile.DietaryPreferences = remove(profile.DietaryPreferences, value)
		return profile
	})
}

func (s *profileService) AddFavorite(ctx context.Context, value string) (entities.UserProfile, error) {
	return s.mutate(ctx, func(profile entities.UserProfile) entities.UserProfile {
		profile.Favorites = addUnique(profile.Favorites, value)
		return profile
	})
}

func (s *profileService) RemoveFavorite(ctx context.Context, value string) (entities.UserProfile, error) {
	return s.mutate(ctx, func(profile entities.UserProfile) entities.UserProfile {
		profile.Favorites = remove(profile.Favorites, value)
		return profile
	})
}

// ClearProfile removes the profile slot entirely. The order history slot has
// its own lifecycle and is left untouched.
func (s *profileService) ClearProfile(ctx context.Context) (entities.UserProfile, error) {
	if err := s.slots.Delete(ctx, store.SlotProfile); err != nil {
		return entities.UserProfile{}, err
	}
	return entities.DefaultUserProfile(), nil
}

// mutate applies the change inside the store's update so concurrent profile
// mutations cannot overwrite each other with a stale document.
func (s *profileService) mutate(ctx context.Context, apply func(entities.UserProfile) entities.UserProfile) (entities.UserProfile, error) {
	var updated entities.UserProfile
	err := s.slots.Update(ctx, store.SlotProfile, func(current string, ok bool) (string, error) {
		updated = apply(decodeProfile(current, ok))
		value, err := json.Marshal(updated)
		if err != nil {
			return "", err
		}
		return string(value), nil
	})
	if err != nil {
		return entities.UserProfile{}, err
	}
	return updated, nil
}

func decodeProfile(value string, ok bool) entities.UserProfile {
	if !ok {
		return entities.DefaultUserProfile()
	}

	var profile entities.UserProfile
	if err := json.Unmarshal([]byte(value), &profile); err != nil {
		// Corrupt slot: fall back to defaults rather than surfacing the error.
		log.Printf("Error decoding profile slot, using defaults: %v", err)
		return entities.DefaultUserProfile()
	}
	if profile.DietaryPreferences == nil {
		profile.DietaryPreferences = []string{}
	}
	if profile.Favorites == nil {
		profile.Favorites = []string{}
	}
	return profile
}

func addUnique(values []string, value string) []string {
	for _, v := range values {
		if v == value {
			return values
		}
	}
	return append(values, value)
}

func remove(values []string, value string) []string {
	filtered := make([]string, 0, len(values))
	for _, v := range values {
		if v != value {
			filtered = append(filtered, v)
		}
	}
	return filtered
}
