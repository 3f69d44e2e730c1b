package entities

import (
	"time"
)

// UserProfile is the document stored in the "profile" slot.
type UserProfile struct {
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	Address            string    `json:"address"`
	DietaryPreferences []string  `json:"dietary_preferences"`
	Favorites          []string  `json:"favorites"`
	VisitCount         int       `json:"visit_count"`
	LastVisit          time.Time `json:"last_visit"`
}

// DefaultUserProfile returns the profile used when the slot is absent or
// unreadable.
func DefaultUserProfile() UserProfile {
	return UserProfile{
		DietaryPreferences: []string{},
		Favorites:          []string{},
	}
}
