package domain

var (
	MessageSuccessGetProfile       = "profile retrieved successfully"
	MessageSuccessUpdateProfile    = "profile updated successfully"
	MessageFailedUpdateProfile     = "failed to update profile"
	MessageSuccessClearProfile     = "profile cleared successfully"
	MessageFailedClearProfile      = "failed to clear profile"
	MessageSuccessRecordVisit      = "visit recorded successfully"
	MessageFailedRecordVisit       = "failed to record visit"
	MessageSuccessAddPreference    = "dietary preference added successfully"
	MessageSuccessRemovePreference = "dietary preference removed successfully"
	MessageFailedUpdatePreference  = "failed to update dietary preferences"
	MessageSuccessAddFavorite      = "favorite added successfully"
	MessageSuccessRemoveFavorite   = "favorite removed successfully"
	MessageFailedUpdateFavorite    = "failed to update favorites"
)

type (
	// UpdateProfileRequest carries a partial update; nil fields keep their
	// stored value.
	UpdateProfileRequest struct {
		Name    *string `json:"name" validate:"omitempty"`
		Email   *string `json:"email" validate:"omitempty,email"`
		Phone   *string `json:"phone" validate:"omitempty"`
		Address *string `json:"address" validate:"omitempty"`
	}

	PreferenceRequest struct {
		Value string `json:"value" validate:"required"`
	}

	FavoriteRequest struct {
		Value string `json:"value" validate:"required"`
	}
)
