package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"

	// ErrProviderFailed is the catch-all for an external provider error that
	// does not map to a more specific condition.
	ErrProviderFailed = errors.New("provider request failed")
)
