package domain

import "errors"

var (
	// ErrMessageNotFound is returned by a messaging backend when the target message no longer exists
	ErrMessageNotFound = errors.New("message not found")

	// ErrDestinationNotFound is returned when a destination has no stored configuration
	ErrDestinationNotFound = errors.New("destination not configured")

	// ErrStaleHour is returned when an image is requested for an hour that is not the active one
	ErrStaleHour = errors.New("requested hour is not the active rotation")

	// ErrCallbackAlreadySet is returned on a second expiration callback registration
	ErrCallbackAlreadySet = errors.New("expiration callback already registered")

	// ErrUnsupportedLocale is returned when a locale has no translation bundle
	ErrUnsupportedLocale = errors.New("unsupported locale")
)
