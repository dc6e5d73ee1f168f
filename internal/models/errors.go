package models

import "errors"

var (
	// ErrNotFound is returned when a saved property does not exist or is
	// owned by a different user.
	ErrNotFound = errors.New("saved property not found")

	// ErrAlreadySaved is returned when (userId, propertyId) already exists.
	// The storage-level uniqueness constraint arbitrates concurrent saves.
	ErrAlreadySaved = errors.New("property already saved")

	// ErrStoreUnavailable is returned when no database is configured or
	// reachable. Reads degrade to empty results; writes surface this error.
	ErrStoreUnavailable = errors.New("saved-property store unavailable")

	// ErrPropertyNotFound is returned when a listing id is absent from the
	// merged dataset.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrLLMUnavailable is returned when no conversational backend is
	// configured or a completion produced no usable reply.
	ErrLLMUnavailable = errors.New("conversational backend unavailable")

	// ErrValuationUnavailable is returned when the valuation service health
	// probe fails and the batch is short-circuited.
	ErrValuationUnavailable = errors.New("valuation service unavailable")
)
