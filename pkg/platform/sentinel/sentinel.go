package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally wrapped)
// so services can translate them into domain errors.
//
// - ErrNotFound: entity does not exist in the store
// - ErrUnavailable: the store could not be reached
//
// For validation errors (bad input, missing parameters), use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)
