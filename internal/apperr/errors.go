package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrConflict indicates a uniqueness violation, e.g. a duplicate phone.
var ErrConflict = errors.New("conflict")

// ErrInvalidState indicates that the request lifecycle does not allow the operation.
var ErrInvalidState = errors.New("invalid request state")

// ErrNoProviders indicates that no provider is currently available for dispatch.
var ErrNoProviders = errors.New("no providers available")

// ErrNoAssignment indicates a dispatched request without a linked assignment.
var ErrNoAssignment = errors.New("request has no assignment")

// ErrProviderBusy is an invariant violation: a provider read under lock as
// available turned out busy. The row locks must make this unreachable.
var ErrProviderBusy = errors.New("provider is busy")
