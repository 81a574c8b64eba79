package domain

import "errors"

// ErrNotFound is returned by catalog, repo, and service functions when the
// requested resource does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service and generator functions when input
// fails validation (e.g. a non-positive seed or an empty profile name).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrUnavailable is returned when an optional external collaborator (the
// identity provider or the profile store) is not configured. The feature
// degrades instead of crashing; handlers should map this to HTTP 503.
var ErrUnavailable = errors.New("feature unavailable")
