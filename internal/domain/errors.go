package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing location, cycle hours out of range).
// Handlers should map this to HTTP 422 Unprocessable Entity.
// The rule engine itself never returns it: out-of-range numbers reaching the
// engine produce mathematically derived output, not an error.
var ErrValidation = errors.New("validation error")
