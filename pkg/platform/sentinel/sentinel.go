package sentinel

import "errors"

// Sentinel errors for storage facts. Stores return these (optionally wrapped)
// and services translate them into domain errors:
// - ErrNotFound: no row matched the key
// - ErrConflict: a unique constraint rejected the write
// - ErrExpired: a one-time code is past its expiry
// - ErrAlreadyUsed: a one-time code was consumed by a concurrent request
// - ErrInvalidInput: the database rejected a value's format (bad date literal)
// - ErrUnavailable: an upstream (gateway, broker) could not be reached
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrExpired      = errors.New("expired")
	ErrAlreadyUsed  = errors.New("already used")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnavailable  = errors.New("unavailable")
)
