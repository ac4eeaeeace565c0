package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested guide does not exist in its category.
	ErrNotFound = errors.New("guide not found")

	// ErrNoContent indicates an aggregation produced no guides at all.
	// Distinct from an empty document: every requested category was empty
	// or missing. Callers surface a "no guides found" message, never an
	// empty string.
	ErrNoContent = errors.New("no guide content found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownCategory indicates a category outside the closed set.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrUnknownGuideKind indicates a build-guide kind outside the closed set.
	ErrUnknownGuideKind = errors.New("unknown guide kind")
)
