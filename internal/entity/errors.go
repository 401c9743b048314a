package entity

import "errors"

// Domain errors
var (
	// Input errors, detected before any network call
	ErrEmptyInput    = errors.New("no symptoms selected, entered, or image attached")
	ErrImageTooLarge = errors.New("image too large")
	ErrImageDecode   = errors.New("image decode failed")

	// Submission errors
	ErrAnalysisInFlight  = errors.New("analysis already in progress")
	ErrMalformedResponse = errors.New("malformed analysis response")

	// Relay errors
	ErrMissingCredential = errors.New("gemini api key not configured")
	ErrEmptyCandidate    = errors.New("model returned no candidates")

	// Validation errors
	ErrMissingField  = errors.New("required field is missing")
	ErrInvalidFormat = errors.New("invalid format")
)
