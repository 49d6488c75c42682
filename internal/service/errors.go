package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrPasswordVerification marks a hashing-layer failure (e.g. malformed
	// stored hash). Deliberately distinct from ErrWrongPassword: it maps to
	// an internal error, not to a credential mismatch.
	ErrPasswordVerification = errors.New("password verification failed")

	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is the single signal for every token
	// validation failure (bad signature, wrong issuer, expired, malformed).
	// Callers never learn which check failed.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrMissingAcuity = errors.New("missing required acuity measurements")
)
