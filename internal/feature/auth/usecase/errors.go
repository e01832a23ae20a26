// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrInvalidInput is returned when a required field is missing or
	// blank after trimming. Always client-caused, never retried.
	ErrInvalidInput = errors.New("username and password are required")

	// ErrAccountNotFound is returned when no account exists for a username.
	ErrAccountNotFound = errors.New("account not found")

	// ErrUsernameTaken is returned when attempting to create an account
	// with a username that already exists, whether detected by the
	// pre-check or by the store's uniqueness constraint.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrHashPassword is returned when the password hash could not be
	// computed. Internal, safe to retry.
	ErrHashPassword = errors.New("failed to hash password")

	// ErrComparePassword is returned when hash verification itself fails,
	// as opposed to a clean mismatch. Internal, safe to retry.
	ErrComparePassword = errors.New("failed to verify password")

	// ErrRegistration is returned when the account insert fails for any
	// reason other than a duplicate username.
	ErrRegistration = errors.New("registration failed")

	// ErrStoreUnavailable is returned on connectivity or transient store
	// failures. Safe to retry with backoff.
	ErrStoreUnavailable = errors.New("account store unavailable")
)
