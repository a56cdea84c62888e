// Package common defines shared sentinel errors used across the Serena CLI.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors.
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEntryExists        = errors.New("entry already exists for this day")
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrUnknownEmotion     = errors.New("unknown emotion")
)
