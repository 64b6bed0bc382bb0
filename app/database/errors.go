package database

import "errors"

var (
	// ErrNotFound means a requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrProfileNotFound means the identity authenticated but its profile
	// record is missing: an inconsistent state the client surfaces as
	// "User data not found".
	ErrProfileNotFound = errors.New("user data not found")

	// ErrInvalidCredentials covers unknown email and wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken rejects duplicate sign-ups.
	ErrEmailTaken = errors.New("email already registered")
)
