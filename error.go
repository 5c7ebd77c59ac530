package wanderlust

import "errors"

var (
	ErrBadConfig   = errors.New("bad config")
	ErrExists      = errors.New("already exists")
	ErrMissingData = errors.New("missing data")
	ErrNotExist    = errors.New("not exist")
	ErrNotValid    = errors.New("invalid")
	ErrUnexpected  = errors.New("unexpected")

	// ErrInvalidInput reports a request missing a required value.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials covers an unknown username and a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUsernameTaken    = errors.New("username taken")
	ErrUserNotFound     = errors.New("user not found")
	ErrStoreUnavailable = errors.New("store unavailable")
)
