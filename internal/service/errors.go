package service

import "errors"

// Run failures. Their messages end up in SyncResult.Message.
var (
	ErrMissingCredentials     = errors.New("missing credentials")
	ErrSyncInProgress         = errors.New("sync already in progress")
	ErrHealthStoreUnavailable = errors.New("health store unavailable")
	ErrTimeout                = errors.New("sync timeout")

	// ErrInvalidCredentials is returned by SaveCredentials for an empty email
	// or password.
	ErrInvalidCredentials = errors.New("email and password are required")
)
