package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrStoreRead is returned when a read from the settings or health-record
	// tables fails. The sync run treats it as "no dedup information".
	ErrStoreRead = errors.New("store read failed")

	// ErrStoreWrite is returned when a batch of health records or a setting
	// could not be persisted.
	ErrStoreWrite = errors.New("store write failed")

	// ErrStoreUnavailable is returned by Ping when the database cannot be
	// reached.
	ErrStoreUnavailable = errors.New("health store unavailable")

	// ErrKindMismatch is returned by Write when a record does not belong to
	// the batch kind.
	ErrKindMismatch = errors.New("record kind does not match batch kind")

	// ErrInvalidCursor is returned when the persisted last_sync value cannot
	// be parsed as an RFC 3339 timestamp.
	ErrInvalidCursor = errors.New("stored cursor is not a valid timestamp")
)

// Low-level database operation errors, wrapped by the sentinels above.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT or UPSERT fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	ErrScanningRows = errors.New("failed to scan rows")
)
