package store

const (
	settingsTable      = "settings"
	healthRecordsTable = "health_records"
)

// settings keys
const (
	keyEmail    = "email"
	keyPassword = "password"
	keyDeviceID = "device_id"
	keyLastSync = "last_sync"
)

const upsertSettingSuffix = `ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

// maxBatchRows bounds a single multi-row INSERT; SQLite caps bound
// parameters at 999 in older builds and each row binds five.
const maxBatchRows = 150

// maxWriteAttempts includes the first attempt.
const maxWriteAttempts = 3
