// Package store persists the sync state (credentials, device id, cursor) and
// the canonical health records. SQLite is the default backend; postgres://
// DSNs select PostgreSQL.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/scale-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// StateRepository is the key/value store behind the email, password,
// device_id and last_sync settings.
type StateRepository interface {
	// LoadCredentials returns whatever credentials are stored. Missing keys
	// leave the matching field empty; use [models.Credentials.Complete].
	LoadCredentials(ctx context.Context) (models.Credentials, error)
	SaveCredentials(ctx context.Context, email, password string) error
	SaveDeviceID(ctx context.Context, deviceID string) error

	// LoadCursor returns nil when no sync has completed yet.
	LoadCursor(ctx context.Context) (*time.Time, error)
	SaveCursor(ctx context.Context, cursor time.Time) error
}

// HealthRecordRepository is the health-data store the sync writes into.
type HealthRecordRepository interface {
	Ping(ctx context.Context) error
	// Read returns records of one kind with from <= time <= to, oldest first.
	Read(ctx context.Context, kind models.RecordKind, from, to time.Time) ([]models.HealthRecord, error)
	// Write persists one batch of a single kind and returns how many records
	// were stored. A batch is all or nothing.
	Write(ctx context.Context, kind models.RecordKind, records []models.HealthRecord) (int, error)
}
