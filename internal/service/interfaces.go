package service

import (
	"context"
	"time"

	"github.com/MKhiriev/scale-sync/models"
)

// SyncService runs the vendor-to-health-store pipeline.
type SyncService interface {
	// RunSync performs one complete sync run. It never returns an error:
	// every failure is reported through the returned result.
	RunSync(ctx context.Context, isAutomatic bool) models.SyncResult

	// LastResult returns the outcome of the latest finished run. The boolean
	// is false until a run has completed. Runs rejected because another one
	// was in flight are not recorded.
	LastResult() (models.SyncResult, bool)
}

// CredentialsService manages the vendor account and install identity kept
// in the local store.
type CredentialsService interface {
	// EnsureDeviceID generates and stores a UUIDv4 device id on first use and
	// returns the stored one afterwards.
	EnsureDeviceID(ctx context.Context) (string, error)

	// SaveCredentials stores the vendor email and password.
	SaveCredentials(ctx context.Context, email, password string) error
}

// SyncJob drives automatic runs on a ticker and on-demand runs, and reports
// each finished run to the completion callback.
type SyncJob interface {
	// Start launches the background loop. The first run happens right away,
	// then every interval (15 minutes when interval is not positive). Any
	// previously running loop is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Trigger runs one on-demand sync and waits for its result.
	Trigger(ctx context.Context) models.SyncResult

	// Stop cancels the background loop and waits for it to exit.
	Stop()
}

// RunIDGenerator produces identifiers attached to every run's logger.
type RunIDGenerator interface {
	Generate() string
}
