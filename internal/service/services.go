package service

import (
	"github.com/MKhiriev/scale-sync/internal/adapter"
	"github.com/MKhiriev/scale-sync/internal/config"
	"github.com/MKhiriev/scale-sync/internal/logger"
	"github.com/MKhiriev/scale-sync/internal/metrics"
	"github.com/MKhiriev/scale-sync/internal/store"
	"github.com/MKhiriev/scale-sync/internal/utils"
	"github.com/MKhiriev/scale-sync/models"
)

type Services struct {
	SyncService        SyncService
	CredentialsService CredentialsService
	SyncJob            SyncJob
}

func NewServices(storages *store.Storages, vendor adapter.VendorAdapter, cfg *config.ClientConfig, m *metrics.Metrics, log *logger.Logger) *Services {
	syncSvc := NewSyncService(SyncServiceDeps{
		State:   storages.State,
		Records: storages.HealthRecords,
		Vendor:  vendor,
		Device:  deviceMetadata(cfg.Device),
		Timeout: cfg.Workers.RunTimeout,
		Metrics: m,
		RunIDs:  utils.NewUUIDGenerator(),
	}, log)

	return &Services{
		SyncService:        syncSvc,
		CredentialsService: NewCredentialsService(storages.State, log),
		SyncJob:            NewSyncJob(syncSvc, completionLogger(log)),
	}
}

func deviceMetadata(d config.ClientDevice) models.DeviceMetadata {
	return models.DeviceMetadata{
		Name:      d.Name,
		Brand:     d.Brand,
		Model:     d.Model,
		OSVersion: d.OSVersion,
		TimeZone:  d.TimeZone,
		Culture:   d.Culture,
	}
}

// completionLogger reports every finished run the way a background fetch
// handler reports its outcome.
func completionLogger(log *logger.Logger) func(models.SyncResult) {
	return func(result models.SyncResult) {
		event := log.Info()
		if !result.Success {
			event = log.Warn()
		}
		event.Str("func", "service.completionLogger").
			Bool("automatic", result.IsAutomatic).
			Bool("success", result.Success).
			Int("count", result.RecordCount).
			Str("message", result.Message).
			Msg("sync completed")
	}
}
