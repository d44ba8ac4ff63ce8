package config

import (
	"fmt"
	"time"
)

// ClientApp holds application-level settings of the syncer.
type ClientApp struct {
	// SecretKey keys the local credential keychain.
	SecretKey string
	// Version is reported by /api/version.
	Version string
	// Email and Password, when set, are saved to the local store on start.
	Email    string
	Password string
	// LogFile is the log destination; empty means stdout.
	LogFile string
}

// ClientDevice is the phone identity presented to the vendor.
type ClientDevice struct {
	Name      string
	Brand     string
	Model     string
	OSVersion string
	TimeZone  string
	Culture   string
}

// ClientAdapter holds settings of the vendor API client.
type ClientAdapter struct {
	// HTTPAddress is the vendor base URL.
	HTTPAddress string
	// RequestTimeout bounds a single vendor request.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite/PostgreSQL connection string.
	DSN string
}

// ClientStorage groups storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientServer holds the local HTTP surface settings.
type ClientServer struct {
	// HTTPAddress is the listen address; empty disables the server.
	HTTPAddress string
}

// ClientWorkers contains sync job settings.
type ClientWorkers struct {
	// SyncInterval defines how often automatic runs happen.
	SyncInterval time.Duration
	// RunTimeout bounds one sync run.
	RunTimeout time.Duration
	// RunOnce requests a single on-demand run followed by exit.
	RunOnce bool
}

// ClientConfig is the validated syncer configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Device  ClientDevice
	Adapter ClientAdapter
	Storage ClientStorage
	Server  ClientServer
	Workers ClientWorkers
}

// GetClientConfig builds and validates the syncer config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			SecretKey: cfg.App.SecretKey,
			Version:   cfg.App.Version,
			Email:     cfg.App.Email,
			Password:  cfg.App.Password,
			LogFile:   cfg.App.LogFile,
		},
		Device: ClientDevice{
			Name:      cfg.Device.Name,
			Brand:     cfg.Device.Brand,
			Model:     cfg.Device.Model,
			OSVersion: cfg.Device.OSVersion,
			TimeZone:  cfg.Device.TimeZone,
			Culture:   cfg.Device.Culture,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Server: ClientServer{HTTPAddress: cfg.Server.HTTPAddress},
		Workers: ClientWorkers{
			SyncInterval: cfg.Workers.SyncInterval,
			RunTimeout:   cfg.Workers.RunTimeout,
			RunOnce:      cfg.Workers.RunOnce,
		},
	}
}
