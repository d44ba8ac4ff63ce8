package config

import "time"

// Default values applied before any other source.
const (
	DefaultVendorAddress  = "https://sync.connect-sanitas-online.de"
	DefaultRequestTimeout = 20 * time.Second
	DefaultSyncInterval   = 15 * time.Minute
	DefaultRunTimeout     = 30 * time.Second
	DefaultDSN            = "file:scale-sync.db?_foreign_keys=on"
	DefaultServerAddress  = "127.0.0.1:8089"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: "dev",
		},
		Device: Device{
			Name:      "scale-sync",
			Brand:     "Google",
			Model:     "Pixel 7",
			OSVersion: "14",
			TimeZone:  "UTC",
			Culture:   "fr-FR",
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress: DefaultServerAddress,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultVendorAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			SyncInterval: DefaultSyncInterval,
			RunTimeout:   DefaultRunTimeout,
		},
	}
}
