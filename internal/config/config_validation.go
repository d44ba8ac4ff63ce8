// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.RunTimeout <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.SecretKey == "" {
		return ErrInvalidAppConfigs
	}
	if cfg.App.Password != "" && cfg.App.Email == "" {
		return fmt.Errorf("%w: password given without email", ErrInvalidAppConfigs)
	}

	if _, err := time.LoadLocation(cfg.Device.TimeZone); err != nil || cfg.Device.TimeZone == "" {
		return fmt.Errorf("%w: time zone %q", ErrInvalidDeviceConfigs, cfg.Device.TimeZone)
	}

	return nil
}
