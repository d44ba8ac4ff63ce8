package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON keys
// and string durations.
type StructuredJSONConfig struct {
	App       struct {
		SecretKey string `json:"secret_key"`
		Version   string `json:"version"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		LogFile   string `json:"log_file"`
	} `json:"app,omitempty"`

	Device    struct {
		Name      string `json:"name"`
		Brand     string `json:"brand"`
		Model     string `json:"model"`
		OSVersion string `json:"os_version"`
		TimeZone  string `json:"time_zone"`
		Culture   string `json:"culture"`
	} `json:"device,omitempty"`

	Storage struct {
		DB      struct {
			DSN     string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server      struct {
		HTTPAddress string `json:"http_address"`
	} `json:"server,omitempty"`

	Adapter        struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers      struct {
		SyncInterval Duration `json:"sync_interval"`
		RunTimeout   Duration `json:"run_timeout"`
		RunOnce      bool     `json:"run_once"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SecretKey: jsonCfg.App.SecretKey,
			Version:   jsonCfg.App.Version,
			Email:     jsonCfg.App.Email,
			Password:  jsonCfg.App.Password,
			LogFile:   jsonCfg.App.LogFile,
		},
		Device: Device{
			Name:      jsonCfg.Device.Name,
			Brand:     jsonCfg.Device.Brand,
			Model:     jsonCfg.Device.Model,
			OSVersion: jsonCfg.Device.OSVersion,
			TimeZone:  jsonCfg.Device.TimeZone,
			Culture:   jsonCfg.Device.Culture,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress: jsonCfg.Server.HTTPAddress,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
			RunTimeout:   time.Duration(jsonCfg.Workers.RunTimeout),
			RunOnce:      jsonCfg.Workers.RunOnce,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
