package server

import (
	"github.com/MKhiriev/scale-sync/internal/config"
	"github.com/MKhiriev/scale-sync/internal/handler"
	"github.com/MKhiriev/scale-sync/internal/logger"
)

// NewServer builds the HTTP server for the configured address. It returns
// ErrNoServersAreCreated when the local surface is disabled.
func NewServer(handlers *handler.Handlers, cfg config.ClientServer, logger *logger.Logger) (Server, error) {
	if cfg.HTTPAddress == "" || handlers == nil || handlers.HTTP == nil {
		return nil, ErrNoServersAreCreated
	}

	logger.Info().Str("address", cfg.HTTPAddress).Msg("creating http server")
	return newHTTPServer(handlers.HTTP.Init(), cfg, logger), nil
}
