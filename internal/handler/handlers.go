package handler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/scale-sync/internal/config"
	"github.com/MKhiriev/scale-sync/internal/handler/http"
	"github.com/MKhiriev/scale-sync/internal/logger"
	"github.com/MKhiriev/scale-sync/internal/service"
	"github.com/MKhiriev/scale-sync/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, gatherer prometheus.Gatherer, buildInfo models.AppBuildInfo, cfg config.ClientServer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, gatherer, buildInfo, logger)}, nil
}
