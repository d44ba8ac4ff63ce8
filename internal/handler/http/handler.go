package http

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/scale-sync/internal/logger"
	"github.com/MKhiriev/scale-sync/internal/service"
	"github.com/MKhiriev/scale-sync/models"
)

type Handler struct {
	services  *service.Services
	gatherer  prometheus.Gatherer
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(services *service.Services, gatherer prometheus.Gatherer, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		gatherer:  gatherer,
		buildInfo: buildInfo,
		logger:    logger,
	}
}
