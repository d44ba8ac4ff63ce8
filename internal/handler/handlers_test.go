package handler

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/scale-sync/internal/config"
	"github.com/MKhiriev/scale-sync/internal/logger"
	"github.com/MKhiriev/scale-sync/models"
)

// NewHandler only stores the services pointer, so nil is fine here.
func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := config.ClientServer{HTTPAddress: "127.0.0.1:8089"}

	h, err := NewHandlers(nil, prometheus.NewRegistry(), models.NewAppBuildInfo("", "", ""), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(nil, prometheus.NewRegistry(), models.AppBuildInfo{}, config.ClientServer{}, logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.True(t, IsDisabled(err))
	assert.False(t, IsDisabled(errors.New("other")))
}
