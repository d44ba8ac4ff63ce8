package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/scale-sync/internal/logger"
	"github.com/MKhiriev/scale-sync/internal/store"
)

type credentialsService struct {
	state  store.StateRepository
	newID  func() string
	logger *logger.Logger
}

func NewCredentialsService(state store.StateRepository, logger *logger.Logger) CredentialsService {
	return &credentialsService{
		state:  state,
		newID:  uuid.NewString,
		logger: logger,
	}
}

func (c *credentialsService) EnsureDeviceID(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	creds, err := c.state.LoadCredentials(ctx)
	if err != nil {
		log.Err(err).Str("func", "*credentialsService.EnsureDeviceID").Msg("error loading credentials")
		return "", fmt.Errorf("error loading device id: %w", err)
	}
	if creds.DeviceID != "" {
		return creds.DeviceID, nil
	}

	deviceID := c.newID()
	if err = c.state.SaveDeviceID(ctx, deviceID); err != nil {
		log.Err(err).Str("func", "*credentialsService.EnsureDeviceID").Msg("error saving device id")
		return "", fmt.Errorf("error saving device id: %w", err)
	}
	log.Info().Str("device_id", deviceID).Msg("generated device id")

	return deviceID, nil
}

func (c *credentialsService) SaveCredentials(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return ErrInvalidCredentials
	}

	if err := c.state.SaveCredentials(ctx, email, password); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*credentialsService.SaveCredentials").Msg("error saving credentials")
		return fmt.Errorf("error saving credentials: %w", err)
	}
	return nil
}
