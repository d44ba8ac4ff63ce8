package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/scale-sync/internal/config"
	"github.com/MKhiriev/scale-sync/internal/crypto"
	"github.com/MKhiriev/scale-sync/internal/logger"
)

// Storages bundles the repositories the sync service depends on.
type Storages struct {
	State         StateRepository
	HealthRecords HealthRecordRepository

	db *DB
}

// NewStorages connects to cfg.DB, applies migrations and builds the
// repositories on top of the connection.
func NewStorages(ctx context.Context, cfg config.ClientStorage, keychain crypto.Keychain, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to store: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "store.NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	log.Info().Str("dialect", string(db.Dialect())).Msg("store ready")

	return &Storages{
		State:         NewStateRepository(db, keychain, log),
		HealthRecords: NewHealthRecordRepository(db, log),
		db:            db,
	}, nil
}

func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
