package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/scale-sync/internal/crypto"
	"github.com/MKhiriev/scale-sync/internal/logger"
	"github.com/MKhiriev/scale-sync/models"
)

// stateRepository keeps the sync state in the settings table. The vendor
// password is sealed with the keychain before it is written.
type stateRepository struct {
	db       *DB
	keychain crypto.Keychain
	now      func() time.Time
	logger   *logger.Logger
}

func NewStateRepository(db *DB, keychain crypto.Keychain, logger *logger.Logger) StateRepository {
	logger.Debug().Msg("creating state repository")
	return &stateRepository{
		db:       db,
		keychain: keychain,
		now:      time.Now,
		logger:   logger,
	}
}

func (r *stateRepository) LoadCredentials(ctx context.Context) (models.Credentials, error) {
	log := logger.FromContext(ctx)

	values, err := r.getSettings(ctx, keyEmail, keyPassword, keyDeviceID)
	if err != nil {
		log.Err(err).Str("func", "*stateRepository.LoadCredentials").Msg("error reading credentials")
		return models.Credentials{}, err
	}

	creds := models.Credentials{
		Email:    values[keyEmail],
		DeviceID: values[keyDeviceID],
	}

	if sealed := values[keyPassword]; sealed != "" {
		creds.Password, err = r.keychain.Open(sealed)
		if err != nil {
			log.Err(err).Str("func", "*stateRepository.LoadCredentials").Msg("stored password cannot be opened")
			return models.Credentials{}, fmt.Errorf("%w: %w", ErrStoreRead, err)
		}
	}

	return creds, nil
}

// SaveCredentials stores email and the sealed password in one transaction.
func (r *stateRepository) SaveCredentials(ctx context.Context, email, password string) error {
	log := logger.FromContext(ctx)

	sealed, err := r.keychain.Seal(password)
	if err != nil {
		log.Err(err).Str("func", "*stateRepository.SaveCredentials").Msg("error sealing password")
		return fmt.Errorf("%w: %w", ErrStoreWrite, err)
	}

	return r.putSettings(ctx, map[string]string{
		keyEmail:    email,
		keyPassword: sealed,
	})
}

func (r *stateRepository) SaveDeviceID(ctx context.Context, deviceID string) error {
	return r.putSettings(ctx, map[string]string{keyDeviceID: deviceID})
}

func (r *stateRepository) LoadCursor(ctx context.Context) (*time.Time, error) {
	log := logger.FromContext(ctx)

	values, err := r.getSettings(ctx, keyLastSync)
	if err != nil {
		log.Err(err).Str("func", "*stateRepository.LoadCursor").Msg("error reading cursor")
		return nil, err
	}

	raw, ok := values[keyLastSync]
	if !ok || raw == "" {
		return nil, nil
	}

	cursor, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		log.Err(err).Str("func", "*stateRepository.LoadCursor").Str("value", raw).Msg("invalid cursor in store")
		return nil, fmt.Errorf("%w: %w", ErrInvalidCursor, err)
	}

	return &cursor, nil
}

func (r *stateRepository) SaveCursor(ctx context.Context, cursor time.Time) error {
	return r.putSettings(ctx, map[string]string{keyLastSync: cursor.UTC().Format(time.RFC3339Nano)})
}

func (r *stateRepository) getSettings(ctx context.Context, keys ...string) (map[string]string, error) {
	query, args, err := r.db.builder().
		Select("key", "value").
		From(settingsTable).
		Where(sq.Eq{"key": keys}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrStoreRead, ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrStoreRead, ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make(map[string]string, len(keys))
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: %w: %w", ErrStoreRead, ErrScanningRows, err)
		}
		values[key] = value
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrStoreRead, ErrScanningRows, err)
	}

	return values, nil
}

// putSettings upserts all values atomically.
func (r *stateRepository) putSettings(ctx context.Context, values map[string]string) error {
	log := logger.FromContext(ctx)
	now := r.now().UTC()

	insert := r.db.builder().
		Insert(settingsTable).
		Columns("key", "value", "updated_at")
	for _, key := range sortedKeys(values) {
		insert = insert.Values(key, values[key], now)
	}

	query, args, err := insert.Suffix(upsertSettingSuffix).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w: %w", ErrStoreWrite, ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*stateRepository.putSettings").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w: %w", ErrStoreWrite, ErrBeginningTransaction, err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Err(rbErr).Str("func", "*stateRepository.putSettings").Msg("rollback failed")
		}
	}()

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*stateRepository.putSettings").Msg("error upserting settings")
		return fmt.Errorf("%w: %w: %w", ErrStoreWrite, ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*stateRepository.putSettings").Msg("error committing settings")
		return fmt.Errorf("%w: %w: %w", ErrStoreWrite, ErrCommitingTransaction, err)
	}

	return nil
}

// sortedKeys fixes the upsert row order so statements are deterministic.
func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}
