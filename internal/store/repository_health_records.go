package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/scale-sync/internal/logger"
	"github.com/MKhiriev/scale-sync/models"
)

// healthRecordRepository is the SQL health-data store. Times are stored in
// UTC so range predicates compare consistently on SQLite text timestamps.
type healthRecordRepository struct {
	db     *DB
	now    func() time.Time
	logger *logger.Logger
}

func NewHealthRecordRepository(db *DB, logger *logger.Logger) HealthRecordRepository {
	logger.Debug().Msg("creating health record repository")
	return &healthRecordRepository{
		db:     db,
		now:    time.Now,
		logger: logger,
	}
}

func (r *healthRecordRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*healthRecordRepository.Ping").Msg("health store ping failed")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

func (r *healthRecordRepository) Read(ctx context.Context, kind models.RecordKind, from, to time.Time) ([]models.HealthRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select("kind", "recorded_at", "value", "unit").
		From(healthRecordsTable).
		Where(sq.And{
			sq.Eq{"kind": string(kind)},
			sq.GtOrEq{"recorded_at": from.UTC()},
			sq.LtOrEq{"recorded_at": to.UTC()},
		}).
		OrderBy("recorded_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrStoreRead, ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*healthRecordRepository.Read").Str("kind", string(kind)).Msg("error querying health records")
		return nil, fmt.Errorf("%w: %w: %w", ErrStoreRead, ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.HealthRecord
	for rows.Next() {
		var (
			rec        models.HealthRecord
			recordKind string
			unit       string
		)
		if err = rows.Scan(&recordKind, &rec.Time, &rec.Value, &unit); err != nil {
			log.Err(err).Str("func", "*healthRecordRepository.Read").Msg("error scanning health record")
			return nil, fmt.Errorf("%w: %w: %w", ErrStoreRead, ErrScanningRows, err)
		}
		rec.Kind = models.RecordKind(recordKind)
		rec.Unit = models.Unit(unit)
		rec.Time = rec.Time.UTC()
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrStoreRead, ErrScanningRows, err)
	}

	return records, nil
}

// Write inserts records in one transaction, split into multi-row INSERTs of
// at most maxBatchRows. Transient driver errors (busy database, dropped
// connection, deadlock) retry the whole batch.
func (r *healthRecordRepository) Write(ctx context.Context, kind models.RecordKind, records []models.HealthRecord) (int, error) {
	log := logger.FromContext(ctx)

	if len(records) == 0 {
		return 0, nil
	}
	for _, rec := range records {
		if rec.Kind != kind {
			return 0, fmt.Errorf("%w: %w: got %s in %s batch", ErrStoreWrite, ErrKindMismatch, rec.Kind, kind)
		}
	}

	var (
		written int
		err     error
	)
	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		written, err = r.writeBatch(ctx, kind, records)
		if err == nil {
			return written, nil
		}
		if !r.db.retryable(err) || ctx.Err() != nil {
			break
		}
		log.Warn().Err(err).Str("func", "*healthRecordRepository.Write").Int("attempt", attempt).Msg("retrying health record batch")
	}

	log.Err(err).Str("func", "*healthRecordRepository.Write").Str("kind", string(kind)).Msg("error writing health records")
	return 0, fmt.Errorf("%w: %w", ErrStoreWrite, err)
}

func (r *healthRecordRepository) writeBatch(ctx context.Context, kind models.RecordKind, records []models.HealthRecord) (int, error) {
	log := logger.FromContext(ctx)
	createdAt := r.now().UTC()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Err(rbErr).Str("func", "*healthRecordRepository.writeBatch").Msg("rollback failed")
		}
	}()

	var written int
	for start := 0; start < len(records); start += maxBatchRows {
		end := min(start+maxBatchRows, len(records))

		insert := r.db.builder().
			Insert(healthRecordsTable).
			Columns("kind", "recorded_at", "value", "unit", "created_at")
		for _, rec := range records[start:end] {
			insert = insert.Values(string(kind), rec.Time.UTC(), rec.Value, string(rec.Unit), createdAt)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			affected = int64(end - start)
		}
		written += int(affected)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return written, nil
}
