package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/scale-sync/internal/adapter"
	"github.com/MKhiriev/scale-sync/internal/app"
	"github.com/MKhiriev/scale-sync/internal/logger"
	"github.com/MKhiriev/scale-sync/internal/metrics"
	"github.com/MKhiriev/scale-sync/internal/store"
	"github.com/MKhiriev/scale-sync/internal/transformer"
	"github.com/MKhiriev/scale-sync/models"
)

const (
	// dedupMargin widens the health-store read window around the new readings.
	dedupMargin = time.Minute

	defaultRunTimeout = 30 * time.Second
)

type syncService struct {
	state   store.StateRepository
	records store.HealthRecordRepository
	vendor  adapter.VendorAdapter
	device  models.DeviceMetadata
	timeout time.Duration
	metrics *metrics.Metrics
	runIDs  RunIDGenerator
	now     func() time.Time
	logger  *logger.Logger

	// running is held for the whole pipeline, including a pipeline that
	// outlived its timeout.
	running sync.Mutex

	mu   sync.RWMutex
	last *models.SyncResult
}

// SyncServiceDeps groups the collaborators of [NewSyncService].
type SyncServiceDeps struct {
	State   store.StateRepository
	Records store.HealthRecordRepository
	Vendor  adapter.VendorAdapter
	Device  models.DeviceMetadata
	Timeout time.Duration
	Metrics *metrics.Metrics
	RunIDs  RunIDGenerator
}

func NewSyncService(deps SyncServiceDeps, logger *logger.Logger) SyncService {
	m := deps.Metrics
	if m == nil {
		m = metrics.New(nil)
	}
	timeout := deps.Timeout
	if timeout <= 0 {
		timeout = defaultRunTimeout
	}
	return &syncService{
		state:   deps.State,
		records: deps.Records,
		vendor:  deps.Vendor,
		device:  deps.Device,
		timeout: timeout,
		metrics: m,
		runIDs:  deps.RunIDs,
		now:     time.Now,
		logger:  logger,
	}
}

// pipelineOutcome is what the pipeline goroutine hands back to RunSync.
type pipelineOutcome struct {
	written int
	cursor  *time.Time
	// warning is set when the run succeeded but some kinds were not written.
	warning string
	err     error
}

func (s *syncService) RunSync(ctx context.Context, isAutomatic bool) models.SyncResult {
	result := models.SyncResult{IsAutomatic: isAutomatic, StartedAt: s.now()}

	if !s.running.TryLock() {
		result.Message = ErrSyncInProgress.Error()
		result.FinishedAt = s.now()
		s.logger.Info().Str("func", "*syncService.RunSync").Bool("automatic", isAutomatic).Msg("sync skipped: another run is in flight")
		s.metrics.ObserveRun(metrics.OutcomeBusy, result)
		return result
	}

	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	runCtx, log := s.logger.WithRunID(runCtx, s.runIDs.Generate())

	log.Info().Str("func", "*syncService.RunSync").Bool("automatic", isAutomatic).Msg("sync started")

	// written is shared with the pipeline so a timed-out run can still
	// report the kinds that were committed.
	var written atomic.Int64
	done := make(chan pipelineOutcome, 1)
	go func() {
		defer s.running.Unlock()
		defer func() {
			if r := recover(); r != nil {
				log.Error().Str("func", "*syncService.RunSync").Interface("panic", r).Msg("sync pipeline panicked")
				done <- pipelineOutcome{err: fmt.Errorf("internal error: %v", r)}
			}
		}()
		done <- s.pipeline(runCtx, isAutomatic, &written)
	}()

	outcome := s.timedOut(runCtx, awaitOutcome(runCtx, done, &written))

	result.FinishedAt = s.now()
	result.RecordCount = outcome.written
	result.Cursor = outcome.cursor
	result.Success = outcome.err == nil
	if outcome.err != nil {
		result.Message = resultMessage(outcome.err)
		if errors.Is(outcome.err, ErrTimeout) {
			result.Message = fmt.Sprintf("%s after %s", result.Message, s.timeout)
		}
	} else {
		result.Message = outcome.warning
	}

	s.record(log, result, outcome.err)
	return result
}

// awaitOutcome waits for the pipeline or the run deadline. A pipeline that
// finished by the time the deadline is observed wins; otherwise the outcome
// carries the records written so far.
func awaitOutcome(runCtx context.Context, done <-chan pipelineOutcome, written *atomic.Int64) pipelineOutcome {
	select {
	case outcome := <-done:
		return outcome
	case <-runCtx.Done():
	}

	select {
	case outcome := <-done:
		return outcome
	default:
		return pipelineOutcome{written: int(written.Load()), err: runCtx.Err()}
	}
}

// timedOut reclassifies a deadline hit as ErrTimeout.
func (s *syncService) timedOut(runCtx context.Context, outcome pipelineOutcome) pipelineOutcome {
	if outcome.err == nil || !errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return outcome
	}
	outcome.err = fmt.Errorf("%w: %w", ErrTimeout, outcome.err)
	return outcome
}

func (s *syncService) record(log *logger.Logger, result models.SyncResult, err error) {
	s.mu.Lock()
	s.last = &result
	s.mu.Unlock()

	outcome := metrics.OutcomeSuccess
	switch {
	case errors.Is(err, ErrTimeout):
		outcome = metrics.OutcomeTimeout
	case err != nil:
		outcome = metrics.OutcomeFailure
	}
	s.metrics.ObserveRun(outcome, result)

	event := log.Info()
	if err != nil {
		event = log.Warn().Err(err)
	}
	event.Str("func", "*syncService.RunSync").
		Bool("success", result.Success).
		Int("count", result.RecordCount).
		Dur("duration", result.FinishedAt.Sub(result.StartedAt)).
		Msg("sync finished")
}

func (s *syncService) LastResult() (models.SyncResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.last == nil {
		return models.SyncResult{}, false
	}
	return *s.last, true
}

// pipeline is LoadState, Authenticate, Download, Dedup, Transform, Persist
// and AdvanceCursor in that order.
func (s *syncService) pipeline(ctx context.Context, isAutomatic bool, written *atomic.Int64) pipelineOutcome {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return pipelineOutcome{err: err}
	}

	if err := s.records.Ping(ctx); err != nil {
		return pipelineOutcome{err: fmt.Errorf("%w: %w", ErrHealthStoreUnavailable, err)}
	}

	// load state
	creds, err := s.state.LoadCredentials(ctx)
	if err != nil {
		return pipelineOutcome{err: err}
	}
	if !creds.Complete() {
		return pipelineOutcome{err: ErrMissingCredentials}
	}

	cursor, err := s.state.LoadCursor(ctx)
	if err != nil {
		return pipelineOutcome{err: err}
	}
	outcome := pipelineOutcome{cursor: cursor}

	// authenticate
	session, err := s.vendor.Login(ctx, creds, s.device)
	if err != nil {
		outcome.err = err
		return outcome
	}

	// download
	measurements, err := s.vendor.Download(ctx, session, cursor, isAutomatic)
	if err != nil {
		outcome.err = err
		return outcome
	}
	log.Debug().Str("func", "*syncService.pipeline").Int("downloaded", len(measurements)).Msg("vendor history downloaded")

	fresh := newerThan(measurements, cursor)
	fresh = s.dedup(ctx, fresh)

	// transform
	grouped := transformer.GroupByKind(transformer.TransformAll(fresh))

	// persist
	var failed []string
	for _, kind := range models.RecordKinds {
		batch := grouped[kind]
		if len(batch) == 0 {
			continue
		}

		n, err := s.records.Write(ctx, kind, batch)
		if err != nil {
			log.Err(err).Str("func", "*syncService.pipeline").Str("kind", string(kind)).Int("records", len(batch)).Msg("error writing records")
			s.metrics.WriteFailed(kind)
			failed = append(failed, string(kind))
			continue
		}
		s.metrics.RecordsWritten(kind, n)
		outcome.written += n
		written.Add(int64(n))
	}
	if len(failed) > 0 {
		outcome.warning = fmt.Sprintf(app.MsgPartialWriteFormat, strings.Join(failed, ", "))
	}

	// advance cursor
	if err = ctx.Err(); err != nil {
		outcome.err = err
		return outcome
	}

	next := s.now().UTC()
	if cursor != nil && cursor.After(next) {
		next = *cursor
	}
	if err = s.state.SaveCursor(ctx, next); err != nil {
		log.Err(err).Str("func", "*syncService.pipeline").Msg("error saving cursor")
		outcome.err = err
		return outcome
	}
	outcome.cursor = &next

	return outcome
}

// newerThan keeps measurements taken strictly after cursor.
func newerThan(measurements []models.VendorMeasurement, cursor *time.Time) []models.VendorMeasurement {
	if cursor == nil {
		return measurements
	}

	fresh := make([]models.VendorMeasurement, 0, len(measurements))
	for _, m := range measurements {
		if m.MeasurementTime.After(*cursor) {
			fresh = append(fresh, m)
		}
	}
	return fresh
}

// dedup drops measurements whose timestamp matches a Weight record already in
// the health store. When the store cannot be read, every measurement is kept.
func (s *syncService) dedup(ctx context.Context, measurements []models.VendorMeasurement) []models.VendorMeasurement {
	if len(measurements) == 0 {
		return measurements
	}
	log := logger.FromContext(ctx)

	from, to := measurements[0].MeasurementTime, measurements[0].MeasurementTime
	for _, m := range measurements[1:] {
		if m.MeasurementTime.Before(from) {
			from = m.MeasurementTime
		}
		if m.MeasurementTime.After(to) {
			to = m.MeasurementTime
		}
	}

	existing, err := s.records.Read(ctx, models.RecordKindWeight, from.Add(-dedupMargin), to.Add(dedupMargin))
	if err != nil {
		log.Warn().Err(err).Str("func", "*syncService.dedup").Str("dedup", "degraded").Msg("health store read failed, writing without dedup")
		s.metrics.DedupDegraded()
		return measurements
	}

	seen := make(map[int64]struct{}, len(existing))
	for _, rec := range existing {
		seen[rec.Time.UnixNano()] = struct{}{}
	}

	kept := make([]models.VendorMeasurement, 0, len(measurements))
	for _, m := range measurements {
		if _, dup := seen[m.MeasurementTime.UnixNano()]; dup {
			continue
		}
		kept = append(kept, m)
	}
	if dropped := len(measurements) - len(kept); dropped > 0 {
		log.Debug().Str("func", "*syncService.dedup").Int("dropped", dropped).Msg("skipped measurements already in health store")
	}
	return kept
}
