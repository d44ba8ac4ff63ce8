package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/scale-sync/models"
)

const defaultSyncInterval = 15 * time.Minute

type syncJob struct {
	syncService SyncService
	onComplete  func(models.SyncResult)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a syncJob around syncService. onComplete may be nil.
// The job is idle until Start is called.
func NewSyncJob(syncService SyncService, onComplete func(models.SyncResult)) SyncJob {
	return &syncJob{syncService: syncService, onComplete: onComplete}
}

func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.run(jobCtx, true)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.run(jobCtx, true)
			}
		}
	}()
}

func (j *syncJob) Trigger(ctx context.Context) models.SyncResult {
	return j.run(ctx, false)
}

func (j *syncJob) run(ctx context.Context, isAutomatic bool) models.SyncResult {
	result := j.syncService.RunSync(ctx, isAutomatic)
	if j.onComplete != nil {
		j.onComplete(result)
	}
	return result
}

// Stop is a no-op when the job is not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
