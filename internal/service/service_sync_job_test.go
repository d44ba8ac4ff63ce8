// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/scale-sync/models"
)

// spySyncService counts RunSync calls per trigger.
type spySyncService struct {
	automatic atomic.Int64
	manual    atomic.Int64
	success   bool
}

func (s *spySyncService) RunSync(_ context.Context, isAutomatic bool) models.SyncResult {
	if isAutomatic {
		s.automatic.Add(1)
	} else {
		s.manual.Add(1)
	}
	return models.SyncResult{Success: s.success, IsAutomatic: isAutomatic}
}

func (s *spySyncService) LastResult() (models.SyncResult, bool) {
	return models.SyncResult{}, false
}

// completions collects results passed to the completion callback.
type completions struct {
	mu      sync.Mutex
	results []models.SyncResult
}

func (c *completions) add(r models.SyncResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = append(c.results, r)
}

func (c *completions) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.results)
}

func TestNewSyncJob_ReturnsInterface(t *testing.T) {
	job := NewSyncJob(&spySyncService{}, nil)
	require.NotNil(t, job)

	var _ SyncJob = job
}

func TestSyncJob_Start_RunsImmediatelyAndOnTicks(t *testing.T) {
	spy := &spySyncService{success: true}
	done := &completions{}
	job := NewSyncJob(spy, done.add)

	// 10ms interval: the immediate run plus ~5 ticks in 55ms
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.automatic.Load()
	assert.GreaterOrEqual(t, got, int64(3), "RunSync called %d times", got)
	assert.Equal(t, int(got), done.len(), "every run reports completion")
	assert.Zero(t, spy.manual.Load())
}

func TestSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy, nil)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.automatic.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.automatic.Load(), "no runs after Stop")
}

func TestSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewSyncJob(&spySyncService{}, nil)
	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewSyncJob(&spySyncService{}, nil)

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_Start_DefaultInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		spy := &spySyncService{}
		job := NewSyncJob(spy, nil)

		// 15 minute default: only the immediate run happens within 20ms
		job.Start(context.Background(), interval)
		time.Sleep(20 * time.Millisecond)
		job.Stop()

		assert.Equal(t, int64(1), spy.automatic.Load(), "interval %s", interval)
	}
}

func TestSyncJob_Restart_StopsPrevious(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy, nil)
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	callsBefore := spy.automatic.Load()
	assert.Greater(t, callsBefore, int64(0))

	// Start on a running job stops the old loop first
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.automatic.Load(), callsBefore)
}

func TestSyncJob_ContextCancel_StopsJob(t *testing.T) {
	job := NewSyncJob(&spySyncService{}, nil)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after context cancel")
	}
}

func TestSyncJob_FailedRuns_DoNotStopJob(t *testing.T) {
	spy := &spySyncService{success: false}
	job := NewSyncJob(spy, nil)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.automatic.Load(), int64(3))
}

func TestSyncJob_Trigger(t *testing.T) {
	spy := &spySyncService{success: true}
	done := &completions{}
	job := NewSyncJob(spy, done.add)

	result := job.Trigger(context.Background())

	assert.True(t, result.Success)
	assert.False(t, result.IsAutomatic)
	assert.Equal(t, int64(1), spy.manual.Load())
	assert.Equal(t, 1, done.len())
}
