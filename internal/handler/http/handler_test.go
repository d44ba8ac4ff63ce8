package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/scale-sync/internal/logger"
	"github.com/MKhiriev/scale-sync/internal/metrics"
	"github.com/MKhiriev/scale-sync/internal/service"
	"github.com/MKhiriev/scale-sync/models"
)

// stubSync serves both the SyncService and the SyncJob side of the handler.
type stubSync struct {
	result   models.SyncResult
	last     *models.SyncResult
	triggers atomic.Int64
	ctxErr   error
}

func (s *stubSync) RunSync(context.Context, bool) models.SyncResult { return s.result }

func (s *stubSync) LastResult() (models.SyncResult, bool) {
	if s.last == nil {
		return models.SyncResult{}, false
	}
	return *s.last, true
}

func (s *stubSync) Start(context.Context, time.Duration) {}
func (s *stubSync) Stop()                                {}

func (s *stubSync) Trigger(ctx context.Context) models.SyncResult {
	s.triggers.Add(1)
	s.ctxErr = ctx.Err()
	return s.result
}

func newTestHandler(stub *stubSync) (*Handler, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	metrics.New(reg).DedupDegraded()

	services := &service.Services{SyncService: stub, SyncJob: stub}
	buildInfo := models.NewAppBuildInfo("1.2.3", "2024-03-05", "abc123")
	return NewHandler(services, reg, buildInfo, logger.Nop()), reg
}

func serve(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	return rr
}

func TestTriggerSync(t *testing.T) {
	tests := []struct {
		name   string
		result models.SyncResult
		status int
	}{
		{"success", models.SyncResult{Success: true, RecordCount: 2}, http.StatusOK},
		{"busy", models.SyncResult{Message: "sync already in progress"}, http.StatusConflict},
		{"missing credentials", models.SyncResult{Message: "missing credentials"}, http.StatusPreconditionFailed},
		{"store down", models.SyncResult{Message: "health store unavailable"}, http.StatusServiceUnavailable},
		{"timeout", models.SyncResult{Message: "sync timeout after 30s"}, http.StatusGatewayTimeout},
		{"vendor failure", models.SyncResult{Message: "authentication failed: invalid user"}, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubSync{result: tt.result}
			h, _ := newTestHandler(stub)

			rr := serve(t, h.Init(), http.MethodPost, "/api/sync")

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var got models.SyncResult
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tt.result.Success, got.Success)
			assert.Equal(t, tt.result.RecordCount, got.RecordCount)
			assert.Equal(t, tt.result.Message, got.Message)
			assert.Equal(t, int64(1), stub.triggers.Load())
		})
	}
}

func TestTriggerSync_DetachedFromRequestContext(t *testing.T) {
	stub := &stubSync{result: models.SyncResult{Success: true}}
	h, _ := newTestHandler(stub)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/api/sync", nil).WithContext(ctx)
	rr := httptest.NewRecorder()

	h.Init().ServeHTTP(rr, req)

	assert.NoError(t, stub.ctxErr)
}

func TestGetStatus(t *testing.T) {
	stub := &stubSync{}
	h, _ := newTestHandler(stub)
	router := h.Init()

	rr := serve(t, router, http.MethodGet, "/api/status")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"never synced"}`, rr.Body.String())

	stub.last = &models.SyncResult{Success: true, RecordCount: 5}
	rr = serve(t, router, http.MethodGet, "/api/status")
	assert.Contains(t, rr.Body.String(), `"status":"last sync succeeded"`)
	assert.Contains(t, rr.Body.String(), `"count":5`)

	stub.last = &models.SyncResult{Success: true, RecordCount: 1, Message: "failed to write BodyFat"}
	rr = serve(t, router, http.MethodGet, "/api/status")
	assert.Contains(t, rr.Body.String(), `"status":"last sync succeeded with warnings"`)

	stub.last = &models.SyncResult{Message: "missing credentials"}
	rr = serve(t, router, http.MethodGet, "/api/status")
	assert.Contains(t, rr.Body.String(), `"status":"last sync failed: missing credentials"`)
}

func TestGetVersion(t *testing.T) {
	h, _ := newTestHandler(&stubSync{})

	rr := serve(t, h.Init(), http.MethodGet, "/api/version")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"version":"1.2.3","date":"2024-03-05","commit":"abc123"}`, rr.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	h, _ := newTestHandler(&stubSync{})

	rr := serve(t, h.Init(), http.MethodGet, "/metrics")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "scale_sync_dedup_degraded_total 1")
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	h, _ := newTestHandler(&stubSync{})

	rr := serve(t, h.Init(), http.MethodGet, "/api/unknown")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	stub := &stubSync{}
	h, _ := newTestHandler(stub)
	router := h.Init()

	for _, tc := range []struct{ method, target string }{
		{http.MethodGet, "/api/sync"},
		{http.MethodPost, "/api/status"},
		{http.MethodDelete, "/api/version"},
		{http.MethodPost, "/metrics"},
	} {
		rr := serve(t, router, tc.method, tc.target)
		assert.Equal(t, http.StatusNotFound, rr.Code, "%s %s", tc.method, tc.target)
	}
	assert.Zero(t, stub.triggers.Load())
}

func TestWithTraceID(t *testing.T) {
	h, _ := newTestHandler(&stubSync{})

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		l := logger.FromRequest(r).Output(&buf)
		l.Info().Msg("x")
		seen = buf.String()
	})

	// propagated from the request
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	h.withTraceID(next).ServeHTTP(rr, req)

	assert.Equal(t, "trace-123", rr.Header().Get(traceIDHeader))
	assert.Contains(t, seen, `"trace_id":"trace-123"`)

	// generated when absent
	rr = httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := rr.Header().Get(traceIDHeader)
	assert.Len(t, generated, 36)
	assert.Contains(t, seen, generated)
}

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	rr := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/status?x=1", nil))

	line := buf.String()
	assert.Contains(t, line, `"uri":"/api/status?x=1"`)
	assert.Contains(t, line, `"method":"GET"`)
	assert.Contains(t, line, `"status":418`)
	assert.Contains(t, line, `"size":15`)
	assert.True(t, strings.Contains(line, `"trace_id":`))
}

func TestResponseWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	n, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	w.Write([]byte("de"))

	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, 5, w.size)

	implicit := &responseWriter{ResponseWriter: httptest.NewRecorder()}
	implicit.Write([]byte("x"))
	assert.Equal(t, http.StatusOK, implicit.status)
}
