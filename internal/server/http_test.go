package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/scale-sync/internal/config"
	"github.com/MKhiriev/scale-sync/internal/handler"
	"github.com/MKhiriev/scale-sync/internal/logger"
)

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewServer_Disabled(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.ClientServer{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoServersAreCreated)

	_, err = NewServer(nil, config.ClientServer{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoServersAreCreated)
}

func TestHTTPServer_RunAndShutdown(t *testing.T) {
	addr := freeAddress(t)
	router := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	srv := newHTTPServer(router, config.ClientServer{HTTPAddress: addr}, logger.Nop())

	errCh := make(chan error, 1)
	go func() { errCh <- srv.RunServer() }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusNoContent
	}, 2*time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err := <-errCh:
		assert.NoError(t, err, "a closed server is not an error")
	case <-time.After(time.Second):
		t.Fatal("RunServer did not return after Shutdown")
	}
}

func TestHTTPServer_ListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	srv := newHTTPServer(http.NotFoundHandler(), config.ClientServer{HTTPAddress: l.Addr().String()}, logger.Nop())
	assert.Error(t, srv.RunServer())
}
