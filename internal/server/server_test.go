package server

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-prefs-keeper/internal/config"
	"github.com/MKhiriev/go-prefs-keeper/internal/domains"
	myHTTP "github.com/MKhiriev/go-prefs-keeper/internal/handler/http"
	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
	"github.com/MKhiriev/go-prefs-keeper/internal/service"
	"github.com/MKhiriev/go-prefs-keeper/internal/settings"
	"github.com/MKhiriev/go-prefs-keeper/internal/workers"
)

type versionService struct{}

func (versionService) Start(context.Context) (settings.UpgradeResult, error) {
	return settings.UpgradeResult{}, nil
}
func (versionService) Stop(context.Context) error { return nil }
func (versionService) GetAppInfo(context.Context) service.AppInfo {
	return service.AppInfo{Version: "test", SettingsVersion: -1}
}

// syncBuffer lets the test read log output written by server goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type unreachableFetcher struct{}

func (unreachableFetcher) FetchList(context.Context, string) (string, error) {
	return "", errors.New("connection refused")
}

type recordingWorker struct {
	ran, stopped atomic.Bool
}

func (w *recordingWorker) Run(context.Context) { w.ran.Store(true) }
func (w *recordingWorker) Stop()               { w.stopped.Store(true) }

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func newTestHandler() *myHTTP.Handler {
	return myHTTP.NewHandler(&service.Services{AppInfoService: versionService{}}, logger.Nop())
}

func TestNewServer_EmptyAddress(t *testing.T) {
	s, err := NewServer(newTestHandler(), nil, config.Server{}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_RunServesAndShutsDown(t *testing.T) {
	addr := freeAddress(t)
	w := &recordingWorker{}

	s, err := NewServer(newTestHandler(), workers.NewWorkers(w), config.Server{HTTPAddress: addr}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.(*server).run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/api/version")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)
	assert.True(t, w.ran.Load())

	cancel()
	select {
	case <-done:
	case <-time.After(2 * shutdownTimeout):
		t.Fatal("server did not shut down")
	}
	assert.True(t, w.stopped.Load())
}

func TestServer_RunServerLogsWorkerWarnings(t *testing.T) {
	addr := freeAddress(t)
	var buf syncBuffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	checker := domains.NewChecker([]string{"localhost"},
		domains.WithRemoteList("http://lists.example/domains.txt", unreachableFetcher{}, []string{"\n"}))
	ws := workers.NewWorkers(workers.NewDomainsRefresher(checker, 0, logger.Nop()))

	s, err := NewServer(newTestHandler(), ws, config.Server{HTTPAddress: addr}, log)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.RunServer(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(buf.String(), "remote domain list unavailable")
	}, 2*time.Second, 10*time.Millisecond)
	assert.Contains(t, buf.String(), "connection refused")

	cancel()
	select {
	case <-done:
	case <-time.After(2 * shutdownTimeout):
		t.Fatal("server did not shut down")
	}
	assert.Contains(t, buf.String(), "server Shutdown gracefully")
}
