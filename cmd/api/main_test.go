package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rllL1/portfolio/config"
	"github.com/rllL1/portfolio/internal/app"
	"github.com/rllL1/portfolio/internal/service/realtime"
	"github.com/rllL1/portfolio/pkg/logger"
	"github.com/rllL1/portfolio/pkg/mailer"
)

// fakeApp records lifecycle calls; Start blocks until Shutdown unless startErr is set
type fakeApp struct {
	initErr     error
	startErr    error
	shutdownErr error
	slowStop    bool

	mu              sync.Mutex
	shutdownCalled  bool
	shutdownTimeout time.Duration
	stopped         chan struct{}
}

func newFakeApp() *fakeApp {
	return &fakeApp{stopped: make(chan struct{})}
}

func (f *fakeApp) Initialize() error { return f.initErr }

func (f *fakeApp) Start() error {
	if f.startErr != nil {
		return f.startErr
	}
	<-f.stopped
	return http.ErrServerClosed
}

func (f *fakeApp) Shutdown(ctx context.Context) error {
	f.mu.Lock()
	f.shutdownCalled = true
	f.mu.Unlock()

	if f.slowStop {
		<-ctx.Done()
	}
	close(f.stopped)
	return f.shutdownErr
}

func (f *fakeApp) GetConfig() *config.Config                 { return nil }
func (f *fakeApp) GetLogger() logger.Logger                  { return nil }
func (f *fakeApp) GetMux() *http.ServeMux                    { return nil }
func (f *fakeApp) GetDB() *sql.DB                            { return nil }
func (f *fakeApp) GetMailer() mailer.Mailer                  { return nil }
func (f *fakeApp) GetHub() *realtime.Hub                     { return nil }
func (f *fakeApp) IsServerCreated() bool                     { return true }
func (f *fakeApp) WaitForServerStart(_ context.Context) bool { return true }
func (f *fakeApp) InitDB() error                             { return nil }
func (f *fakeApp) InitMailer() error                         { return nil }
func (f *fakeApp) InitTracing() error                        { return nil }
func (f *fakeApp) InitRepositories() error                   { return nil }
func (f *fakeApp) InitServices() error                       { return nil }
func (f *fakeApp) InitHandlers() error                       { return nil }
func (f *fakeApp) GetActiveRequestCount() int64              { return 0 }
func (f *fakeApp) GetShutdownContext() context.Context       { return context.Background() }

func (f *fakeApp) SetShutdownTimeout(timeout time.Duration) {
	f.mu.Lock()
	f.shutdownTimeout = timeout
	f.mu.Unlock()
}

var _ app.AppInterface = (*fakeApp)(nil)

// withFakes swaps newApp and signalNotify; each signalNotify call receives the next signal
func withFakes(t *testing.T, fake *fakeApp, signals ...os.Signal) {
	t.Helper()
	origApp, origNotify := newApp, signalNotify
	t.Cleanup(func() {
		newApp, signalNotify = origApp, origNotify
	})

	newApp = func(_ *config.Config, _ ...app.AppOption) app.AppInterface { return fake }

	var mu sync.Mutex
	next := 0
	signalNotify = func(c chan<- os.Signal, _ ...os.Signal) {
		mu.Lock()
		defer mu.Unlock()
		if next < len(signals) {
			c <- signals[next]
			next++
		}
	}
}

func TestRunServer_InitializeError(t *testing.T) {
	fake := newFakeApp()
	fake.initErr = errors.New("database unreachable")
	withFakes(t, fake)

	err := runServer(&config.Config{}, logger.NewTestLogger(t))
	assert.EqualError(t, err, "database unreachable")
}

func TestRunServer_StartError(t *testing.T) {
	fake := newFakeApp()
	fake.startErr = errors.New("address already in use")
	withFakes(t, fake)

	err := runServer(&config.Config{}, logger.NewTestLogger(t))
	assert.EqualError(t, err, "address already in use")
}

func TestRunServer_GracefulShutdown(t *testing.T) {
	fake := newFakeApp()
	withFakes(t, fake, syscall.SIGTERM)

	err := runServer(&config.Config{}, logger.NewTestLogger(t))
	assert.NoError(t, err)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.True(t, fake.shutdownCalled)
	assert.Equal(t, appShutdownTimeout, fake.shutdownTimeout)
}

func TestRunServer_ShutdownError(t *testing.T) {
	fake := newFakeApp()
	fake.shutdownErr = errors.New("close failed")
	withFakes(t, fake, os.Interrupt)

	err := runServer(&config.Config{}, logger.NewTestLogger(t))
	assert.EqualError(t, err, "close failed")
}

func TestRunServer_ForcedShutdown(t *testing.T) {
	fake := newFakeApp()
	fake.slowStop = true
	withFakes(t, fake, os.Interrupt, os.Interrupt)

	err := runServer(&config.Config{}, logger.NewTestLogger(t))
	assert.EqualError(t, err, "forced shutdown")
}
