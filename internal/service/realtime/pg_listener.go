package realtime

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lib/pq"

	"github.com/rllL1/portfolio/internal/database/schema"
	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/pkg/logger"
	"github.com/rllL1/portfolio/pkg/tracing"
)

const (
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
	pingInterval         = 90 * time.Second
)

// PGListener turns NOTIFY payloads of the change triggers into published ChangeEvents
type PGListener struct {
	dsn       string
	publisher domain.ChangePublisher
	logger    logger.Logger

	mu       sync.Mutex
	listener *pq.Listener
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewPGListener(dsn string, publisher domain.ChangePublisher, logger logger.Logger) *PGListener {
	return &PGListener{
		dsn:       dsn,
		publisher: publisher,
		logger:    logger,
	}
}

// Start opens a dedicated connection and listens until Stop or ctx is done
func (l *PGListener) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.listener != nil {
		return fmt.Errorf("listener already started")
	}

	listener := pq.NewListener(l.dsn, minReconnectInterval, maxReconnectInterval, l.reportProblem)
	if err := listener.Listen(schema.NotifyChannel); err != nil {
		listener.Close()
		return fmt.Errorf("failed to listen on %s: %w", schema.NotifyChannel, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	l.listener = listener
	l.cancel = cancel
	l.done = make(chan struct{})

	go l.run(ctx, listener)

	l.logger.WithField("channel", schema.NotifyChannel).Info("Listening for database changes")
	return nil
}

func (l *PGListener) Stop() {
	l.mu.Lock()
	listener, cancel, done := l.listener, l.cancel, l.done
	l.listener = nil
	l.mu.Unlock()

	if listener == nil {
		return
	}
	cancel()
	<-done
	if err := listener.Close(); err != nil {
		l.logger.WithField("error", err.Error()).Warn("Failed to close database listener")
	}
}

func (l *PGListener) run(ctx context.Context, listener *pq.Listener) {
	defer close(l.done)

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case n := <-listener.Notify:
			// nil after a reconnect; notifications sent meanwhile are lost
			if n == nil {
				l.logger.Info("Database listener reconnected")
				continue
			}
			l.handle(ctx, []byte(n.Extra))
		case <-ticker.C:
			go func() {
				if err := listener.Ping(); err != nil {
					l.logger.WithField("error", err.Error()).Warn("Database listener ping failed")
				}
			}()
		}
	}
}

func (l *PGListener) handle(ctx context.Context, payload []byte) {
	event, err := domain.ParseChangeEvent(payload)
	if err != nil {
		l.logger.WithField("error", err.Error()).Warn("Ignoring malformed change notification")
		return
	}
	if !domain.IsWatchedTable(event.Table) {
		return
	}

	tracing.RecordChangeEvent(ctx, event.Table, "listen")
	l.publisher.Publish(ctx, *event)
}

func (l *PGListener) reportProblem(ev pq.ListenerEventType, err error) {
	switch ev {
	case pq.ListenerEventConnectionAttemptFailed, pq.ListenerEventDisconnected:
		if err != nil {
			l.logger.WithField("error", err.Error()).Warn("Database listener connection problem")
		}
	case pq.ListenerEventReconnected:
		l.logger.Debug("Database listener connection restored")
	}
}
