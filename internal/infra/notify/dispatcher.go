// Package notify delivers notifications off the request path.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"resort-engine/internal/usecase/shared"
)

// Sink performs the actual delivery.
type Sink interface {
	Send(ctx context.Context, n shared.Notification) error
}

type SinkFunc func(ctx context.Context, n shared.Notification) error

func (f SinkFunc) Send(ctx context.Context, n shared.Notification) error {
	return f(ctx, n)
}

// Dispatcher queues notifications for a fixed pool of workers. Notify never
// blocks: a full queue drops the notification with a warning.
type Dispatcher struct {
	sink    Sink
	queue   chan shared.Notification
	workers int
	timeout time.Duration
	logger  *slog.Logger

	wg       sync.WaitGroup
	mu       sync.RWMutex
	stopped  bool
	stopOnce sync.Once
}

func NewDispatcher(sink Sink, workers, queueSize int, logger *slog.Logger) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		sink:    sink,
		queue:   make(chan shared.Notification, queueSize),
		workers: workers,
		timeout: 10 * time.Second,
		logger:  logger,
	}
}

func (d *Dispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.work()
	}
}

func (d *Dispatcher) Notify(_ context.Context, n shared.Notification) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		d.logger.Warn("notification dropped after shutdown", "template", n.Template)
		return
	}
	select {
	case d.queue <- n:
	default:
		d.logger.Warn("notification queue full, dropping", "template", n.Template, "recipient", n.Recipient)
	}
}

// Stop drains the queue and waits for the workers until ctx expires.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.stopped = true
		close(d.queue)
		d.mu.Unlock()
	})

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) work() {
	defer d.wg.Done()
	for n := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		if err := d.sink.Send(ctx, n); err != nil {
			d.logger.Warn("notification delivery failed",
				"template", n.Template,
				"recipient", n.Recipient,
				"error", err.Error())
		}
		cancel()
	}
}

// LogSink writes notifications to the log when no broker is configured.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Send(_ context.Context, n shared.Notification) error {
	s.logger.Info("notification",
		"template", n.Template,
		"recipient", n.Recipient,
		"locale", n.Locale)
	return nil
}
